// Package palette provides tonal palettes: colours sharing a hue and chroma
// that differ only in tone.
package palette

import (
	"fmt"
	"sync"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

// TonalPalette produces colours of a fixed hue and chroma at any tone.
// Results are memoised per palette; a palette is safe for concurrent use.
type TonalPalette struct {
	hue      float64
	chroma   float64
	keyColor hct.Hct

	mu    sync.Mutex
	cache map[int]colour.ARGB
}

// FromARGB creates a palette from the hue and chroma of a colour.
func FromARGB(argb colour.ARGB) *TonalPalette {
	return FromHct(hct.FromARGB(argb))
}

// FromHct creates a palette from the hue and chroma of a colour, which also
// becomes the key colour.
func FromHct(h hct.Hct) *TonalPalette {
	return newTonalPalette(h.Hue(), h.Chroma(), h)
}

// FromHueAndChroma creates a palette from a hue and chroma. The key colour is
// the colour nearest tone 50 that reaches the chroma.
func FromHueAndChroma(hue, chroma float64) *TonalPalette {
	return newTonalPalette(hue, chroma, newKeyColor(hue, chroma).create())
}

func newTonalPalette(hue, chroma float64, key hct.Hct) *TonalPalette {
	return &TonalPalette{
		hue:      hue,
		chroma:   chroma,
		keyColor: key,
		cache:    make(map[int]colour.ARGB),
	}
}

// Tone returns the palette's colour at tone, 0 (black) to 100 (white).
func (p *TonalPalette) Tone(tone int) colour.ARGB {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.cache[tone]; ok {
		return c
	}
	c := hct.From(p.hue, p.chroma, float64(tone)).ARGB()
	p.cache[tone] = c
	return c
}

// GetHct returns the palette's colour at a fractional tone. It is not cached.
func (p *TonalPalette) GetHct(tone float64) hct.Hct {
	return hct.From(p.hue, p.chroma, tone)
}

// Hue returns the palette hue.
func (p *TonalPalette) Hue() float64 { return p.hue }

// Chroma returns the requested palette chroma.
func (p *TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor returns the colour that best represents the palette.
func (p *TonalPalette) KeyColor() hct.Hct { return p.keyColor }

// String describes the palette by hue and chroma.
func (p *TonalPalette) String() string {
	return fmt.Sprintf("TonalPalette(hue=%.1f, chroma=%.1f)", p.hue, p.chroma)
}
