// Package dynamic resolves semantic colour roles, such as "primary" or
// "on-surface", to concrete colours for a given scheme. A role's tone is
// adjusted to reach its contrast target against its background and to keep
// its distance from any paired role.
package dynamic

import (
	"math"
	"sync"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/contrast"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/palette"
)

// maxCachedSchemes bounds the per-colour resolution memo.
const maxCachedSchemes = 4

// ColorSpec defines a role. Palette and Tone are required; the rest are
// optional.
type ColorSpec struct {
	Name string
	// Palette selects the palette the role's colour comes from.
	Palette func(*Scheme) *palette.TonalPalette
	// Tone is the role's tone before contrast adjustment.
	Tone func(*Scheme) float64
	// IsBackground marks roles other roles are drawn on. Backgrounds avoid
	// the 50-59 tone band.
	IsBackground bool
	// Background and SecondBackground return the roles this one must
	// contrast with.
	Background       func(*Scheme) *Color
	SecondBackground func(*Scheme) *Color
	// ContrastCurve gives the target ratio against the background.
	ContrastCurve *ContrastCurve
	// ToneDeltaPair constrains this role's tone relative to another role.
	// It requires Background.
	ToneDeltaPair func(*Scheme) ToneDeltaPair
	// Opacity returns the alpha, 0-1.
	Opacity func(*Scheme) float64
}

// Color is a role whose concrete colour depends on the scheme. Resolved
// colours are memoised for the most recent schemes; a Color is safe for
// concurrent use.
type Color struct {
	spec ColorSpec

	mu    sync.Mutex
	cache map[*Scheme]hct.Hct
}

// NewColor returns a role defined by spec.
func NewColor(spec ColorSpec) *Color {
	return &Color{
		spec:  spec,
		cache: make(map[*Scheme]hct.Hct),
	}
}

// FromPalette returns a role with a palette and a tone and no contrast
// requirements.
func FromPalette(name string, p func(*Scheme) *palette.TonalPalette, tone func(*Scheme) float64) *Color {
	return NewColor(ColorSpec{Name: name, Palette: p, Tone: tone})
}

// Name returns the role's name.
func (c *Color) Name() string { return c.spec.Name }

// IsBackground reports whether other roles are drawn on this one.
func (c *Color) IsBackground() bool { return c.spec.IsBackground }

// ARGB returns the role's colour in s, including its opacity.
func (c *Color) ARGB(s *Scheme) colour.ARGB {
	argb := c.Hct(s).ARGB()
	if c.spec.Opacity == nil {
		return argb
	}
	alpha := colour.ClampInt(0, 255, int(colour.RoundHalfUp(c.spec.Opacity(s)*255)))
	return argb.WithAlpha(uint8(alpha))
}

// Hct returns the role's opaque colour in s.
func (c *Color) Hct(s *Scheme) hct.Hct {
	c.mu.Lock()
	if h, ok := c.cache[s]; ok {
		c.mu.Unlock()
		return h
	}
	c.mu.Unlock()

	h := c.spec.Palette(s).GetHct(c.Tone(s))

	c.mu.Lock()
	if len(c.cache) > maxCachedSchemes {
		clear(c.cache)
	}
	c.cache[s] = h
	c.mu.Unlock()
	return h
}

func (c *Color) desiredRatio(s *Scheme) float64 {
	if c.spec.ContrastCurve == nil {
		return contrast.RatioMin
	}
	return c.spec.ContrastCurve.Get(s.ContrastLevel())
}

// Tone returns the role's tone in s after contrast and pairing adjustments.
func (c *Color) Tone(s *Scheme) float64 {
	if c.spec.ToneDeltaPair != nil && c.spec.Background != nil {
		return c.pairTone(s)
	}
	return c.singleTone(s)
}

// pairTone resolves both roles of the tone delta pair against their shared
// background and returns the tone of whichever one c is.
func (c *Color) pairTone(s *Scheme) float64 {
	decreasingContrast := s.ContrastLevel() < 0

	pair := c.spec.ToneDeltaPair(s)
	delta := pair.Delta

	bgTone := c.spec.Background(s).Tone(s)

	aIsNearer := pair.Polarity == Nearer ||
		(pair.Polarity == Lighter && !s.IsDark()) ||
		(pair.Polarity == Darker && s.IsDark())
	nearer, farther := pair.RoleA, pair.RoleB
	if !aIsNearer {
		nearer, farther = farther, nearer
	}
	amNearer := c.spec.Name == nearer.spec.Name
	expansionDir := -1.0
	if s.IsDark() {
		expansionDir = 1.0
	}

	// First round: each role solves for its own ratio, leaving tones that
	// are already good enough alone.
	nContrast := nearer.desiredRatio(s)
	fContrast := farther.desiredRatio(s)

	nTone := nearer.spec.Tone(s)
	if contrast.RatioOfTones(bgTone, nTone) < nContrast {
		nTone = ForegroundTone(bgTone, nContrast)
	}
	fTone := farther.spec.Tone(s)
	if contrast.RatioOfTones(bgTone, fTone) < fContrast {
		fTone = ForegroundTone(bgTone, fContrast)
	}

	if decreasingContrast {
		// Use the bare minimum that reaches the ratio.
		nTone = ForegroundTone(bgTone, nContrast)
		fTone = ForegroundTone(bgTone, fContrast)
	}

	if (fTone-nTone)*expansionDir < delta {
		// Second round: push farther out.
		fTone = colour.ClampFloat(0, 100, nTone+delta*expansionDir)
		if (fTone-nTone)*expansionDir < delta {
			// Third round: pull nearer in.
			nTone = colour.ClampFloat(0, 100, fTone-delta*expansionDir)
		}
	}

	// Leave the 50-59 band.
	moveBoth := func() {
		if expansionDir > 0 {
			nTone = 60
			fTone = math.Max(fTone, nTone+delta*expansionDir)
		} else {
			nTone = 49
			fTone = math.Min(fTone, nTone+delta*expansionDir)
		}
	}
	switch {
	case 50 <= nTone && nTone < 60:
		moveBoth()
	case 50 <= fTone && fTone < 60:
		if pair.StayTogether {
			moveBoth()
		} else if expansionDir > 0 {
			fTone = 60
		} else {
			fTone = 49
		}
	}

	if amNearer {
		return nTone
	}
	return fTone
}

// singleTone resolves a role without a tone delta pair.
func (c *Color) singleTone(s *Scheme) float64 {
	answer := c.spec.Tone(s)
	if c.spec.Background == nil {
		// Roles without a background are never adjusted.
		return answer
	}

	bgTone := c.spec.Background(s).Tone(s)
	desiredRatio := c.desiredRatio(s)

	if contrast.RatioOfTones(bgTone, answer) < desiredRatio {
		answer = ForegroundTone(bgTone, desiredRatio)
	}
	if s.ContrastLevel() < 0 {
		answer = ForegroundTone(bgTone, desiredRatio)
	}

	if c.spec.IsBackground && 50 <= answer && answer < 60 {
		if contrast.RatioOfTones(49, bgTone) >= desiredRatio {
			answer = 49
		} else {
			answer = 60
		}
	}

	if c.spec.SecondBackground == nil {
		return answer
	}
	return c.dualBackgroundTone(s, answer, desiredRatio)
}

// dualBackgroundTone keeps answer if it contrasts with both backgrounds and
// otherwise picks a tone outside both of them.
func (c *Color) dualBackgroundTone(s *Scheme, answer, desiredRatio float64) float64 {
	bgTone1 := c.spec.Background(s).Tone(s)
	bgTone2 := c.spec.SecondBackground(s).Tone(s)

	upper := math.Max(bgTone1, bgTone2)
	lower := math.Min(bgTone1, bgTone2)

	if contrast.RatioOfTones(upper, answer) >= desiredRatio &&
		contrast.RatioOfTones(lower, answer) >= desiredRatio {
		return answer
	}

	lightOption, lightOK := contrast.Lighter(upper, desiredRatio)
	darkOption, darkOK := contrast.Darker(lower, desiredRatio)

	if TonePrefersLightForeground(bgTone1) || TonePrefersLightForeground(bgTone2) {
		if !lightOK {
			return 100
		}
		return lightOption
	}
	if lightOK && !darkOK {
		return lightOption
	}
	if !darkOK {
		return 0
	}
	return darkOption
}

// ForegroundTone returns the tone that reaches ratio against bgTone, lighter
// for dark backgrounds and darker for light ones, unless the other side
// reaches a clearly better ratio.
func ForegroundTone(bgTone, ratio float64) float64 {
	lighterTone := contrast.LighterUnsafe(bgTone, ratio)
	darkerTone := contrast.DarkerUnsafe(bgTone, ratio)
	lighterRatio := contrast.RatioOfTones(lighterTone, bgTone)
	darkerRatio := contrast.RatioOfTones(darkerTone, bgTone)

	if TonePrefersLightForeground(bgTone) {
		// At high target ratios neither side may reach the target. When the
		// two are that close, stay light rather than flip to dark.
		negligibleDifference := math.Abs(lighterRatio-darkerRatio) < 0.1 &&
			lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligibleDifference {
			return lighterTone
		}
		return darkerTone
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darkerTone
	}
	return lighterTone
}

// EnableLightForeground moves tones that prefer a light foreground but cannot
// carry one down to 49.
func EnableLightForeground(tone float64) float64 {
	if TonePrefersLightForeground(tone) && !ToneAllowsLightForeground(tone) {
		return 49.0
	}
	return tone
}

// TonePrefersLightForeground reports whether a light foreground suits tone
// better than a dark one. Rounded tones below 60 do.
func TonePrefersLightForeground(tone float64) bool {
	return colour.RoundHalfUp(tone) < 60
}

// ToneAllowsLightForeground reports whether tone is dark enough for a light
// foreground to reach standard contrast.
func ToneAllowsLightForeground(tone float64) bool {
	return colour.RoundHalfUp(tone) <= 49
}
