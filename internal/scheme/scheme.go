// Package scheme provides the preset schemes: one palette recipe per
// variant, each turning a source colour into the palettes of a
// dynamic.Scheme.
package scheme

import (
	"fmt"
	"math"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dislike"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/palette"
	"github.com/jmylchreest/hctheme/internal/temperature"
)

// recipe derives the palettes of a variant from its source colour.
type recipe func(source hct.Hct) dynamic.Palettes

var recipes = map[dynamic.Variant]recipe{
	dynamic.Monochrome: monochromePalettes,
	dynamic.Neutral:    neutralPalettes,
	dynamic.TonalSpot:  tonalSpotPalettes,
	dynamic.Vibrant:    vibrantPalettes,
	dynamic.Expressive: expressivePalettes,
	dynamic.Fidelity:   fidelityPalettes,
	dynamic.Content:    contentPalettes,
	dynamic.Rainbow:    rainbowPalettes,
	dynamic.FruitSalad: fruitSaladPalettes,
}

// New builds a scheme of the given variant from source.
func New(variant dynamic.Variant, source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	r, ok := recipes[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %d", dynamic.ErrUnknownVariant, int(variant))
	}
	s, err := dynamic.NewScheme(source, variant, isDark, contrastLevel, r(source))
	if err != nil {
		return nil, fmt.Errorf("building %s scheme: %w", variant, err)
	}
	return s, nil
}

// NewTonalSpot builds the default scheme: a calm primary with low chroma
// secondary and a tertiary 60 degrees around the hue wheel.
func NewTonalSpot(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.TonalSpot, source, isDark, contrastLevel)
}

// NewNeutral builds a nearly grey scheme.
func NewNeutral(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Neutral, source, isDark, contrastLevel)
}

// NewMonochrome builds a grey scheme.
func NewMonochrome(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Monochrome, source, isDark, contrastLevel)
}

// NewVibrant builds a scheme with the most colourful primary the hue allows.
func NewVibrant(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Vibrant, source, isDark, contrastLevel)
}

// NewExpressive builds a scheme whose primary hue is rotated away from the
// source.
func NewExpressive(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Expressive, source, isDark, contrastLevel)
}

// NewFidelity builds a scheme that keeps the source colour's chroma.
func NewFidelity(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Fidelity, source, isDark, contrastLevel)
}

// NewContent builds a fidelity scheme with an analogous tertiary.
func NewContent(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Content, source, isDark, contrastLevel)
}

// NewRainbow builds a scheme with a colourful primary and grey neutrals.
func NewRainbow(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.Rainbow, source, isDark, contrastLevel)
}

// NewFruitSalad builds a playful scheme with rotated primary and secondary.
func NewFruitSalad(source hct.Hct, isDark bool, contrastLevel float64) (*dynamic.Scheme, error) {
	return New(dynamic.FruitSalad, source, isDark, contrastLevel)
}

func hueChroma(hue, chroma float64) *palette.TonalPalette {
	return palette.FromHueAndChroma(hue, chroma)
}

func tonalSpotPalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(h, 36),
		Secondary:      hueChroma(h, 16),
		Tertiary:       hueChroma(colour.SanitizeDegreesFloat(h+60), 24),
		Neutral:        hueChroma(h, 6),
		NeutralVariant: hueChroma(h, 8),
	}
}

func neutralPalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(h, 12),
		Secondary:      hueChroma(h, 8),
		Tertiary:       hueChroma(h, 16),
		Neutral:        hueChroma(h, 2),
		NeutralVariant: hueChroma(h, 2),
	}
}

func monochromePalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(h, 0),
		Secondary:      hueChroma(h, 0),
		Tertiary:       hueChroma(h, 0),
		Neutral:        hueChroma(h, 0),
		NeutralVariant: hueChroma(h, 0),
	}
}

// Hue breakpoints and rotations for the vibrant and expressive variants.
var (
	vibrantHues               = []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float64{35, 30, 20, 25, 30, 35, 30, 25, 25}

	expressiveHues               = []float64{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRotations = []float64{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float64{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

func vibrantPalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(h, 200),
		Secondary:      hueChroma(dynamic.RotatedHue(source, vibrantHues, vibrantSecondaryRotations), 24),
		Tertiary:       hueChroma(dynamic.RotatedHue(source, vibrantHues, vibrantTertiaryRotations), 32),
		Neutral:        hueChroma(h, 10),
		NeutralVariant: hueChroma(h, 12),
	}
}

func expressivePalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(colour.SanitizeDegreesFloat(h+240), 40),
		Secondary:      hueChroma(dynamic.RotatedHue(source, expressiveHues, expressiveSecondaryRotations), 24),
		Tertiary:       hueChroma(dynamic.RotatedHue(source, expressiveHues, expressiveTertiaryRotations), 32),
		Neutral:        hueChroma(colour.SanitizeDegreesFloat(h+15), 8),
		NeutralVariant: hueChroma(colour.SanitizeDegreesFloat(h+15), 12),
	}
}

// sourcePalettes are the fidelity and content palettes other than tertiary.
func sourcePalettes(source hct.Hct, tertiary hct.Hct) dynamic.Palettes {
	h, c := source.Hue(), source.Chroma()
	return dynamic.Palettes{
		Primary:        hueChroma(h, c),
		Secondary:      hueChroma(h, math.Max(c-32, c*0.5)),
		Tertiary:       palette.FromHct(dislike.FixIfDisliked(tertiary)),
		Neutral:        hueChroma(h, c/8),
		NeutralVariant: hueChroma(h, c/8+4),
	}
}

func fidelityPalettes(source hct.Hct) dynamic.Palettes {
	return sourcePalettes(source, temperature.New(source).Complement())
}

func contentPalettes(source hct.Hct) dynamic.Palettes {
	return sourcePalettes(source, temperature.New(source).Analogous(3, 6)[2])
}

func rainbowPalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(h, 48),
		Secondary:      hueChroma(h, 16),
		Tertiary:       hueChroma(colour.SanitizeDegreesFloat(h+60), 24),
		Neutral:        hueChroma(h, 0),
		NeutralVariant: hueChroma(h, 0),
	}
}

func fruitSaladPalettes(source hct.Hct) dynamic.Palettes {
	h := source.Hue()
	return dynamic.Palettes{
		Primary:        hueChroma(colour.SanitizeDegreesFloat(h-50), 48),
		Secondary:      hueChroma(colour.SanitizeDegreesFloat(h-50), 36),
		Tertiary:       hueChroma(h, 36),
		Neutral:        hueChroma(h, 10),
		NeutralVariant: hueChroma(h, 16),
	}
}
