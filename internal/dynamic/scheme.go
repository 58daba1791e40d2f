package dynamic

import (
	"fmt"
	"math"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/palette"
)

// Default error palette hue and chroma.
const (
	errorHue    = 25.0
	errorChroma = 84.0
)

// Palettes are the tonal palettes a scheme binds roles to. Error is optional.
type Palettes struct {
	Primary        *palette.TonalPalette
	Secondary      *palette.TonalPalette
	Tertiary       *palette.TonalPalette
	Neutral        *palette.TonalPalette
	NeutralVariant *palette.TonalPalette
	Error          *palette.TonalPalette
}

// Scheme is the input every dynamic colour is resolved against: the source
// colour, light or dark mode, the contrast level and the palettes. A Scheme
// is immutable once built; roles memoise their colours per scheme.
type Scheme struct {
	sourceColor   hct.Hct
	variant       Variant
	isDark        bool
	contrastLevel float64

	primaryPalette        *palette.TonalPalette
	secondaryPalette      *palette.TonalPalette
	tertiaryPalette       *palette.TonalPalette
	neutralPalette        *palette.TonalPalette
	neutralVariantPalette *palette.TonalPalette
	errorPalette          *palette.TonalPalette
}

// NewScheme builds a scheme. The five core palettes are required; the error
// palette defaults to hue 25, chroma 84. The contrast level must be within
// [-1, 1]: -1 is reduced contrast, 0 standard and 1 the highest.
func NewScheme(source hct.Hct, variant Variant, isDark bool, contrastLevel float64, p Palettes) (*Scheme, error) {
	if math.IsNaN(contrastLevel) || contrastLevel < -1 || contrastLevel > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrContrastLevel, contrastLevel)
	}
	required := []struct {
		name string
		p    *palette.TonalPalette
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"tertiary", p.Tertiary},
		{"neutral", p.Neutral},
		{"neutral variant", p.NeutralVariant},
	}
	for _, r := range required {
		if r.p == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPalette, r.name)
		}
	}

	errPalette := p.Error
	if errPalette == nil {
		errPalette = palette.FromHueAndChroma(errorHue, errorChroma)
	}

	return &Scheme{
		sourceColor:           source,
		variant:               variant,
		isDark:                isDark,
		contrastLevel:         contrastLevel,
		primaryPalette:        p.Primary,
		secondaryPalette:      p.Secondary,
		tertiaryPalette:       p.Tertiary,
		neutralPalette:        p.Neutral,
		neutralVariantPalette: p.NeutralVariant,
		errorPalette:          errPalette,
	}, nil
}

// SourceColor returns the colour the scheme was built from.
func (s *Scheme) SourceColor() hct.Hct { return s.sourceColor }

// SourceColorARGB returns the source colour.
func (s *Scheme) SourceColorARGB() colour.ARGB {
	return s.sourceColor.ARGB()
}

// Variant returns the scheme's variant.
func (s *Scheme) Variant() Variant { return s.variant }

// IsDark reports whether the scheme is in dark mode.
func (s *Scheme) IsDark() bool { return s.isDark }

// ContrastLevel returns the contrast level, -1 to 1.
func (s *Scheme) ContrastLevel() float64 { return s.contrastLevel }

// Palettes the roles draw from.
func (s *Scheme) PrimaryPalette() *palette.TonalPalette        { return s.primaryPalette }
func (s *Scheme) SecondaryPalette() *palette.TonalPalette      { return s.secondaryPalette }
func (s *Scheme) TertiaryPalette() *palette.TonalPalette       { return s.tertiaryPalette }
func (s *Scheme) NeutralPalette() *palette.TonalPalette        { return s.neutralPalette }
func (s *Scheme) NeutralVariantPalette() *palette.TonalPalette { return s.neutralVariantPalette }
func (s *Scheme) ErrorPalette() *palette.TonalPalette          { return s.errorPalette }

// Get resolves c against the scheme.
func (s *Scheme) Get(c *Color) colour.ARGB {
	return c.ARGB(s)
}

// GetHct resolves c against the scheme, returning hue, chroma and tone.
func (s *Scheme) GetHct(c *Color) hct.Hct {
	return c.Hct(s)
}

// String summarises the scheme.
func (s *Scheme) String() string {
	mode := "light"
	if s.isDark {
		mode = "dark"
	}
	return fmt.Sprintf("Scheme(%s, %s, contrast %.2f, source %s)", s.variant, mode, s.contrastLevel, s.sourceColor.ARGB())
}

// RotatedHue returns the source hue rotated by the amount for the hue range
// it falls in: when hues[i] < source hue < hues[i+1], rotations[i] applies.
// A single rotation applies to every hue.
func RotatedHue(source hct.Hct, hues, rotations []float64) float64 {
	sourceHue := source.Hue()
	if len(rotations) == 1 {
		return colour.SanitizeDegreesFloat(sourceHue + rotations[0])
	}
	for i := 0; i+1 < len(hues) && i < len(rotations); i++ {
		if hues[i] < sourceHue && sourceHue < hues[i+1] {
			return colour.SanitizeDegreesFloat(sourceHue + rotations[i])
		}
	}
	return sourceHue
}
