// Package theme assembles a complete colour theme from a source colour: the
// resolved colour of every role in the catalog and the tone strips of the
// scheme's palettes.
package theme

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/palette"
	"github.com/jmylchreest/hctheme/internal/scheme"
)

// StandardTones are the tones listed for each palette.
var StandardTones = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 50, 60, 70, 80, 90, 95, 98, 99, 100}

// Options configures Build.
type Options struct {
	Source           colour.ARGB
	Variant          dynamic.Variant
	Mode             Mode
	ContrastLevel    float64
	ExtendedFidelity bool
	// Logger receives debug output. Defaults to a null logger.
	Logger hclog.Logger
}

// DefaultOptions returns tonal-spot, auto mode and standard contrast.
func DefaultOptions(source colour.ARGB) Options {
	return Options{
		Source:  source,
		Variant: dynamic.TonalSpot,
		Mode:    ModeAuto,
	}
}

// Role is one resolved colour role.
type Role struct {
	Name   string      `json:"name" yaml:"name"`
	Color  colour.ARGB `json:"color" yaml:"color"`
	Hue    float64     `json:"hue" yaml:"hue"`
	Chroma float64     `json:"chroma" yaml:"chroma"`
	Tone   float64     `json:"tone" yaml:"tone"`
}

// Tone is one colour of a palette strip.
type Tone struct {
	Tone  int         `json:"tone" yaml:"tone"`
	Color colour.ARGB `json:"color" yaml:"color"`
}

// Palette is the tone strip of one of the scheme's palettes.
type Palette struct {
	Name     string      `json:"name" yaml:"name"`
	Hue      float64     `json:"hue" yaml:"hue"`
	Chroma   float64     `json:"chroma" yaml:"chroma"`
	KeyColor colour.ARGB `json:"key_color" yaml:"key_color"`
	Tones    []Tone      `json:"tones" yaml:"tones"`
}

// Theme is a built theme. Roles are in catalog order.
type Theme struct {
	Source        colour.ARGB     `json:"source" yaml:"source"`
	Variant       dynamic.Variant `json:"variant" yaml:"variant"`
	Mode          Mode            `json:"mode" yaml:"mode"`
	ContrastLevel float64         `json:"contrast_level" yaml:"contrast_level"`
	Roles         []Role          `json:"roles" yaml:"roles"`
	Palettes      []Palette       `json:"palettes" yaml:"palettes"`
}

// Build resolves every role of the catalog for opts.
func Build(opts Options) (*Theme, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	source := hct.FromARGB(opts.Source)
	isDark := opts.Mode.IsDark(source.Tone())
	logger.Debug("building theme",
		"source", opts.Source.String(),
		"variant", opts.Variant.String(),
		"mode", opts.Mode.String(),
		"dark", isDark,
		"contrast", opts.ContrastLevel,
	)

	s, err := scheme.New(opts.Variant, source, isDark, opts.ContrastLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build scheme: %w", err)
	}

	mode := ModeLight
	if isDark {
		mode = ModeDark
	}
	t := &Theme{
		Source:        opts.Source,
		Variant:       opts.Variant,
		Mode:          mode,
		ContrastLevel: opts.ContrastLevel,
	}

	catalog := dynamic.NewMaterialColors(opts.ExtendedFidelity)
	for _, c := range catalog.All() {
		h := s.GetHct(c)
		t.Roles = append(t.Roles, Role{
			Name:   c.Name(),
			Color:  s.Get(c),
			Hue:    h.Hue(),
			Chroma: h.Chroma(),
			Tone:   h.Tone(),
		})
	}
	logger.Debug("resolved roles", "count", len(t.Roles))

	for _, p := range SchemePalettes(s) {
		t.Palettes = append(t.Palettes, Strip(p.Name, p.Palette, StandardTones))
	}
	return t, nil
}

// NamedPalette pairs a scheme palette with its name.
type NamedPalette struct {
	Name    string
	Palette *palette.TonalPalette
}

// SchemePalettes returns the six palettes of s in a fixed order.
func SchemePalettes(s *dynamic.Scheme) []NamedPalette {
	return []NamedPalette{
		{"primary", s.PrimaryPalette()},
		{"secondary", s.SecondaryPalette()},
		{"tertiary", s.TertiaryPalette()},
		{"neutral", s.NeutralPalette()},
		{"neutral_variant", s.NeutralVariantPalette()},
		{"error", s.ErrorPalette()},
	}
}

// Strip lists p at the given tones.
func Strip(name string, p *palette.TonalPalette, tones []int) Palette {
	out := Palette{
		Name:     name,
		Hue:      p.Hue(),
		Chroma:   p.Chroma(),
		KeyColor: p.KeyColor().ARGB(),
		Tones:    make([]Tone, len(tones)),
	}
	for i, tone := range tones {
		out.Tones[i] = Tone{Tone: tone, Color: p.Tone(tone)}
	}
	return out
}

// Role returns the role with the given name.
func (t *Theme) Role(name string) (Role, bool) {
	for _, r := range t.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}
