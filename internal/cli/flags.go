package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/theme"
)

// variantValue is a pflag.Value for dynamic.Variant.
type variantValue struct{ v *dynamic.Variant }

func (f variantValue) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f variantValue) Set(s string) error {
	v, err := dynamic.ParseVariant(s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

func (variantValue) Type() string { return "variant" }

// modeValue is a pflag.Value for theme.Mode.
type modeValue struct{ m *theme.Mode }

func (f modeValue) String() string {
	if f.m == nil {
		return ""
	}
	return f.m.String()
}

func (f modeValue) Set(s string) error {
	m, err := theme.ParseMode(s)
	if err != nil {
		return err
	}
	*f.m = m
	return nil
}

func (modeValue) Type() string { return "mode" }

// formatValue is a pflag.Value for theme.Format.
type formatValue struct{ f *theme.Format }

func (f formatValue) String() string {
	if f.f == nil {
		return ""
	}
	return string(*f.f)
}

func (f formatValue) Set(s string) error {
	v, err := theme.ParseFormat(s)
	if err != nil {
		return err
	}
	*f.f = v
	return nil
}

func (formatValue) Type() string { return "format" }

// colourValue is a pflag.Value for a hex colour.
type colourValue struct{ c *colour.ARGB }

func (f colourValue) String() string {
	if f.c == nil {
		return ""
	}
	return f.c.String()
}

func (f colourValue) Set(s string) error {
	c, err := parseColour(s)
	if err != nil {
		return err
	}
	*f.c = c
	return nil
}

func (colourValue) Type() string { return "colour" }

var (
	_ pflag.Value = variantValue{}
	_ pflag.Value = modeValue{}
	_ pflag.Value = formatValue{}
	_ pflag.Value = colourValue{}
)

// parseColour accepts "#rrggbb", "rrggbb", "#rgb" and "#aarrggbb".
func parseColour(s string) (colour.ARGB, error) {
	var c colour.ARGB
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return c, nil
}
