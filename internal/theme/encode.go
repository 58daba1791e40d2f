package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/contrast"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ValidFormats lists the supported formats.
func ValidFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: %v)", s, ValidFormats())
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// EncodeOptions controls text output.
type EncodeOptions struct {
	// Preview draws a swatch before each colour.
	Preview bool
	// Profile is the terminal colour profile swatches are drawn with.
	Profile termenv.Profile
	// Palettes adds the palette tone strips to text output.
	Palettes bool
}

// Encode writes t to w in the given format.
func Encode(w io.Writer, t *Theme, format Format, opts EncodeOptions) error {
	if format == FormatText || format == "" {
		_, err := io.WriteString(w, t.StringWithPreview(opts))
		return err
	}
	return EncodeData(w, t, format)
}

// EncodeData writes v to w as JSON or YAML.
func EncodeData(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("cannot encode data as %q (valid: %s, %s)", format, FormatJSON, FormatYAML)
	}
}

// String returns a human-readable listing of the theme.
func (t *Theme) String() string {
	return t.StringWithPreview(EncodeOptions{Profile: termenv.Ascii})
}

// StringWithPreview returns the listing with optional colour swatches.
func (t *Theme) StringWithPreview(opts EncodeOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source:   %s\n", t.Source)
	fmt.Fprintf(&b, "Variant:  %s\n", t.Variant)
	fmt.Fprintf(&b, "Mode:     %s\n", t.Mode)
	fmt.Fprintf(&b, "Contrast: %.2f\n", t.ContrastLevel)

	b.WriteString("\nRoles:\n")
	for _, r := range t.Roles {
		detail := fmt.Sprintf("H%.0f C%.0f T%.0f", r.Hue, r.Chroma, r.Tone)
		if opts.Preview {
			fmt.Fprintf(&b, "  %s  %s\n", colour.SwatchWithLabel(r.Color, r.Name, 0, opts.Profile), detail)
		} else {
			fmt.Fprintf(&b, "  %-34s %-10s %s\n", r.Name, r.Color, detail)
		}
	}

	if bg, ok := t.Role("background"); ok {
		if fg, ok := t.Role("on_background"); ok {
			fmt.Fprintf(&b, "  Contrast ratio (on_background): %.2f:1\n", contrast.RatioOfTones(fg.Tone, bg.Tone))
		}
	}

	if opts.Palettes {
		for _, p := range t.Palettes {
			fmt.Fprintf(&b, "\n%s (hue %.1f, chroma %.1f, key %s):\n", p.Name, p.Hue, p.Chroma, p.KeyColor)
			for _, tone := range p.Tones {
				label := fmt.Sprintf("T%d", tone.Tone)
				if opts.Preview {
					fmt.Fprintf(&b, "  %s\n", colour.SwatchWithLabel(tone.Color, label, 0, opts.Profile))
				} else {
					fmt.Fprintf(&b, "  %-6s %s\n", label, tone.Color)
				}
			}
		}
	}
	return b.String()
}
