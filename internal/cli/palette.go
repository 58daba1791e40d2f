package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/scheme"
	"github.com/jmylchreest/hctheme/internal/theme"
)

type paletteOptions struct {
	variant dynamic.Variant
	names   []string
	tones   []int
	format  theme.Format
	output  string
	preview bool
}

func newPaletteCmd(a *app) *cobra.Command {
	opts := &paletteOptions{variant: dynamic.TonalSpot, format: theme.FormatText}

	cmd := &cobra.Command{
		Use:   "palette <seed>",
		Short: "Show the tonal palettes a seed colour produces",
		Long: `Show the tone strips of the primary, secondary, tertiary, neutral,
neutral_variant and error palettes a scheme variant derives from a seed.`,
		Example: `  hctheme palette '#4285f4'
  hctheme palette '#4285f4' --name primary,tertiary --tones 10,50,90
  hctheme palette ff0000 --variant content --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, a, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.Var(variantValue{&opts.variant}, "variant", "scheme variant ("+strings.Join(dynamic.VariantNames(), ", ")+")")
	f.StringSliceVarP(&opts.names, "name", "n", nil, "palettes to show (default all)")
	f.IntSliceVarP(&opts.tones, "tones", "t", theme.StandardTones, "tones to list, 0-100")
	f.VarP(formatValue{&opts.format}, "format", "f", "output format (text, json, yaml)")
	f.StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	f.BoolVarP(&opts.preview, "preview", "p", false, "show colour swatches")

	return cmd
}

func runPalette(cmd *cobra.Command, a *app, opts *paletteOptions, arg string) error {
	seed, err := parseColour(arg)
	if err != nil {
		return fmt.Errorf("invalid seed colour: %w", err)
	}
	for _, t := range opts.tones {
		if t < 0 || t > 100 {
			return fmt.Errorf("invalid tone %d: must be 0-100", t)
		}
	}
	if !cmd.Flags().Changed("variant") {
		cfg, err := a.loadConfig()
		if err != nil {
			return err
		}
		opts.variant = cfg.Variant
	}

	// Palettes do not depend on mode or contrast.
	s, err := scheme.New(opts.variant, hct.FromARGB(seed), false, 0)
	if err != nil {
		return err
	}

	var strips []theme.Palette
	known := make([]string, 0, 6)
	for _, p := range theme.SchemePalettes(s) {
		known = append(known, p.Name)
		if len(opts.names) == 0 || slices.Contains(opts.names, p.Name) {
			strips = append(strips, theme.Strip(p.Name, p.Palette, opts.tones))
		}
	}
	for _, name := range opts.names {
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown palette %q (valid: %s)", name, strings.Join(known, ", "))
		}
	}
	a.logger.Debug("built palettes", "variant", opts.variant.String(), "count", len(strips))

	return a.withOutput(cmd, opts.output, func(w io.Writer) error {
		if opts.format != theme.FormatText {
			return theme.EncodeData(w, strips, opts.format)
		}
		profile := termenv.Ascii
		if opts.preview {
			profile = colour.ProfileFor(w)
		}
		return writePaletteText(w, strips, opts.tones, opts.preview, profile)
	})
}

func writePaletteText(w io.Writer, strips []theme.Palette, tones []int, preview bool, profile termenv.Profile) error {
	summary := NewTable("Palette", "Hue", "Chroma", "Key").AlignRight(1, 2)
	for _, p := range strips {
		summary.AddRow(p.Name, formatFloat(p.Hue), formatFloat(p.Chroma), p.KeyColor.String())
	}
	if _, err := summary.WriteTo(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	headers := []string{"Tone"}
	for _, p := range strips {
		headers = append(headers, p.Name)
	}
	strip := NewTable(headers...).AlignRight(0)
	for i, tone := range tones {
		row := []string{strconv.Itoa(tone)}
		for _, p := range strips {
			c := p.Tones[i].Color
			cell := c.String()
			if preview {
				cell = colour.Swatch(c, 2, profile) + " " + cell
			}
			row = append(row, cell)
		}
		strip.AddRow(row...)
	}
	_, err := strip.WriteTo(w)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
