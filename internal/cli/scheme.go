package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/config"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/theme"
)

type schemeOptions struct {
	variant          dynamic.Variant
	mode             theme.Mode
	dark             bool
	light            bool
	contrast         float64
	format           theme.Format
	output           string
	preview          bool
	palettes         bool
	extendedFidelity bool
}

func newSchemeCmd(a *app) *cobra.Command {
	opts := &schemeOptions{variant: dynamic.TonalSpot, format: theme.FormatText}

	cmd := &cobra.Command{
		Use:   "scheme <seed>",
		Short: "Generate every colour role for a seed colour",
		Long: `Generate the full set of colour roles (surfaces, accents, containers, fixed
colours and their foregrounds) for a seed colour.

Defaults come from the config file and HCTHEME_* environment variables;
flags override both.`,
		Example: `  hctheme scheme '#4285f4'
  hctheme scheme 0000ff --variant vibrant --dark --contrast 0.5
  hctheme scheme '#6750a4' --format json --output theme.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheme(cmd, a, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.Var(variantValue{&opts.variant}, "variant", "scheme variant ("+strings.Join(dynamic.VariantNames(), ", ")+")")
	f.Var(modeValue{&opts.mode}, "mode", "theme mode (auto, dark, light)")
	f.BoolVar(&opts.dark, "dark", false, "shorthand for --mode dark")
	f.BoolVar(&opts.light, "light", false, "shorthand for --mode light")
	f.Float64VarP(&opts.contrast, "contrast", "c", 0, "contrast level from -1 (reduced) to 1 (highest)")
	f.VarP(formatValue{&opts.format}, "format", "f", "output format (text, json, yaml)")
	f.StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	f.BoolVarP(&opts.preview, "preview", "p", false, "show colour swatches in text output")
	f.BoolVar(&opts.palettes, "palettes", false, "include palette tone strips in text output")
	f.BoolVar(&opts.extendedFidelity, "extended-fidelity", false, "keep the seed's own tone in the accent containers of every variant")
	cmd.MarkFlagsMutuallyExclusive("mode", "dark", "light")

	return cmd
}

// applyConfig fills every option the user did not set on the command line.
func (o *schemeOptions) applyConfig(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("variant") {
		o.variant = cfg.Variant
	}
	switch {
	case o.dark:
		o.mode = theme.ModeDark
	case o.light:
		o.mode = theme.ModeLight
	case !flags.Changed("mode"):
		o.mode = cfg.Mode
	}
	if !flags.Changed("contrast") {
		o.contrast = cfg.Contrast
	}
	if !flags.Changed("format") && cfg.Format != "" {
		o.format = cfg.Format
	}
	if !flags.Changed("preview") {
		o.preview = cfg.Preview
	}
	if !flags.Changed("extended-fidelity") {
		o.extendedFidelity = cfg.ExtendedFidelity
	}
}

func runScheme(cmd *cobra.Command, a *app, opts *schemeOptions, arg string) error {
	seed, err := parseColour(arg)
	if err != nil {
		return fmt.Errorf("invalid seed colour: %w", err)
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	opts.applyConfig(cmd, cfg)

	th, err := theme.Build(theme.Options{
		Source:           seed,
		Variant:          opts.variant,
		Mode:             opts.mode,
		ContrastLevel:    opts.contrast,
		ExtendedFidelity: opts.extendedFidelity,
		Logger:           a.logger,
	})
	if err != nil {
		return err
	}

	return a.withOutput(cmd, opts.output, func(w io.Writer) error {
		profile := termenv.Ascii
		if opts.preview {
			profile = colour.ProfileFor(w)
		}
		return theme.Encode(w, th, opts.format, theme.EncodeOptions{
			Preview:  opts.preview,
			Profile:  profile,
			Palettes: opts.palettes,
		})
	})
}
