package cli

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/contrast"
	"github.com/jmylchreest/hctheme/internal/hct"
)

type hctOptions struct {
	hue     float64
	chroma  float64
	tone    float64
	preview bool
}

func newHctCmd(a *app) *cobra.Command {
	opts := &hctOptions{}

	cmd := &cobra.Command{
		Use:   "hct <colour>...",
		Short: "Show the hue, chroma and tone of colours",
		Long: `Decompose colours into HCT. With --hue, --chroma or --tone the colour is
solved again with that component replaced; chroma is reduced when the
request is out of gamut.`,
		Example: `  hctheme hct '#4285f4' '#ff0000'
  hctheme hct '#4285f4' --tone 90`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHct(cmd, a, opts, args)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.hue, "hue", 0, "replace the hue, in degrees")
	f.Float64Var(&opts.chroma, "chroma", 0, "replace the chroma")
	f.Float64Var(&opts.tone, "tone", 0, "replace the tone, 0-100")
	f.BoolVarP(&opts.preview, "preview", "p", false, "show colour swatches")

	return cmd
}

func runHct(cmd *cobra.Command, a *app, opts *hctOptions, args []string) error {
	flags := cmd.Flags()
	solve := flags.Changed("hue") || flags.Changed("chroma") || flags.Changed("tone")

	colours := make([]colour.ARGB, len(args))
	for i, arg := range args {
		c, err := parseColour(arg)
		if err != nil {
			return fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		colours[i] = c
	}

	headers := []string{"Colour", "Hue", "Chroma", "Tone", "vs White", "vs Black"}
	if solve {
		headers = append(headers, "Solved", "Hue", "Chroma", "Tone")
	}
	table := NewTable(headers...).AlignRight(1, 2, 3, 4, 5, 7, 8, 9)

	w := cmd.OutOrStdout()
	profile := termenv.Ascii
	if opts.preview {
		profile = colour.ProfileFor(w)
	}
	cell := func(c colour.ARGB) string {
		if opts.preview {
			return colour.Swatch(c, 2, profile) + " " + c.String()
		}
		return c.String()
	}

	for _, c := range colours {
		h := hct.FromARGB(c)
		row := []string{
			cell(c),
			formatFloat(h.Hue()),
			formatFloat(h.Chroma()),
			formatFloat(h.Tone()),
			formatRatio(contrast.RatioOfTones(h.Tone(), 100)),
			formatRatio(contrast.RatioOfTones(h.Tone(), 0)),
		}
		if solve {
			solved := h
			if flags.Changed("hue") {
				solved = solved.WithHue(opts.hue)
			}
			if flags.Changed("chroma") {
				solved = solved.WithChroma(opts.chroma)
			}
			if flags.Changed("tone") {
				solved = solved.WithTone(opts.tone)
			}
			a.logger.Debug("solved colour", "input", c.String(), "output", solved.String())
			row = append(row,
				cell(solved.ARGB()),
				formatFloat(solved.Hue()),
				formatFloat(solved.Chroma()),
				formatFloat(solved.Tone()),
			)
		}
		table.AddRow(row...)
	}

	_, err := table.WriteTo(w)
	return err
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}
