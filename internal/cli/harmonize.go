package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/blend"
	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

// Blend methods for the harmonize command.
const (
	methodHarmonize = "harmonize"
	methodHctHue    = "hct-hue"
	methodCam16UCS  = "cam16-ucs"
)

type harmonizeOptions struct {
	method string
	amount float64
}

func newHarmonizeCmd(a *app) *cobra.Command {
	opts := &harmonizeOptions{}

	cmd := &cobra.Command{
		Use:   "harmonize <design> <source>",
		Short: "Shift a design colour's hue towards a source colour",
		Long: `Shift a design colour (a brand or semantic colour) towards a theme's source
colour so the two sit together. The default method rotates the hue by at
most 15 degrees and keeps chroma and tone.`,
		Example: `  hctheme harmonize '#ff0000' '#0000ff'
  hctheme harmonize '#ff0000' '#0000ff' --method cam16-ucs --amount 0.3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			design, err := parseColour(args[0])
			if err != nil {
				return fmt.Errorf("invalid design colour: %w", err)
			}
			source, err := parseColour(args[1])
			if err != nil {
				return fmt.Errorf("invalid source colour: %w", err)
			}
			if opts.amount < 0 || opts.amount > 1 {
				return fmt.Errorf("invalid amount %v: must be 0-1", opts.amount)
			}

			var result colour.ARGB
			switch strings.ToLower(opts.method) {
			case methodHarmonize:
				result = blend.Harmonize(design, source)
			case methodHctHue:
				result = blend.HctHue(design, source, opts.amount)
			case methodCam16UCS:
				result = blend.Cam16UCS(design, source, opts.amount)
			default:
				return fmt.Errorf("unknown method %q (valid: %s, %s, %s)", opts.method, methodHarmonize, methodHctHue, methodCam16UCS)
			}

			in, out := hct.FromARGB(design), hct.FromARGB(result)
			a.logger.Debug("harmonized", "method", opts.method, "from_hue", in.Hue(), "to_hue", out.Hue())

			table := NewTable("Design", "Source", "Result", "Hue", "Result Hue").AlignRight(3, 4)
			table.AddRow(design.String(), source.String(), result.String(), formatFloat(in.Hue()), formatFloat(out.Hue()))
			_, err = table.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.method, "method", methodHarmonize, "blend method (harmonize, hct-hue, cam16-ucs)")
	f.Float64Var(&opts.amount, "amount", 0.5, "blend amount for hct-hue and cam16-ucs, 0-1")

	return cmd
}
