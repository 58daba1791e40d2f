package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/temperature"
)

type temperatureOptions struct {
	count     int
	divisions int
}

func newTemperatureCmd(a *app) *cobra.Command {
	opts := &temperatureOptions{}

	cmd := &cobra.Command{
		Use:   "temperature <seed>",
		Short: "Show the complement and analogous colours of a seed by colour temperature",
		Long: `Walk the hue wheel at the seed's chroma and tone, measuring warmth. The
complement sits at the opposite temperature; analogous colours are spaced
by equal changes in temperature rather than equal hue angles.`,
		Example: `  hctheme temperature '#4285f4'
  hctheme temperature '#4285f4' --count 3 --divisions 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseColour(args[0])
			if err != nil {
				return fmt.Errorf("invalid seed colour: %w", err)
			}
			if opts.count < 1 {
				return fmt.Errorf("invalid count %d: must be at least 1", opts.count)
			}
			if opts.divisions < 1 {
				return fmt.Errorf("invalid divisions %d: must be at least 1", opts.divisions)
			}

			cache := temperature.New(hct.FromARGB(seed))
			a.logger.Debug("temperature sweep", "seed", seed.String(), "relative", cache.InputRelativeTemperature())

			summary := NewTable("", "Colour", "Hue", "Chroma", "Tone", "Temperature").AlignRight(2, 3, 4, 5)
			for _, row := range []struct {
				label string
				h     hct.Hct
			}{
				{"input", cache.Input()},
				{"complement", cache.Complement()},
				{"coldest", cache.Coldest()},
				{"warmest", cache.Warmest()},
			} {
				summary.AddRow(temperatureRow(cache, row.label, row.h)...)
			}

			analogous := NewTable("#", "Colour", "Hue", "Chroma", "Tone", "Temperature").AlignRight(0, 2, 3, 4, 5)
			for i, h := range cache.Analogous(opts.count, opts.divisions) {
				analogous.AddRow(temperatureRow(cache, strconv.Itoa(i+1), h)...)
			}

			w := cmd.OutOrStdout()
			if _, err := summary.WriteTo(w); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, "\nAnalogous:"); err != nil {
				return err
			}
			_, err = analogous.WriteTo(w)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.count, "count", 5, "number of analogous colours")
	f.IntVar(&opts.divisions, "divisions", 12, "temperature divisions of the hue wheel")

	return cmd
}

func temperatureRow(cache *temperature.Cache, label string, h hct.Hct) []string {
	return []string{
		label,
		h.ARGB().String(),
		formatFloat(h.Hue()),
		formatFloat(h.Chroma()),
		formatFloat(h.Tone()),
		strconv.FormatFloat(cache.RelativeTemperature(h), 'f', 3, 64),
	}
}
