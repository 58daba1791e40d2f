package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/quantize"
	"github.com/jmylchreest/hctheme/internal/score"
)

type seedOptions struct {
	max      int
	kmeans   int
	fallback colour.ARGB
	noFilter bool
}

func newSeedCmd(a *app) *cobra.Command {
	opts := &seedOptions{fallback: score.DefaultFallback}

	cmd := &cobra.Command{
		Use:   "seed <colour[:count]>...",
		Short: "Suggest seed colours from a colour population",
		Long: `Rank colours by how well they would serve as a theme seed. Each argument is
a colour with an optional pixel count (default 1). With --kmeans the
population is first clustered into at most N colours.

Colours that are too grey or too rare are dropped, and the suggestions are
kept far apart in hue. When nothing qualifies the fallback is suggested.`,
		Example: `  hctheme seed '#ff0000:120' '#00ff00:40' '#0000ff:90'
  hctheme seed 7ea16d:300 d8ccae:120 835c0d:80 --max 2 --kmeans 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, a, opts, args)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.max, "max", 4, "maximum number of suggestions")
	f.IntVar(&opts.kmeans, "kmeans", 0, "cluster the population into at most N colours first (0 disables)")
	f.Var(colourValue{&opts.fallback}, "fallback", "colour suggested when nothing qualifies")
	f.BoolVar(&opts.noFilter, "no-filter", false, "keep grey and rare colours")

	return cmd
}

func runSeed(cmd *cobra.Command, a *app, opts *seedOptions, args []string) error {
	if opts.max < 1 {
		return fmt.Errorf("invalid max %d: must be at least 1", opts.max)
	}

	counts := make(map[colour.ARGB]int, len(args))
	total := 0
	for _, arg := range args {
		c, n, err := parsePopulation(arg)
		if err != nil {
			return err
		}
		counts[c] += n
		total += n
	}

	var (
		result quantize.Result
		err    error
	)
	if opts.kmeans > 0 {
		result, err = clusterPopulation(counts, total, opts.kmeans)
	} else {
		result, err = quantize.FromCounts(counts, quantize.MaxColors)
	}
	if err != nil {
		return fmt.Errorf("failed to quantize colours: %w", err)
	}
	a.logger.Debug("quantized population", "kmeans", opts.kmeans, "pixels", total, "colours", len(result.ColorToCount))

	ranked := score.Score(result.ColorToCount, score.Options{
		Desired:       opts.max,
		Fallback:      opts.fallback,
		DisableFilter: opts.noFilter,
	})

	table := NewTable("Rank", "Colour", "Hue", "Chroma", "Tone", "Population").AlignRight(0, 2, 3, 4, 5)
	for i, c := range ranked {
		h := hct.FromARGB(c)
		population := "-"
		if n, ok := result.ColorToCount[c]; ok {
			population = strconv.Itoa(n)
		}
		table.AddRow(strconv.Itoa(i+1), c.String(), formatFloat(h.Hue()), formatFloat(h.Chroma()), formatFloat(h.Tone()), population)
	}
	_, err = table.WriteTo(cmd.OutOrStdout())
	return err
}

const (
	// maxPopulation bounds a single argument's count.
	maxPopulation = 1 << 20
	// maxClusterPixels bounds the pixels expanded for clustering.
	maxClusterPixels = 1 << 22
)

// clusterPopulation expands counts into pixels and clusters them into at
// most n colours.
func clusterPopulation(counts map[colour.ARGB]int, total, n int) (quantize.Result, error) {
	if total > maxClusterPixels {
		return quantize.Result{}, fmt.Errorf("population of %d pixels is too large to cluster (maximum %d)", total, maxClusterPixels)
	}
	// Expand in colour order so the clustering is repeatable.
	colours := slices.Sorted(maps.Keys(counts))
	pixels := make([]colour.ARGB, 0, total)
	for _, c := range colours {
		for range counts[c] {
			pixels = append(pixels, c)
		}
	}
	q, err := quantize.New(quantize.AlgorithmKMeans)
	if err != nil {
		return quantize.Result{}, err
	}
	return q.Quantize(pixels, n)
}

// parsePopulation parses "colour" or "colour:count".
func parsePopulation(arg string) (colour.ARGB, int, error) {
	value, countStr, hasCount := strings.Cut(arg, ":")
	c, err := parseColour(value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid colour %q: %w", value, err)
	}
	if !hasCount {
		return c, 1, nil
	}
	n, err := strconv.Atoi(countStr)
	if err != nil || n < 1 || n > maxPopulation {
		return 0, 0, fmt.Errorf("invalid count %q for %s: must be 1-%d", countStr, value, maxPopulation)
	}
	return c, n, nil
}
