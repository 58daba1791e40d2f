// Package score ranks colours by how well they would serve as a theme's
// source colour: colourful enough, and common enough in their part of the
// hue wheel.
package score

import (
	"cmp"
	"math"
	"slices"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

const (
	targetChroma            = 48.0
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// DefaultFallback is returned when no colour is suitable.
const DefaultFallback colour.ARGB = 0xff4285f4

// Options controls Score.
type Options struct {
	// Desired is the maximum number of colours returned. Defaults to 4.
	Desired int
	// Fallback is returned alone when no colour survives filtering.
	// Defaults to DefaultFallback.
	Fallback colour.ARGB
	// DisableFilter keeps greys and rare hues that would otherwise be
	// dropped.
	DisableFilter bool
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: DefaultFallback}
}

type scored struct {
	hct   hct.Hct
	score float64
}

// Score returns up to opts.Desired colours from colorsToPopulation, best
// first, with hues as far apart as the input allows. It never returns an
// empty slice.
func Score(colorsToPopulation map[colour.ARGB]int, opts Options) []colour.ARGB {
	if opts.Desired <= 0 {
		opts.Desired = 4
	}
	if opts.Fallback == 0 {
		opts.Fallback = DefaultFallback
	}

	hcts := make([]hct.Hct, 0, len(colorsToPopulation))
	var huePopulation [360]int
	populationSum := 0.0
	for argb, population := range colorsToPopulation {
		h := hct.FromARGB(argb)
		hcts = append(hcts, h)
		huePopulation[int(math.Floor(h.Hue()))%360] += population
		populationSum += float64(population)
	}

	// Each hue excites its neighbours from -14 to +15 degrees.
	var hueExcitedProportions [360]float64
	if populationSum > 0 {
		for hue := range 360 {
			proportion := float64(huePopulation[hue]) / populationSum
			for i := hue - 14; i < hue+16; i++ {
				hueExcitedProportions[colour.SanitizeDegreesInt(i)] += proportion
			}
		}
	}

	candidates := make([]scored, 0, len(hcts))
	for _, h := range hcts {
		hue := colour.SanitizeDegreesInt(int(colour.RoundHalfUp(h.Hue())))
		proportion := hueExcitedProportions[hue]
		if !opts.DisableFilter && (h.Chroma() < cutoffChroma || proportion <= cutoffExcitedProportion) {
			continue
		}

		proportionScore := proportion * 100.0 * weightProportion
		chromaWeight := weightChromaAbove
		if h.Chroma() < targetChroma {
			chromaWeight = weightChromaBelow
		}
		chromaScore := (h.Chroma() - targetChroma) * chromaWeight
		candidates = append(candidates, scored{hct: h, score: proportionScore + chromaScore})
	}
	slices.SortFunc(candidates, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.hct.ARGB(), b.hct.ARGB())
	})

	// Relax the minimum hue distance until enough colours are chosen.
	var chosen []hct.Hct
	for minDistance := 90; minDistance >= 15; minDistance-- {
		chosen = chosen[:0]
		for _, c := range candidates {
			if !hasNearbyHue(chosen, c.hct.Hue(), float64(minDistance)) {
				chosen = append(chosen, c.hct)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []colour.ARGB{opts.Fallback}
	}
	out := make([]colour.ARGB, len(chosen))
	for i, h := range chosen {
		out[i] = h.ARGB()
	}
	return out
}

func hasNearbyHue(chosen []hct.Hct, hue, minDistance float64) bool {
	for _, c := range chosen {
		if colour.DifferenceDegrees(hue, c.Hue()) < minDistance {
			return true
		}
	}
	return false
}
