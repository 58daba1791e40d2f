package quantize

import "github.com/jmylchreest/hctheme/internal/colour"

// Map counts how often each opaque colour occurs. Translucent pixels are
// ignored.
func Map(pixels []colour.ARGB) Result {
	counts := make(map[colour.ARGB]int)
	for _, p := range pixels {
		if !p.IsOpaque() {
			continue
		}
		counts[p]++
	}
	return Result{ColorToCount: counts}
}

// MapQuantizer is the Quantizer form of Map. It keeps the maxColors most
// common colours.
type MapQuantizer struct{}

// Quantize implements Quantizer.
func (MapQuantizer) Quantize(pixels []colour.ARGB, maxColors int) (Result, error) {
	return FromCounts(Map(pixels).ColorToCount, maxColors)
}

// FromCounts reduces an already counted population to its maxColors most
// common opaque colours. Translucent colours and non-positive counts are
// ignored; counts is not modified.
func FromCounts(counts map[colour.ARGB]int, maxColors int) (Result, error) {
	if err := validateCount(maxColors); err != nil {
		return Result{}, err
	}
	opaque := make(map[colour.ARGB]int, len(counts))
	for c, n := range counts {
		if c.IsOpaque() && n > 0 {
			opaque[c] = n
		}
	}
	if len(opaque) == 0 {
		return Result{}, ErrNoPixels
	}
	if len(opaque) <= maxColors {
		return Result{ColorToCount: opaque}, nil
	}

	kept := make(map[colour.ARGB]int, maxColors)
	for _, c := range mostCommon(opaque, maxColors) {
		kept[c] = opaque[c]
	}
	return Result{ColorToCount: kept}, nil
}
