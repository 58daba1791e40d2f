// Package quantize reduces a set of pixels to a small set of representative
// colours with their populations.
package quantize

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/hctheme/internal/colour"
)

// MaxColors is the largest palette a quantizer will produce.
const MaxColors = 256

var (
	// ErrNoPixels is returned when there are no opaque pixels to quantize.
	ErrNoPixels = errors.New("no opaque pixels")

	// ErrColorCount is returned for a colour count outside [1, MaxColors].
	ErrColorCount = errors.New("colour count out of range")
)

// Result maps each representative colour to the number of pixels it stands
// for.
type Result struct {
	ColorToCount map[colour.ARGB]int
}

// Quantizer reduces pixels to at most maxColors colours.
type Quantizer interface {
	Quantize(pixels []colour.ARGB, maxColors int) (Result, error)
}

// Algorithm names a quantization algorithm.
type Algorithm string

const (
	// AlgorithmMap counts every distinct colour without reducing them.
	AlgorithmMap Algorithm = "map"

	// AlgorithmKMeans clusters colours with k-means in L*a*b* space.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns the algorithms New accepts.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmMap, AlgorithmKMeans}
}

// New returns the quantizer for alg.
func New(alg Algorithm) (Quantizer, error) {
	switch alg {
	case AlgorithmMap:
		return MapQuantizer{}, nil
	case AlgorithmKMeans:
		return NewKMeans(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

func validateCount(maxColors int) error {
	if maxColors < 1 || maxColors > MaxColors {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrColorCount, maxColors, MaxColors)
	}
	return nil
}
