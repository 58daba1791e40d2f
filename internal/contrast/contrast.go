// Package contrast computes WCAG contrast ratios between tones and finds
// tones that reach a target ratio.
package contrast

import (
	"math"

	"github.com/jmylchreest/hctheme/internal/colour"
)

// Common contrast ratios.
const (
	RatioMin = 1.0
	RatioMax = 21.0
	Ratio30  = 3.0
	Ratio45  = 4.5
	Ratio70  = 7.0
)

const (
	// ratioEpsilon is how far below the requested ratio a result may fall
	// before it is rejected.
	ratioEpsilon = 0.04
	// gamutTolerance nudges returned tones away from the reference tone so
	// that gamut mapping, which has a small range in tone, keeps the ratio.
	gamutTolerance = 0.4
)

// RatioOfYs returns the contrast ratio of two relative luminances (0-100).
func RatioOfYs(y1, y2 float64) float64 {
	lighter := math.Max(y1, y2)
	darker := math.Min(y1, y2)
	return (lighter + 5.0) / (darker + 5.0)
}

// RatioOfTones returns the contrast ratio of two tones, 1 to 21. Tones are
// clamped to [0, 100].
func RatioOfTones(t1, t2 float64) float64 {
	t1 = colour.ClampFloat(0, 100, t1)
	t2 = colour.ClampFloat(0, 100, t2)
	return RatioOfYs(colour.YFromLstar(t1), colour.YFromLstar(t2))
}

// Lighter returns a tone at or above tone that reaches ratio against it. It
// reports false when no such tone exists.
func Lighter(tone, ratio float64) (float64, bool) {
	if tone < 0.0 || tone > 100.0 {
		return -1, false
	}
	darkY := colour.YFromLstar(tone)
	lightY := ratio*(darkY+5.0) - 5.0
	if lightY < 0.0 || lightY > 100.0 {
		return -1, false
	}
	reached := RatioOfYs(lightY, darkY)
	if reached < ratio && math.Abs(reached-ratio) > ratioEpsilon {
		return -1, false
	}
	ret := colour.LstarFromY(lightY) + gamutTolerance
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// Darker returns a tone at or below tone that reaches ratio against it. It
// reports false when no such tone exists.
func Darker(tone, ratio float64) (float64, bool) {
	if tone < 0.0 || tone > 100.0 {
		return -1, false
	}
	lightY := colour.YFromLstar(tone)
	darkY := (lightY+5.0)/ratio - 5.0
	if darkY < 0.0 || darkY > 100.0 {
		return -1, false
	}
	reached := RatioOfYs(lightY, darkY)
	if reached < ratio && math.Abs(reached-ratio) > ratioEpsilon {
		return -1, false
	}
	ret := colour.LstarFromY(darkY) - gamutTolerance
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// LighterUnsafe is Lighter returning 100 when the ratio is unreachable. The
// result may not satisfy the ratio.
func LighterUnsafe(tone, ratio float64) float64 {
	if t, ok := Lighter(tone, ratio); ok {
		return t
	}
	return 100.0
}

// DarkerUnsafe is Darker returning 0 when the ratio is unreachable. The
// result may not satisfy the ratio.
func DarkerUnsafe(tone, ratio float64) float64 {
	if t, ok := Darker(tone, ratio); ok {
		return t
	}
	return 0.0
}
