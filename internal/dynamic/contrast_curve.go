package dynamic

import "github.com/jmylchreest/hctheme/internal/colour"

// ContrastCurve maps a contrast level to a target contrast ratio. The four
// values are the ratios at levels -1, 0, 0.5 and 1; levels in between are
// interpolated linearly.
type ContrastCurve struct {
	Low    float64
	Normal float64
	Medium float64
	High   float64
}

// NewContrastCurve returns a curve through the given ratios.
func NewContrastCurve(low, normal, medium, high float64) *ContrastCurve {
	return &ContrastCurve{Low: low, Normal: normal, Medium: medium, High: high}
}

// Get returns the contrast ratio at level, clamped to the curve's ends.
func (c *ContrastCurve) Get(level float64) float64 {
	switch {
	case level <= -1.0:
		return c.Low
	case level < 0.0:
		return colour.Lerp(c.Low, c.Normal, level+1.0)
	case level < 0.5:
		return colour.Lerp(c.Normal, c.Medium, level/0.5)
	case level < 1.0:
		return colour.Lerp(c.Medium, c.High, (level-0.5)/0.5)
	default:
		return c.High
	}
}
