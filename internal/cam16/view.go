package cam16

import (
	"math"

	"github.com/jmylchreest/hctheme/internal/colour"
)

// ViewingConditions holds the adaptation parameters a colour is perceived
// under. Values are derived once at construction and never change.
type ViewingConditions struct {
	// N is the background relative luminance over the white point's.
	N float64
	// Aw is the achromatic response to the white point.
	Aw float64
	// Nbb and Ncb are the brightness and chromatic induction factors.
	Nbb float64
	Ncb float64
	// C is the exponential non-linearity.
	C float64
	// Nc is the chromatic induction factor of the surround.
	Nc float64
	// RGBD holds the cone responses to white, adjusted for discounting.
	RGBD [3]float64
	// Fl is the luminance-level adaptation factor, FlRoot its fourth root.
	Fl     float64
	FlRoot float64
	// Z is the base exponential non-linearity.
	Z float64
}

// Default is the standard sRGB-like viewing environment: D65 white,
// 200 lux ambient light scaled to a mid-grey adapting luminance, an L* 50
// background and an average surround.
var Default = DefaultWithBackgroundLstar(50.0)

// DefaultWithBackgroundLstar returns the default viewing conditions with the
// given background lightness.
func DefaultWithBackgroundLstar(lstar float64) *ViewingConditions {
	return NewViewingConditions(
		colour.WhitePointD65,
		200.0/math.Pi*colour.YFromLstar(50.0)/100.0,
		lstar,
		2.0,
		false,
	)
}

// NewViewingConditions derives viewing conditions from the white point (XYZ,
// 0-100), the adapting luminance in lux, the background L*, the surround
// (0 dark, 1 dim, 2 average) and whether the eye has fully discounted the
// illuminant.
func NewViewingConditions(whitePoint [3]float64, adaptingLuminance, backgroundLstar, surround float64, discountingIlluminant bool) *ViewingConditions {
	// A pure black background is non-physical and leads to infinities.
	backgroundLstar = math.Max(0.1, backgroundLstar)

	w := colour.MatrixMultiply(whitePoint, xyzToCam16RGB)
	rW, gW, bW := w[0], w[1], w[2]

	f := 0.8 + surround/10.0
	var c float64
	if f >= 0.9 {
		c = colour.Lerp(0.59, 0.69, (f-0.9)*10.0)
	} else {
		c = colour.Lerp(0.525, 0.59, (f-0.8)*10.0)
	}

	d := 1.0
	if !discountingIlluminant {
		d = f * (1.0 - (1.0/3.6)*math.Exp((-adaptingLuminance-42.0)/92.0))
	}
	d = colour.ClampFloat(0, 1, d)

	rgbD := [3]float64{
		d*(100.0/rW) + 1.0 - d,
		d*(100.0/gW) + 1.0 - d,
		d*(100.0/bW) + 1.0 - d,
	}

	k := 1.0 / (5.0*adaptingLuminance + 1.0)
	k4 := k * k * k * k
	k4F := 1.0 - k4
	fl := k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5.0*adaptingLuminance)

	n := colour.YFromLstar(backgroundLstar) / whitePoint[1]
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)

	var rgbA [3]float64
	for i, resp := range [3]float64{rW, gW, bW} {
		factor := math.Pow(fl*rgbD[i]*resp/100.0, 0.42)
		rgbA[i] = 400.0 * factor / (factor + 27.13)
	}
	aw := (2.0*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * nbb

	return &ViewingConditions{
		N:      n,
		Aw:     aw,
		Nbb:    nbb,
		Ncb:    nbb,
		C:      c,
		Nc:     f,
		RGBD:   rgbD,
		Fl:     fl,
		FlRoot: math.Pow(fl, 0.25),
		Z:      z,
	}
}
