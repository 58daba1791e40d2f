package hct

import (
	"math"

	"github.com/jmylchreest/hctheme/internal/cam16"
	"github.com/jmylchreest/hctheme/internal/colour"
)

var (
	scaledDiscountFromLinRGB = colour.Matrix{
		{0.001200833568784504, 0.002389694492170889, 0.0002795742885861124},
		{0.0005891086651375999, 0.0029785502573438758, 0.0003270666104008398},
		{0.00010146692491640572, 0.0005364214359186694, 0.0032979401770712076},
	}

	linRGBFromScaledDiscount = colour.Matrix{
		{1373.2198709594231, -1100.4251190754821, -7.278681089101213},
		{-271.815969077903, 559.6580465940733, -32.46047482791194},
		{1.9622899599665666, -57.173814538844006, 308.7233197812385},
	}

	yFromLinRGB = [3]float64{0.2126, 0.7152, 0.0722}

	// criticalPlanes[i] is the linear value at which the 8-bit channel
	// rounds from i to i+1.
	criticalPlanes = func() [255]float64 {
		var planes [255]float64
		for i := range planes {
			normalized := (float64(i) + 0.5) / 255.0
			if normalized <= 0.040449936 {
				planes[i] = normalized / 12.92 * 100.0
			} else {
				planes[i] = math.Pow((normalized+0.055)/1.055, 2.4) * 100.0
			}
		}
		return planes
	}()
)

// SolveToARGB returns the colour closest to the requested hue, chroma and
// tone. Tone is matched exactly (within rounding) and hue as closely as the
// sRGB gamut allows; when the chroma is not achievable the most chromatic
// colour with that hue and tone is returned instead.
func SolveToARGB(hueDegrees, chroma, lstar float64) colour.ARGB {
	if chroma < 0.0001 || lstar < 0.0001 || lstar > 99.9999 {
		return colour.FromLstar(lstar)
	}
	hueDegrees = colour.SanitizeDegreesFloat(hueDegrees)
	hueRadians := hueDegrees / 180.0 * math.Pi
	y := colour.YFromLstar(lstar)
	if exact, ok := findResultByJ(hueRadians, chroma, y); ok {
		return exact
	}
	return colour.FromLinRGB(bisectToLimit(y, hueRadians))
}

// SolveToCam is SolveToARGB returning the CAM16 appearance of the result.
func SolveToCam(hueDegrees, chroma, lstar float64) cam16.Cam16 {
	return cam16.FromARGB(SolveToARGB(hueDegrees, chroma, lstar))
}

// findResultByJ solves for the colour directly with Newton's method on J,
// using 2*fn(j)/j as the derivative. It reports false when the result falls
// outside the sRGB cube.
func findResultByJ(hueRadians, chroma, y float64) (colour.ARGB, bool) {
	// Initial estimate of J.
	j := math.Sqrt(y) * 11.0
	vc := cam16.Default
	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vc.N), 0.73)
	eHue := 0.25 * (math.Cos(hueRadians+2.0) + 3.8)
	p1 := eHue * (50000.0 / 13.0) * vc.Nc * vc.Ncb
	hSin := math.Sin(hueRadians)
	hCos := math.Cos(hueRadians)

	for round := 0; round < 5; round++ {
		jNormalized := j / 100.0
		alpha := 0.0
		if chroma != 0.0 && j != 0.0 {
			alpha = chroma / math.Sqrt(jNormalized)
		}
		t := math.Pow(alpha*tInnerCoeff, 1.0/0.9)
		ac := vc.Aw * math.Pow(jNormalized, 1.0/vc.C/vc.Z)
		p2 := ac / vc.Nbb
		gamma := 23.0 * (p2 + 0.305) * t / (23.0*p1 + 11*t*hCos + 108.0*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460.0*p2 + 451.0*a + 288.0*b) / 1403.0
		gA := (460.0*p2 - 891.0*a - 261.0*b) / 1403.0
		bA := (460.0*p2 - 220.0*a - 6300.0*b) / 1403.0
		scaled := [3]float64{
			inverseChromaticAdaptation(rA),
			inverseChromaticAdaptation(gA),
			inverseChromaticAdaptation(bA),
		}
		linrgb := colour.MatrixMultiply(scaled, linRGBFromScaledDiscount)
		if linrgb[0] < 0 || linrgb[1] < 0 || linrgb[2] < 0 {
			return 0, false
		}
		fnj := yFromLinRGB[0]*linrgb[0] + yFromLinRGB[1]*linrgb[1] + yFromLinRGB[2]*linrgb[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return 0, false
			}
			return colour.FromLinRGB(linrgb), true
		}
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}

// bisectToLimit finds the colour with the given Y and hue on the boundary of
// the linear RGB cube.
func bisectToLimit(y, targetHue float64) [3]float64 {
	left, right := bisectToSegment(y, targetHue)
	leftHue := hueOf(left)
	for axis := 0; axis < 3; axis++ {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(trueDelinearized(left[axis]))
			rPlane = criticalPlaneAbove(trueDelinearized(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(trueDelinearized(left[axis]))
			rPlane = criticalPlaneBelow(trueDelinearized(right[axis]))
		}
		for i := 0; i < 8; i++ {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := int(math.Floor(float64(lPlane+rPlane) / 2.0))
			mid := setCoordinate(left, criticalPlanes[mPlane], right, axis)
			midHue := hueOf(mid)
			if inCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}
	return midpoint(left, right)
}

// bisectToSegment finds the edge of the Y plane polygon containing the
// target hue and returns its endpoints in linear RGB.
func bisectToSegment(y, targetHue float64) (left, right [3]float64) {
	left = [3]float64{-1, -1, -1}
	right = left
	var leftHue, rightHue float64
	initialized := false
	uncut := true
	for n := 0; n < 12; n++ {
		mid, ok := nthVertex(y, n)
		if !ok {
			continue
		}
		midHue := hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || inCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if inCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rightHue = midHue
			} else {
				left = mid
				leftHue = midHue
			}
		}
	}
	return left, right
}

// nthVertex returns the nth of the twelve candidate vertices where the Y
// plane meets an edge of the RGB cube, and whether it lies inside the cube.
func nthVertex(y float64, n int) ([3]float64, bool) {
	kR, kG, kB := yFromLinRGB[0], yFromLinRGB[1], yFromLinRGB[2]
	coordA := 0.0
	if n%4 > 1 {
		coordA = 100.0
	}
	coordB := 0.0
	if n%2 != 0 {
		coordB = 100.0
	}
	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		return [3]float64{r, g, b}, isBounded(r)
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		return [3]float64{r, g, b}, isBounded(g)
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		return [3]float64{r, g, b}, isBounded(b)
	}
}

// hueOf returns the CAM16 hue, in radians, of a linear RGB colour.
func hueOf(linrgb [3]float64) float64 {
	sd := colour.MatrixMultiply(linrgb, scaledDiscountFromLinRGB)
	rA := chromaticAdaptation(sd[0])
	gA := chromaticAdaptation(sd[1])
	bA := chromaticAdaptation(sd[2])
	a := (11.0*rA + -12.0*gA + bA) / 11.0
	b := (rA + gA - 2.0*bA) / 9.0
	return math.Atan2(b, a)
}

func chromaticAdaptation(component float64) float64 {
	af := math.Pow(math.Abs(component), 0.42)
	return colour.Signum(component) * 400.0 * af / (af + 27.13)
}

func inverseChromaticAdaptation(adapted float64) float64 {
	adaptedAbs := math.Abs(adapted)
	base := math.Max(0, 27.13*adaptedAbs/(400.0-adaptedAbs))
	return colour.Signum(adapted) * math.Pow(base, 1.0/0.42)
}

func sanitizeRadians(angle float64) float64 {
	return math.Mod(angle+math.Pi*8, math.Pi*2)
}

// inCyclicOrder reports whether a, b and c appear in that order walking
// counter-clockwise around the circle from a.
func inCyclicOrder(a, b, c float64) bool {
	deltaAB := sanitizeRadians(b - a)
	deltaAC := sanitizeRadians(c - a)
	return deltaAB < deltaAC
}

// setCoordinate intersects the segment source-target with the plane where
// the given axis equals coordinate.
func setCoordinate(source [3]float64, coordinate float64, target [3]float64, axis int) [3]float64 {
	t := (coordinate - source[axis]) / (target[axis] - source[axis])
	return [3]float64{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

func midpoint(a, b [3]float64) [3]float64 {
	return [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

func isBounded(x float64) bool { return 0.0 <= x && x <= 100.0 }

func criticalPlaneBelow(x float64) int { return int(math.Floor(x - 0.5)) }

func criticalPlaneAbove(x float64) int { return int(math.Ceil(x - 0.5)) }

// trueDelinearized converts a linear component (0-100) to an unrounded
// gamma encoded value on the 0-255 scale.
func trueDelinearized(component float64) float64 {
	normalized := component / 100.0
	if normalized <= 0.0031308 {
		return normalized * 12.92 * 255.0
	}
	return (1.055*math.Pow(normalized, 1.0/2.4) - 0.055) * 255.0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
