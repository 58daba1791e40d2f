// Package cam16 implements the CAM16 colour appearance model and its
// CAM16-UCS uniform colour space.
package cam16

import (
	"math"

	"github.com/jmylchreest/hctheme/internal/colour"
)

var (
	xyzToCam16RGB = colour.Matrix{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}

	cam16RGBToXYZ = colour.Matrix{
		{1.8620678, -1.0112547, 0.14918678},
		{0.38752654, 0.62144744, -0.00897398},
		{-0.01584150, -0.03412294, 1.0499644},
	}
)

// Cam16 is a colour described by its CAM16 appearance attributes.
type Cam16 struct {
	// Hue is the hue angle in degrees, [0, 360).
	Hue float64
	// Chroma is the colourfulness relative to the brightness of white.
	Chroma float64
	// J is lightness, Q brightness.
	J float64
	Q float64
	// M is colourfulness, S saturation.
	M float64
	S float64
	// Jstar, Astar and Bstar are the CAM16-UCS coordinates.
	Jstar float64
	Astar float64
	Bstar float64
}

// FromARGB returns the appearance of the colour under the default viewing
// conditions.
func FromARGB(argb colour.ARGB) Cam16 {
	return FromARGBInViewingConditions(argb, Default)
}

// FromARGBInViewingConditions returns the appearance of the colour under vc.
func FromARGBInViewingConditions(argb colour.ARGB, vc *ViewingConditions) Cam16 {
	x, y, z := argb.XYZ()
	return FromXYZInViewingConditions(x, y, z, vc)
}

// FromXYZInViewingConditions returns the appearance of XYZ coordinates
// (0-100 scale) under vc.
func FromXYZInViewingConditions(x, y, z float64, vc *ViewingConditions) Cam16 {
	t := colour.MatrixMultiply([3]float64{x, y, z}, xyzToCam16RGB)

	// Discount the illuminant, then adapt.
	var adapted [3]float64
	for i := range t {
		d := vc.RGBD[i] * t[i]
		af := math.Pow(vc.Fl*math.Abs(d)/100.0, 0.42)
		adapted[i] = colour.Signum(d) * 400.0 * af / (af + 27.13)
	}
	rA, gA, bA := adapted[0], adapted[1], adapted[2]

	// Opponent colour dimensions: redness-greenness and yellowness-blueness.
	a := (11.0*rA + -12.0*gA + bA) / 11.0
	b := (rA + gA - 2.0*bA) / 9.0

	u := (20.0*rA + 20.0*gA + 21.0*bA) / 20.0
	p2 := (40.0*rA + 20.0*gA + bA) / 20.0

	atanDegrees := toDegrees(math.Atan2(b, a))
	hue := atanDegrees
	if atanDegrees < 0 {
		hue = atanDegrees + 360.0
	} else if atanDegrees >= 360 {
		hue = atanDegrees - 360.0
	}
	hueRadians := toRadians(hue)

	// Achromatic response.
	ac := p2 * vc.Nbb

	j := 100.0 * math.Pow(ac/vc.Aw, vc.C*vc.Z)
	q := 4.0 / vc.C * math.Sqrt(j/100.0) * (vc.Aw + 4.0) * vc.FlRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime = hue + 360
	}
	eHue := 0.25 * (math.Cos(toRadians(huePrime)+2.0) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vc.Nc * vc.Ncb
	tt := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(1.64-math.Pow(0.29, vc.N), 0.73) * math.Pow(tt, 0.9)

	c := alpha * math.Sqrt(j/100.0)
	m := c * vc.FlRoot
	s := 50.0 * math.Sqrt((alpha*vc.C)/(vc.Aw+4.0))

	jstar := (1.0 + 100.0*0.007) * j / (1.0 + 0.007*j)
	mstar := 1.0 / 0.0228 * math.Log1p(0.0228*m)
	return Cam16{
		Hue:    hue,
		Chroma: c,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  mstar * math.Cos(hueRadians),
		Bstar:  mstar * math.Sin(hueRadians),
	}
}

// FromJCH builds a colour from lightness, chroma and hue under the default
// viewing conditions.
func FromJCH(j, c, h float64) Cam16 {
	return FromJCHInViewingConditions(j, c, h, Default)
}

// FromJCHInViewingConditions builds a colour from lightness, chroma and hue
// under vc.
func FromJCHInViewingConditions(j, c, h float64, vc *ViewingConditions) Cam16 {
	q := 4.0 / vc.C * math.Sqrt(j/100.0) * (vc.Aw + 4.0) * vc.FlRoot
	m := c * vc.FlRoot
	alpha := c / math.Sqrt(j/100.0)
	s := 50.0 * math.Sqrt((alpha*vc.C)/(vc.Aw+4.0))

	hueRadians := toRadians(h)
	jstar := (1.0 + 100.0*0.007) * j / (1.0 + 0.007*j)
	mstar := 1.0 / 0.0228 * math.Log1p(0.0228*m)
	return Cam16{
		Hue:    h,
		Chroma: c,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  mstar * math.Cos(hueRadians),
		Bstar:  mstar * math.Sin(hueRadians),
	}
}

// FromUCS builds a colour from CAM16-UCS coordinates under the default
// viewing conditions.
func FromUCS(jstar, astar, bstar float64) Cam16 {
	return FromUCSInViewingConditions(jstar, astar, bstar, Default)
}

// FromUCSInViewingConditions builds a colour from CAM16-UCS coordinates
// under vc.
func FromUCSInViewingConditions(jstar, astar, bstar float64, vc *ViewingConditions) Cam16 {
	m := math.Hypot(astar, bstar)
	mPrime := math.Expm1(m*0.0228) / 0.0228
	c := mPrime / vc.FlRoot
	h := math.Atan2(bstar, astar) * (180.0 / math.Pi)
	if h < 0.0 {
		h += 360.0
	}
	j := jstar / (1. - (jstar-100.)*0.007)
	return FromJCHInViewingConditions(j, c, h, vc)
}

// Distance returns the CAM16-UCS colour difference to other.
func (cam Cam16) Distance(other Cam16) float64 {
	dJ := cam.Jstar - other.Jstar
	dA := cam.Astar - other.Astar
	dB := cam.Bstar - other.Bstar
	dEPrime := math.Sqrt(dJ*dJ + dA*dA + dB*dB)
	return 1.41 * math.Pow(dEPrime, 0.63)
}

// ARGB renders the colour assuming the default viewing conditions.
func (cam Cam16) ARGB() colour.ARGB {
	return cam.Viewed(Default)
}

// Viewed renders the colour as it appears under vc.
func (cam Cam16) Viewed(vc *ViewingConditions) colour.ARGB {
	x, y, z := cam.XYZInViewingConditions(vc)
	return colour.FromXYZ(x, y, z)
}

// XYZInViewingConditions returns the XYZ coordinates (0-100 scale) that
// produce this appearance under vc.
func (cam Cam16) XYZInViewingConditions(vc *ViewingConditions) (x, y, z float64) {
	alpha := 0.0
	if cam.Chroma != 0.0 && cam.J != 0.0 {
		alpha = cam.Chroma / math.Sqrt(cam.J/100.0)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vc.N), 0.73), 1.0/0.9)
	hRad := toRadians(cam.Hue)

	eHue := 0.25 * (math.Cos(hRad+2.0) + 3.8)
	ac := vc.Aw * math.Pow(cam.J/100.0, 1.0/vc.C/vc.Z)
	p1 := eHue * (50000.0 / 13.0) * vc.Nc * vc.Ncb
	p2 := ac / vc.Nbb

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23.0 * (p2 + 0.305) * t / (23.0*p1 + 11.0*t*hCos + 108.0*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460.0*p2 + 451.0*a + 288.0*b) / 1403.0
	gA := (460.0*p2 - 891.0*a - 261.0*b) / 1403.0
	bA := (460.0*p2 - 220.0*a - 6300.0*b) / 1403.0

	var f [3]float64
	for i, adapted := range [3]float64{rA, gA, bA} {
		base := math.Max(0, (27.13*math.Abs(adapted))/(400.0-math.Abs(adapted)))
		cc := colour.Signum(adapted) * (100.0 / vc.Fl) * math.Pow(base, 1.0/0.42)
		f[i] = cc / vc.RGBD[i]
	}

	xyz := colour.MatrixMultiply(f, cam16RGBToXYZ)
	return xyz[0], xyz[1], xyz[2]
}

func toRadians(deg float64) float64 { return deg * (math.Pi / 180.0) }

func toDegrees(rad float64) float64 { return rad * (180.0 / math.Pi) }
