// Package colour provides the packed ARGB colour value and the colour-space
// conversions the appearance model is built on: linear RGB, CIE XYZ and
// CIE L*a*b*.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ARGB is a colour packed as 0xAARRGGBB.
type ARGB uint32

// sRGB to XYZ (D65) and its inverse. XYZ values are on the 0-100 scale.
var (
	srgbToXYZ = Matrix{
		{0.41233895, 0.35762064, 0.18051042},
		{0.2126, 0.7152, 0.0722},
		{0.01932141, 0.11916382, 0.95034478},
	}

	xyzToSRGB = Matrix{
		{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
		{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
		{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
	}
)

// WhitePointD65 is the standard white point, XYZ on the 0-100 scale.
var WhitePointD65 = [3]float64{95.047, 100.0, 108.883}

// FromRGB packs an opaque colour from its 8-bit channels.
func FromRGB(r, g, b uint8) ARGB {
	return ARGB(0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromARGB packs a colour from its 8-bit channels including alpha.
func FromARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromLinRGB converts linear RGB components (0-100) to an opaque colour.
func FromLinRGB(linrgb [3]float64) ARGB {
	return FromRGB(Delinearized(linrgb[0]), Delinearized(linrgb[1]), Delinearized(linrgb[2]))
}

// FromXYZ converts XYZ coordinates (0-100 scale) to an opaque colour.
func FromXYZ(x, y, z float64) ARGB {
	lin := MatrixMultiply([3]float64{x, y, z}, xyzToSRGB)
	return FromRGB(Delinearized(lin[0]), Delinearized(lin[1]), Delinearized(lin[2]))
}

// FromLab converts CIE L*a*b* coordinates to an opaque colour.
func FromLab(l, a, b float64) ARGB {
	fy := (l + 16.0) / 116.0
	fx := a/500.0 + fy
	fz := fy - b/200.0
	x := labInvf(fx) * WhitePointD65[0]
	y := labInvf(fy) * WhitePointD65[1]
	z := labInvf(fz) * WhitePointD65[2]
	return FromXYZ(x, y, z)
}

// FromLstar returns the grey with the given L*.
func FromLstar(lstar float64) ARGB {
	c := Delinearized(YFromLstar(lstar))
	return FromRGB(c, c, c)
}

// FromColor converts any image/color value to ARGB, undoing alpha
// premultiplication.
func FromColor(c color.Color) ARGB {
	if a, ok := c.(ARGB); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromARGB(n.A, n.R, n.G, n.B)
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb" into an opaque colour.
func ParseHex(s string) (ARGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (c ARGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the forms
// ParseHex does plus "#aarrggbb".
func (c *ARGB) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) == 8 {
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid hex colour %q: %w", string(text), err)
		}
		*c = ARGB(v)
		return nil
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque reports whether the alpha channel is 255.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 255 }

// WithAlpha returns the colour with its alpha channel replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00ffffff | ARGB(a)<<24
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// Hex returns the colour as "#rrggbb", ignoring alpha.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// String returns the colour as "#aarrggbb" when translucent, "#rrggbb" otherwise.
func (c ARGB) String() string {
	if c.IsOpaque() {
		return c.Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Alpha(), c.Red(), c.Green(), c.Blue())
}

// LinRGB returns the linear RGB components on the 0-100 scale.
func (c ARGB) LinRGB() [3]float64 {
	return [3]float64{Linearized(c.Red()), Linearized(c.Green()), Linearized(c.Blue())}
}

// XYZ returns the CIE XYZ coordinates on the 0-100 scale.
func (c ARGB) XYZ() (x, y, z float64) {
	v := MatrixMultiply(c.LinRGB(), srgbToXYZ)
	return v[0], v[1], v[2]
}

// Lab returns the CIE L*a*b* coordinates.
func (c ARGB) Lab() (l, a, b float64) {
	x, y, z := c.XYZ()
	fx := labF(x / WhitePointD65[0])
	fy := labF(y / WhitePointD65[1])
	fz := labF(z / WhitePointD65[2])
	return 116.0*fy - 16, 500.0 * (fx - fy), 200.0 * (fy - fz)
}

// Lstar returns the L* of the colour.
func (c ARGB) Lstar() float64 {
	_, y, _ := c.XYZ()
	return 116.0*labF(y/100.0) - 16.0
}

// YFromLstar converts an L* value to a Y value on the 0-100 scale.
//
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance. L* is
// perceptually uniform, Y is linear in the amount of light.
func YFromLstar(lstar float64) float64 {
	return 100.0 * labInvf((lstar+16.0)/116.0)
}

// LstarFromY converts a Y value (0-100) to L*.
func LstarFromY(y float64) float64 {
	return labF(y/100.0)*116.0 - 16.0
}

// Linearized converts a gamma encoded channel to linear RGB on the 0-100 scale.
func Linearized(component uint8) float64 {
	normalized := float64(component) / 255.0
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100.0
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100.0
}

// Delinearized converts a linear RGB component (0-100) to a gamma encoded
// channel, clamped to [0, 255].
func Delinearized(component float64) uint8 {
	normalized := component / 100.0
	var delinearized float64
	if normalized <= 0.0031308 {
		delinearized = normalized * 12.92
	} else {
		delinearized = 1.055*math.Pow(normalized, 1.0/2.4) - 0.055
	}
	return uint8(ClampInt(0, 255, int(math.Round(delinearized*255.0))))
}

func labF(t float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	if t > e {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func labInvf(ft float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3
	}
	return (116*ft - 16) / kappa
}
