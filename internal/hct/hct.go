// Package hct implements the HCT (hue, chroma, tone) colour space: CAM16 hue
// and chroma combined with CIE L* as tone. Holding hue and chroma fixed while
// varying tone yields colours with predictable contrast against each other.
package hct

import (
	"fmt"

	"github.com/jmylchreest/hctheme/internal/cam16"
	"github.com/jmylchreest/hctheme/internal/colour"
)

// Hct is a colour with its derived hue, chroma and tone. Every field is
// computed from the ARGB value, so two Hct holding the same colour compare
// equal however they were constructed.
type Hct struct {
	hue    float64
	chroma float64
	tone   float64
	argb   colour.ARGB
}

// From returns the sRGB colour closest to the requested hue (0-360), chroma
// and tone (0-100). The resulting chroma may be lower than requested when the
// gamut does not allow it.
func From(hue, chroma, tone float64) Hct {
	return FromARGB(SolveToARGB(hue, chroma, tone))
}

// FromARGB decomposes a colour into hue, chroma and tone.
func FromARGB(argb colour.ARGB) Hct {
	cam := cam16.FromARGB(argb)
	return Hct{
		hue:    cam.Hue,
		chroma: cam.Chroma,
		tone:   argb.Lstar(),
		argb:   argb,
	}
}

// Hue returns the hue in degrees, [0, 360).
func (h Hct) Hue() float64 { return h.hue }

// Chroma returns the chroma.
func (h Hct) Chroma() float64 { return h.chroma }

// Tone returns the tone, 0 (black) to 100 (white).
func (h Hct) Tone() float64 { return h.tone }

// ARGB returns the colour.
func (h Hct) ARGB() colour.ARGB { return h.argb }

// RGBA implements color.Color.
func (h Hct) RGBA() (r, g, b, a uint32) { return h.argb.RGBA() }

// WithHue returns the colour with its hue replaced. Chroma may decrease
// because chroma has a different maximum for any given hue and tone.
func (h Hct) WithHue(hue float64) Hct {
	return From(hue, h.chroma, h.tone)
}

// WithChroma returns the colour with its chroma replaced. The result's
// chroma may be lower than requested.
func (h Hct) WithChroma(chroma float64) Hct {
	return From(h.hue, chroma, h.tone)
}

// WithTone returns the colour with its tone replaced. Chroma may decrease.
func (h Hct) WithTone(tone float64) Hct {
	return From(h.hue, h.chroma, tone)
}

// InViewingConditions translates the colour into vc: it returns the colour
// that, viewed under the default conditions, appears as this colour would
// under vc.
func (h Hct) InViewingConditions(vc *cam16.ViewingConditions) Hct {
	cam := cam16.FromARGB(h.argb)
	x, y, z := cam.XYZInViewingConditions(vc)
	recast := cam16.FromXYZInViewingConditions(x, y, z, cam16.Default)
	return From(recast.Hue, recast.Chroma, colour.LstarFromY(y))
}

// String formats the colour as "H123 C45 T67 (#rrggbb)".
func (h Hct) String() string {
	return fmt.Sprintf("H%.0f C%.0f T%.0f (%s)", h.hue, h.chroma, h.tone, h.argb)
}
