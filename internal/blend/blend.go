// Package blend mixes colours in HCT and CAM16-UCS.
package blend

import (
	"math"

	"github.com/jmylchreest/hctheme/internal/cam16"
	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

// maxHarmonizeRotation caps how far Harmonize turns a hue, in degrees.
const maxHarmonizeRotation = 15.0

// Harmonize shifts the hue of design toward source, by half the hue
// difference and at most 15 degrees, keeping its chroma and tone. It makes
// fixed colours such as error red sit better next to a theme.
func Harmonize(design, source colour.ARGB) colour.ARGB {
	from := hct.FromARGB(design)
	to := hct.FromARGB(source)
	diff := colour.DifferenceDegrees(from.Hue(), to.Hue())
	rotation := math.Min(diff*0.5, maxHarmonizeRotation)
	hue := colour.SanitizeDegreesFloat(from.Hue() + rotation*colour.RotationDirection(from.Hue(), to.Hue()))
	return hct.From(hue, from.Chroma(), from.Tone()).ARGB()
}

// HctHue blends the hue of from toward to by amount (0-1), keeping the
// chroma and tone of from.
func HctHue(from, to colour.ARGB, amount float64) colour.ARGB {
	ucs := cam16.FromARGB(Cam16UCS(from, to, amount))
	fromCam := cam16.FromARGB(from)
	return hct.From(ucs.Hue, fromCam.Chroma, from.Lstar()).ARGB()
}

// Cam16UCS interpolates linearly between two colours in CAM16-UCS.
func Cam16UCS(from, to colour.ARGB, amount float64) colour.ARGB {
	a := cam16.FromARGB(from)
	b := cam16.FromARGB(to)
	return cam16.FromUCS(
		a.Jstar+(b.Jstar-a.Jstar)*amount,
		a.Astar+(b.Astar-a.Astar)*amount,
		a.Bstar+(b.Bstar-a.Bstar)*amount,
	).ARGB()
}
