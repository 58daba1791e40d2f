package palette

import (
	"github.com/jmylchreest/hctheme/internal/hct"
)

const (
	// pivotTone has the most chroma available on average, so the search
	// prefers tones near it.
	pivotTone = 50
	toneStep  = 1
	// chromaEpsilon accepts chroma slightly below the request.
	chromaEpsilon = 0.01
	// maxChromaProbe is larger than any chroma sRGB can reach.
	maxChromaProbe = 200.0
)

// keyColor searches for the tone nearest the pivot whose maximum chroma
// reaches the requested chroma. The chroma cache lives for one search.
type keyColor struct {
	hue             float64
	requestedChroma float64
	maxChromas      map[int]float64
}

func newKeyColor(hue, requestedChroma float64) *keyColor {
	return &keyColor{
		hue:             hue,
		requestedChroma: requestedChroma,
		maxChromas:      make(map[int]float64),
	}
}

// create runs a binary search over tone. Chroma against tone is not
// monotonic, so when the midpoint lacks chroma the search follows the slope
// toward the chroma peak; once it has enough it narrows toward the pivot.
func (k *keyColor) create() hct.Hct {
	lower, upper := 0, 100
	for lower < upper {
		mid := (lower + upper) / 2
		ascending := k.maxChroma(mid) < k.maxChroma(mid+toneStep)
		sufficient := k.maxChroma(mid) >= k.requestedChroma-chromaEpsilon

		if sufficient {
			if abs(lower-pivotTone) < abs(upper-pivotTone) {
				upper = mid
			} else {
				if lower == mid {
					return hct.From(k.hue, k.requestedChroma, float64(lower))
				}
				lower = mid
			}
			continue
		}

		if ascending {
			lower = mid + toneStep
		} else {
			// mid may still be the peak.
			upper = mid
		}
	}
	return hct.From(k.hue, k.requestedChroma, float64(lower))
}

func (k *keyColor) maxChroma(tone int) float64 {
	if c, ok := k.maxChromas[tone]; ok {
		return c
	}
	c := hct.From(k.hue, maxChromaProbe, float64(tone)).Chroma()
	k.maxChromas[tone] = c
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
