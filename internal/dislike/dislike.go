// Package dislike detects and fixes colours most people find unpleasant:
// dark yellow-greens, associated with biological waste and rot.
package dislike

import (
	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

// fixedTone is the tone a disliked colour is raised to. Lighter yellow-greens
// read as natural, e.g. leaves and pistachios.
const fixedTone = 70.0

// IsDisliked reports whether h is a dark, chromatic yellow-green.
func IsDisliked(h hct.Hct) bool {
	hue := colour.RoundHalfUp(h.Hue())
	huePasses := hue >= 90.0 && hue <= 111.0
	chromaPasses := colour.RoundHalfUp(h.Chroma()) > 16.0
	tonePasses := colour.RoundHalfUp(h.Tone()) < 65.0
	return huePasses && chromaPasses && tonePasses
}

// FixIfDisliked returns h lightened to tone 70 if it is disliked, and h
// unchanged otherwise.
func FixIfDisliked(h hct.Hct) hct.Hct {
	if IsDisliked(h) {
		return hct.From(h.Hue(), h.Chroma(), fixedTone)
	}
	return h
}
