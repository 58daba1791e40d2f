// Package temperature models the perceived warmth of colours and uses it to
// pick complementary and analogous colours.
package temperature

import (
	"math"
	"sort"
	"sync"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

// Cache answers temperature questions about one input colour. The hue sweep
// at the input's chroma and tone is computed once, on first use; a Cache is
// safe for concurrent use.
type Cache struct {
	input hct.Hct

	once      sync.Once
	byHue     []hct.Hct
	byTemp    []hct.Hct
	tempByHct map[colour.ARGB]float64

	complementOnce sync.Once
	complement     hct.Hct
}

// New returns a temperature cache for input.
func New(input hct.Hct) *Cache {
	return &Cache{input: input}
}

// Input returns the colour the cache was built for.
func (c *Cache) Input() hct.Hct { return c.input }

func (c *Cache) precompute() {
	c.once.Do(func() {
		// 361 samples: both 0 and 360 are included.
		c.byHue = make([]hct.Hct, 0, 361)
		for hue := 0.0; hue <= 360.0; hue++ {
			c.byHue = append(c.byHue, hct.From(hue, c.input.Chroma(), c.input.Tone()))
		}

		all := make([]hct.Hct, 0, len(c.byHue)+1)
		all = append(all, c.byHue...)
		all = append(all, c.input)

		c.tempByHct = make(map[colour.ARGB]float64, len(all))
		for _, h := range all {
			c.tempByHct[h.ARGB()] = RawTemperature(h)
		}

		c.byTemp = all
		sort.SliceStable(c.byTemp, func(i, j int) bool {
			return c.tempByHct[c.byTemp[i].ARGB()] < c.tempByHct[c.byTemp[j].ARGB()]
		})
	})
}

func (c *Cache) temp(h hct.Hct) float64 {
	if t, ok := c.tempByHct[h.ARGB()]; ok {
		return t
	}
	return RawTemperature(h)
}

// hueSample returns the sweep colour nearest the hue.
func (c *Cache) hueSample(hue float64) hct.Hct {
	return c.byHue[int(colour.RoundHalfUp(hue))]
}

// Coldest returns the coldest colour in the sweep.
func (c *Cache) Coldest() hct.Hct {
	c.precompute()
	return c.byTemp[0]
}

// Warmest returns the warmest colour in the sweep.
func (c *Cache) Warmest() hct.Hct {
	c.precompute()
	return c.byTemp[len(c.byTemp)-1]
}

// HctsByTemp returns the sweep and the input, sorted coldest first.
func (c *Cache) HctsByTemp() []hct.Hct {
	c.precompute()
	out := make([]hct.Hct, len(c.byTemp))
	copy(out, c.byTemp)
	return out
}

// Complement returns the colour on the opposite side of the temperature
// range whose relative temperature mirrors the input's. It is not
// necessarily 180 degrees away in hue.
func (c *Cache) Complement() hct.Hct {
	c.complementOnce.Do(func() {
		c.complement = c.findComplement()
	})
	return c.complement
}

func (c *Cache) findComplement() hct.Hct {
	c.precompute()
	coldestHue := c.Coldest().Hue()
	warmestHue := c.Warmest().Hue()

	startHue, endHue := coldestHue, warmestHue
	if isBetween(c.input.Hue(), coldestHue, warmestHue) {
		startHue, endHue = warmestHue, coldestHue
	}

	smallestError := 1000.0
	answer := c.hueSample(c.input.Hue())
	target := 1.0 - c.RelativeTemperature(c.input)

	// First match wins.
	for addend := 0.0; addend <= 360.0; addend++ {
		hue := colour.SanitizeDegreesFloat(startHue + addend)
		if !isBetween(hue, startHue, endHue) {
			continue
		}
		candidate := c.hueSample(hue)
		if err := math.Abs(target - c.RelativeTemperature(candidate)); err < smallestError {
			smallestError = err
			answer = candidate
		}
	}
	return answer
}

// AnalogousDefault returns five analogous colours from twelve divisions.
func (c *Cache) AnalogousDefault() []hct.Hct {
	return c.Analogous(5, 12)
}

// Analogous returns count colours around the input, taken from a hue circle
// split into divisions of equal temperature change rather than equal angle.
// The input is in the middle; extra colours go counter-clockwise first.
func (c *Cache) Analogous(count, divisions int) []hct.Hct {
	if count <= 0 {
		return nil
	}
	if divisions <= 0 {
		divisions = 1
	}
	c.precompute()

	startHue := int(colour.RoundHalfUp(c.input.Hue()))
	start := c.byHue[startHue]
	last := c.RelativeTemperature(start)

	var totalDelta float64
	for i := 0; i < 360; i++ {
		t := c.RelativeTemperature(c.byHue[colour.SanitizeDegreesInt(startHue+i)])
		totalDelta += math.Abs(t - last)
		last = t
	}

	all := []hct.Hct{start}
	step := totalDelta / float64(divisions)
	var delta float64
	last = c.RelativeTemperature(start)
	for addend := 1; len(all) < divisions; {
		h := c.byHue[colour.SanitizeDegreesInt(startHue+addend)]
		t := c.RelativeTemperature(h)
		delta += math.Abs(t - last)

		// Keep adding this hue while it still covers the next step, so
		// colours with no analogues (black, white) fill every slot.
		satisfied := delta >= float64(len(all))*step
		for indexAddend := 1; satisfied && len(all) < divisions; indexAddend++ {
			all = append(all, h)
			satisfied = delta >= float64(len(all)+indexAddend)*step
		}

		last = t
		addend++
		if addend > 360 {
			for len(all) < divisions {
				all = append(all, h)
			}
			break
		}
	}

	answers := []hct.Hct{c.input}
	ccw := (count - 1) / 2
	for i := 1; i <= ccw; i++ {
		answers = append([]hct.Hct{all[wrapIndex(-i, len(all))]}, answers...)
	}
	cw := count - ccw - 1
	for i := 1; i <= cw; i++ {
		answers = append(answers, all[wrapIndex(i, len(all))])
	}
	return answers
}

// InputRelativeTemperature returns the input's temperature relative to the
// sweep, 0 (coldest) to 1 (warmest).
func (c *Cache) InputRelativeTemperature() float64 {
	return c.RelativeTemperature(c.input)
}

// RelativeTemperature returns h's temperature relative to the sweep, 0
// (coldest) to 1 (warmest). When every colour in the sweep has the same
// temperature, as at tone 0 or 100, it returns 0.5.
func (c *Cache) RelativeTemperature(h hct.Hct) float64 {
	c.precompute()
	coldest := c.temp(c.Coldest())
	span := c.temp(c.Warmest()) - coldest
	if span == 0 {
		return 0.5
	}
	return (c.temp(h) - coldest) / span
}

// RawTemperature returns the warmth of a colour, roughly -9.66 (cold) to
// 8.61 (warm), from its L*a*b* hue and chroma.
func RawTemperature(h hct.Hct) float64 {
	_, a, b := h.ARGB().Lab()
	hue := colour.SanitizeDegreesFloat(math.Atan2(b, a) * (180.0 / math.Pi))
	chroma := math.Hypot(a, b)
	return -0.5 + 0.02*math.Pow(chroma, 1.07)*math.Cos(colour.SanitizeDegreesFloat(hue-50.0)*(math.Pi/180.0))
}

// isBetween reports whether angle lies on the arc from a to b, walking
// counter-clockwise.
func isBetween(angle, a, b float64) bool {
	if a < b {
		return a <= angle && angle <= b
	}
	return a <= angle || angle <= b
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
