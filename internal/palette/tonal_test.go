package palette

import (
	"math"
	"sync"
	"testing"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/hct"
)

func TestToneOfBlue(t *testing.T) {
	p := FromARGB(0xff0000ff)

	tests := []struct {
		tone int
		want colour.ARGB
	}{
		{100, 0xffffffff},
		{95, 0xfff1efff},
		{90, 0xffe0e0ff},
		{80, 0xffbec2ff},
		{70, 0xff9da3ff},
		{60, 0xff7c84ff},
		{50, 0xff5a64ff},
		{40, 0xff343dff},
		{30, 0xff0000ef},
		{20, 0xff0001ac},
		{10, 0xff00006e},
		{0, 0xff000000},
	}

	for _, tt := range tests {
		if got := p.Tone(tt.tone); got != tt.want {
			t.Errorf("Tone(%d) = %s, want %s", tt.tone, got, tt.want)
		}
	}
}

func TestToneIsIdempotent(t *testing.T) {
	p := FromHueAndChroma(270, 36)
	for tone := 0; tone <= 100; tone++ {
		first := p.Tone(tone)
		if second := p.Tone(tone); second != first {
			t.Errorf("Tone(%d) = %s then %s", tone, first, second)
		}
		if uncached := hct.From(270, 36, float64(tone)).ARGB(); uncached != first {
			t.Errorf("Tone(%d) = %s, uncached %s", tone, first, uncached)
		}
	}
}

func TestToneConcurrent(t *testing.T) {
	p := FromHueAndChroma(150, 40)
	var wg sync.WaitGroup
	results := make([]colour.ARGB, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Tone(42)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if r != results[0] {
			t.Errorf("goroutine %d got %s, want %s", i, r, results[0])
		}
	}
}

func TestFromHct(t *testing.T) {
	source := hct.FromARGB(0xff4285f4)
	p := FromHct(source)
	if p.KeyColor() != source {
		t.Errorf("KeyColor() = %v, want %v", p.KeyColor(), source)
	}
	if p.Hue() != source.Hue() || p.Chroma() != source.Chroma() {
		t.Errorf("hue/chroma = %v/%v, want %v/%v", p.Hue(), p.Chroma(), source.Hue(), source.Chroma())
	}
}

func TestKeyColor(t *testing.T) {
	tests := []struct {
		name   string
		hue    float64
		chroma float64
		want   colour.ARGB
	}{
		{name: "exact chroma", hue: 50, chroma: 60, want: 0xffc65e03},
		{name: "unreachable chroma takes the peak", hue: 149, chroma: 200, want: 0xff00fe69},
		{name: "low chroma", hue: 50, chroma: 3, want: 0xff7d7672},
		{name: "monochrome", hue: 0, chroma: 0, want: 0xff777777},
		{name: "neutral variant", hue: 270, chroma: 16, want: 0xff71778b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := FromHueAndChroma(tt.hue, tt.chroma).KeyColor()
			if key.ARGB() != tt.want {
				t.Errorf("KeyColor() = %v, want %s", key, tt.want)
			}
		})
	}
}

func TestKeyColorProperties(t *testing.T) {
	key := FromHueAndChroma(50, 60).KeyColor()
	if math.Abs(key.Hue()-50) > 10 {
		t.Errorf("Hue() = %v, want near 50", key.Hue())
	}
	if math.Abs(key.Chroma()-60) > 0.5 {
		t.Errorf("Chroma() = %v, want near 60", key.Chroma())
	}
	if key.Tone() <= 0 || key.Tone() >= 100 {
		t.Errorf("Tone() = %v, want strictly between 0 and 100", key.Tone())
	}

	// The peak chroma for hue 149 is near tone 88.
	peak := FromHueAndChroma(149, 200).KeyColor()
	if math.Abs(peak.Tone()-88) > 1 {
		t.Errorf("peak Tone() = %v, want near 88", peak.Tone())
	}
	if peak.Chroma() < 89 {
		t.Errorf("peak Chroma() = %v, want at least 89", peak.Chroma())
	}
}
