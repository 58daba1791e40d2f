package contrast

import (
	"math"
	"testing"
)

func TestRatioOfTones(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 float64
		want   float64
	}{
		{name: "black on white", t1: 0, t2: 100, want: 21},
		{name: "white on black", t1: 100, t2: 0, want: 21},
		{name: "same tone", t1: 50, t2: 50, want: 1},
		{name: "clamped", t1: -10, t2: 120, want: 21},
		{name: "mid tones", t1: 40, t2: 90, want: 5.002983511839433},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatioOfTones(tt.t1, tt.t2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RatioOfTones(%v, %v) = %v, want %v", tt.t1, tt.t2, got, tt.want)
			}
		})
	}
}

func TestLighterDarker(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(float64, float64) (float64, bool)
		tone   float64
		ratio  float64
		want   float64
		wantOK bool
	}{
		{name: "lighter mid", fn: Lighter, tone: 50, ratio: 3, want: 85.01545768082842, wantOK: true},
		{name: "lighter from black", fn: Lighter, tone: 0, ratio: 4.5, want: 49.28395864072102, wantOK: true},
		{name: "lighter unreachable", fn: Lighter, tone: 90, ratio: 3},
		{name: "lighter out of range", fn: Lighter, tone: -1, ratio: 3},
		{name: "darker mid", fn: Darker, tone: 50, ratio: 3, want: 18.850484263644333, wantOK: true},
		{name: "darker from white", fn: Darker, tone: 100, ratio: 4.5, want: 49.497934273204415, wantOK: true},
		{name: "darker unreachable", fn: Darker, tone: 10, ratio: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.tone, tt.ratio)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnsafe(t *testing.T) {
	if got := LighterUnsafe(90, 3); got != 100 {
		t.Errorf("LighterUnsafe(90, 3) = %v, want 100", got)
	}
	if got := DarkerUnsafe(10, 3); got != 0 {
		t.Errorf("DarkerUnsafe(10, 3) = %v, want 0", got)
	}
	if got, _ := Lighter(50, 3); LighterUnsafe(50, 3) != got {
		t.Errorf("LighterUnsafe(50, 3) differs from Lighter")
	}
}

func TestResultsReachRatio(t *testing.T) {
	for tone := 0.0; tone <= 100; tone += 5 {
		for _, ratio := range []float64{Ratio30, Ratio45, Ratio70} {
			if l, ok := Lighter(tone, ratio); ok && RatioOfTones(l, tone) < ratio-ratioEpsilon {
				t.Errorf("Lighter(%v, %v) = %v reaches only %v", tone, ratio, l, RatioOfTones(l, tone))
			}
			if d, ok := Darker(tone, ratio); ok && RatioOfTones(d, tone) < ratio-ratioEpsilon {
				t.Errorf("Darker(%v, %v) = %v reaches only %v", tone, ratio, d, RatioOfTones(d, tone))
			}
		}
	}
}
