package dynamic

import (
	"math"
	"testing"
)

func TestContrastCurveGet(t *testing.T) {
	curve := NewContrastCurve(1, 1, 3, 4.5)
	tests := []struct {
		level float64
		want  float64
	}{
		{-2, 1},
		{-1, 1},
		{-0.5, 1},
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 3.75},
		{1, 4.5},
		{2, 4.5},
	}
	for _, tt := range tests {
		if got := curve.Get(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Get(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestContrastCurveLowSide(t *testing.T) {
	curve := NewContrastCurve(3, 4.5, 7, 11)
	if got := curve.Get(-0.5); math.Abs(got-3.75) > 1e-9 {
		t.Errorf("Get(-0.5) = %v, want 3.75", got)
	}
	if got := curve.Get(0); math.Abs(got-4.5) > 1e-9 {
		t.Errorf("Get(0) = %v, want 4.5", got)
	}
}
