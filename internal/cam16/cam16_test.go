package cam16

import (
	"math"
	"testing"

	"github.com/jmylchreest/hctheme/internal/colour"
)

func expectNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f (tolerance %g)", name, got, want, tol)
	}
}

func TestFromARGB(t *testing.T) {
	tests := []struct {
		name   string
		argb   colour.ARGB
		hue    float64
		chroma float64
		j      float64
		m      float64
		s      float64
		q      float64
	}{
		{name: "red", argb: 0xffff0000, hue: 27.408, chroma: 113.358, j: 46.445, m: 89.494, s: 91.890, q: 105.989},
		{name: "green", argb: 0xff00ff00, hue: 142.140, chroma: 108.410, j: 79.332, m: 85.588, s: 78.605, q: 138.520},
		{name: "blue", argb: 0xff0000ff, hue: 282.788, chroma: 87.231, j: 25.466, m: 68.867, s: 93.675, q: 78.481},
		{name: "white", argb: 0xffffffff, hue: 209.492, chroma: 2.869, j: 100.0, m: 2.265, s: 12.068, q: 155.521},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := FromARGB(tt.argb)
			expectNear(t, "Hue", cam.Hue, tt.hue, 0.001)
			expectNear(t, "Chroma", cam.Chroma, tt.chroma, 0.001)
			expectNear(t, "J", cam.J, tt.j, 0.001)
			expectNear(t, "M", cam.M, tt.m, 0.001)
			expectNear(t, "S", cam.S, tt.s, 0.001)
			expectNear(t, "Q", cam.Q, tt.q, 0.001)
		})
	}
}

func TestBlack(t *testing.T) {
	cam := FromARGB(0xff000000)
	if cam.J != 0 || cam.Chroma != 0 {
		t.Errorf("black: J = %v, Chroma = %v, want 0, 0", cam.J, cam.Chroma)
	}
}

func TestRoundTrip(t *testing.T) {
	colours := []colour.ARGB{0xffff0000, 0xff00ff00, 0xff0000ff, 0xffffffff, 0xff4285f4, 0xff6d7f00}
	for _, c := range colours {
		t.Run(c.String(), func(t *testing.T) {
			cam := FromARGB(c)
			if got := cam.ARGB(); got != c {
				t.Errorf("ARGB() = %s, want %s", got, c)
			}
			if got := FromJCH(cam.J, cam.Chroma, cam.Hue).ARGB(); got != c {
				t.Errorf("FromJCH().ARGB() = %s, want %s", got, c)
			}
			if got := FromUCS(cam.Jstar, cam.Astar, cam.Bstar).ARGB(); got != c {
				t.Errorf("FromUCS().ARGB() = %s, want %s", got, c)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	red := FromARGB(0xffff0000)
	blue := FromARGB(0xff0000ff)
	expectNear(t, "Distance(red, blue)", red.Distance(blue), 21.415, 0.001)
	expectNear(t, "Distance(red, blue) symmetry", blue.Distance(red), red.Distance(blue), 1e-12)
	if d := red.Distance(red); d != 0 {
		t.Errorf("Distance(red, red) = %v, want 0", d)
	}
}

func TestDefaultViewingConditions(t *testing.T) {
	vc := Default
	expectNear(t, "N", vc.N, 0.184186518512444, 1e-9)
	expectNear(t, "Aw", vc.Aw, 29.980997194447333, 1e-9)
	expectNear(t, "Nbb", vc.Nbb, 1.0169191804458755, 1e-9)
	expectNear(t, "Ncb", vc.Ncb, vc.Nbb, 0)
	expectNear(t, "C", vc.C, 0.69, 1e-12)
	expectNear(t, "Nc", vc.Nc, 1.0, 1e-12)
	expectNear(t, "Fl", vc.Fl, 0.3884814537800353, 1e-9)
	expectNear(t, "FlRoot", vc.FlRoot, 0.7894826179304937, 1e-9)
	expectNear(t, "Z", vc.Z, 1.909169568483652, 1e-9)
	want := [3]float64{1.02117770275752, 0.9863077294280124, 0.9339605082802299}
	for i := range want {
		expectNear(t, "RGBD", vc.RGBD[i], want[i], 1e-9)
	}
}

func TestViewed(t *testing.T) {
	dim := NewViewingConditions(colour.WhitePointD65, 11.72, 50.0, 0.0, false)
	got := FromARGB(0xff4285f4).Viewed(dim)
	if got != 0xff0069e4 {
		t.Errorf("Viewed(dark surround) = %s, want #0069e4", got)
	}
}
