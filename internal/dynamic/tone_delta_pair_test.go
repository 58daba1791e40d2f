package dynamic

import (
	"errors"
	"testing"

	"github.com/jmylchreest/hctheme/internal/palette"
)

func TestNewToneDeltaPair(t *testing.T) {
	a := FromPalette("a", func(s *Scheme) *palette.TonalPalette { return s.PrimaryPalette() }, constant(40))
	b := FromPalette("b", func(s *Scheme) *palette.TonalPalette { return s.PrimaryPalette() }, constant(80))

	pair, err := NewToneDeltaPair(a, b, 10, Nearer, false)
	if err != nil {
		t.Fatalf("NewToneDeltaPair() error = %v", err)
	}
	if pair.RoleA != a || pair.RoleB != b {
		t.Error("NewToneDeltaPair() did not keep the roles in order")
	}
	if pair.Delta != 10 || pair.Polarity != Nearer {
		t.Errorf("NewToneDeltaPair() = delta %v polarity %s, want 10 nearer", pair.Delta, pair.Polarity)
	}

	if _, err := NewToneDeltaPair(a, b, 0, Lighter, true); err != nil {
		t.Errorf("NewToneDeltaPair(delta 0) error = %v", err)
	}

	if _, err := NewToneDeltaPair(a, b, -1, Darker, false); !errors.Is(err, ErrNegativeDelta) {
		t.Errorf("NewToneDeltaPair(delta -1) error = %v, want %v", err, ErrNegativeDelta)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustToneDeltaPair(delta -0.5) did not panic")
		}
	}()
	MustToneDeltaPair(a, b, -0.5, Farther, false)
}

func TestTonePolarityString(t *testing.T) {
	tests := []struct {
		p    TonePolarity
		want string
	}{
		{Darker, "darker"},
		{Lighter, "lighter"},
		{Nearer, "nearer"},
		{Farther, "farther"},
		{TonePolarity(9), "polarity(9)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
