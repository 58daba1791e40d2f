package dynamic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"tonal-spot", TonalSpot},
		{"TONAL_SPOT", TonalSpot},
		{"tonalspot", TonalSpot},
		{" tonal spot ", TonalSpot},
		{"fruit_salad", FruitSalad},
		{"fruitsalad", FruitSalad},
		{"monochrome", Monochrome},
		{"Content", Content},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if err != nil {
				t.Fatalf("ParseVariant(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseVariant("sepia"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseVariant(\"sepia\") error = %v, want %v", err, ErrUnknownVariant)
	}
}

func TestVariantRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("%s.MarshalText() error = %v", v, err)
		}
		if string(text) != v.String() {
			t.Errorf("MarshalText() = %q, want %q", text, v.String())
		}

		var back Variant
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != v {
			t.Errorf("UnmarshalText(%q) = %s, want %s", text, back, v)
		}
	}

	if _, err := Variant(42).MarshalText(); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Variant(42).MarshalText() error = %v, want %v", err, ErrUnknownVariant)
	}
	if got := Variant(42).String(); got != "variant(42)" {
		t.Errorf("Variant(42).String() = %q, want %q", got, "variant(42)")
	}
}

func TestVariantNames(t *testing.T) {
	want := []string{
		"monochrome", "neutral", "tonal-spot", "vibrant", "expressive",
		"fidelity", "content", "rainbow", "fruit-salad",
	}
	if diff := cmp.Diff(want, VariantNames()); diff != "" {
		t.Errorf("VariantNames() mismatch (-want +got):\n%s", diff)
	}
}
