package scheme

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/hct"
)

func TestPresetRoles(t *testing.T) {
	m := dynamic.NewMaterialColors(false)
	roles := []*dynamic.Color{
		m.Primary, m.OnPrimary, m.PrimaryContainer, m.OnPrimaryContainer,
		m.Secondary, m.Tertiary, m.TertiaryContainer, m.Surface, m.OnSurface,
	}
	blue := hct.FromARGB(0xff0000ff)

	tests := []struct {
		variant dynamic.Variant
		isDark  bool
		want    []colour.ARGB
	}{
		{dynamic.Monochrome, false, []colour.ARGB{0xff000000, 0xffe2e2e2, 0xff3b3b3b, 0xffffffff, 0xff5e5e5e, 0xff3b3b3b, 0xff747474, 0xfff9f9f9, 0xff1b1b1b}},
		{dynamic.Monochrome, true, []colour.ARGB{0xffffffff, 0xff1b1b1b, 0xffd4d4d4, 0xff000000, 0xffc6c6c6, 0xffe2e2e2, 0xff919191, 0xff131313, 0xffe2e2e2}},
		{dynamic.Neutral, false, []colour.ARGB{0xff5d5d6c, 0xffffffff, 0xffe2e1f3, 0xff1a1b27, 0xff5e5d67, 0xff5c5d72, 0xffe1e0f9, 0xfffcf8fa, 0xff1c1b1d}},
		{dynamic.Neutral, true, []colour.ARGB{0xffc6c5d6, 0xff2f2f3d, 0xff454654, 0xffe2e1f3, 0xffc7c5d0, 0xffc5c4dd, 0xff444559, 0xff131315, 0xffe5e1e3}},
		{dynamic.Vibrant, false, []colour.ARGB{0xff343dff, 0xffffffff, 0xffe0e0ff, 0xff00006e, 0xff62597c, 0xff6e5483, 0xfff2daff, 0xfffbf8ff, 0xff1a1b25}},
		{dynamic.Vibrant, true, []colour.ARGB{0xffbec2ff, 0xff0001ac, 0xff0000ef, 0xffe0e0ff, 0xffccc1e9, 0xffdbbaf1, 0xff563c6a, 0xff12131c, 0xffe3e1ef}},
		{dynamic.Expressive, false, []colour.ARGB{0xff146c48, 0xffffffff, 0xffa2f4c6, 0xff002112, 0xff725573, 0xff675687, 0xffebdcff, 0xfffdf7ff, 0xff1d1a22}},
		{dynamic.Expressive, true, []colour.ARGB{0xff87d7ab, 0xff003823, 0xff005234, 0xffa2f4c6, 0xffdfbbde, 0xffd2bdf5, 0xff4f3e6e, 0xff14121a, 0xffe6e0ec}},
		{dynamic.Rainbow, false, []colour.ARGB{0xff5056a9, 0xffffffff, 0xffe0e0ff, 0xff050865, 0xff5c5d72, 0xff78536b, 0xffffd8ee, 0xfff9f9f9, 0xff1b1b1b}},
		{dynamic.Rainbow, true, []colour.ARGB{0xffbec2ff, 0xff202578, 0xff383e8f, 0xffe0e0ff, 0xffc5c4dd, 0xffe8b9d5, 0xff5e3c52, 0xff131313, 0xffe2e2e2}},
		{dynamic.FruitSalad, false, []colour.ARGB{0xff006688, 0xffffffff, 0xffc2e8ff, 0xff001e2b, 0xff196584, 0xff555992, 0xffe0e0ff, 0xfffbf8ff, 0xff1a1b25}},
		{dynamic.FruitSalad, true, []colour.ARGB{0xff76d1ff, 0xff003548, 0xff004d67, 0xffc2e8ff, 0xff8ecff2, 0xffbec2ff, 0xff3e4278, 0xff12131c, 0xffe3e1ef}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/dark=%v", tt.variant, tt.isDark), func(t *testing.T) {
			s, err := New(tt.variant, blue, tt.isDark, 0)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			got := make([]colour.ARGB, len(roles))
			for i, r := range roles {
				got[i] = s.Get(r)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("roles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConstructorsMatchNew(t *testing.T) {
	source := hct.FromARGB(0xff4285f4)
	constructors := map[dynamic.Variant]func(hct.Hct, bool, float64) (*dynamic.Scheme, error){
		dynamic.Monochrome: NewMonochrome,
		dynamic.Neutral:    NewNeutral,
		dynamic.TonalSpot:  NewTonalSpot,
		dynamic.Vibrant:    NewVibrant,
		dynamic.Expressive: NewExpressive,
		dynamic.Fidelity:   NewFidelity,
		dynamic.Content:    NewContent,
		dynamic.Rainbow:    NewRainbow,
		dynamic.FruitSalad: NewFruitSalad,
	}
	if len(constructors) != len(dynamic.Variants()) {
		t.Fatalf("%d constructors for %d variants", len(constructors), len(dynamic.Variants()))
	}
	for v, ctor := range constructors {
		s, err := ctor(source, true, 0.5)
		if err != nil {
			t.Fatalf("%s constructor error = %v", v, err)
		}
		if s.Variant() != v || !s.IsDark() || s.ContrastLevel() != 0.5 || s.SourceColor() != source {
			t.Errorf("%s constructor = %s, want %s dark at contrast 0.50 from %s", v, s, v, source.ARGB())
		}
	}
}

func TestPaletteRecipes(t *testing.T) {
	source := hct.FromARGB(0xff4285f4)
	h, c := source.Hue(), source.Chroma()

	check := func(t *testing.T, name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	s, err := NewTonalSpot(source, false, 0)
	if err != nil {
		t.Fatalf("NewTonalSpot() error = %v", err)
	}
	check(t, "tonal spot primary hue", s.PrimaryPalette().Hue(), h)
	check(t, "tonal spot primary chroma", s.PrimaryPalette().Chroma(), 36)
	check(t, "tonal spot tertiary hue", s.TertiaryPalette().Hue(), colour.SanitizeDegreesFloat(h+60))
	check(t, "tonal spot neutral chroma", s.NeutralPalette().Chroma(), 6)
	check(t, "tonal spot error hue", s.ErrorPalette().Hue(), 25)

	s, err = NewFidelity(source, false, 0)
	if err != nil {
		t.Fatalf("NewFidelity() error = %v", err)
	}
	check(t, "fidelity primary chroma", s.PrimaryPalette().Chroma(), c)
	check(t, "fidelity secondary chroma", s.SecondaryPalette().Chroma(), max(c-32, c*0.5))
	check(t, "fidelity neutral chroma", s.NeutralPalette().Chroma(), c/8)
	check(t, "fidelity neutral variant chroma", s.NeutralVariantPalette().Chroma(), c/8+4)

	s, err = NewExpressive(source, false, 0)
	if err != nil {
		t.Fatalf("NewExpressive() error = %v", err)
	}
	check(t, "expressive primary hue", s.PrimaryPalette().Hue(), colour.SanitizeDegreesFloat(h+240))
	check(t, "expressive neutral hue", s.NeutralPalette().Hue(), colour.SanitizeDegreesFloat(h+15))

	s, err = NewFruitSalad(source, false, 0)
	if err != nil {
		t.Fatalf("NewFruitSalad() error = %v", err)
	}
	check(t, "fruit salad primary hue", s.PrimaryPalette().Hue(), colour.SanitizeDegreesFloat(h-50))
	check(t, "fruit salad tertiary hue", s.TertiaryPalette().Hue(), h)
}

func TestNewErrors(t *testing.T) {
	source := hct.FromARGB(0xff4285f4)

	if _, err := New(dynamic.Variant(99), source, false, 0); !errors.Is(err, dynamic.ErrUnknownVariant) {
		t.Errorf("New(variant 99) error = %v, want %v", err, dynamic.ErrUnknownVariant)
	}

	_, err := New(dynamic.TonalSpot, source, false, 2)
	if !errors.Is(err, dynamic.ErrContrastLevel) || !strings.Contains(err.Error(), "tonal-spot") {
		t.Errorf("New(contrast 2) error = %v, want %v naming tonal-spot", err, dynamic.ErrContrastLevel)
	}
}
