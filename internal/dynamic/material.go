package dynamic

import (
	"math"

	"github.com/jmylchreest/hctheme/internal/dislike"
	"github.com/jmylchreest/hctheme/internal/hct"
	"github.com/jmylchreest/hctheme/internal/palette"
)

// MaterialColors is the catalog of Material Design 3 colour roles. Roles
// refer to each other as backgrounds and pairs, so they are built together
// and shared through the catalog.
type MaterialColors struct {
	extendedFidelity bool
	all              []*Color

	PrimaryPaletteKeyColor        *Color
	SecondaryPaletteKeyColor      *Color
	TertiaryPaletteKeyColor       *Color
	NeutralPaletteKeyColor        *Color
	NeutralVariantPaletteKeyColor *Color

	Background              *Color
	OnBackground            *Color
	Surface                 *Color
	SurfaceDim              *Color
	SurfaceBright           *Color
	SurfaceContainerLowest  *Color
	SurfaceContainerLow     *Color
	SurfaceContainer        *Color
	SurfaceContainerHigh    *Color
	SurfaceContainerHighest *Color
	OnSurface               *Color
	SurfaceVariant          *Color
	OnSurfaceVariant        *Color
	InverseSurface          *Color
	InverseOnSurface        *Color
	Outline                 *Color
	OutlineVariant          *Color
	Shadow                  *Color
	Scrim                   *Color
	SurfaceTint             *Color

	Primary            *Color
	OnPrimary          *Color
	PrimaryContainer   *Color
	OnPrimaryContainer *Color
	InversePrimary     *Color

	Secondary            *Color
	OnSecondary          *Color
	SecondaryContainer   *Color
	OnSecondaryContainer *Color

	Tertiary            *Color
	OnTertiary          *Color
	TertiaryContainer   *Color
	OnTertiaryContainer *Color

	Error            *Color
	OnError          *Color
	ErrorContainer   *Color
	OnErrorContainer *Color

	PrimaryFixed            *Color
	PrimaryFixedDim         *Color
	OnPrimaryFixed          *Color
	OnPrimaryFixedVariant   *Color
	SecondaryFixed          *Color
	SecondaryFixedDim       *Color
	OnSecondaryFixed        *Color
	OnSecondaryFixedVariant *Color
	TertiaryFixed           *Color
	TertiaryFixedDim        *Color
	OnTertiaryFixed         *Color
	OnTertiaryFixedVariant  *Color

	ControlActivated *Color
	ControlNormal    *Color
	ControlHighlight *Color
}

// NewMaterialColors builds the catalog. With extendedFidelity, every variant
// except Monochrome and Neutral keeps the source colour's fidelity the way
// the Fidelity and Content variants do.
func NewMaterialColors(extendedFidelity bool) *MaterialColors {
	m := &MaterialColors{extendedFidelity: extendedFidelity}
	m.build()
	return m
}

// All returns every role in a stable order: key colours, surfaces, accents,
// fixed accents, then controls.
func (m *MaterialColors) All() []*Color {
	out := make([]*Color, len(m.all))
	copy(out, m.all)
	return out
}

// ByName returns the role with the given name.
func (m *MaterialColors) ByName(name string) (*Color, bool) {
	for _, c := range m.all {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// HighestSurface returns the surface role with the most contrast against
// content: surface-bright in dark mode, surface-dim in light mode.
func (m *MaterialColors) HighestSurface(s *Scheme) *Color {
	if s.IsDark() {
		return m.SurfaceBright
	}
	return m.SurfaceDim
}

func (m *MaterialColors) isFidelity(s *Scheme) bool {
	if m.extendedFidelity && s.Variant() != Monochrome && s.Variant() != Neutral {
		return true
	}
	return s.Variant() == Fidelity || s.Variant() == Content
}

func isMonochrome(s *Scheme) bool { return s.Variant() == Monochrome }

// Palette selectors.
func primaryPalette(s *Scheme) *palette.TonalPalette        { return s.PrimaryPalette() }
func secondaryPalette(s *Scheme) *palette.TonalPalette      { return s.SecondaryPalette() }
func tertiaryPalette(s *Scheme) *palette.TonalPalette       { return s.TertiaryPalette() }
func neutralPalette(s *Scheme) *palette.TonalPalette        { return s.NeutralPalette() }
func neutralVariantPalette(s *Scheme) *palette.TonalPalette { return s.NeutralVariantPalette() }
func errorPalette(s *Scheme) *palette.TonalPalette          { return s.ErrorPalette() }

// darkLight returns a tone function choosing between a dark and a light
// mode tone.
func darkLight(dark, light float64) func(*Scheme) float64 {
	return func(s *Scheme) float64 {
		if s.IsDark() {
			return dark
		}
		return light
	}
}

func constant(tone float64) func(*Scheme) float64 {
	return func(*Scheme) float64 { return tone }
}

func keyTone(p func(*Scheme) *palette.TonalPalette) func(*Scheme) float64 {
	return func(s *Scheme) float64 { return p(s).KeyColor().Tone() }
}

// Contrast curves shared by many roles.
var (
	curveText         = NewContrastCurve(4.5, 7, 11, 21)
	curveVariantText  = NewContrastCurve(3, 4.5, 7, 11)
	curveAccent       = NewContrastCurve(3, 4.5, 7, 7)
	curveContainer    = NewContrastCurve(1, 1, 3, 4.5)
	curveOnBackground = NewContrastCurve(3, 3, 4.5, 7)
	curveOutline      = NewContrastCurve(1.5, 3, 4.5, 7)
)

func (m *MaterialColors) add(spec ColorSpec) *Color {
	c := NewColor(spec)
	m.all = append(m.all, c)
	return c
}

func (m *MaterialColors) build() {
	highest := m.HighestSurface

	m.PrimaryPaletteKeyColor = m.add(ColorSpec{Name: "primary_palette_key_color", Palette: primaryPalette, Tone: keyTone(primaryPalette)})
	m.SecondaryPaletteKeyColor = m.add(ColorSpec{Name: "secondary_palette_key_color", Palette: secondaryPalette, Tone: keyTone(secondaryPalette)})
	m.TertiaryPaletteKeyColor = m.add(ColorSpec{Name: "tertiary_palette_key_color", Palette: tertiaryPalette, Tone: keyTone(tertiaryPalette)})
	m.NeutralPaletteKeyColor = m.add(ColorSpec{Name: "neutral_palette_key_color", Palette: neutralPalette, Tone: keyTone(neutralPalette)})
	m.NeutralVariantPaletteKeyColor = m.add(ColorSpec{Name: "neutral_variant_palette_key_color", Palette: neutralVariantPalette, Tone: keyTone(neutralVariantPalette)})

	m.buildSurfaces(highest)
	m.buildPrimary(highest)
	m.buildSecondary(highest)
	m.buildTertiary(highest)
	m.buildError(highest)
	m.buildFixed(highest)

	m.ControlActivated = m.add(ColorSpec{Name: "control_activated", Palette: primaryPalette, Tone: darkLight(30, 90)})
	m.ControlNormal = m.add(ColorSpec{Name: "control_normal", Palette: neutralVariantPalette, Tone: darkLight(80, 30)})
	m.ControlHighlight = m.add(ColorSpec{
		Name:    "control_highlight",
		Palette: neutralPalette,
		Tone:    darkLight(100, 0),
		Opacity: func(s *Scheme) float64 {
			if s.IsDark() {
				return 0.20
			}
			return 0.12
		},
	})
}

func (m *MaterialColors) buildSurfaces(highest func(*Scheme) *Color) {
	m.Background = m.add(ColorSpec{Name: "background", Palette: neutralPalette, Tone: darkLight(6, 98), IsBackground: true})
	m.OnBackground = m.add(ColorSpec{
		Name:          "on_background",
		Palette:       neutralPalette,
		Tone:          darkLight(90, 10),
		Background:    func(*Scheme) *Color { return m.Background },
		ContrastCurve: curveOnBackground,
	})
	m.Surface = m.add(ColorSpec{Name: "surface", Palette: neutralPalette, Tone: darkLight(6, 98), IsBackground: true})
	m.SurfaceDim = m.add(ColorSpec{
		Name:    "surface_dim",
		Palette: neutralPalette,
		Tone: func(s *Scheme) float64 {
			if s.IsDark() {
				return 6
			}
			return NewContrastCurve(87, 87, 80, 75).Get(s.ContrastLevel())
		},
		IsBackground: true,
	})
	m.SurfaceBright = m.add(ColorSpec{
		Name:    "surface_bright",
		Palette: neutralPalette,
		Tone: func(s *Scheme) float64 {
			if s.IsDark() {
				return NewContrastCurve(24, 24, 29, 34).Get(s.ContrastLevel())
			}
			return 98
		},
		IsBackground: true,
	})
	m.SurfaceContainerLowest = m.add(ColorSpec{
		Name:         "surface_container_lowest",
		Palette:      neutralPalette,
		Tone:         surfaceCurves(NewContrastCurve(4, 4, 2, 0), NewContrastCurve(100, 100, 100, 100)),
		IsBackground: true,
	})
	m.SurfaceContainerLow = m.add(ColorSpec{
		Name:         "surface_container_low",
		Palette:      neutralPalette,
		Tone:         surfaceCurves(NewContrastCurve(10, 10, 11, 12), NewContrastCurve(96, 96, 96, 95)),
		IsBackground: true,
	})
	m.SurfaceContainer = m.add(ColorSpec{
		Name:         "surface_container",
		Palette:      neutralPalette,
		Tone:         surfaceCurves(NewContrastCurve(12, 12, 16, 20), NewContrastCurve(94, 94, 92, 90)),
		IsBackground: true,
	})
	m.SurfaceContainerHigh = m.add(ColorSpec{
		Name:         "surface_container_high",
		Palette:      neutralPalette,
		Tone:         surfaceCurves(NewContrastCurve(17, 17, 21, 25), NewContrastCurve(92, 92, 88, 85)),
		IsBackground: true,
	})
	m.SurfaceContainerHighest = m.add(ColorSpec{
		Name:         "surface_container_highest",
		Palette:      neutralPalette,
		Tone:         surfaceCurves(NewContrastCurve(22, 22, 26, 30), NewContrastCurve(90, 90, 84, 80)),
		IsBackground: true,
	})
	m.OnSurface = m.add(ColorSpec{
		Name:          "on_surface",
		Palette:       neutralPalette,
		Tone:          darkLight(90, 10),
		Background:    highest,
		ContrastCurve: NewContrastCurve(4.5, 7, 11, 21),
	})
	m.SurfaceVariant = m.add(ColorSpec{Name: "surface_variant", Palette: neutralVariantPalette, Tone: darkLight(30, 90), IsBackground: true})
	m.OnSurfaceVariant = m.add(ColorSpec{
		Name:          "on_surface_variant",
		Palette:       neutralVariantPalette,
		Tone:          darkLight(80, 30),
		Background:    highest,
		ContrastCurve: curveVariantText,
	})
	m.InverseSurface = m.add(ColorSpec{Name: "inverse_surface", Palette: neutralPalette, Tone: darkLight(90, 20)})
	m.InverseOnSurface = m.add(ColorSpec{
		Name:          "inverse_on_surface",
		Palette:       neutralPalette,
		Tone:          darkLight(20, 95),
		Background:    func(*Scheme) *Color { return m.InverseSurface },
		ContrastCurve: curveText,
	})
	m.Outline = m.add(ColorSpec{
		Name:          "outline",
		Palette:       neutralVariantPalette,
		Tone:          darkLight(60, 50),
		Background:    highest,
		ContrastCurve: curveOutline,
	})
	m.OutlineVariant = m.add(ColorSpec{
		Name:          "outline_variant",
		Palette:       neutralVariantPalette,
		Tone:          darkLight(30, 80),
		Background:    highest,
		ContrastCurve: curveContainer,
	})
	m.Shadow = m.add(ColorSpec{Name: "shadow", Palette: neutralPalette, Tone: constant(0)})
	m.Scrim = m.add(ColorSpec{Name: "scrim", Palette: neutralPalette, Tone: constant(0)})
	m.SurfaceTint = m.add(ColorSpec{Name: "surface_tint", Palette: primaryPalette, Tone: darkLight(80, 40), IsBackground: true})
}

// surfaceCurves returns a tone that follows one contrast curve in dark mode
// and another in light mode.
func surfaceCurves(dark, light *ContrastCurve) func(*Scheme) float64 {
	return func(s *Scheme) float64 {
		if s.IsDark() {
			return dark.Get(s.ContrastLevel())
		}
		return light.Get(s.ContrastLevel())
	}
}

func (m *MaterialColors) buildPrimary(highest func(*Scheme) *Color) {
	pair := func(*Scheme) ToneDeltaPair {
		return MustToneDeltaPair(m.PrimaryContainer, m.Primary, 10, Nearer, false)
	}

	m.Primary = m.add(ColorSpec{
		Name:    "primary",
		Palette: primaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(100, 0)(s)
			}
			return darkLight(80, 40)(s)
		},
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveAccent,
		ToneDeltaPair: pair,
	})
	m.OnPrimary = m.add(ColorSpec{
		Name:    "on_primary",
		Palette: primaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(10, 90)(s)
			}
			return darkLight(20, 100)(s)
		},
		Background:    func(*Scheme) *Color { return m.Primary },
		ContrastCurve: curveText,
	})
	m.PrimaryContainer = m.add(ColorSpec{
		Name:    "primary_container",
		Palette: primaryPalette,
		Tone: func(s *Scheme) float64 {
			if m.isFidelity(s) {
				return s.SourceColor().Tone()
			}
			if isMonochrome(s) {
				return darkLight(85, 25)(s)
			}
			return darkLight(30, 90)(s)
		},
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveContainer,
		ToneDeltaPair: pair,
	})
	m.OnPrimaryContainer = m.add(ColorSpec{
		Name:    "on_primary_container",
		Palette: primaryPalette,
		Tone: func(s *Scheme) float64 {
			if m.isFidelity(s) {
				return ForegroundTone(m.PrimaryContainer.spec.Tone(s), 4.5)
			}
			if isMonochrome(s) {
				return darkLight(0, 100)(s)
			}
			return darkLight(90, 10)(s)
		},
		Background:    func(*Scheme) *Color { return m.PrimaryContainer },
		ContrastCurve: curveText,
	})
	m.InversePrimary = m.add(ColorSpec{
		Name:          "inverse_primary",
		Palette:       primaryPalette,
		Tone:          darkLight(40, 80),
		Background:    func(*Scheme) *Color { return m.InverseSurface },
		ContrastCurve: curveAccent,
	})
}

func (m *MaterialColors) buildSecondary(highest func(*Scheme) *Color) {
	pair := func(*Scheme) ToneDeltaPair {
		return MustToneDeltaPair(m.SecondaryContainer, m.Secondary, 10, Nearer, false)
	}

	m.Secondary = m.add(ColorSpec{
		Name:          "secondary",
		Palette:       secondaryPalette,
		Tone:          darkLight(80, 40),
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveAccent,
		ToneDeltaPair: pair,
	})
	m.OnSecondary = m.add(ColorSpec{
		Name:    "on_secondary",
		Palette: secondaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(10, 100)(s)
			}
			return darkLight(20, 100)(s)
		},
		Background:    func(*Scheme) *Color { return m.Secondary },
		ContrastCurve: curveText,
	})
	m.SecondaryContainer = m.add(ColorSpec{
		Name:    "secondary_container",
		Palette: secondaryPalette,
		Tone: func(s *Scheme) float64 {
			initial := darkLight(30, 90)(s)
			if isMonochrome(s) {
				return darkLight(30, 85)(s)
			}
			if !m.isFidelity(s) {
				return initial
			}
			return findDesiredChromaByTone(s.SecondaryPalette().Hue(), s.SecondaryPalette().Chroma(), initial, !s.IsDark())
		},
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveContainer,
		ToneDeltaPair: pair,
	})
	m.OnSecondaryContainer = m.add(ColorSpec{
		Name:    "on_secondary_container",
		Palette: secondaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) || !m.isFidelity(s) {
				return darkLight(90, 10)(s)
			}
			return ForegroundTone(m.SecondaryContainer.spec.Tone(s), 4.5)
		},
		Background:    func(*Scheme) *Color { return m.SecondaryContainer },
		ContrastCurve: curveText,
	})
}

func (m *MaterialColors) buildTertiary(highest func(*Scheme) *Color) {
	pair := func(*Scheme) ToneDeltaPair {
		return MustToneDeltaPair(m.TertiaryContainer, m.Tertiary, 10, Nearer, false)
	}

	m.Tertiary = m.add(ColorSpec{
		Name:    "tertiary",
		Palette: tertiaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(90, 25)(s)
			}
			return darkLight(80, 40)(s)
		},
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveAccent,
		ToneDeltaPair: pair,
	})
	m.OnTertiary = m.add(ColorSpec{
		Name:    "on_tertiary",
		Palette: tertiaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(10, 90)(s)
			}
			return darkLight(20, 100)(s)
		},
		Background:    func(*Scheme) *Color { return m.Tertiary },
		ContrastCurve: curveText,
	})
	m.TertiaryContainer = m.add(ColorSpec{
		Name:    "tertiary_container",
		Palette: tertiaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(60, 49)(s)
			}
			if !m.isFidelity(s) {
				return darkLight(30, 90)(s)
			}
			proposed := s.TertiaryPalette().GetHct(s.SourceColor().Tone())
			return dislike.FixIfDisliked(proposed).Tone()
		},
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveContainer,
		ToneDeltaPair: pair,
	})
	m.OnTertiaryContainer = m.add(ColorSpec{
		Name:    "on_tertiary_container",
		Palette: tertiaryPalette,
		Tone: func(s *Scheme) float64 {
			if isMonochrome(s) {
				return darkLight(0, 100)(s)
			}
			if !m.isFidelity(s) {
				return darkLight(90, 10)(s)
			}
			return ForegroundTone(m.TertiaryContainer.spec.Tone(s), 4.5)
		},
		Background:    func(*Scheme) *Color { return m.TertiaryContainer },
		ContrastCurve: curveText,
	})
}

func (m *MaterialColors) buildError(highest func(*Scheme) *Color) {
	pair := func(*Scheme) ToneDeltaPair {
		return MustToneDeltaPair(m.ErrorContainer, m.Error, 10, Nearer, false)
	}

	m.Error = m.add(ColorSpec{
		Name:          "error",
		Palette:       errorPalette,
		Tone:          darkLight(80, 40),
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveAccent,
		ToneDeltaPair: pair,
	})
	m.OnError = m.add(ColorSpec{
		Name:          "on_error",
		Palette:       errorPalette,
		Tone:          darkLight(20, 100),
		Background:    func(*Scheme) *Color { return m.Error },
		ContrastCurve: curveText,
	})
	m.ErrorContainer = m.add(ColorSpec{
		Name:          "error_container",
		Palette:       errorPalette,
		Tone:          darkLight(30, 90),
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveContainer,
		ToneDeltaPair: pair,
	})
	m.OnErrorContainer = m.add(ColorSpec{
		Name:          "on_error_container",
		Palette:       errorPalette,
		Tone:          darkLight(90, 10),
		Background:    func(*Scheme) *Color { return m.ErrorContainer },
		ContrastCurve: curveText,
	})
}

// fixedGroup holds the tones of one palette's fixed roles: normal and
// monochrome tones for fixed, fixed-dim, on-fixed and on-fixed-variant.
type fixedGroup struct {
	prefix                                string
	palette                               func(*Scheme) *palette.TonalPalette
	fixed, fixedDim, onFixed, onVariant   float64
	monoFixed, monoDim, monoOn, monoOnVar float64
}

func monoOr(mono, normal float64) func(*Scheme) float64 {
	return func(s *Scheme) float64 {
		if isMonochrome(s) {
			return mono
		}
		return normal
	}
}

// buildFixedGroup adds the four fixed roles of g. Fixed roles keep the same
// tones in light and dark mode.
func (m *MaterialColors) buildFixedGroup(g fixedGroup, highest func(*Scheme) *Color) (fixed, dim, on, onVariant *Color) {
	pair := func(*Scheme) ToneDeltaPair {
		return MustToneDeltaPair(fixed, dim, 10, Lighter, true)
	}
	fixed = m.add(ColorSpec{
		Name:          g.prefix + "_fixed",
		Palette:       g.palette,
		Tone:          monoOr(g.monoFixed, g.fixed),
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveContainer,
		ToneDeltaPair: pair,
	})
	dim = m.add(ColorSpec{
		Name:          g.prefix + "_fixed_dim",
		Palette:       g.palette,
		Tone:          monoOr(g.monoDim, g.fixedDim),
		IsBackground:  true,
		Background:    highest,
		ContrastCurve: curveContainer,
		ToneDeltaPair: pair,
	})
	on = m.add(ColorSpec{
		Name:             "on_" + g.prefix + "_fixed",
		Palette:          g.palette,
		Tone:             monoOr(g.monoOn, g.onFixed),
		Background:       func(*Scheme) *Color { return dim },
		SecondBackground: func(*Scheme) *Color { return fixed },
		ContrastCurve:    curveText,
	})
	onVariant = m.add(ColorSpec{
		Name:             "on_" + g.prefix + "_fixed_variant",
		Palette:          g.palette,
		Tone:             monoOr(g.monoOnVar, g.onVariant),
		Background:       func(*Scheme) *Color { return dim },
		SecondBackground: func(*Scheme) *Color { return fixed },
		ContrastCurve:    curveVariantText,
	})
	return fixed, dim, on, onVariant
}

func (m *MaterialColors) buildFixed(highest func(*Scheme) *Color) {
	m.PrimaryFixed, m.PrimaryFixedDim, m.OnPrimaryFixed, m.OnPrimaryFixedVariant = m.buildFixedGroup(fixedGroup{
		prefix: "primary", palette: primaryPalette,
		fixed: 90, fixedDim: 80, onFixed: 10, onVariant: 30,
		monoFixed: 40, monoDim: 30, monoOn: 100, monoOnVar: 90,
	}, highest)
	m.SecondaryFixed, m.SecondaryFixedDim, m.OnSecondaryFixed, m.OnSecondaryFixedVariant = m.buildFixedGroup(fixedGroup{
		prefix: "secondary", palette: secondaryPalette,
		fixed: 90, fixedDim: 80, onFixed: 10, onVariant: 30,
		monoFixed: 80, monoDim: 70, monoOn: 10, monoOnVar: 25,
	}, highest)
	m.TertiaryFixed, m.TertiaryFixedDim, m.OnTertiaryFixed, m.OnTertiaryFixedVariant = m.buildFixedGroup(fixedGroup{
		prefix: "tertiary", palette: tertiaryPalette,
		fixed: 90, fixedDim: 80, onFixed: 10, onVariant: 30,
		monoFixed: 40, monoDim: 30, monoOn: 100, monoOnVar: 90,
	}, highest)
}

// findDesiredChromaByTone walks tone away from the starting tone until the
// palette reaches the requested chroma, the chroma starts falling, or tone
// runs out of range.
func findDesiredChromaByTone(hue, chroma, tone float64, byDecreasingTone bool) float64 {
	answer := tone
	closest := hct.From(hue, chroma, tone)
	if closest.Chroma() >= chroma {
		return answer
	}

	step := 1.0
	if byDecreasingTone {
		step = -1.0
	}
	peak := closest.Chroma()
	for closest.Chroma() < chroma {
		next := answer + step
		if next < 0 || next > 100 {
			break
		}
		answer = next
		candidate := hct.From(hue, chroma, answer)
		if peak > candidate.Chroma() {
			break
		}
		if math.Abs(candidate.Chroma()-chroma) < 0.4 {
			break
		}
		if math.Abs(candidate.Chroma()-chroma) < math.Abs(closest.Chroma()-chroma) {
			closest = candidate
		}
		peak = math.Max(peak, candidate.Chroma())
	}
	return answer
}
