package theme

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dynamic"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantMode    Mode
		wantPrimary colour.ARGB
		wantSurface colour.ARGB
	}{
		{
			name:        "auto mode picks light for a light source",
			opts:        DefaultOptions(0xff4285f4),
			wantMode:    ModeLight,
			wantPrimary: 0xff445e91,
			wantSurface: 0xfff9f9ff,
		},
		{
			name:        "auto mode picks dark for a dark source",
			opts:        DefaultOptions(0xff0000ff),
			wantMode:    ModeDark,
			wantPrimary: 0xffbec2ff,
			wantSurface: 0xff131318,
		},
		{
			name:        "explicit dark",
			opts:        Options{Source: 0xff4285f4, Variant: dynamic.TonalSpot, Mode: ModeDark},
			wantMode:    ModeDark,
			wantPrimary: 0xffadc6ff,
			wantSurface: 0xff111318,
		},
		{
			name:        "vibrant light",
			opts:        Options{Source: 0xff0000ff, Variant: dynamic.Vibrant, Mode: ModeLight},
			wantMode:    ModeLight,
			wantPrimary: 0xff343dff,
			wantSurface: 0xfffbf8ff,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Build(tt.opts)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if th.Mode != tt.wantMode {
				t.Errorf("Mode = %s, want %s", th.Mode, tt.wantMode)
			}
			primary, ok := th.Role("primary")
			if !ok {
				t.Fatal("primary role missing")
			}
			if primary.Color != tt.wantPrimary {
				t.Errorf("primary = %s, want %s", primary.Color, tt.wantPrimary)
			}
			surface, _ := th.Role("surface")
			if surface.Color != tt.wantSurface {
				t.Errorf("surface = %s, want %s", surface.Color, tt.wantSurface)
			}
			if len(th.Roles) != len(dynamic.NewMaterialColors(false).All()) {
				t.Errorf("got %d roles, want every catalog role", len(th.Roles))
			}
			if len(th.Palettes) != 6 {
				t.Errorf("got %d palettes, want 6", len(th.Palettes))
			}
			for _, p := range th.Palettes {
				if len(p.Tones) != len(StandardTones) {
					t.Errorf("palette %s has %d tones, want %d", p.Name, len(p.Tones), len(StandardTones))
				}
				if p.Tones[0].Color != 0xff000000 || p.Tones[len(p.Tones)-1].Color != 0xffffffff {
					t.Errorf("palette %s does not run from black to white", p.Name)
				}
			}
		})
	}
}

func TestBuildLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Level: hclog.Debug, Output: &buf})
	opts := DefaultOptions(0xff4285f4)
	opts.Logger = logger
	if _, err := Build(opts); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(buf.String(), "building theme") || !strings.Contains(buf.String(), "source=#4285f4") {
		t.Errorf("debug log missing build details:\n%s", buf.String())
	}
}

func TestBuildRejectsContrastLevel(t *testing.T) {
	opts := DefaultOptions(0xff4285f4)
	opts.ContrastLevel = 3
	if _, err := Build(opts); err == nil {
		t.Fatal("Build() expected error for contrast level 3")
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	th, err := Build(DefaultOptions(0xff4285f4))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, th, FormatJSON, EncodeOptions{}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"color": "#445e91"`) {
		t.Errorf("JSON output does not encode colours as hex:\n%.400s", buf.String())
	}

	var back Theme
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(*th, back); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	th, err := Build(Options{Source: 0xffff0000, Variant: dynamic.Content, Mode: ModeDark, ContrastLevel: 0.5})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, th, FormatYAML, EncodeOptions{}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "variant: content") {
		t.Errorf("YAML output missing variant:\n%.400s", buf.String())
	}

	var back Theme
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(*th, back); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeText(t *testing.T) {
	th, err := Build(DefaultOptions(0xff4285f4))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, th, FormatText, EncodeOptions{Palettes: true}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Variant:  tonal-spot", "Mode:     light", "primary", "#445e91", "Contrast ratio", "neutral_variant (hue"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}

	buf.Reset()
	if err := Encode(&buf, th, FormatText, EncodeOptions{Preview: true, Profile: termenv.Ascii}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("ASCII profile output contains escape sequences")
	}

	if err := Encode(&buf, th, Format("toml"), EncodeOptions{}); err == nil {
		t.Error("Encode(toml) expected error")
	}
}

func TestParseFormatAndMode(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML, " text ": FormatText} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) expected error")
	}

	for in, want := range map[string]Mode{"": ModeAuto, "auto": ModeAuto, "Dark": ModeDark, "light": ModeLight} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseMode("dim"); err == nil {
		t.Error("ParseMode(dim) expected error")
	}

	if !ModeAuto.IsDark(20) || ModeAuto.IsDark(80) || !ModeDark.IsDark(90) || ModeLight.IsDark(10) {
		t.Error("IsDark() resolved a mode incorrectly")
	}
}
