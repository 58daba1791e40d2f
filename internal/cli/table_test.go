package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/jmylchreest/hctheme/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Hex")

	table.AddRow("primary", "#445e91")
	table.AddRow("surface")
	table.AddRow("outline", "#74777f", "extra")

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if got := table.rows[1]; len(got) != 2 || got[1] != "" {
		t.Errorf("short row = %q, want padded to 2 columns", got)
	}
	if got := table.rows[2]; len(got) != 2 {
		t.Errorf("long row = %q, want truncated to 2 columns", got)
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Tone", "Colour").AlignRight(0)
	table.AddRow("0", "#000000")
	table.AddRow("100", "#ffffff")

	want := "" +
		"Tone  Colour\n" +
		"----  -------\n" +
		"   0  #000000\n" +
		" 100  #ffffff\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresEscapes(t *testing.T) {
	swatch := colour.Swatch(0xff4285f4, 4, termenv.TrueColor)
	if !strings.Contains(swatch, "\x1b[") {
		t.Fatalf("expected an escape sequence in %q", swatch)
	}

	table := NewTable("Swatch", "Name")
	table.AddRow(swatch, "blue")
	table.AddRow("    ", "grey")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	plain := ansiSequence.ReplaceAllString(lines[2], "")
	if want := strings.Replace(lines[3], "grey", "blue", 1); plain != want {
		t.Errorf("escape sequences affected alignment:\n%q\n%q", plain, want)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}

	var buf bytes.Buffer
	n, err := NewTable("A").WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != buf.Len() || buf.String() != "A\n-\n" {
		t.Errorf("WriteTo() wrote %q (%d bytes)", buf.String(), n)
	}
}

func TestDisplayWidth(t *testing.T) {
	coloured := "\x1b[48;2;66;133;244m  \x1b[0m"
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{coloured, 2},
		{coloured + "T50", 5},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.in); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
