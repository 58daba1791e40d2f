package score

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/hctheme/internal/colour"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		population map[colour.ARGB]int
		opts       Options
		want       []colour.ARGB
	}{
		{
			name:       "prioritises chroma when proportions are equal",
			population: map[colour.ARGB]int{0xffff0000: 1, 0xff00ff00: 1, 0xff0000ff: 1},
			opts:       DefaultOptions(),
			want:       []colour.ARGB{0xffff0000, 0xff00ff00, 0xff0000ff},
		},
		{
			name:       "falls back when nothing is colourful",
			population: map[colour.ARGB]int{0xff000000: 1},
			opts:       DefaultOptions(),
			want:       []colour.ARGB{0xff4285f4},
		},
		{
			name:       "dedupes nearby hues",
			population: map[colour.ARGB]int{0xff008772: 1, 0xff318477: 1},
			opts:       DefaultOptions(),
			want:       []colour.ARGB{0xff008772},
		},
		{
			name:       "maximises hue distance",
			population: map[colour.ARGB]int{0xff008772: 1, 0xff008587: 1, 0xff007ebc: 1},
			opts:       Options{Desired: 2},
			want:       []colour.ARGB{0xff007ebc, 0xff008772},
		},
		{
			name:       "unfiltered",
			population: map[colour.ARGB]int{0xff7ea16d: 67, 0xffd8ccae: 67, 0xff835c0d: 49},
			opts:       Options{Desired: 3, Fallback: 0xff8d3819, DisableFilter: true},
			want:       []colour.ARGB{0xff7ea16d, 0xffd8ccae, 0xff835c0d},
		},
		{
			name:       "filtered populations",
			population: map[colour.ARGB]int{0xffd33881: 14, 0xff3205cc: 77, 0xff0b48cf: 36, 0xffa08f5d: 81},
			opts:       Options{Desired: 4, Fallback: 0xff7d772b},
			want:       []colour.ARGB{0xff3205cc, 0xffa08f5d, 0xffd33881},
		},
		{
			name:       "filtered populations with three desired",
			population: map[colour.ARGB]int{0xffbe94a6: 23, 0xffc33fd7: 42, 0xff899f36: 90, 0xff94c574: 82},
			opts:       Options{Desired: 3, Fallback: 0xffaa79a4},
			want:       []colour.ARGB{0xff94c574, 0xffc33fd7, 0xffbe94a6},
		},
		{
			name:       "unfiltered single pixels",
			population: map[colour.ARGB]int{0xffdfd0c4: 1, 0xffb1bf6e: 1, 0xff887f9e: 1},
			opts:       Options{Desired: 3, DisableFilter: true},
			want:       []colour.ARGB{0xffb1bf6e, 0xff887f9e, 0xffdfd0c4},
		},
		{
			name:       "empty input uses custom fallback",
			population: map[colour.ARGB]int{},
			opts:       Options{Fallback: 0xff123456},
			want:       []colour.ARGB{0xff123456},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.population, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Score() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
