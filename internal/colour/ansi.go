package colour

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultSwatchWidth = 8

// Swatch returns a solid block of the colour rendered for the given terminal
// profile. With termenv.Ascii the block is plain spaces.
func Swatch(c ARGB, width int, profile termenv.Profile) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	block := strings.Repeat(" ", width)
	if profile == termenv.Ascii {
		return block
	}
	return termenv.String(block).Background(profile.Color(c.Hex())).String()
}

// SwatchWithLabel returns the swatch followed by a label and the hex code.
func SwatchWithLabel(c ARGB, label string, width int, profile termenv.Profile) string {
	return fmt.Sprintf("%s  %-32s %s", Swatch(c, width, profile), label, c)
}

// SupportsANSIColours reports whether w is a terminal that should receive
// colour escape sequences. NO_COLOR disables colour regardless of the writer.
func SupportsANSIColours(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// ProfileFor picks the colour profile for w: the environment's profile for
// terminals, plain ASCII otherwise.
func ProfileFor(w io.Writer) termenv.Profile {
	if !SupportsANSIColours(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}
