package theme

import (
	"fmt"
	"strings"
)

// Mode selects light or dark output.
type Mode int

const (
	// ModeAuto picks dark for dark source colours and light otherwise.
	ModeAuto Mode = iota
	// ModeDark is light text on dark surfaces.
	ModeDark
	// ModeLight is dark text on light surfaces.
	ModeLight
)

// autoDarkBelowTone is the source tone under which ModeAuto chooses dark.
const autoDarkBelowTone = 50.0

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode parses "auto", "dark" or "light".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ModeAuto, nil
	case "dark":
		return ModeDark, nil
	case "light":
		return ModeLight, nil
	default:
		return ModeAuto, fmt.Errorf("invalid mode %q (valid: auto, dark, light)", s)
	}
}

// IsDark resolves the mode for a source colour of the given tone.
func (m Mode) IsDark(sourceTone float64) bool {
	switch m {
	case ModeDark:
		return true
	case ModeLight:
		return false
	default:
		return sourceTone < autoDarkBelowTone
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
