package dynamic

import (
	"fmt"
	"strings"
)

// Variant names a scheme style: how the source colour's hue and chroma are
// turned into the scheme's palettes.
type Variant int

// Scheme variants.
const (
	// Monochrome is all greys.
	Monochrome Variant = iota
	// Neutral is close to greyscale with a hint of colour.
	Neutral
	// TonalSpot is the default: pastel primary with low chroma accents.
	TonalSpot
	// Vibrant maxes out primary chroma.
	Vibrant
	// Expressive rotates the primary hue away from the source.
	Expressive
	// Fidelity keeps the source colour's chroma and places it in the
	// primary container.
	Fidelity
	// Content is Fidelity with an analogous tertiary, for content-derived
	// colours.
	Content
	// Rainbow has a playful primary and neutral greys.
	Rainbow
	// FruitSalad rotates primary and secondary away from the source.
	FruitSalad
)

var variantNames = map[Variant]string{
	Monochrome: "monochrome",
	Neutral:    "neutral",
	TonalSpot:  "tonal-spot",
	Vibrant:    "vibrant",
	Expressive: "expressive",
	Fidelity:   "fidelity",
	Content:    "content",
	Rainbow:    "rainbow",
	FruitSalad: "fruit-salad",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Monochrome, Neutral, TonalSpot, Vibrant, Expressive, Fidelity, Content, Rainbow, FruitSalad}
}

// VariantNames lists the names accepted by ParseVariant.
func VariantNames() []string {
	names := make([]string, 0, len(variantNames))
	for _, v := range Variants() {
		names = append(names, variantNames[v])
	}
	return names
}

// String returns the variant's name.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant parses a variant name, ignoring case and accepting "_" or
// a space in place of "-".
func ParseVariant(s string) (Variant, error) {
	normalised := strings.ToLower(strings.TrimSpace(s))
	normalised = strings.NewReplacer("_", "-", " ", "-").Replace(normalised)
	if normalised == "tonalspot" {
		normalised = "tonal-spot"
	}
	if normalised == "fruitsalad" {
		normalised = "fruit-salad"
	}
	for v, name := range variantNames {
		if name == normalised {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownVariant, s, strings.Join(VariantNames(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	name, ok := variantNames[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
