package dynamic

import "errors"

var (
	// ErrNegativeDelta is returned when a tone delta pair is given a
	// negative delta.
	ErrNegativeDelta = errors.New("tone delta must not be negative")

	// ErrMissingPalette is returned when a scheme is built without one of
	// its required palettes.
	ErrMissingPalette = errors.New("missing palette")

	// ErrContrastLevel is returned for contrast levels outside [-1, 1].
	ErrContrastLevel = errors.New("contrast level must be between -1 and 1")

	// ErrUnknownVariant is returned when parsing an unrecognised variant.
	ErrUnknownVariant = errors.New("unknown variant")
)
