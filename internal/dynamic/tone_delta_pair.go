package dynamic

import "fmt"

// TonePolarity describes how the two roles of a ToneDeltaPair relate.
type TonePolarity int

// Polarities.
const (
	// Darker means role A is darker than role B.
	Darker TonePolarity = iota
	// Lighter means role A is lighter than role B.
	Lighter
	// Nearer means role A is closer in tone to the shared background.
	Nearer
	// Farther means role A is further in tone from the shared background.
	Farther
)

func (p TonePolarity) String() string {
	switch p {
	case Darker:
		return "darker"
	case Lighter:
		return "lighter"
	case Nearer:
		return "nearer"
	case Farther:
		return "farther"
	default:
		return fmt.Sprintf("polarity(%d)", int(p))
	}
}

// ToneDeltaPair requires two roles that share a background to stay at least
// Delta apart in tone, with RoleA on the Polarity side of RoleB. Both roles
// must have a contrast curve.
type ToneDeltaPair struct {
	RoleA    *Color
	RoleB    *Color
	Delta    float64
	Polarity TonePolarity
	// StayTogether moves both roles out of the 50-59 tone band when either
	// lands in it, keeping them on the same side.
	StayTogether bool
}

// NewToneDeltaPair builds a pair, rejecting a negative delta.
func NewToneDeltaPair(roleA, roleB *Color, delta float64, polarity TonePolarity, stayTogether bool) (ToneDeltaPair, error) {
	if delta < 0 {
		return ToneDeltaPair{}, fmt.Errorf("%w: %v", ErrNegativeDelta, delta)
	}
	return ToneDeltaPair{
		RoleA:        roleA,
		RoleB:        roleB,
		Delta:        delta,
		Polarity:     polarity,
		StayTogether: stayTogether,
	}, nil
}

// MustToneDeltaPair is NewToneDeltaPair for constant deltas; it panics on
// error.
func MustToneDeltaPair(roleA, roleB *Color, delta float64, polarity TonePolarity, stayTogether bool) ToneDeltaPair {
	p, err := NewToneDeltaPair(roleA, roleB, delta, polarity, stayTogether)
	if err != nil {
		panic(err)
	}
	return p
}
