package generate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidWidth   = errors.New("generate: width out of range")
	ErrUnknownProfile = errors.New("generate: unknown profile")
	ErrInvalidBias    = errors.New("generate: bias must be non-negative with a positive denominator")
)

// Profile selects one of the two generator behaviour sets.
type Profile string

const (
	ProfileA Profile = "a"
	ProfileB Profile = "b"
)

func ParseProfile(s string) (Profile, error) {
	switch p := Profile(strings.ToLower(strings.TrimSpace(s))); p {
	case ProfileA, ProfileB:
		return p, nil
	case "":
		return ProfileA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

// Config drives a Generator. Zero values for the bias, Power and Eta fall
// back to the defaults of the selected pattern.
type Config struct {
	Mode            int
	Profile         Profile
	BiasNumerator   int
	BiasDenominator int
	Power           int
	Eta             int
}

func (c Config) validate() error {
	if c.Profile != ProfileA && c.Profile != ProfileB {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
	}
	if c.BiasNumerator < 0 || c.BiasDenominator < 0 {
		return ErrInvalidBias
	}
	if c.BiasNumerator > 0 && c.BiasDenominator == 0 {
		return ErrInvalidBias
	}
	return nil
}

// bias returns the configured skew or def when none is set.
func (c Config) bias(def Bias) Bias {
	if c.BiasDenominator == 0 {
		return def
	}
	return Bias{Num: c.BiasNumerator, Den: c.BiasDenominator}
}

// Bias pushes randomized rows toward Num/Den of the grid height, spread
// over 1/Den of it.
type Bias struct {
	Num int
	Den int
}

var (
	QuarterBias = Bias{Num: 3, Den: 4}
	FifthBias   = Bias{Num: 4, Den: 5}
)

// Row maps a uniform variate u in [0,1) to a row for a grid of width cells.
func (b Bias) Row(u float64, width int) int {
	w := float64(width)
	return int(u*w/float64(b.Den) + w*float64(b.Num)/float64(b.Den))
}
