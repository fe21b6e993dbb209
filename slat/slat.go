/*
Package slat implements the curved-slat geometry engine for blind products:
the bidirectional conversion between a slat's rise (arc height above the
chord) and its curvature (radius of the circular arc), given the slat width.

A slat profile is modelled as a circular arc. For chord width w and radius r
the rise s satisfies

	s = r − sqrt(r² − (w/2)²)

and conversely

	r = (s² + (w/2)²) / (2s)

A curvature of 0 is the flat sentinel: the slat has no curvature at all,
which is distinct from any finite radius. All arithmetic is done with
arbitrary-precision decimals in a context local to each call, so conversions
at different precisions never interfere.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package slat

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'slat'
func tracer() tracing.Trace {
	return tracing.Select("slat")
}

var (
	// ErrInvalidWidth indicates a slat width that is zero, negative, or not
	// a finite number.
	ErrInvalidWidth = errors.New("slat width must be a positive number")
	// ErrInvalidRise indicates a rise that is negative or exceeds the
	// semicircular maximum width/2.
	ErrInvalidRise = errors.New("slat rise out of range")
	// ErrInvalidCurvature indicates a nonzero radius too small to subtend a
	// chord of the slat width.
	ErrInvalidCurvature = errors.New("slat curvature cannot subtend slat width")
	// ErrInvalidTiltChoice indicates an unrecognized tilt-choice value.
	ErrInvalidTiltChoice = errors.New("unrecognized tilt choice")
)

// TiltChoice records how a consuming system should interpret slat tilt.
// It is stored alongside the geometry and passed through; it does not
// participate in the curvature math.
type TiltChoice string

const (
	// TiltFixed : the slat angle is the fixed value stored on the product.
	TiltFixed TiltChoice = "fixed"
	// TiltFromGeometry : the consumer derives the angle from rise and
	// curvature.
	TiltFromGeometry TiltChoice = "geometry"
	// TiltCustom : a consumer-defined strategy outside this library.
	TiltCustom TiltChoice = "custom"
)

// Valid reports whether tc is a member of the closed tilt-choice set.
func (tc TiltChoice) Valid() bool {
	switch tc {
	case TiltFixed, TiltFromGeometry, TiltCustom:
		return true
	}
	return false
}

// ParseTiltChoice converts a stored tilt-choice string into a TiltChoice.
func ParseTiltChoice(s string) (TiltChoice, error) {
	tc := TiltChoice(s)
	if !tc.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTiltChoice, s)
	}
	return tc, nil
}
