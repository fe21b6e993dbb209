package slat

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/igsdb/basedata"
)

// Geometry is one curved-slat geometric configuration: an immutable chord
// width, a mutually consistent rise/curvature pair, and tilt-choice
// metadata. Exactly one of rise and curvature is set by the caller; the
// other is always the value most recently derived from it at the record's
// precision.
//
// A Geometry is either Flat (rise 0, flat sentinel curvature) or Curved
// (rise > 0, radius ≥ width/2). Width cannot change after construction; a
// surrounding system that needs a different width must build a new record.
//
// Mutating the same Geometry from multiple goroutines requires external
// synchronization; the record assumes a single writer.
type Geometry struct {
	width     *apd.Decimal
	rise      *apd.Decimal
	curvature *apd.Decimal
	tilt      TiltChoice
	prec      uint32
}

// NewGeometry creates a flat slat geometry. A precision of 0 selects
// basedata.DefaultPrecision for all derivations on this record.
func NewGeometry(width *apd.Decimal, tilt TiltChoice, prec uint32) (*Geometry, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if !tilt.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTiltChoice, tilt)
	}
	if prec == 0 {
		prec = basedata.DefaultPrecision
	}
	return &Geometry{
		width:     dec(width),
		rise:      new(apd.Decimal),
		curvature: Flat(),
		tilt:      tilt,
		prec:      prec,
	}, nil
}

// NewGeometryFromRise creates a slat geometry with the given rise, deriving
// the curvature immediately.
func NewGeometryFromRise(width, rise *apd.Decimal, tilt TiltChoice, prec uint32) (*Geometry, error) {
	g, err := NewGeometry(width, tilt, prec)
	if err != nil {
		return nil, err
	}
	if err := g.SetRise(rise); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGeometryFromCurvature creates a slat geometry with the given curvature
// radius, deriving the rise immediately.
func NewGeometryFromCurvature(width, radius *apd.Decimal, tilt TiltChoice, prec uint32) (*Geometry, error) {
	g, err := NewGeometry(width, tilt, prec)
	if err != nil {
		return nil, err
	}
	if err := g.SetCurvature(radius); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the chord width of the slat.
func (g *Geometry) Width() *apd.Decimal { return dec(g.width) }

// Rise returns the arc height of the slat; 0 means flat.
func (g *Geometry) Rise() *apd.Decimal { return dec(g.rise) }

// Curvature returns the radius of curvature of the slat, or the flat
// sentinel.
func (g *Geometry) Curvature() *apd.Decimal { return dec(g.curvature) }

// TiltChoice returns the record's tilt-choice metadata.
func (g *Geometry) TiltChoice() TiltChoice { return g.tilt }

// Precision returns the number of significant digits used for derivations
// on this record.
func (g *Geometry) Precision() uint32 { return g.prec }

// IsFlat reports whether the slat currently has no curvature.
func (g *Geometry) IsFlat() bool { return g.rise.IsZero() }

// SetRise stores a new rise and derives the matching curvature. On a
// validation error the record is left unchanged.
func (g *Geometry) SetRise(rise *apd.Decimal) error {
	radius, err := CurvatureFromRise(g.width, rise, g.prec)
	if err != nil {
		return err
	}
	g.rise = dec(rise)
	g.curvature = radius
	tracer().Debugf("slat rise set to %s, curvature follows as %s",
		basedata.Format(g.rise), basedata.Format(g.curvature))
	return nil
}

// SetCurvature stores a new curvature radius and derives the matching rise.
// On a validation error the record is left unchanged.
func (g *Geometry) SetCurvature(radius *apd.Decimal) error {
	rise, err := RiseFromCurvature(g.width, radius, g.prec)
	if err != nil {
		return err
	}
	g.curvature = dec(radius)
	g.rise = rise
	tracer().Debugf("slat curvature set to %s, rise follows as %s",
		basedata.Format(g.curvature), basedata.Format(g.rise))
	return nil
}

// SetTiltChoice replaces the tilt-choice metadata. Geometry is untouched.
func (g *Geometry) SetTiltChoice(tilt TiltChoice) error {
	if !tilt.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTiltChoice, tilt)
	}
	g.tilt = tilt
	return nil
}

// Pretty Stringer for slat geometries.
func (g *Geometry) String() string {
	return fmt.Sprintf("slat(w=%s rise=%s r=%s tilt=%s)",
		basedata.Format(g.width), basedata.Format(g.rise),
		basedata.Format(g.curvature), g.tilt)
}

// dec copies a decimal so record state never aliases caller-owned values.
func dec(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(x)
}
