/*
Package screen computes the geometric openness of perforated-screen
products: the fraction of a repeat cell left open by the punched hole. The
hole profile is clipped against the cell boundary, so holes larger than
their spacing do not overcount.

Openness here is purely geometric. Optical openness, which also depends on
the material, lives with the optical data and is not computed by this
package.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package screen

import (
	"errors"
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'screen'
func tracer() tracing.Trace {
	return tracing.Select("screen")
}

// ErrInvalidScreen indicates screen dimensions that do not describe a
// punchable cell.
var ErrInvalidScreen = errors.New("invalid perforated screen dimensions")

// HoleType is the punched hole profile. The numeric values are the legacy
// CGDB type codes.
type HoleType int

const (
	Circular HoleType = iota
	Square
	Rectangular
)

// Valid reports whether ht is a known hole profile.
func (ht HoleType) Valid() bool {
	return ht >= Circular && ht <= Rectangular
}

// Spec describes one perforated screen: hole dimensions and the repeat
// spacing of the punch grid. For circular holes DimX is the diameter and
// DimY is ignored; for square holes DimX is the side length.
type Spec struct {
	HoleType HoleType
	DimX     float64
	DimY     float64
	SpacingX float64
	SpacingY float64
}

// circleSegments is the polygon resolution used for circular holes.
const circleSegments = 128

// HoleArea returns the open area per repeat cell: the hole profile clipped
// to the cell boundary.
func HoleArea(spec Spec) (float64, error) {
	hole, err := holePolygon(spec)
	if err != nil {
		return 0, err
	}
	cell := cellPolygon(spec)
	clipped := hole.Construct(polyclip.INTERSECTION, cell)
	a := area(clipped)
	tracer().Debugf("hole area %g in cell %g x %g", a, spec.SpacingX, spec.SpacingY)
	return a, nil
}

// Openness returns the geometric openness fraction of the screen, in [0,1].
func Openness(spec Spec) (float64, error) {
	a, err := HoleArea(spec)
	if err != nil {
		return 0, err
	}
	return a / (spec.SpacingX * spec.SpacingY), nil
}

func holePolygon(spec Spec) (polyclip.Polygon, error) {
	if !spec.HoleType.Valid() {
		return nil, fmt.Errorf("%w: unknown hole type %d", ErrInvalidScreen, spec.HoleType)
	}
	if spec.SpacingX <= 0 || spec.SpacingY <= 0 || spec.DimX <= 0 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidScreen, spec)
	}
	cx := spec.SpacingX / 2
	cy := spec.SpacingY / 2
	switch spec.HoleType {
	case Circular:
		return polyclip.Polygon{circleContour(cx, cy, spec.DimX/2)}, nil
	case Square:
		return polyclip.Polygon{boxContour(cx, cy, spec.DimX, spec.DimX)}, nil
	default: // Rectangular
		if spec.DimY <= 0 {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidScreen, spec)
		}
		return polyclip.Polygon{boxContour(cx, cy, spec.DimX, spec.DimY)}, nil
	}
}

func cellPolygon(spec Spec) polyclip.Polygon {
	return polyclip.Polygon{boxContour(spec.SpacingX/2, spec.SpacingY/2, spec.SpacingX, spec.SpacingY)}
}

func boxContour(cx, cy, w, h float64) polyclip.Contour {
	return polyclip.Contour{
		{X: cx - w/2, Y: cy - h/2},
		{X: cx + w/2, Y: cy - h/2},
		{X: cx + w/2, Y: cy + h/2},
		{X: cx - w/2, Y: cy + h/2},
	}
}

// circleContour approximates a circle by a regular polygon. The vertex
// radius is scaled so the polygon area equals the circle area, which keeps
// openness unbiased at modest segment counts.
func circleContour(cx, cy, r float64) polyclip.Contour {
	theta := 2 * math.Pi / circleSegments
	r = r * math.Sqrt(theta/math.Sin(theta))
	c := make(polyclip.Contour, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		s, co := math.Sincos(theta * float64(i))
		c = append(c, polyclip.Point{X: cx + r*co, Y: cy + r*s})
	}
	return c
}

// area sums the shoelace areas of all contours of a clipping result.
func area(pg polyclip.Polygon) float64 {
	var total float64
	for _, c := range pg {
		var a float64
		n := len(c)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a += c[i].X*c[j].Y - c[j].X*c[i].Y
		}
		total += math.Abs(a) / 2
	}
	return total
}
