package slat

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/igsdb/basedata"
)

// The conversions in this file are pure and stateless. Each call builds its
// own arithmetic context at the requested precision; nothing is shared
// between calls.
//
// Boundary tolerance: comparisons against the geometric limits (rise vs.
// width/2, discriminant vs. 0) use the relative tolerance ε = 10^(1−prec)
// scaled by the compared magnitude, see basedata.Epsilon. Values inside the
// tolerance band are treated as sitting exactly on the boundary, which keeps
// rounding noise from turning legal semicircular slats into errors. The
// boundary itself is inclusive: radius = width/2 and rise = width/2 are
// valid and denote the semicircular limit.

// Flat returns the sentinel curvature value meaning "no curvature".
func Flat() *apd.Decimal {
	return new(apd.Decimal)
}

// IsFlat reports whether a curvature value is the flat sentinel.
func IsFlat(radius *apd.Decimal) bool {
	return radius != nil && radius.Form == apd.Finite && radius.IsZero()
}

// RiseFromCurvature computes the rise (sagitta) of a slat of the given chord
// width curved at the given radius, at prec significant digits. The flat
// sentinel maps to an exact rise of 0. A nonzero radius smaller than
// width/2, beyond the rounding tolerance, is rejected with
// ErrInvalidCurvature.
func RiseFromCurvature(width, radius *apd.Decimal, prec uint32) (*apd.Decimal, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if radius == nil || radius.Form != apd.Finite || radius.Sign() < 0 {
		return nil, fmt.Errorf("%w: radius %v is not a non-negative finite number",
			ErrInvalidCurvature, radius)
	}
	if radius.IsZero() { // flat sentinel
		return new(apd.Decimal), nil
	}
	ctx := basedata.Context(prec)
	half := new(apd.Decimal)
	if _, err := ctx.Quo(half, width, apd.New(2, 0)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWidth, err)
	}
	r2 := new(apd.Decimal)
	h2 := new(apd.Decimal)
	disc := new(apd.Decimal)
	_, _ = ctx.Mul(r2, radius, radius)
	_, _ = ctx.Mul(h2, half, half)
	_, _ = ctx.Sub(disc, r2, h2)
	if disc.Sign() < 0 {
		// A discriminant slightly below zero is rounding noise from a
		// semicircular slat; anything beyond the tolerance means the radius
		// genuinely cannot subtend the chord.
		tol := new(apd.Decimal)
		_, _ = ctx.Mul(tol, r2, basedata.Epsilon(prec))
		var abs apd.Decimal
		abs.Abs(disc)
		if abs.Cmp(tol) > 0 {
			tracer().Debugf("discriminant %s negative beyond tolerance %s", disc, tol)
			return nil, fmt.Errorf("%w: radius %s < half of width %s",
				ErrInvalidCurvature, basedata.Format(radius), basedata.Format(width))
		}
		disc.SetInt64(0)
	}
	root := new(apd.Decimal)
	if _, err := ctx.Sqrt(root, disc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurvature, err)
	}
	rise := new(apd.Decimal)
	_, _ = ctx.Sub(rise, radius, root)
	return rise, nil
}

// CurvatureFromRise computes the radius of the circular arc a slat of the
// given chord width takes on to reach the given rise, at prec significant
// digits. A rise of 0 maps to the flat sentinel. A rise above the
// semicircular maximum width/2, beyond the rounding tolerance, is rejected
// with ErrInvalidRise.
func CurvatureFromRise(width, rise *apd.Decimal, prec uint32) (*apd.Decimal, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if rise == nil || rise.Form != apd.Finite || rise.Sign() < 0 {
		return nil, fmt.Errorf("%w: rise %v is not a non-negative finite number",
			ErrInvalidRise, rise)
	}
	if rise.IsZero() { // flat slat, no division by zero
		return Flat(), nil
	}
	ctx := basedata.Context(prec)
	half := new(apd.Decimal)
	if _, err := ctx.Quo(half, width, apd.New(2, 0)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWidth, err)
	}
	over := new(apd.Decimal)
	_, _ = ctx.Sub(over, rise, half)
	if over.Sign() > 0 {
		tol := new(apd.Decimal)
		_, _ = ctx.Mul(tol, half, basedata.Epsilon(prec))
		if over.Cmp(tol) > 0 {
			return nil, fmt.Errorf("%w: rise %s exceeds semicircular maximum %s",
				ErrInvalidRise, basedata.Format(rise), basedata.Format(half))
		}
		rise = half // clamp rounding noise onto the boundary
	}
	s2 := new(apd.Decimal)
	num := new(apd.Decimal)
	den := new(apd.Decimal)
	radius := new(apd.Decimal)
	_, _ = ctx.Mul(s2, rise, rise)
	_, _ = ctx.Mul(num, half, half)
	_, _ = ctx.Add(num, num, s2)
	_, _ = ctx.Mul(den, rise, apd.New(2, 0))
	if _, err := ctx.Quo(radius, num, den); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRise, err)
	}
	return radius, nil
}

func checkWidth(width *apd.Decimal) error {
	if width == nil || width.Form != apd.Finite || width.Sign() <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidWidth, width)
	}
	return nil
}
