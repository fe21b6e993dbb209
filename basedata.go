/*
Package basedata models window and shading product records for a materials
database: product and material containers, closed enumerations, and the
slat-curvature geometry engine in package slat.

The root package holds the numeric discipline shared by the subpackages.
Geometry and physical-property fields travel as decimal strings, so all
derived-value arithmetic is done with arbitrary-precision decimals. Every
computation builds its own context at an explicitly requested precision;
there is no ambient or global precision setting.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package basedata

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'igsdb.basedata'
func tracer() tracing.Trace {
	return tracing.Select("igsdb.basedata")
}

// === Decimal Numeric Discipline ============================================

// DefaultPrecision is the number of significant digits used when a caller
// does not request an explicit precision. It matches the default context of
// the decimal arithmetic the original database tooling was built on.
const DefaultPrecision uint32 = 28

// ErrInvalidDecimal indicates a string field that does not hold a finite
// decimal number.
var ErrInvalidDecimal = errors.New("not a finite decimal number")

// Context returns a fresh arithmetic context fixed at prec significant
// digits. Each call gets its own context, so concurrent computations with
// different precision requests cannot interfere with one another.
// A precision of 0 selects DefaultPrecision.
func Context(prec uint32) *apd.Context {
	if prec == 0 {
		prec = DefaultPrecision
	}
	return apd.BaseContext.WithPrecision(prec)
}

// Epsilon is the rounding tolerance implied by a precision: one unit in the
// first significant place beyond it, 10^(1−prec). Values whose relative
// difference stays below ε are considered equal at that precision.
func Epsilon(prec uint32) *apd.Decimal {
	if prec == 0 {
		prec = DefaultPrecision
	}
	return apd.New(1, 1-int32(prec))
}

// IsZero is a predicate: is d = 0 at precision prec?
func IsZero(d *apd.Decimal, prec uint32) bool {
	if d == nil {
		return false
	}
	var abs apd.Decimal
	abs.Abs(d)
	return abs.Cmp(Epsilon(prec)) <= 0
}

// Zap returns d unchanged unless d "means" to be zero at precision prec,
// in which case an exact zero is returned.
func Zap(d *apd.Decimal, prec uint32) *apd.Decimal {
	if IsZero(d, prec) {
		return new(apd.Decimal)
	}
	return d
}

// Parse converts a decimal string field into a decimal number. Non-finite
// values (NaN, infinities) are rejected: record fields never carry them.
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	if d.Form != apd.Finite {
		tracer().Errorf("parsed non-finite decimal from %q", s)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return d, nil
}

// Format renders a decimal the way record fields store it: plain notation,
// no exponent. Trailing zeros left over from context-precision arithmetic
// are dropped, so an exact quotient like 2600/20 renders as "130".
func Format(d *apd.Decimal) string {
	var r apd.Decimal
	r.Reduce(d)
	return r.Text('f')
}
