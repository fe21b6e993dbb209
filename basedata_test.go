package basedata

import (
	"errors"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestContextIsolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c1 := Context(5)
	c2 := Context(12)
	if c1.Precision != 5 || c2.Precision != 12 {
		t.Errorf("expected independent precisions 5 and 12, got %d and %d",
			c1.Precision, c2.Precision)
	}
	if Context(0).Precision != DefaultPrecision {
		t.Errorf("expected precision 0 to select the default")
	}
}

func TestEpsilon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	eps := Epsilon(4)
	if eps.Cmp(apd.New(1, -3)) != 0 {
		t.Errorf("expected ε(4) = 0.001, got %s", eps)
	}
}

func TestIsZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	small := apd.New(1, -9)
	if !IsZero(small, 6) {
		t.Errorf("expected 1e-9 to be zero at precision 6")
	}
	if IsZero(small, 12) {
		t.Errorf("expected 1e-9 to be nonzero at precision 12")
	}
}

func TestZap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	z := Zap(apd.New(1, -20), 6)
	if !z.IsZero() {
		t.Errorf("expected Zap to return exact zero, got %s", z)
	}
}

func TestParseRejectsNonFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, s := range []string{"NaN", "Infinity", "-Inf", "bogus", ""} {
		if _, err := Parse(s); !errors.Is(err, ErrInvalidDecimal) {
			t.Errorf("expected ErrInvalidDecimal for %q, got %v", s, err)
		}
	}
}

func TestParseFormatRoundtrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := Parse("130.25")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Format(d); got != "130.25" {
		t.Errorf("expected plain notation 130.25, got %s", got)
	}
}

func TestFormatDropsTrailingZeros(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Context arithmetic pads exact results to full precision; the string
	// form must not carry that padding.
	q := new(apd.Decimal)
	if _, err := Context(28).Quo(q, apd.New(2600, 0), apd.New(20, 0)); err != nil {
		t.Fatalf("Quo failed: %v", err)
	}
	if got := Format(q); got != "130" {
		t.Errorf("expected 2600/20 to format as 130, got %s", got)
	}
	if got := Format(apd.New(0, 0)); got != "0" {
		t.Errorf("expected zero to format as 0, got %s", got)
	}
}
