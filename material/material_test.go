package material

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, err := Parse("GLASS")
	if err != nil || m != Glass {
		t.Errorf("expected Glass, got %v / %v", m, err)
	}
	if _, err := Parse("WOOD"); !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("expected ErrInvalidMaterial, got %v", err)
	}
}

func TestFromLegacyCode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := map[int]Type{
		1: Unknown,
		2: NotApplicable,
		3: Glass,
		4: PVB,
		5: Polycarbonate,
		6: Acrylic,
		7: PET,
	}
	for code, want := range cases {
		got, err := FromLegacyCode(code)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "code %d", code)
	}
	if _, err := FromLegacyCode(42); !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("expected ErrInvalidMaterial for unknown code, got %v", err)
	}
}

func TestLegacyCodesAscending(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	codes := LegacyCodes()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, codes)
}
