/*
Package material holds the bulk-material descriptions attached to glazing
and shading products, and the mapping from legacy database material codes.
*/
package material

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// ErrInvalidMaterial indicates a material outside the closed set, or an
// unknown legacy code.
var ErrInvalidMaterial = errors.New("invalid material type")

// Type is the bulk material of a product layer.
type Type string

const (
	Unknown       Type = "UNKNOWN"
	NotApplicable Type = "NA"
	Glass         Type = "GLASS"
	PVB           Type = "PVB"
	Polycarbonate Type = "POLYCARBONATE"
	Acrylic       Type = "ACRYLIC"
	PET           Type = "PET"
)

// Valid reports membership in the closed material set.
func (t Type) Valid() bool {
	switch t {
	case Unknown, NotApplicable, Glass, PVB, Polycarbonate, Acrylic, PET:
		return true
	}
	return false
}

// Parse converts a stored material string into a Type.
func Parse(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMaterial, s)
	}
	return t, nil
}

// Legacy IGDB material codes. A sorted map keeps iteration over codes in
// ascending, deterministic order for reports and migrations.
var legacyCodes = treemap.NewWithIntComparator()

func init() {
	legacyCodes.Put(1, Unknown)
	legacyCodes.Put(2, NotApplicable)
	legacyCodes.Put(3, Glass)
	legacyCodes.Put(4, PVB)
	legacyCodes.Put(5, Polycarbonate)
	legacyCodes.Put(6, Acrylic)
	legacyCodes.Put(7, PET)
}

// FromLegacyCode maps a legacy IGDB material code to its material type.
func FromLegacyCode(code int) (Type, error) {
	t, ok := legacyCodes.Get(code)
	if !ok {
		return "", fmt.Errorf("%w: legacy code %d", ErrInvalidMaterial, code)
	}
	return t.(Type), nil
}

// LegacyCodes lists all known legacy codes in ascending order.
func LegacyCodes() []int {
	codes := make([]int, 0, legacyCodes.Size())
	it := legacyCodes.Iterator()
	for it.Next() {
		codes = append(codes, it.Key().(int))
	}
	return codes
}

// BulkProperties describes the physical bulk properties of a material.
type BulkProperties struct {
	Name               string             `json:"name,omitempty"`
	DisplayName        string             `json:"display_name,omitempty"`
	Version            string             `json:"version,omitempty"`
	Conductivity       *float64           `json:"conductivity,omitempty"`
	YoungsModulus      *float64           `json:"youngs_modulus,omitempty"`
	PoissonsRatio      *float64           `json:"poissons_ratio,omitempty"`
	Elasticity         *float64           `json:"elasticity,omitempty"`
	MoistureProperties map[string]float64 `json:"moisture_properties,omitempty"`
}
