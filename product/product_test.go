package product

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/igsdb/basedata/material"
	"github.com/igsdb/basedata/optical"
)

func f(v float64) *float64 { return &v }

func TestNewProductDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, err := New(TypeShading, SubtypeVenetianBlind)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.UnitsSystem != "SI" || !p.Active || p.Version != 1 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.PhysicalProperties == nil || p.PhysicalProperties.OpticalProperties == nil {
		t.Errorf("expected physical properties with optical slot populated")
	}
	if p.PhysicalProperties.OpticalProperties.OpticalDataType != optical.Discrete {
		t.Errorf("expected discrete optical data by default")
	}
}

func TestNewProductRejectsBadEnums(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := New(Type("WALL"), SubtypeMonolithic); !errors.Is(err, ErrInvalidProductType) {
		t.Errorf("expected ErrInvalidProductType, got %v", err)
	}
	if _, err := New(TypeGlazing, Subtype("BRICK")); !errors.Is(err, ErrInvalidProductSubtype) {
		t.Errorf("expected ErrInvalidProductSubtype, got %v", err)
	}
}

func TestParseDataFileType(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ft, err := ParseDataFileType("BSDF XML")
	if err != nil {
		t.Fatalf("ParseDataFileType failed: %v", err)
	}
	if ft != DataFileBSDFXML {
		t.Errorf("expected BSDF XML, got %s", ft)
	}
	if _, err := ParseDataFileType("DOCX"); !errors.Is(err, ErrInvalidDataFileType) {
		t.Errorf("expected ErrInvalidDataFileType, got %v", err)
	}
}

func TestSetTokenType(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(TypeGlazing, SubtypeMonolithic)
	if err := p.SetTokenType("PROPOSED"); err != nil {
		t.Fatalf("SetTokenType failed: %v", err)
	}
	if p.TokenType != TokenProposed {
		t.Errorf("expected PROPOSED, got %s", p.TokenType)
	}
	if err := p.SetTokenType("BORROWED"); !errors.Is(err, ErrInvalidTokenType) {
		t.Errorf("expected ErrInvalidTokenType, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(TypeGlazing, SubtypeCoated)
	p.CoatedSide = CoatedFront
	p.Material = material.Glass
	if err := p.Validate(); err != nil {
		t.Errorf("expected a valid record, got %v", err)
	}
	p.Material = material.Type("CHEESE")
	if err := p.Validate(); !errors.Is(err, material.ErrInvalidMaterial) {
		t.Errorf("expected ErrInvalidMaterial, got %v", err)
	}
}

func TestNameCreatesDescriptionOnDemand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(TypeGlazing, SubtypeMonolithic)
	if p.Name() != "" {
		t.Errorf("expected empty name on a fresh record")
	}
	p.SetName("Clear Float 6mm")
	if p.Name() != "Clear Float 6mm" {
		t.Errorf("expected name passthrough, got %q", p.Name())
	}
}

func TestNewProposedTokenIsUnique(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if NewProposedToken() == NewProposedToken() {
		t.Errorf("expected distinct proposed tokens")
	}
}

func TestEmissivityPrefersSummaryOverPredefined(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(TypeGlazing, SubtypeMonolithic)
	p.PhysicalProperties.PredefinedEmissivityFront = f(0.84)
	assert.Equal(t, 0.84, *p.EmissivityFront(optical.StandardNFRC),
		"predefined value should be the fallback")

	p.Summaries = []optical.Summary{{
		CalculationStandard: optical.StandardNFRC,
		SummaryValues: &optical.SummaryValues{
			ThermalIR: &optical.ThermalIRResults{
				AbsorptanceFrontHemispheric: f(0.837),
				AbsorptanceBackHemispheric:  f(0.112),
			},
		},
	}}
	assert.Equal(t, 0.837, *p.EmissivityFront(optical.StandardNFRC),
		"summary value should win over the predefined one")
	assert.Equal(t, 0.112, *p.EmissivityBack(optical.StandardNFRC))
	assert.Equal(t, 0.84, *p.EmissivityFront(optical.StandardCES),
		"a standard without a summary falls back to the predefined value")
}

func TestTIRLookup(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(TypeGlazing, SubtypeMonolithic)
	assert.Nil(t, p.TIRFront(optical.StandardNFRC))
	p.Summaries = []optical.Summary{{
		CalculationStandard: optical.StandardNFRC,
		SummaryValues: &optical.SummaryValues{
			ThermalIR: &optical.ThermalIRResults{
				TransmittanceFrontDiffuseDiffuse: f(0.001),
			},
		},
	}}
	assert.Equal(t, 0.001, *p.TIRFront(optical.StandardNFRC))
	assert.Nil(t, p.TIRBack(optical.StandardNFRC))
}

func TestCanHavePredefinedThermalValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mono, _ := New(TypeGlazing, SubtypeMonolithic)
	if !mono.CanHavePredefinedThermalValues() {
		t.Errorf("monolithic products may carry predefined thermal values")
	}
	coated, _ := New(TypeGlazing, SubtypeCoated)
	if coated.CanHavePredefinedThermalValues() {
		t.Errorf("coated products may not carry predefined thermal values")
	}
	lam, _ := New(TypeGlazing, SubtypeLaminate)
	if !lam.CanHavePredefinedThermalValues() {
		t.Errorf("an uncoated laminate may carry predefined thermal values")
	}
	lam.Composition = []Composition{{
		Subtype: SubtypeCoated,
		CompositionDetails: &CompositionDetails{
			CoatedSideFacesExterior: true,
		},
	}}
	if lam.CanHavePredefinedThermalValues() {
		t.Errorf("a surface-coated laminate may not carry predefined thermal values")
	}
}

func TestSubtypeClassification(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, SubtypeVenetianBlind.HasGeometry())
	assert.True(t, SubtypeWovenShade.HasGeometry())
	assert.False(t, SubtypeRollerShade.HasGeometry())
	assert.True(t, SubtypeRollerShade.RequiresBSDF())
	assert.True(t, SubtypePleatedShade.RequiresGenBSDF())
	assert.False(t, SubtypeMonolithic.RequiresGenBSDF())
	assert.Equal(t, "Venetian blind", SubtypeVenetianBlind.DisplayName())
	assert.Contains(t, ShadingSubtypes(), SubtypePerforatedScreen)
}

func TestProductJSONRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(TypeShading, SubtypeVenetianBlind)
	p.SetName("Slim Slat 25")
	p.GeometricProperties = &GeometricProperties{
		Geometry: &BlindGeometry{
			SlatWidth:     "25",
			SlatSpacing:   "20",
			Rise:          "2.5",
			SlatCurvature: "32.5",
		},
	}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Product
	back.GeometricProperties = &GeometricProperties{Geometry: &BlindGeometry{}}
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(p.ProductDescription, back.ProductDescription); diff != "" {
		t.Errorf("description changed over the wire (-want +got):\n%s", diff)
	}
	bg, ok := back.GeometricProperties.Geometry.(*BlindGeometry)
	if !ok {
		t.Fatalf("expected blind geometry back, got %T", back.GeometricProperties.Geometry)
	}
	if bg.SlatWidth != "25" || bg.Rise != "2.5" {
		t.Errorf("geometry fields changed over the wire: %+v", bg)
	}
}
