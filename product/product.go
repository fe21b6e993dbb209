/*
Package product models window and shading product records: descriptions,
physical properties, composition layers, and the geometry containers of
shading products. The containers hold and pass values through; derived
geometry goes through the slat and screen packages.
*/
package product

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"

	"github.com/igsdb/basedata/material"
	"github.com/igsdb/basedata/optical"
)

// tracer writes to trace with key 'product'
func tracer() tracing.Trace {
	return tracing.Select("product")
}

// Manufacturer identifies the maker of a product.
type Manufacturer struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Extension string `json:"extension,omitempty"`
}

// Description carries the naming and marketing fields of a product.
type Description struct {
	Name                        string `json:"name,omitempty"`
	ShortDescription            string `json:"short_description,omitempty"`
	MarketingName               string `json:"marketing_name,omitempty"`
	ManufacturerByMarketingName string `json:"manufacturer_by_marketing_name,omitempty"`
	MarketingURL                string `json:"marketing_url,omitempty"`
	MarketingText               string `json:"marketing_text,omitempty"`
	MarketingAppearance         string `json:"marketing_appearance,omitempty"`
}

// PhysicalProperties groups the physical description of a product layer.
// The predefined fields correspond to user-defined emissivity and TIR
// values from submission files; when present they are consulted only as a
// fallback to calculated summary values.
type PhysicalProperties struct {
	Thickness              *apd.Decimal        `json:"thickness,omitempty"`
	PermeabilityFactor     *apd.Decimal        `json:"permeability_factor,omitempty"`
	OpticalOpenness        *apd.Decimal        `json:"optical_openness,omitempty"`
	BulkPropertiesOverride map[string]any      `json:"bulk_properties_override,omitempty"`
	IsSpecular             bool                `json:"is_specular"`
	OpticalProperties      *optical.Properties `json:"optical_properties,omitempty"`

	PredefinedTIRFront        *float64 `json:"predefined_tir_front,omitempty"`
	PredefinedTIRBack         *float64 `json:"predefined_tir_back,omitempty"`
	PredefinedEmissivityFront *float64 `json:"predefined_emissivity_front,omitempty"`
	PredefinedEmissivityBack  *float64 `json:"predefined_emissivity_back,omitempty"`
}

// NewPhysicalProperties returns physical properties with the optical slot
// populated with its defaults.
func NewPhysicalProperties() *PhysicalProperties {
	return &PhysicalProperties{
		IsSpecular:        true,
		OpticalProperties: optical.NewProperties(),
	}
}

// InterlayerDetails carries interlayer information for laminate composition.
type InterlayerDetails struct {
	InterlayerID               int          `json:"interlayer_id,omitempty"`
	InterlayerAppearance       string       `json:"interlayer_appearance,omitempty"`
	InterlayerProductName      string       `json:"interlayer_product_name,omitempty"`
	InterlayerCode             string       `json:"interlayer_code,omitempty"`
	InterlayerNominalThickness *apd.Decimal `json:"interlayer_nominal_thickness,omitempty"`
	InterlayerMaterial         string       `json:"interlayer_material,omitempty"`
}

// CompositionDetails stores layer-specific data that cannot be genericized
// into the child product model.
type CompositionDetails struct {
	Flipped   *bool        `json:"flipped,omitempty"`
	Thickness *apd.Decimal `json:"thickness,omitempty"`

	LayerFilename         string `json:"layer_filename,omitempty"`
	SubstrateDataFileName string `json:"substrate_data_file_name,omitempty"`
	CoatingID             int    `json:"coating_id,omitempty"`

	// CoatedSideFacesExterior can be set when the child product's
	// coated-side information is available, for use later when it is not.
	CoatedSideFacesExterior bool `json:"coated_side_faces_exterior"`
}

// NewProductDefinition is a reduced product embedded in a parent product's
// composition when a submission creates a dependent product inline.
type NewProductDefinition struct {
	ID           int       `json:"id,omitempty"`
	Type         Type      `json:"type,omitempty"`
	Subtype      Subtype   `json:"subtype,omitempty"`
	Token        string    `json:"token,omitempty"`
	Material     string    `json:"material,omitempty"`
	Appearance   string    `json:"appearance,omitempty"`
	TokenType    TokenType `json:"token_type,omitempty"`
	Owner        string    `json:"owner,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	Hidden       *bool     `json:"hidden,omitempty"`

	ProductDescription *Description        `json:"product_description,omitempty"`
	PhysicalProperties *PhysicalProperties `json:"physical_properties,omitempty"`

	// Code is used for interlayers.
	Code string `json:"code,omitempty"`
}

// Composition represents one composition layer of a product.
type Composition struct {
	Type                 Type                  `json:"type,omitempty"`
	Subtype              Subtype               `json:"subtype,omitempty"`
	TokenType            TokenType             `json:"token_type,omitempty"`
	Token                string                `json:"token,omitempty"`
	Index                int                   `json:"index,omitempty"`
	Name                 string                `json:"name,omitempty"`
	Thickness            *float64              `json:"thickness,omitempty"`
	CompositionDetails   *CompositionDetails   `json:"composition_details,omitempty"`
	NewProductDefinition *NewProductDefinition `json:"new_product_definition,omitempty"`

	LegacyFilename     string `json:"legacy_filename,omitempty"`
	IGDBLayerFilename  string `json:"igdb_layer_filename,omitempty"`
	IGDBLayerGlazingID int    `json:"igdb_layer_glazing_id,omitempty"`
}

// ShadeLayerProperties holds shading-layer properties carried over from the
// legacy CGDB database.
type ShadeLayerProperties struct {
	ShadeMaterialID  int          `json:"shade_material_id,omitempty"`
	HoleArea         *apd.Decimal `json:"hole_area,omitempty"` // max six decimal places in CGDB
	BSDFPath         string       `json:"bsdf_path,omitempty"`
	ConvectionFactor string       `json:"convection_factor,omitempty"` // one decimal place in CGDB
	Timestamp        int64        `json:"timestamp,omitempty"`
}

// Product is one window or shading product record.
type Product struct {
	Type      Type      `json:"type,omitempty"`
	Subtype   Subtype   `json:"subtype,omitempty"`
	TokenType TokenType `json:"token_type,omitempty"`
	Token     string    `json:"token,omitempty"`

	UnitsSystem string `json:"units_system,omitempty"` // "SI" or "IP"
	Active      bool   `json:"active"`
	ID          int    `json:"id,omitempty"`
	ProductID   int    `json:"product_id,omitempty"`

	DataFileName string       `json:"data_file_name,omitempty"`
	DataFileType DataFileType `json:"data_file_type,omitempty"`

	Deconstructable bool `json:"deconstructable"`
	// Reference products exist solely to get a child product into the
	// database via reference substrates (APPLIED_FILM and LAMINATE only).
	Reference bool `json:"reference"`

	// Version is incremented each time the product record is updated.
	Version      int          `json:"version,omitempty"`
	IGSDBVersion *apd.Decimal `json:"igsdb_version,omitempty"`

	CoatedSide  CoatedSide `json:"coated_side,omitempty"`
	CoatingName string     `json:"coating_name,omitempty"`

	// Legacy database identities.
	IGDBID              int    `json:"igdb_id,omitempty"`
	IGDBDatabaseVersion int    `json:"igdb_database_version,omitempty"`
	CGDBID              int    `json:"cgdb_id,omitempty"`
	CGDBDatabaseVersion string `json:"cgdb_database_version,omitempty"`

	ShadeProperties *ShadeLayerProperties `json:"shade_properties,omitempty"`

	Owner              string        `json:"owner,omitempty"`
	Manufacturer       string        `json:"manufacturer,omitempty"`
	Material           material.Type `json:"material,omitempty"`
	ProductDescription *Description  `json:"product_description,omitempty"`
	PublishedDate      string        `json:"published_date,omitempty"`
	Hidden             bool          `json:"hidden"`
	Appearance         string        `json:"appearance,omitempty"`
	Acceptance         string        `json:"acceptance,omitempty"`
	NFRCID             string        `json:"nfrc_id,omitempty"`
	IGSDBChecksum      string        `json:"igsdb_checksum,omitempty"`

	MaterialBulkProperties *material.BulkProperties `json:"material_bulk_properties,omitempty"`

	Composition []Composition     `json:"composition,omitempty"`
	Summaries   []optical.Summary `json:"integrated_spectral_averages_summaries,omitempty"`

	// PhysicalProperties serializes last among the official values so the
	// long spectral data ends up at the bottom of rendered JSON.
	PhysicalProperties  *PhysicalProperties  `json:"physical_properties,omitempty"`
	GeometricProperties *GeometricProperties `json:"geometric_properties,omitempty"`

	InterlayerDetails *InterlayerDetails `json:"interlayer_details,omitempty"`
	CreatedAt         string             `json:"created_at,omitempty"`
	UpdatedAt         string             `json:"updated_at,omitempty"`
	StructureLine     string             `json:"structure_line,omitempty"`
}

// New returns a product record with the customary defaults.
func New(t Type, st Subtype) (*Product, error) {
	p := &Product{
		UnitsSystem:        "SI",
		Active:             true,
		Version:            1,
		TokenType:          TokenUndefined,
		PhysicalProperties: NewPhysicalProperties(),
	}
	if err := p.SetType(string(t)); err != nil {
		return nil, err
	}
	if err := p.SetSubtype(string(st)); err != nil {
		return nil, err
	}
	return p, nil
}

// NewProposedToken mints a token for a product proposed in a submission.
func NewProposedToken() string {
	return uuid.NewString()
}

// SetType validates and stores the product type.
func (p *Product) SetType(s string) error {
	t, err := ParseType(s)
	if err != nil {
		return err
	}
	p.Type = t
	return nil
}

// SetSubtype validates and stores the product subtype.
func (p *Product) SetSubtype(s string) error {
	st, err := ParseSubtype(s)
	if err != nil {
		return err
	}
	p.Subtype = st
	return nil
}

// SetTokenType validates and stores the token type.
func (p *Product) SetTokenType(s string) error {
	tt, err := ParseTokenType(s)
	if err != nil {
		return err
	}
	p.TokenType = tt
	return nil
}

// Validate checks every closed-enum field of the record.
func (p *Product) Validate() error {
	if p.Type != "" && !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidProductType, p.Type)
	}
	if p.Subtype != "" && !p.Subtype.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidProductSubtype, p.Subtype)
	}
	if p.TokenType != "" && !p.TokenType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTokenType, p.TokenType)
	}
	if p.CoatedSide != "" && !p.CoatedSide.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCoatedSide, p.CoatedSide)
	}
	if p.Material != "" && !p.Material.Valid() {
		tracer().Errorf("product %q carries unknown material %q", p.Token, p.Material)
		return fmt.Errorf("%w: %q", material.ErrInvalidMaterial, p.Material)
	}
	return nil
}

// Name returns the product name from its description, if any.
func (p *Product) Name() string {
	if p.ProductDescription == nil {
		return ""
	}
	return p.ProductDescription.Name
}

// SetName stores the product name, creating the description on demand.
func (p *Product) SetName(name string) {
	if p.ProductDescription == nil {
		p.ProductDescription = &Description{}
	}
	p.ProductDescription.Name = name
}

// summaryFor finds the integrated summary computed under the given standard.
func (p *Product) summaryFor(standard optical.CalculationStandardName) *optical.SummaryValues {
	for i := range p.Summaries {
		if p.Summaries[i].CalculationStandard == standard {
			return p.Summaries[i].SummaryValues
		}
	}
	return nil
}

// EmissivityFront returns the front emissivity under the given standard,
// preferring calculated summary values over predefined submission values.
func (p *Product) EmissivityFront(standard optical.CalculationStandardName) *float64 {
	if v := p.summaryFor(standard); v != nil {
		if e := v.ThermalIR.EmissivityFrontHemispheric(); e != nil {
			return e
		}
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedEmissivityFront
	}
	return nil
}

// EmissivityBack returns the back emissivity under the given standard,
// preferring calculated summary values over predefined submission values.
func (p *Product) EmissivityBack(standard optical.CalculationStandardName) *float64 {
	if v := p.summaryFor(standard); v != nil {
		if e := v.ThermalIR.EmissivityBackHemispheric(); e != nil {
			return e
		}
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedEmissivityBack
	}
	return nil
}

// TIRFront returns the front thermal-IR transmittance under the given
// standard, preferring calculated summary values over predefined ones.
func (p *Product) TIRFront(standard optical.CalculationStandardName) *float64 {
	if v := p.summaryFor(standard); v != nil {
		if tir := v.ThermalIR.TransmittanceFront(); tir != nil {
			return tir
		}
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedTIRFront
	}
	return nil
}

// TIRBack returns the back thermal-IR transmittance under the given
// standard, preferring calculated summary values over predefined ones.
func (p *Product) TIRBack(standard optical.CalculationStandardName) *float64 {
	if v := p.summaryFor(standard); v != nil {
		if tir := v.ThermalIR.TransmittanceBack(); tir != nil {
			return tir
		}
	}
	if p.PhysicalProperties != nil {
		return p.PhysicalProperties.PredefinedTIRBack
	}
	return nil
}

// CanHavePredefinedThermalValues reports whether this product may carry
// predefined emissivity/TIR values from a submission file header.
// Historically only MONOLITHIC and uncoated LAMINATE products could.
func (p *Product) CanHavePredefinedThermalValues() bool {
	if p.Subtype != SubtypeMonolithic && p.Subtype != SubtypeLaminate {
		return false
	}
	if p.Subtype == SubtypeLaminate && p.HasCoatingOnSurface() {
		return false
	}
	return true
}

// HasCoatingOnSurface reports, for LAMINATE products, whether a substrate
// layer is a COATED product whose coating faces an outward surface.
func (p *Product) HasCoatingOnSurface() bool {
	if p.Subtype != SubtypeLaminate {
		return false
	}
	for i := range p.Composition {
		layer := &p.Composition[i]
		if layer.Subtype != SubtypeCoated {
			continue
		}
		if layer.CompositionDetails != nil {
			return layer.CompositionDetails.CoatedSideFacesExterior
		}
	}
	return false
}
