package product

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProductType indicates a product type outside the closed set.
	ErrInvalidProductType = errors.New("invalid product type")
	// ErrInvalidProductSubtype indicates a product subtype outside the closed set.
	ErrInvalidProductSubtype = errors.New("invalid product subtype")
	// ErrInvalidTokenType indicates a token type outside the closed set.
	ErrInvalidTokenType = errors.New("invalid product token type")
	// ErrInvalidCoatedSide indicates a coated-side value outside the closed set.
	ErrInvalidCoatedSide = errors.New("invalid coated side")
	// ErrInvalidDataFileType indicates a data-file type outside the closed set.
	ErrInvalidDataFileType = errors.New("invalid data file type")
)

// Type is the top-level product category.
type Type string

const (
	TypeGlazing  Type = "GLAZING"
	TypeShading  Type = "SHADING"
	TypeMaterial Type = "MATERIAL"
)

// Valid reports membership in the closed product-type set.
func (t Type) Valid() bool {
	switch t {
	case TypeGlazing, TypeShading, TypeMaterial:
		return true
	}
	return false
}

// ParseType converts a stored type string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidProductType, s)
	}
	return t, nil
}

// TokenType describes the lifecycle state of a product token. SPD tokens are
// "proposed" while a submission is in flight; tokens visible in the database
// itself are published or undefined.
type TokenType string

const (
	// TokenPublished : the product has been added to the database and marked
	// published.
	TokenPublished TokenType = "PUBLISHED"
	// TokenUndefined : no token has been provided (and might not even be
	// applicable).
	TokenUndefined TokenType = "UNDEFINED"
	// TokenProposed : the token is part of a new submission and may never
	// become published.
	TokenProposed TokenType = "PROPOSED"
	// TokenIntragroup : a child product that exists as a separate submission
	// in the same submission group.
	TokenIntragroup TokenType = "INTRAGROUP"
	// TokenIntergroup : a child product that exists as a separate submission
	// in a different submission group.
	TokenIntergroup TokenType = "INTERGROUP"
)

// Valid reports membership in the closed token-type set.
func (tt TokenType) Valid() bool {
	switch tt {
	case TokenPublished, TokenUndefined, TokenProposed, TokenIntragroup, TokenIntergroup:
		return true
	}
	return false
}

// DatabaseTokenTypes lists the token types that can appear in the database
// itself, as opposed to submission documents.
func DatabaseTokenTypes() []TokenType {
	return []TokenType{TokenPublished, TokenUndefined}
}

// ParseTokenType converts a stored token-type string into a TokenType.
func ParseTokenType(s string) (TokenType, error) {
	tt := TokenType(s)
	if !tt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTokenType, s)
	}
	return tt, nil
}

// DataFileType names the format of the submission file a product record was
// built from.
type DataFileType string

const (
	DataFileBSDFXML    DataFileType = "BSDF XML"
	DataFileTHERM      DataFileType = "THERM"
	DataFileIGDBLegacy DataFileType = "IGDB_LEGACY_SUBMISSION_FILE"
	DataFileCGDBLegacy DataFileType = "CGDB_LEGACY_SUBMISSION_FILE"
	DataFileSPD        DataFileType = "SPD"
	DataFileOther      DataFileType = "OTHER"
)

// Valid reports membership in the closed data-file-type set.
func (ft DataFileType) Valid() bool {
	switch ft {
	case DataFileBSDFXML, DataFileTHERM, DataFileIGDBLegacy,
		DataFileCGDBLegacy, DataFileSPD, DataFileOther:
		return true
	}
	return false
}

// ParseDataFileType converts a stored data-file-type string into a
// DataFileType.
func ParseDataFileType(s string) (DataFileType, error) {
	ft := DataFileType(s)
	if !ft.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDataFileType, s)
	}
	return ft, nil
}

// CoatedSide tells which surface of a glazing product carries its coating.
type CoatedSide string

const (
	CoatedFront   CoatedSide = "FRONT"
	CoatedBack    CoatedSide = "BACK"
	CoatedBoth    CoatedSide = "BOTH"
	CoatedNeither CoatedSide = "NEITHER"
	CoatedUnknown CoatedSide = "UNKNOWN"
	CoatedNA      CoatedSide = "NA"
)

// Valid reports membership in the closed coated-side set.
func (cs CoatedSide) Valid() bool {
	switch cs {
	case CoatedFront, CoatedBack, CoatedBoth, CoatedNeither, CoatedUnknown, CoatedNA:
		return true
	}
	return false
}

// Subtype is the specific product kind within a Type.
type Subtype string

const (
	// glazing subtypes
	SubtypeMonolithic      Subtype = "MONOLITHIC"
	SubtypeLaminate        Subtype = "LAMINATE"
	SubtypeInterlayer      Subtype = "INTERLAYER"
	SubtypeEmbeddedCoating Subtype = "EMBEDDED_COATING"
	SubtypeCoated          Subtype = "COATED"
	SubtypeCoating         Subtype = "COATING"
	SubtypeAppliedFilm     Subtype = "APPLIED_FILM"
	SubtypeFilm            Subtype = "FILM"

	// hybrid glazing / shading subtypes
	SubtypeFrittedGlass     Subtype = "FRITTED_GLASS"
	SubtypeSandblastedGlass Subtype = "SANDBLASTED_GLASS"
	SubtypeAcidEtchedGlass  Subtype = "ACID_ETCHED_GLASS"
	SubtypeChromogenic      Subtype = "CHROMOGENIC"

	// shading subtypes with a geometry attached
	SubtypeVenetianBlind    Subtype = "VENETIAN_BLIND"
	SubtypeVerticalLouver   Subtype = "VERTICAL_LOUVER"
	SubtypePerforatedScreen Subtype = "PERFORATED_SCREEN"
	SubtypeWovenShade       Subtype = "WOVEN_SHADE"

	// shading subtypes carrying BSDF data instead
	SubtypeRollerShade   Subtype = "ROLLER_SHADE"
	SubtypeCellularShade Subtype = "CELLULAR_SHADE"
	SubtypePleatedShade  Subtype = "PLEATED_SHADE"
	SubtypeRomanShade    Subtype = "ROMAN_SHADE"

	SubtypeDiffusingShade Subtype = "DIFFUSING_SHADE"
	SubtypeSolarScreen    Subtype = "SOLAR_SCREEN"

	SubtypeShadeMaterial Subtype = "SHADE_MATERIAL"

	SubtypeUnknown Subtype = "UNKNOWN"
)

var subtypeDisplayNames = map[Subtype]string{
	SubtypeMonolithic:       "Monolithic",
	SubtypeLaminate:         "Laminate",
	SubtypeInterlayer:       "Interlayer",
	SubtypeEmbeddedCoating:  "Embedded coating",
	SubtypeCoated:           "Coated glass",
	SubtypeCoating:          "Coating",
	SubtypeAppliedFilm:      "Applied film",
	SubtypeFilm:             "Film",
	SubtypeFrittedGlass:     "Fritted glass",
	SubtypeSandblastedGlass: "Sandblasted glass",
	SubtypeAcidEtchedGlass:  "Acid etched glass",
	SubtypeChromogenic:      "Chromogenic",
	SubtypeVenetianBlind:    "Venetian blind",
	SubtypeVerticalLouver:   "Vertical louver",
	SubtypePerforatedScreen: "Perforated screen",
	SubtypeWovenShade:       "Woven shade",
	SubtypeRollerShade:      "Roller shade",
	SubtypeCellularShade:    "Cellular shade",
	SubtypePleatedShade:     "Pleated shade",
	SubtypeRomanShade:       "Roman shade",
	SubtypeDiffusingShade:   "Diffusing shade",
	SubtypeSolarScreen:      "Solar screen",
	SubtypeShadeMaterial:    "Shade material",
	SubtypeUnknown:          "Unknown",
}

// Valid reports membership in the closed subtype set.
func (st Subtype) Valid() bool {
	_, ok := subtypeDisplayNames[st]
	return ok
}

// DisplayName returns the human-readable form of a subtype.
func (st Subtype) DisplayName() string {
	return subtypeDisplayNames[st]
}

// ParseSubtype converts a stored subtype string into a Subtype.
func ParseSubtype(s string) (Subtype, error) {
	st := Subtype(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidProductSubtype, s)
	}
	return st, nil
}

// HasGeometry reports whether products of this subtype carry a
// GeometricProperties object.
func (st Subtype) HasGeometry() bool {
	switch st {
	case SubtypeVenetianBlind, SubtypeVerticalLouver, SubtypePerforatedScreen, SubtypeWovenShade:
		return true
	}
	return false
}

// RequiresBSDF reports whether products of this subtype must carry BSDF data
// instead of a geometry.
func (st Subtype) RequiresBSDF() bool {
	return st == SubtypeRollerShade
}

// RequiresGenBSDF reports whether products of this subtype must have a
// GEN_BSDF file attached.
func (st Subtype) RequiresGenBSDF() bool {
	switch st {
	case SubtypeCellularShade, SubtypePleatedShade, SubtypeRomanShade:
		return true
	}
	return false
}

// ShadingSubtypes lists every subtype classified as shading, including the
// hybrid glazing/shading kinds.
func ShadingSubtypes() []Subtype {
	return []Subtype{
		SubtypeVenetianBlind, SubtypeVerticalLouver, SubtypePerforatedScreen,
		SubtypeWovenShade, SubtypeRollerShade, SubtypeCellularShade,
		SubtypePleatedShade, SubtypeRomanShade, SubtypeDiffusingShade,
		SubtypeSolarScreen, SubtypeShadeMaterial,
		SubtypeFrittedGlass, SubtypeSandblastedGlass, SubtypeAcidEtchedGlass,
		SubtypeChromogenic,
	}
}
