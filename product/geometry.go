package product

import (
	"fmt"

	"github.com/igsdb/basedata"
	"github.com/igsdb/basedata/screen"
	"github.com/igsdb/basedata/slat"
)

// Geometry is the marker for the geometry containers a shading product may
// carry. Which concrete type applies follows from the product subtype.
type Geometry interface {
	isGeometry()
}

// GeometricProperties is the geometry slot of a product record.
type GeometricProperties struct {
	Geometry Geometry `json:"geometry,omitempty"`
}

// BlindGeometry describes slat-based shading products. Dimensional fields
// are stored as decimal strings, the way they are serialized; the slat
// package does the actual geometry.
type BlindGeometry struct {
	SlatWidth     string          `json:"slat_width,omitempty"`
	SlatSpacing   string          `json:"slat_spacing,omitempty"`
	SlatTilt      string          `json:"slat_tilt,omitempty"`
	SlatCurvature string          `json:"slat_curvature,omitempty"`
	Rise          string          `json:"rise,omitempty"`
	NSegments     int             `json:"n_segments,omitempty"`
	TiltChoice    slat.TiltChoice `json:"tilt_choice,omitempty"`
}

func (*BlindGeometry) isGeometry() {}

// SlatGeometry builds the slat geometry record for this blind at the given
// precision. The rise field wins when both rise and curvature are present;
// they are kept consistent by the setters anyway.
func (g *BlindGeometry) SlatGeometry(prec uint32) (*slat.Geometry, error) {
	width, err := basedata.Parse(g.SlatWidth)
	if err != nil {
		return nil, fmt.Errorf("slat width: %w", err)
	}
	tilt := g.TiltChoice
	if tilt == "" {
		tilt = slat.TiltFixed
	}
	if g.Rise != "" {
		rise, err := basedata.Parse(g.Rise)
		if err != nil {
			return nil, fmt.Errorf("slat rise: %w", err)
		}
		return slat.NewGeometryFromRise(width, rise, tilt, prec)
	}
	if g.SlatCurvature != "" {
		radius, err := basedata.Parse(g.SlatCurvature)
		if err != nil {
			return nil, fmt.Errorf("slat curvature: %w", err)
		}
		return slat.NewGeometryFromCurvature(width, radius, tilt, prec)
	}
	return slat.NewGeometry(width, tilt, prec)
}

// freshSlatGeometry builds a flat slat geometry from the width field alone.
// The setters start from this so that stale or unparsable rise/curvature
// fields on a deserialized record can be overwritten.
func (g *BlindGeometry) freshSlatGeometry(prec uint32) (*slat.Geometry, error) {
	width, err := basedata.Parse(g.SlatWidth)
	if err != nil {
		return nil, fmt.Errorf("slat width: %w", err)
	}
	tilt := g.TiltChoice
	if tilt == "" {
		tilt = slat.TiltFixed
	}
	return slat.NewGeometry(width, tilt, prec)
}

// SetRise stores a new rise and derives the matching curvature through the
// slat engine. Both string fields are rewritten together, or neither.
func (g *BlindGeometry) SetRise(rise string, prec uint32) error {
	sg, err := g.freshSlatGeometry(prec)
	if err != nil {
		return err
	}
	r, err := basedata.Parse(rise)
	if err != nil {
		return fmt.Errorf("slat rise: %w", err)
	}
	if err := sg.SetRise(r); err != nil {
		return err
	}
	g.Rise = basedata.Format(sg.Rise())
	g.SlatCurvature = basedata.Format(sg.Curvature())
	return nil
}

// SetCurvature stores a new curvature radius and derives the matching rise
// through the slat engine. Both string fields are rewritten together, or
// neither.
func (g *BlindGeometry) SetCurvature(curvature string, prec uint32) error {
	sg, err := g.freshSlatGeometry(prec)
	if err != nil {
		return err
	}
	c, err := basedata.Parse(curvature)
	if err != nil {
		return fmt.Errorf("slat curvature: %w", err)
	}
	if err := sg.SetCurvature(c); err != nil {
		return err
	}
	g.SlatCurvature = basedata.Format(sg.Curvature())
	g.Rise = basedata.Format(sg.Rise())
	return nil
}

// VenetianBlindGeometry is the blind geometry of a venetian blind.
type VenetianBlindGeometry struct {
	BlindGeometry
}

// VerticalLouverGeometry is the blind geometry of a vertical louver.
type VerticalLouverGeometry struct {
	BlindGeometry
}

// PerforatedScreenGeometry describes a perforated screen by its hole
// dimensions and repeat spacing.
type PerforatedScreenGeometry struct {
	DimX     string `json:"dim_x,omitempty"`
	DimY     string `json:"dim_y,omitempty"`
	SpacingX string `json:"spacing_x,omitempty"`
	SpacingY string `json:"spacing_y,omitempty"`
	Type     int    `json:"type,omitempty"`
}

func (*PerforatedScreenGeometry) isGeometry() {}

// Openness computes the geometric openness fraction of the screen from its
// hole shape and repeat cell.
func (g *PerforatedScreenGeometry) Openness() (float64, error) {
	dimX, err := screenDim(g.DimX, "dim_x")
	if err != nil {
		return 0, err
	}
	dimY, err := screenDim(g.DimY, "dim_y")
	if err != nil {
		return 0, err
	}
	spacingX, err := screenDim(g.SpacingX, "spacing_x")
	if err != nil {
		return 0, err
	}
	spacingY, err := screenDim(g.SpacingY, "spacing_y")
	if err != nil {
		return 0, err
	}
	return screen.Openness(screen.Spec{
		HoleType: screen.HoleType(g.Type),
		DimX:     dimX,
		DimY:     dimY,
		SpacingX: spacingX,
		SpacingY: spacingY,
	})
}

func screenDim(s, name string) (float64, error) {
	d, err := basedata.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	f, err := d.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// WovenShadeGeometry describes a woven shade by its thread dimensions.
type WovenShadeGeometry struct {
	ThreadDiameter string `json:"thread_diameter,omitempty"`
	ThreadSpacing  string `json:"thread_spacing,omitempty"`
	ShadeThickness string `json:"shade_thickness,omitempty"`
}

func (*WovenShadeGeometry) isGeometry() {}
