/*
Package optical holds the optical-data containers attached to product
records: spectral measurement sets, angle blocks, and the integrated
spectral-averages summaries produced by external calculation tools.

The package stores and passes values through; it performs no optical or
thermal computation of its own.
*/
package optical

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'optical'
func tracer() tracing.Trace {
	return tracing.Select("optical")
}

// DataType describes how spectral data is resolved over wavelengths.
type DataType string

const (
	Discrete DataType = "DISCRETE"
	Band     DataType = "BAND"
)

// AngularResolutionType describes how optical data is resolved over angles.
type AngularResolutionType string

const (
	Direct         AngularResolutionType = "DIRECT"
	DirectDiffuse  AngularResolutionType = "DIRECT_DIFFUSE"
	DiffuseDiffuse AngularResolutionType = "DIFFUSE_DIFFUSE"
	BSDF           AngularResolutionType = "BSDF"
)

// Properties is the optical-properties slot of a product's physical
// properties.
type Properties struct {
	OpticalDataType                DataType              `json:"optical_data_type"`
	IncidenceAngularResolutionType AngularResolutionType `json:"incidence_angular_resolution_type"`
	OutgoingAngularResolutionType  AngularResolutionType `json:"outgoing_angular_resolution_type"`
	OpticalData                    *Data                 `json:"optical_data,omitempty"`
}

// NewProperties returns a Properties with the customary defaults: discrete
// data at direct angular resolution.
func NewProperties() *Properties {
	tracer().Debugf("new optical properties, discrete data at direct resolution")
	return &Properties{
		OpticalDataType:                Discrete,
		IncidenceAngularResolutionType: Direct,
		OutgoingAngularResolutionType:  Direct,
	}
}

// WavelengthMeasurement is one tf/tb/rf/rb measurement tuple.
type WavelengthMeasurement struct {
	TF *float64 `json:"tf,omitempty"`
	TB *float64 `json:"tb,omitempty"`
	RF *float64 `json:"rf,omitempty"`
	RB *float64 `json:"rb,omitempty"`
}

// WavelengthMeasurementSet groups the measurements at one wavelength by
// reflection type.
type WavelengthMeasurementSet struct {
	W        float64                `json:"w"`
	Specular *WavelengthMeasurement `json:"specular,omitempty"`
	Diffuse  *WavelengthMeasurement `json:"diffuse,omitempty"`
}

// AngleBlock holds all wavelength measurements at one incidence angle.
type AngleBlock struct {
	IncidenceAngle int                        `json:"incidence_angle"`
	NumWavelengths int                        `json:"num_wavelengths"`
	WavelengthData []WavelengthMeasurementSet `json:"wavelength_data"`
}

// Data is a full set of spectral measurements.
type Data struct {
	NumberIncidenceAngles int          `json:"number_incidence_angles"`
	AngleBlocks           []AngleBlock `json:"angle_blocks"`
}

// FluxResults holds the flux components of one integrated quantity.
type FluxResults struct {
	DirectDirect        *float64    `json:"direct_direct,omitempty"`
	DirectDiffuse       *float64    `json:"direct_diffuse,omitempty"`
	DirectHemispherical *float64    `json:"direct_hemispherical,omitempty"`
	DiffuseDiffuse      *float64    `json:"diffuse_diffuse,omitempty"`
	Matrix              [][]float64 `json:"matrix,omitempty"`
}

// StandardMethodResults holds integrated results for one calculation-standard
// method (solar, photopic, ...).
type StandardMethodResults struct {
	TransmittanceFront          *FluxResults `json:"transmittance_front,omitempty"`
	TransmittanceBack           *FluxResults `json:"transmittance_back,omitempty"`
	ReflectanceFront            *FluxResults `json:"reflectance_front,omitempty"`
	ReflectanceBack             *FluxResults `json:"reflectance_back,omitempty"`
	AbsorptanceFrontDirect      *float64     `json:"absorptance_front_direct,omitempty"`
	AbsorptanceBackDirect       *float64     `json:"absorptance_back_direct,omitempty"`
	AbsorptanceFrontHemispheric *float64     `json:"absorptance_front_hemispheric,omitempty"`
	AbsorptanceBackHemispheric  *float64     `json:"absorptance_back_hemispheric,omitempty"`
}

// NewStandardMethodResults returns method results with all four flux slots
// initialized.
func NewStandardMethodResults() *StandardMethodResults {
	return &StandardMethodResults{
		TransmittanceFront: &FluxResults{},
		TransmittanceBack:  &FluxResults{},
		ReflectanceFront:   &FluxResults{},
		ReflectanceBack:    &FluxResults{},
	}
}

// ThermalIRResults holds the thermal-IR block of a summary. By Kirchhoff's
// law the hemispheric absorptance doubles as the emissivity, so the
// emissivity accessors are pass-through reads, not computations.
type ThermalIRResults struct {
	TransmittanceFrontDiffuseDiffuse *float64 `json:"transmittance_front_diffuse_diffuse,omitempty"`
	TransmittanceBackDiffuseDiffuse  *float64 `json:"transmittance_back_diffuse_diffuse,omitempty"`
	AbsorptanceFrontHemispheric      *float64 `json:"absorptance_front_hemispheric,omitempty"`
	AbsorptanceBackHemispheric       *float64 `json:"absorptance_back_hemispheric,omitempty"`
}

// EmissivityFrontHemispheric returns the front hemispheric emissivity, if
// present.
func (r *ThermalIRResults) EmissivityFrontHemispheric() *float64 {
	if r == nil {
		return nil
	}
	return r.AbsorptanceFrontHemispheric
}

// EmissivityBackHemispheric returns the back hemispheric emissivity, if
// present.
func (r *ThermalIRResults) EmissivityBackHemispheric() *float64 {
	if r == nil {
		return nil
	}
	return r.AbsorptanceBackHemispheric
}

// TransmittanceFront returns the front diffuse-diffuse transmittance, if
// present.
func (r *ThermalIRResults) TransmittanceFront() *float64 {
	if r == nil {
		return nil
	}
	return r.TransmittanceFrontDiffuseDiffuse
}

// TransmittanceBack returns the back diffuse-diffuse transmittance, if
// present.
func (r *ThermalIRResults) TransmittanceBack() *float64 {
	if r == nil {
		return nil
	}
	return r.TransmittanceBackDiffuseDiffuse
}
