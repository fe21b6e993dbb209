package optical

// CalculationStandardName names a calculation standard a summary was
// integrated under.
type CalculationStandardName string

const (
	StandardNFRC CalculationStandardName = "NFRC"
	StandardCES  CalculationStandardName = "CES"
)

// MethodType names one method of a calculation standard.
type MethodType string

const (
	MethodSolar     MethodType = "SOLAR"
	MethodPhotopic  MethodType = "PHOTOPIC"
	MethodThermalIR MethodType = "THERMAL_IR"
	MethodTUV       MethodType = "TUV"
	MethodSPF       MethodType = "SPF"
	MethodTDW       MethodType = "TDW"
	MethodTKR       MethodType = "TKR"
)

// SummaryValues collects the integrated spectral averages of a product for
// one calculation standard, one slot per method.
type SummaryValues struct {
	Solar     *StandardMethodResults `json:"solar,omitempty"`
	Photopic  *StandardMethodResults `json:"photopic,omitempty"`
	ThermalIR *ThermalIRResults      `json:"thermal_ir,omitempty"`
	TUV       *StandardMethodResults `json:"tuv,omitempty"`
	SPF       *StandardMethodResults `json:"spf,omitempty"`
	TDW       *StandardMethodResults `json:"tdw,omitempty"`
	TKR       *StandardMethodResults `json:"tkr,omitempty"`
}

// Convenience getters for the most frequently consumed slots. Each returns
// nil when any link in the chain is absent.

// TFSol is the solar direct-direct front transmittance.
func (v *SummaryValues) TFSol() *float64 {
	if v == nil || v.Solar == nil || v.Solar.TransmittanceFront == nil {
		return nil
	}
	return v.Solar.TransmittanceFront.DirectDirect
}

// RFSol is the solar direct-direct front reflectance.
func (v *SummaryValues) RFSol() *float64 {
	if v == nil || v.Solar == nil || v.Solar.ReflectanceFront == nil {
		return nil
	}
	return v.Solar.ReflectanceFront.DirectDirect
}

// RBSol is the solar direct-direct back reflectance.
func (v *SummaryValues) RBSol() *float64 {
	if v == nil || v.Solar == nil || v.Solar.ReflectanceBack == nil {
		return nil
	}
	return v.Solar.ReflectanceBack.DirectDirect
}

// TFVis is the photopic direct-direct front transmittance.
func (v *SummaryValues) TFVis() *float64 {
	if v == nil || v.Photopic == nil || v.Photopic.TransmittanceFront == nil {
		return nil
	}
	return v.Photopic.TransmittanceFront.DirectDirect
}

// RFVis is the photopic direct-direct front reflectance.
func (v *SummaryValues) RFVis() *float64 {
	if v == nil || v.Photopic == nil || v.Photopic.ReflectanceFront == nil {
		return nil
	}
	return v.Photopic.ReflectanceFront.DirectDirect
}

// Summary pairs integrated summary values with the standard and the tool
// that produced them.
type Summary struct {
	SummaryValues       *SummaryValues          `json:"summary_values,omitempty"`
	CalculationStandard CalculationStandardName `json:"calculation_standard,omitempty"`
	Source              string                  `json:"source,omitempty"`
	// SourceVersion tracks changes to calculation tools over time.
	SourceVersion string `json:"source_version,omitempty"`
}
