package models

// DistributionKind identifies a closed-form reference distribution
type DistributionKind string

// Supported distribution kinds. Anything else yields an empty curve.
const (
	KindBlackbody  DistributionKind = "blackbody"
	KindGaussian   DistributionKind = "gaussian"
	KindLorentzian DistributionKind = "lorentzian"
)

// DistributionRequest describes a reference curve to synthesize. All numeric
// fields are optional; nil (or non-finite) values are replaced with documented
// defaults so a malformed request still renders a curve. Fields that do not
// apply to the requested kind are ignored.
type DistributionRequest struct {
	Kind              DistributionKind `json:"kind" doc:"Distribution type: blackbody, gaussian or lorentzian"`
	LowWavelength     *float64         `json:"low_wavelength,omitempty" doc:"Lower wavelength bound in nm (default 200)"`
	HighWavelength    *float64         `json:"high_wavelength,omitempty" doc:"Upper wavelength bound in nm (default 800)"`
	NumPoints         *int             `json:"num_points,omitempty" doc:"Number of samples (default 1000)"`
	TemperatureKelvin *float64         `json:"temperature_kelvin,omitempty" doc:"Blackbody temperature in K (default 5776)"`
	PeakWavelength    *float64         `json:"peak_wavelength,omitempty" doc:"Gaussian/Lorentzian peak position in nm (default 300)"`
	StandardDeviation *float64         `json:"standard_deviation,omitempty" doc:"Gaussian standard deviation in nm (default 20)"`
	FWHM              *float64         `json:"fwhm,omitempty" doc:"Lorentzian full width at half maximum in nm (default 20)"`
	Multiplier        *float64         `json:"multiplier,omitempty" doc:"Amplitude multiplier (default 1)"`
}

// SamplePoint represents a single generated sample
type SamplePoint struct {
	Wavelength float64 `json:"wavelength" doc:"Wavelength in nanometers"`
	Intensity  float64 `json:"intensity" doc:"Generated intensity, peak-rescaled to 1.0"`
}

// GenerateDistributionRequest represents a request to synthesize a curve
type GenerateDistributionRequest struct {
	Body struct {
		Distribution DistributionRequest `json:"distribution" required:"true" doc:"Curve parameters"`
		Normalized   bool                `json:"normalized,omitempty" doc:"Additionally min/max rescale to the unit interval"`
	}
}

// GenerateDistributionResponseBody is the body of the distribution response
type GenerateDistributionResponseBody struct {
	Kind   DistributionKind `json:"kind" doc:"Distribution type that was generated"`
	Points []SamplePoint    `json:"points" doc:"Sampled curve, wavelengths ascending"`
}

// GenerateDistributionResponse represents a generated curve
type GenerateDistributionResponse struct {
	Body GenerateDistributionResponseBody
}
