package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// Spectrum type tags stored alongside measured series.
const (
	SpectrumAbsorption = "absorption"
	SpectrumEmission   = "emission"
)

// Compound represents a reference database entry
type Compound struct {
	ID        string    `json:"id" doc:"Compound unique identifier"`
	Name      string    `json:"name" doc:"Common compound name"`
	Formula   string    `json:"formula" doc:"Molecular formula"`
	CASNumber string    `json:"cas_number,omitempty" doc:"CAS registry number"`
	CreatedAt time.Time `json:"created_at" doc:"When the compound was added"`
}

// SpectrumPoint represents a single measured sample
type SpectrumPoint struct {
	Wavelength float64 `json:"wavelength" doc:"Wavelength in nanometers"`
	Value      float64 `json:"value" doc:"Measured intensity value"`
}

// SearchCompoundsRequest represents a compound search query
type SearchCompoundsRequest struct {
	Query string `query:"q" maxLength:"100" doc:"Name or formula prefix to search for"`
	Limit int    `query:"limit" minimum:"0" maximum:"100" doc:"Maximum number of results (default 20)"`
}

// SearchCompoundsResponse represents the search results
type SearchCompoundsResponse struct {
	Body struct {
		Compounds []Compound `json:"compounds" doc:"Matching compounds ordered by name"`
	}
}

// GetSpectrumRequest represents a request for one compound's measured spectrum
type GetSpectrumRequest struct {
	ID         string `path:"id" doc:"Compound ID"`
	Type       string `path:"type" enum:"absorption,emission" doc:"Spectrum type"`
	Normalized bool   `query:"normalized" doc:"Rescale values to the unit interval"`
}

// GetSpectrumResponseBody is the body of the spectrum response
type GetSpectrumResponseBody struct {
	CompoundID string          `json:"compound_id" doc:"Compound ID"`
	Type       string          `json:"type" doc:"Spectrum type"`
	Points     []SpectrumPoint `json:"points" doc:"Ordered wavelength/value pairs, empty when unavailable"`
}

// GetSpectrumResponse represents a measured spectrum
type GetSpectrumResponse struct {
	Body GetSpectrumResponseBody
}
