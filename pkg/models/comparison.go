package models

import (
	"time"
)

// SeriesSelection names one series for a comparison: either a measured
// spectrum (CompoundID + SpectrumType) or a synthetic distribution. Exactly
// one of the two should be set; when both are present the measured spectrum
// wins.
type SeriesSelection struct {
	Name         string               `json:"name,omitempty" maxLength:"100" doc:"Display name; derived when empty"`
	CompoundID   string               `json:"compound_id,omitempty" doc:"Compound ID for a measured series"`
	SpectrumType string               `json:"spectrum_type,omitempty" doc:"Spectrum type for a measured series: absorption or emission"`
	Distribution *DistributionRequest `json:"distribution,omitempty" doc:"Parameters for a synthetic series"`
}

// ComparisonRow holds the value of every series at one wavelength. A nil
// value means that series has no sample at exactly this wavelength; no
// interpolation is performed.
type ComparisonRow struct {
	Wavelength float64    `json:"wavelength" doc:"Wavelength in nanometers"`
	Values     []*float64 `json:"values" doc:"One entry per series, null where absent"`
}

// ComparisonFrame is the joined view of a set of series on the union of
// their wavelength axes. Chart overlay and CSV export iterate the same frame.
type ComparisonFrame struct {
	Series []string        `json:"series" doc:"Series names, in selection order"`
	Rows   []ComparisonRow `json:"rows" doc:"Rows in ascending wavelength order"`
}

// CreateComparisonRequest represents a request to assemble a comparison frame
type CreateComparisonRequest struct {
	Body struct {
		Selections []SeriesSelection `json:"selections" required:"true" minItems:"1" maxItems:"12" doc:"Series to overlay"`
		Normalize  bool              `json:"normalize,omitempty" doc:"Rescale each series independently to the unit interval"`
	}
}

// CreateComparisonResponse represents an assembled comparison frame
type CreateComparisonResponse struct {
	Body ComparisonFrame
}

// Export represents a stored CSV export record
type Export struct {
	ID          string    `json:"id" doc:"Export unique identifier"`
	S3Key       string    `json:"s3_key" doc:"Object storage key of the rendered CSV"`
	RowCount    int       `json:"row_count" doc:"Number of data rows in the export"`
	SeriesCount int       `json:"series_count" doc:"Number of series in the export"`
	CreatedAt   time.Time `json:"created_at" doc:"When the export was created"`
}

// CreateExportRequest represents a request to export a comparison as CSV
type CreateExportRequest struct {
	Body struct {
		Selections []SeriesSelection `json:"selections" required:"true" minItems:"1" maxItems:"12" doc:"Series to export"`
		Normalize  bool              `json:"normalize,omitempty" doc:"Rescale each series independently to the unit interval"`
	}
}

// CreateExportResponseBody is the body of the export response
type CreateExportResponseBody struct {
	ID          string `json:"id" doc:"Export unique identifier"`
	DownloadURL string `json:"download_url" doc:"Pre-signed URL for downloading the CSV"`
	RowCount    int    `json:"row_count" doc:"Number of data rows in the export"`
	ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// CreateExportResponse represents a created CSV export
type CreateExportResponse struct {
	Body CreateExportResponseBody
}
