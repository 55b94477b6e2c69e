package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/wavegrid/spectra/internal/api/handlers"
	"github.com/wavegrid/spectra/internal/export"
	"github.com/wavegrid/spectra/internal/repository"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, compoundRepo repository.CompoundRepository, exportSvc export.ExportService) {
	// Initialize handlers
	compoundHandler := handlers.NewCompoundHandler(compoundRepo)
	comparisonHandler := handlers.NewComparisonHandler(exportSvc)

	// Register compound routes
	huma.Register(api, huma.Operation{
		OperationID: "searchCompounds",
		Method:      http.MethodGet,
		Path:        "/api/compounds",
		Summary:     "Search compounds",
		Description: "Returns compounds whose name or formula starts with the query",
		Tags:        []string{"Compounds"},
	}, compoundHandler.SearchCompounds)

	huma.Register(api, huma.Operation{
		OperationID: "getSpectrum",
		Method:      http.MethodGet,
		Path:        "/api/compounds/{id}/spectra/{type}",
		Summary:     "Get a measured spectrum",
		Description: "Returns the ordered wavelength/value series for a compound and spectrum type",
		Tags:        []string{"Compounds"},
	}, compoundHandler.GetSpectrum)

	// Register comparison routes
	huma.Register(api, huma.Operation{
		OperationID: "generateDistribution",
		Method:      http.MethodPost,
		Path:        "/api/distributions",
		Summary:     "Generate a reference distribution",
		Description: "Synthesizes a blackbody, gaussian or lorentzian curve over a wavelength range",
		Tags:        []string{"Comparisons"},
	}, comparisonHandler.GenerateDistribution)

	huma.Register(api, huma.Operation{
		OperationID: "createComparison",
		Method:      http.MethodPost,
		Path:        "/api/comparisons",
		Summary:     "Assemble a comparison frame",
		Description: "Joins measured and synthetic series on the union of their wavelength axes",
		Tags:        []string{"Comparisons"},
	}, comparisonHandler.CreateComparison)

	huma.Register(api, huma.Operation{
		OperationID: "createExport",
		Method:      http.MethodPost,
		Path:        "/api/exports",
		Summary:     "Export a comparison as CSV",
		Description: "Renders the assembled frame as CSV in object storage and returns a download URL",
		Tags:        []string{"Comparisons"},
	}, comparisonHandler.CreateExport)
}
