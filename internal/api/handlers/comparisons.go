package handlers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/wavegrid/spectra/internal/export"
	"github.com/wavegrid/spectra/internal/spectra"
	"github.com/wavegrid/spectra/pkg/models"
)

// ComparisonHandler handles distribution, comparison and export requests
type ComparisonHandler struct {
	svc export.ExportService
}

// NewComparisonHandler creates a new comparison handler
func NewComparisonHandler(svc export.ExportService) *ComparisonHandler {
	return &ComparisonHandler{svc: svc}
}

// GenerateDistribution synthesizes a reference curve. Malformed parameters
// are never an error: missing fields default, an unknown kind returns an
// empty curve, so the chart always has something to render.
func (h *ComparisonHandler) GenerateDistribution(ctx context.Context, req *models.GenerateDistributionRequest) (*models.GenerateDistributionResponse, error) {
	points := spectra.Generate(req.Body.Distribution)
	if req.Body.Normalized {
		points = spectra.NormalizeCurve(points)
	}

	log.Info().Str("kind", string(req.Body.Distribution.Kind)).Int("points", len(points)).Msg("Distribution generated")
	return &models.GenerateDistributionResponse{
		Body: models.GenerateDistributionResponseBody{
			Kind:   req.Body.Distribution.Kind,
			Points: points,
		},
	}, nil
}

// CreateComparison assembles the selected series onto a shared wavelength axis
func (h *ComparisonHandler) CreateComparison(ctx context.Context, req *models.CreateComparisonRequest) (*models.CreateComparisonResponse, error) {
	frame, err := h.svc.BuildFrame(ctx, req.Body.Selections, req.Body.Normalize)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.Error404NotFound("Compound not found", err)
		}
		return nil, huma.Error400BadRequest("Invalid selection", err)
	}

	return &models.CreateComparisonResponse{Body: frame}, nil
}

// CreateExport renders the selected series as a stored CSV and returns a
// download URL. The CSV iterates the same frame the comparison endpoint
// returns.
func (h *ComparisonHandler) CreateExport(ctx context.Context, req *models.CreateExportRequest) (*models.CreateExportResponse, error) {
	exportRecord, downloadURL, err := h.svc.CreateExport(ctx, req.Body.Selections, req.Body.Normalize)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.Error404NotFound("Compound not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to create export", err)
	}

	return &models.CreateExportResponse{
		Body: models.CreateExportResponseBody{
			ID:          exportRecord.ID,
			DownloadURL: downloadURL,
			RowCount:    exportRecord.RowCount,
			ExpiresIn:   export.URLExpirySeconds,
		},
	}, nil
}
