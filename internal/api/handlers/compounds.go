package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wavegrid/spectra/internal/repository"
	"github.com/wavegrid/spectra/internal/spectra"
	"github.com/wavegrid/spectra/pkg/models"
)

const defaultSearchLimit = 20

// CompoundHandler handles compound lookup HTTP requests
type CompoundHandler struct {
	repo repository.CompoundRepository
}

// NewCompoundHandler creates a new compound handler
func NewCompoundHandler(repo repository.CompoundRepository) *CompoundHandler {
	return &CompoundHandler{repo: repo}
}

// SearchCompounds returns compounds matching a name or formula prefix
func (h *CompoundHandler) SearchCompounds(ctx context.Context, req *models.SearchCompoundsRequest) (*models.SearchCompoundsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	compounds, err := h.repo.SearchCompounds(ctx, req.Query, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to search compounds", err)
	}

	resp := &models.SearchCompoundsResponse{}
	resp.Body.Compounds = make([]models.Compound, 0, len(compounds))
	for _, c := range compounds {
		resp.Body.Compounds = append(resp.Body.Compounds, *c)
	}

	log.Info().Str("query", req.Query).Int("results", len(resp.Body.Compounds)).Msg("Compound search")
	return resp, nil
}

// GetSpectrum returns one compound's measured spectrum. An unavailable
// spectrum is an empty series, not an error.
func (h *CompoundHandler) GetSpectrum(ctx context.Context, req *models.GetSpectrumRequest) (*models.GetSpectrumResponse, error) {
	compoundID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid compound ID", err)
	}

	if _, err := h.repo.GetCompoundByID(ctx, compoundID); err != nil {
		return nil, huma.Error404NotFound("Compound not found", err)
	}

	points, err := h.repo.GetSpectrum(ctx, compoundID, req.Type)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load spectrum", err)
	}

	if req.Normalized {
		points = spectra.NormalizeSeries(points)
	}

	return &models.GetSpectrumResponse{
		Body: models.GetSpectrumResponseBody{
			CompoundID: req.ID,
			Type:       req.Type,
			Points:     points,
		},
	}, nil
}
