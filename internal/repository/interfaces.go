package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wavegrid/spectra/pkg/models"
)

// CompoundRepository defines the interface for compound and spectrum data
// operations. GetSpectrum returns an empty series, not an error, when no
// spectrum of the requested type is stored; the core never mutates series it
// reads.
type CompoundRepository interface {
	CreateCompound(ctx context.Context, compound *models.Compound) error
	GetCompoundByID(ctx context.Context, id uuid.UUID) (*models.Compound, error)
	SearchCompounds(ctx context.Context, query string, limit int) ([]*models.Compound, error)
	StoreSpectrum(ctx context.Context, compoundID uuid.UUID, spectrumType string, points []models.SpectrumPoint) error
	GetSpectrum(ctx context.Context, compoundID uuid.UUID, spectrumType string) ([]models.SpectrumPoint, error)
	CreateExport(ctx context.Context, export *models.Export) error
	GetExport(ctx context.Context, id uuid.UUID) (*models.Export, error)
}
