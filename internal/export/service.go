package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wavegrid/spectra/internal/repository"
	"github.com/wavegrid/spectra/internal/spectra"
	"github.com/wavegrid/spectra/internal/storage"
	"github.com/wavegrid/spectra/pkg/models"
)

// URLExpirySeconds is how long a presigned export download URL stays valid.
const URLExpirySeconds = 15 * 60

// ExportService assembles comparison frames from series selections and renders
// them as stored CSV exports. The chart endpoint and the exporter share
// BuildFrame so their rows always agree.
type ExportService interface {
	BuildFrame(ctx context.Context, selections []models.SeriesSelection, normalize bool) (models.ComparisonFrame, error)
	CreateExport(ctx context.Context, selections []models.SeriesSelection, normalize bool) (*models.Export, string, error)
}

type exportService struct {
	store storage.ExportStore
	repo  repository.CompoundRepository
}

// NewExportService creates a new export service
func NewExportService(store storage.ExportStore, repo repository.CompoundRepository) ExportService {
	return &exportService{
		store: store,
		repo:  repo,
	}
}

// BuildFrame resolves every selection to a named series and joins them on the
// union wavelength axis. Measured series come from the compound store; an
// unavailable spectrum contributes an empty series rather than failing the
// whole frame. Synthetic series go through the distribution dispatcher, so
// malformed parameters default silently and an unknown kind yields an empty
// curve. Normalization, when requested, is applied to each series against its
// own min/max, never a shared one.
func (s *exportService) BuildFrame(ctx context.Context, selections []models.SeriesSelection, normalize bool) (models.ComparisonFrame, error) {
	series := make([]spectra.NamedSeries, 0, len(selections))

	for i, sel := range selections {
		resolved, err := s.resolveSelection(ctx, i, sel)
		if err != nil {
			return models.ComparisonFrame{}, err
		}
		if normalize {
			resolved.Points = spectra.NormalizeSeries(resolved.Points)
		}
		series = append(series, resolved)
	}

	return spectra.Assemble(series), nil
}

func (s *exportService) resolveSelection(ctx context.Context, index int, sel models.SeriesSelection) (spectra.NamedSeries, error) {
	if sel.CompoundID != "" {
		compoundID, err := uuid.Parse(sel.CompoundID)
		if err != nil {
			return spectra.NamedSeries{}, fmt.Errorf("selection %d: invalid compound ID %q: %w", index, sel.CompoundID, err)
		}

		compound, err := s.repo.GetCompoundByID(ctx, compoundID)
		if err != nil {
			return spectra.NamedSeries{}, fmt.Errorf("selection %d: compound %s not found: %w", index, sel.CompoundID, err)
		}

		spectrumType := sel.SpectrumType
		if spectrumType == "" {
			spectrumType = models.SpectrumAbsorption
		}

		points, err := s.repo.GetSpectrum(ctx, compoundID, spectrumType)
		if err != nil {
			return spectra.NamedSeries{}, fmt.Errorf("selection %d: failed to load spectrum: %w", index, err)
		}

		name := sel.Name
		if name == "" {
			name = fmt.Sprintf("%s (%s)", compound.Name, spectrumType)
		}
		return spectra.NamedSeries{Name: name, Points: points}, nil
	}

	if sel.Distribution == nil {
		return spectra.NamedSeries{}, fmt.Errorf("selection %d: neither compound_id nor distribution set", index)
	}

	name := sel.Name
	if name == "" {
		name = string(sel.Distribution.Kind)
	}
	return spectra.FromSamples(name, spectra.Generate(*sel.Distribution)), nil
}

// CreateExport renders the assembled frame as CSV, uploads it to object
// storage, records the export and returns the record with a presigned
// download URL.
func (s *exportService) CreateExport(ctx context.Context, selections []models.SeriesSelection, normalize bool) (*models.Export, string, error) {
	frame, err := s.BuildFrame(ctx, selections, normalize)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := spectra.WriteCSV(&buf, frame); err != nil {
		return nil, "", fmt.Errorf("failed to render CSV: %w", err)
	}

	exportID := uuid.New()
	key := fmt.Sprintf("exports/%s.csv", exportID)

	if err := s.store.Upload(ctx, key, "text/csv", buf.Bytes()); err != nil {
		return nil, "", err
	}

	export := &models.Export{
		ID:          exportID.String(),
		S3Key:       key,
		RowCount:    len(frame.Rows),
		SeriesCount: len(frame.Series),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateExport(ctx, export); err != nil {
		return nil, "", fmt.Errorf("failed to record export: %w", err)
	}

	downloadURL, err := s.store.GenerateDownloadURL(ctx, key)
	if err != nil {
		return nil, "", err
	}

	log.Info().Str("exportID", export.ID).Str("s3Key", key).Int("rows", export.RowCount).Int("series", export.SeriesCount).Msg("Export created")
	return export, downloadURL, nil
}
