package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/wavegrid/spectra/internal/repository"
	"github.com/wavegrid/spectra/pkg/models"
)

// PostgresCompoundRepository implements CompoundRepository for PostgreSQL
type PostgresCompoundRepository struct {
	db *sql.DB
}

// NewPostgresCompoundRepository creates a new PostgreSQL compound repository
func NewPostgresCompoundRepository(db *sql.DB) repository.CompoundRepository {
	return &PostgresCompoundRepository{db: db}
}

// CreateCompound inserts a new compound record
func (r *PostgresCompoundRepository) CreateCompound(ctx context.Context, compound *models.Compound) error {
	query := `
		INSERT INTO compounds (id, name, formula, cas_number, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		compound.ID,
		compound.Name,
		compound.Formula,
		compound.CASNumber,
		compound.CreatedAt)

	return err
}

// GetCompoundByID retrieves a compound by ID
func (r *PostgresCompoundRepository) GetCompoundByID(ctx context.Context, id uuid.UUID) (*models.Compound, error) {
	query := `
		SELECT id, name, formula, cas_number, created_at
		FROM compounds
		WHERE id = $1`

	var compound models.Compound
	var casNumber sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&compound.ID,
		&compound.Name,
		&compound.Formula,
		&casNumber,
		&compound.CreatedAt)

	if err != nil {
		return nil, err
	}

	if casNumber.Valid {
		compound.CASNumber = casNumber.String
	}

	return &compound, nil
}

// SearchCompounds retrieves compounds whose name or formula starts with query
func (r *PostgresCompoundRepository) SearchCompounds(ctx context.Context, query string, limit int) ([]*models.Compound, error) {
	stmt := `
		SELECT id, name, formula, cas_number, created_at
		FROM compounds
		WHERE name ILIKE $1 || '%' OR formula ILIKE $1 || '%'
		ORDER BY name
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, stmt, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var compounds []*models.Compound
	for rows.Next() {
		var compound models.Compound
		var casNumber sql.NullString

		err := rows.Scan(
			&compound.ID,
			&compound.Name,
			&compound.Formula,
			&casNumber,
			&compound.CreatedAt)

		if err != nil {
			return nil, err
		}

		if casNumber.Valid {
			compound.CASNumber = casNumber.String
		}

		compounds = append(compounds, &compound)
	}

	return compounds, rows.Err()
}

// StoreSpectrum stores an ordered measured series for a compound
func (r *PostgresCompoundRepository) StoreSpectrum(ctx context.Context, compoundID uuid.UUID, spectrumType string, points []models.SpectrumPoint) error {
	data, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to marshal spectrum points: %w", err)
	}

	query := `
		INSERT INTO spectra (compound_id, spectrum_type, points, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (compound_id, spectrum_type)
		DO UPDATE SET points = EXCLUDED.points`

	_, err = r.db.ExecContext(ctx, query, compoundID, spectrumType, string(data))
	return err
}

// GetSpectrum retrieves a measured series. A missing spectrum yields an empty
// series and no error.
func (r *PostgresCompoundRepository) GetSpectrum(ctx context.Context, compoundID uuid.UUID, spectrumType string) ([]models.SpectrumPoint, error) {
	query := `
		SELECT points
		FROM spectra
		WHERE compound_id = $1 AND spectrum_type = $2`

	var data string
	err := r.db.QueryRowContext(ctx, query, compoundID, spectrumType).Scan(&data)
	if err == sql.ErrNoRows {
		return []models.SpectrumPoint{}, nil
	}
	if err != nil {
		return nil, err
	}

	var points []models.SpectrumPoint
	if err := json.Unmarshal([]byte(data), &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spectrum points: %w", err)
	}

	return points, nil
}

// CreateExport inserts an export record
func (r *PostgresCompoundRepository) CreateExport(ctx context.Context, export *models.Export) error {
	query := `
		INSERT INTO exports (id, s3_key, row_count, series_count, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		export.ID,
		export.S3Key,
		export.RowCount,
		export.SeriesCount,
		export.CreatedAt)

	return err
}

// GetExport retrieves an export record by ID
func (r *PostgresCompoundRepository) GetExport(ctx context.Context, id uuid.UUID) (*models.Export, error) {
	query := `
		SELECT id, s3_key, row_count, series_count, created_at
		FROM exports
		WHERE id = $1`

	var export models.Export
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&export.ID,
		&export.S3Key,
		&export.RowCount,
		&export.SeriesCount,
		&export.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &export, nil
}
