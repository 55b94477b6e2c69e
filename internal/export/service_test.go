package export

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wavegrid/spectra/pkg/models"
)

// MockCompoundRepository implements repository.CompoundRepository for testing
type MockCompoundRepository struct {
	mock.Mock
}

func (m *MockCompoundRepository) CreateCompound(ctx context.Context, compound *models.Compound) error {
	args := m.Called(ctx, compound)
	return args.Error(0)
}

func (m *MockCompoundRepository) GetCompoundByID(ctx context.Context, id uuid.UUID) (*models.Compound, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Compound), args.Error(1)
}

func (m *MockCompoundRepository) SearchCompounds(ctx context.Context, query string, limit int) ([]*models.Compound, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Compound), args.Error(1)
}

func (m *MockCompoundRepository) StoreSpectrum(ctx context.Context, compoundID uuid.UUID, spectrumType string, points []models.SpectrumPoint) error {
	args := m.Called(ctx, compoundID, spectrumType, points)
	return args.Error(0)
}

func (m *MockCompoundRepository) GetSpectrum(ctx context.Context, compoundID uuid.UUID, spectrumType string) ([]models.SpectrumPoint, error) {
	args := m.Called(ctx, compoundID, spectrumType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SpectrumPoint), args.Error(1)
}

func (m *MockCompoundRepository) CreateExport(ctx context.Context, export *models.Export) error {
	args := m.Called(ctx, export)
	return args.Error(0)
}

func (m *MockCompoundRepository) GetExport(ctx context.Context, id uuid.UUID) (*models.Export, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Export), args.Error(1)
}

// MockExportStore implements storage.ExportStore for testing
type MockExportStore struct {
	mock.Mock
}

func (m *MockExportStore) Upload(ctx context.Context, key string, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockExportStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockExportStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestBuildFrameMixedSeries(t *testing.T) {
	compoundID := uuid.New()
	repo := new(MockCompoundRepository)
	repo.On("GetCompoundByID", mock.Anything, compoundID).
		Return(&models.Compound{ID: compoundID.String(), Name: "Anthracene"}, nil)
	repo.On("GetSpectrum", mock.Anything, compoundID, models.SpectrumAbsorption).
		Return([]models.SpectrumPoint{
			{Wavelength: 300, Value: 0.4},
			{Wavelength: 350, Value: 0.9},
		}, nil)

	svc := NewExportService(new(MockExportStore), repo)
	n := 3
	frame, err := svc.BuildFrame(context.Background(), []models.SeriesSelection{
		{CompoundID: compoundID.String(), SpectrumType: models.SpectrumAbsorption},
		{Distribution: &models.DistributionRequest{
			Kind:           models.KindGaussian,
			LowWavelength:  floatPtr(300),
			HighWavelength: floatPtr(400),
			PeakWavelength: floatPtr(350),
			NumPoints:      &n,
		}},
	}, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"Anthracene (absorption)", "gaussian"}, frame.Series)
	// Union of {300, 350} and {300, 350, 400}.
	require.Len(t, frame.Rows, 3)
	require.NotNil(t, frame.Rows[1].Values[0])
	require.NotNil(t, frame.Rows[1].Values[1])
	assert.Equal(t, 0.9, *frame.Rows[1].Values[0])
	assert.Equal(t, 1.0, *frame.Rows[1].Values[1], "gaussian peak lands on 350 and rescales to 1")
	assert.Nil(t, frame.Rows[2].Values[0], "measured series has no 400nm sample")
}

func TestBuildFrameNormalizesPerSeries(t *testing.T) {
	compoundID := uuid.New()
	repo := new(MockCompoundRepository)
	repo.On("GetCompoundByID", mock.Anything, compoundID).
		Return(&models.Compound{ID: compoundID.String(), Name: "Anthracene"}, nil)
	repo.On("GetSpectrum", mock.Anything, compoundID, models.SpectrumEmission).
		Return([]models.SpectrumPoint{
			{Wavelength: 400, Value: 100},
			{Wavelength: 410, Value: 300},
		}, nil)

	svc := NewExportService(new(MockExportStore), repo)
	frame, err := svc.BuildFrame(context.Background(), []models.SeriesSelection{
		{CompoundID: compoundID.String(), SpectrumType: models.SpectrumEmission},
	}, true)

	require.NoError(t, err)
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, 0.0, *frame.Rows[0].Values[0])
	assert.Equal(t, 1.0, *frame.Rows[1].Values[0])
}

func TestBuildFrameUnknownCompound(t *testing.T) {
	repo := new(MockCompoundRepository)
	repo.On("GetCompoundByID", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)

	svc := NewExportService(new(MockExportStore), repo)
	_, err := svc.BuildFrame(context.Background(), []models.SeriesSelection{
		{CompoundID: uuid.New().String()},
	}, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestBuildFrameEmptySelection(t *testing.T) {
	svc := NewExportService(new(MockExportStore), new(MockCompoundRepository))
	_, err := svc.BuildFrame(context.Background(), []models.SeriesSelection{{}}, false)
	require.Error(t, err)
}

func TestCreateExportUploadsFrameCSV(t *testing.T) {
	repo := new(MockCompoundRepository)
	repo.On("CreateExport", mock.Anything, mock.Anything).Return(nil)

	var uploaded []byte
	store := new(MockExportStore)
	store.On("Upload", mock.Anything, mock.Anything, "text/csv", mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded = args.Get(3).([]byte)
		}).Return(nil)
	store.On("GenerateDownloadURL", mock.Anything, mock.Anything).
		Return("https://exports.example/x.csv", nil)

	svc := NewExportService(store, repo)
	n := 5
	export, url, err := svc.CreateExport(context.Background(), []models.SeriesSelection{
		{Name: "bb", Distribution: &models.DistributionRequest{
			Kind:      models.KindBlackbody,
			NumPoints: &n,
		}},
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "https://exports.example/x.csv", url)
	assert.Equal(t, 5, export.RowCount)
	assert.Equal(t, 1, export.SeriesCount)
	assert.True(t, strings.HasPrefix(export.S3Key, "exports/"))
	assert.WithinDuration(t, time.Now(), export.CreatedAt, time.Minute)

	lines := strings.Split(strings.TrimRight(string(uploaded), "\n"), "\n")
	require.Len(t, lines, export.RowCount+1)
	assert.Equal(t, "wavelength,bb", lines[0])

	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func floatPtr(v float64) *float64 { return &v }
