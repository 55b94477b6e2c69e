package spectra

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavegrid/spectra/pkg/models"
)

func measured(name string, pairs ...float64) NamedSeries {
	points := make([]models.SpectrumPoint, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		points = append(points, models.SpectrumPoint{Wavelength: pairs[i], Value: pairs[i+1]})
	}
	return NamedSeries{Name: name, Points: points}
}

func TestAssembleUnionAxis(t *testing.T) {
	frame := Assemble([]NamedSeries{
		measured("A", 400, 0.1, 500, 0.2),
		measured("B", 500, 0.3, 600, 0.4),
	})

	assert.Equal(t, []string{"A", "B"}, frame.Series)
	require.Len(t, frame.Rows, 3)

	assert.Equal(t, 400.0, frame.Rows[0].Wavelength)
	require.NotNil(t, frame.Rows[0].Values[0])
	assert.Equal(t, 0.1, *frame.Rows[0].Values[0])
	assert.Nil(t, frame.Rows[0].Values[1])

	assert.Equal(t, 500.0, frame.Rows[1].Wavelength)
	require.NotNil(t, frame.Rows[1].Values[0])
	require.NotNil(t, frame.Rows[1].Values[1])
	assert.Equal(t, 0.2, *frame.Rows[1].Values[0])
	assert.Equal(t, 0.3, *frame.Rows[1].Values[1])

	assert.Equal(t, 600.0, frame.Rows[2].Wavelength)
	assert.Nil(t, frame.Rows[2].Values[0])
	require.NotNil(t, frame.Rows[2].Values[1])
	assert.Equal(t, 0.4, *frame.Rows[2].Values[1])
}

func TestAssembleExactEqualityOnly(t *testing.T) {
	// 500 and 500.0000001 are different wavelengths; no binning is applied.
	frame := Assemble([]NamedSeries{
		measured("A", 500, 1),
		measured("B", 500.0000001, 2),
	})
	require.Len(t, frame.Rows, 2)
	assert.Nil(t, frame.Rows[0].Values[1])
	assert.Nil(t, frame.Rows[1].Values[0])
}

func TestAssembleRowsAscending(t *testing.T) {
	frame := Assemble([]NamedSeries{
		measured("A", 700, 1, 400, 2, 550, 3),
	})
	require.Len(t, frame.Rows, 3)
	for i := 1; i < len(frame.Rows); i++ {
		assert.Greater(t, frame.Rows[i].Wavelength, frame.Rows[i-1].Wavelength)
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	frame := Assemble(nil)
	assert.Empty(t, frame.Series)
	assert.NotNil(t, frame.Rows)
	assert.Empty(t, frame.Rows)
}

func TestAssembleFromGeneratedCurve(t *testing.T) {
	curve := Gaussian(400, 600, 500, 20, 1, 5)
	frame := Assemble([]NamedSeries{
		FromSamples("gaussian", curve),
		measured("sample", 450, 0.7),
	})
	// 5 generated wavelengths, one of which (450) the measured series shares.
	require.Len(t, frame.Rows, 5)
	require.NotNil(t, frame.Rows[1].Values[0])
	require.NotNil(t, frame.Rows[1].Values[1])
	assert.Equal(t, 0.7, *frame.Rows[1].Values[1])
}

func TestWriteCSVMatchesFrame(t *testing.T) {
	frame := Assemble([]NamedSeries{
		measured("A", 400, 0.1, 500, 0.2),
		measured("B", 500, 0.3, 600, 0.4),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, frame))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(frame.Rows)+1)
	assert.Equal(t, "wavelength,A,B", lines[0])
	assert.Equal(t, "400,0.1,", lines[1])
	assert.Equal(t, "500,0.2,0.3", lines[2])
	assert.Equal(t, "600,,0.4", lines[3])
}
