package spectra

import (
	"math"

	"github.com/wavegrid/spectra/pkg/models"
)

// degenerateValue is returned for every sample when a curve carries no
// discriminating information (constant, single-point or entirely non-finite).
const degenerateValue = 0.5

// Normalize rescales values to the unit interval via (v - min) / (max - min).
// Non-finite entries are excluded from the min/max search and map to 0.5 in
// the output so NaN and Inf never reach a chart or export. When max == min
// every output is 0.5. Normalization is always per curve; callers must not
// share a min/max across series.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))

	min, max := math.Inf(1), math.Inf(-1)
	found := false
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		found = true
	}

	if !found || max == min {
		for i := range out {
			out[i] = degenerateValue
		}
		return out
	}

	span := max - min
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = degenerateValue
			continue
		}
		out[i] = (v - min) / span
	}
	return out
}

// NormalizeCurve rescales a generated curve's intensities, keeping wavelengths.
func NormalizeCurve(points []models.SamplePoint) []models.SamplePoint {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Intensity
	}
	values = Normalize(values)

	out := make([]models.SamplePoint, len(points))
	for i, p := range points {
		out[i] = models.SamplePoint{Wavelength: p.Wavelength, Intensity: values[i]}
	}
	return out
}

// NormalizeSeries rescales a measured series' values, keeping wavelengths.
func NormalizeSeries(points []models.SpectrumPoint) []models.SpectrumPoint {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	values = Normalize(values)

	out := make([]models.SpectrumPoint, len(points))
	for i, p := range points {
		out[i] = models.SpectrumPoint{Wavelength: p.Wavelength, Value: values[i]}
	}
	return out
}
