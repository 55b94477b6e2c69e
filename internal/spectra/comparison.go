package spectra

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/wavegrid/spectra/pkg/models"
)

// NamedSeries is one input to the comparison assembler: a display name and an
// ordered sequence of measured or generated samples.
type NamedSeries struct {
	Name   string
	Points []models.SpectrumPoint
}

// FromSamples converts a generated curve into a comparison input.
func FromSamples(name string, points []models.SamplePoint) NamedSeries {
	converted := make([]models.SpectrumPoint, len(points))
	for i, p := range points {
		converted[i] = models.SpectrumPoint{Wavelength: p.Wavelength, Value: p.Intensity}
	}
	return NamedSeries{Name: name, Points: converted}
}

// Assemble joins a set of series onto the sorted union of their wavelength
// axes. Two samples share a row only under exact float64 equality; no
// tolerance or interpolation is applied, so series on different wavelength
// grids simply occupy different rows. Cells where a series has no sample are
// nil. Within one series the first sample at a given wavelength wins.
func Assemble(series []NamedSeries) models.ComparisonFrame {
	frame := models.ComparisonFrame{
		Series: make([]string, len(series)),
		Rows:   []models.ComparisonRow{},
	}

	axis := map[float64]struct{}{}
	lookups := make([]map[float64]float64, len(series))
	for i, s := range series {
		frame.Series[i] = s.Name
		lookups[i] = make(map[float64]float64, len(s.Points))
		for _, p := range s.Points {
			axis[p.Wavelength] = struct{}{}
			if _, dup := lookups[i][p.Wavelength]; !dup {
				lookups[i][p.Wavelength] = p.Value
			}
		}
	}

	wavelengths := make([]float64, 0, len(axis))
	for wl := range axis {
		wavelengths = append(wavelengths, wl)
	}
	sort.Float64s(wavelengths)

	for _, wl := range wavelengths {
		row := models.ComparisonRow{
			Wavelength: wl,
			Values:     make([]*float64, len(series)),
		}
		for i := range series {
			if v, ok := lookups[i][wl]; ok {
				value := v
				row.Values[i] = &value
			}
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame
}

// WriteCSV renders an assembled frame as CSV: a header row of "wavelength"
// plus the series names, then one record per frame row with empty cells where
// a series has no sample. The exporter iterates the same frame the chart
// consumes, so both stay row-for-row consistent.
func WriteCSV(w io.Writer, frame models.ComparisonFrame) error {
	cw := csv.NewWriter(w)

	header := append([]string{"wavelength"}, frame.Series...)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(frame.Series)+1)
	for _, row := range frame.Rows {
		record[0] = strconv.FormatFloat(row.Wavelength, 'g', -1, 64)
		for i, v := range row.Values {
			if v == nil {
				record[i+1] = ""
				continue
			}
			record[i+1] = strconv.FormatFloat(*v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
