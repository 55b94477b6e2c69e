package spectra

import (
	"math"

	"github.com/wavegrid/spectra/pkg/models"
)

// Physical constants for Planck's law (2019 SI definitions).
const (
	planckH    = 6.62607015e-34 // J*s
	lightSpeed = 299792458.0    // m/s
	boltzmannK = 1.380649e-23   // J/K
)

// DefaultNumPoints is the curve length used when a request does not specify one.
const DefaultNumPoints = 1000

// Defaults substituted for absent or non-numeric request parameters.
const (
	DefaultLowWavelength     = 200.0
	DefaultHighWavelength    = 800.0
	DefaultTemperatureKelvin = 5776.0
	DefaultPeakWavelength    = 300.0
	DefaultStandardDeviation = 20.0
	DefaultFWHM              = 20.0
	DefaultMultiplier        = 1.0
)

// Blackbody samples Planck spectral radiance for a body at temperatureK over
// [low, high] nanometers. Very small wavelengths or temperatures can overflow
// the exponent; the resulting non-finite intensities are left in place and
// excluded from the peak rescale.
func Blackbody(low, high, temperatureK float64, numPoints int) []models.SamplePoint {
	return generate(low, high, numPoints, func(nm float64) float64 {
		return blackbodyRadiance(nm, temperatureK)
	})
}

// Gaussian samples multiplier * exp(-(wl-peak)^2 / (2*sigma^2)) over [low, high].
func Gaussian(low, high, peak, sigma, multiplier float64, numPoints int) []models.SamplePoint {
	return generate(low, high, numPoints, func(nm float64) float64 {
		return gaussianIntensity(nm, peak, sigma, multiplier)
	})
}

// Lorentzian samples a Lorentzian line shape with the given full width at half
// maximum over [low, high].
func Lorentzian(low, high, peak, fwhm, multiplier float64, numPoints int) []models.SamplePoint {
	return generate(low, high, numPoints, func(nm float64) float64 {
		return lorentzianIntensity(nm, peak, fwhm, multiplier)
	})
}

// Generate routes a distribution request to the matching sampler, filling
// defaults for any absent or non-numeric parameter. An unknown kind yields an
// empty curve rather than an error so malformed requests never break the chart.
func Generate(req models.DistributionRequest) []models.SamplePoint {
	low := floatOrDefault(req.LowWavelength, DefaultLowWavelength)
	high := floatOrDefault(req.HighWavelength, DefaultHighWavelength)
	n := pointsOrDefault(req.NumPoints)

	switch req.Kind {
	case models.KindBlackbody:
		return Blackbody(low, high, floatOrDefault(req.TemperatureKelvin, DefaultTemperatureKelvin), n)
	case models.KindGaussian:
		return Gaussian(low, high,
			floatOrDefault(req.PeakWavelength, DefaultPeakWavelength),
			floatOrDefault(req.StandardDeviation, DefaultStandardDeviation),
			floatOrDefault(req.Multiplier, DefaultMultiplier), n)
	case models.KindLorentzian:
		return Lorentzian(low, high,
			floatOrDefault(req.PeakWavelength, DefaultPeakWavelength),
			floatOrDefault(req.FWHM, DefaultFWHM),
			floatOrDefault(req.Multiplier, DefaultMultiplier), n)
	default:
		return []models.SamplePoint{}
	}
}

func blackbodyRadiance(nm, temperatureK float64) float64 {
	m := nm * 1e-9
	exponent := math.Exp(planckH * lightSpeed / (m * boltzmannK * temperatureK))
	return 2 * planckH * lightSpeed * lightSpeed / (math.Pow(m, 5) * (exponent - 1))
}

func gaussianIntensity(nm, peak, sigma, multiplier float64) float64 {
	d := nm - peak
	return multiplier * math.Exp(-(d*d)/(2*sigma*sigma))
}

func lorentzianIntensity(nm, peak, fwhm, multiplier float64) float64 {
	gamma := fwhm / 2
	d := nm - peak
	return multiplier * gamma * gamma / (math.Pi * (d*d + gamma*gamma))
}

// generate evaluates intensity at numPoints evenly spaced wavelengths across
// [low, high] inclusive of both ends, then peak-rescales the curve. Degenerate
// bounds (high <= low) or a single-point request collapse to repeated samples
// at low, preserving the fixed-length contract.
func generate(low, high float64, numPoints int, intensity func(float64) float64) []models.SamplePoint {
	if numPoints <= 0 {
		return []models.SamplePoint{}
	}

	points := make([]models.SamplePoint, numPoints)
	if numPoints == 1 || high <= low {
		v := intensity(low)
		for i := range points {
			points[i] = models.SamplePoint{Wavelength: low, Intensity: v}
		}
		return peakRescale(points)
	}

	step := (high - low) / float64(numPoints-1)
	for i := range points {
		wl := low + step*float64(i)
		if i == numPoints-1 {
			wl = high
		}
		points[i] = models.SamplePoint{Wavelength: wl, Intensity: intensity(wl)}
	}
	return peakRescale(points)
}

// peakRescale divides every intensity by the curve maximum so the peak lands
// exactly at 1.0. Non-finite samples are excluded from max-finding; if no
// finite positive maximum exists the curve is returned unchanged.
func peakRescale(points []models.SamplePoint) []models.SamplePoint {
	max := math.Inf(-1)
	found := false
	for _, p := range points {
		if math.IsNaN(p.Intensity) || math.IsInf(p.Intensity, 0) {
			continue
		}
		if !found || p.Intensity > max {
			max = p.Intensity
			found = true
		}
	}
	if !found || max <= 0 {
		return points
	}
	for i := range points {
		points[i].Intensity /= max
	}
	return points
}

func floatOrDefault(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return *v
}

func pointsOrDefault(v *int) int {
	if v == nil || *v <= 0 {
		return DefaultNumPoints
	}
	return *v
}
