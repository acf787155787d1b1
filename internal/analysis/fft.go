package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/mzsim/internal/metrics"
)

var (
	ErrTooShort   = errors.New("analysis: series too short")
	ErrNonUniform = errors.New("analysis: grid is not uniformly spaced")
	ErrNoPeak     = errors.New("analysis: no spectral peak above DC")
)

// PowerSpectrum returns |FFT| of data with its mean removed, for bins
// [0, len(data)/2).
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := stat.Mean(data, nil)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency, in cycles per unit of dx, of the
// strongest non-DC bin of data sampled every dx.
func DominantFrequency(data []float64, dx float64) (float64, error) {
	if len(data) < 4 {
		return 0, ErrTooShort
	}
	ps := PowerSpectrum(data)

	peak := floats.MaxIdx(ps[1:]) + 1
	if ps[peak] == 0 {
		return 0, ErrNoPeak
	}
	return float64(peak) / (float64(len(data)) * math.Abs(dx)), nil
}

// EstimateVpi recovers Vπ from a transfer curve sampled on a uniform voltage
// grid.
func EstimateVpi(voltage, intensity []float64) (float64, error) {
	if len(voltage) != len(intensity) {
		return 0, errors.New("analysis: voltage and intensity lengths differ")
	}
	if len(voltage) < 4 {
		return 0, ErrTooShort
	}
	dx, err := uniformStep(voltage)
	if err != nil {
		return 0, err
	}

	f, err := DominantFrequency(intensity, dx)
	if err != nil {
		return 0, err
	}
	return 1 / (2 * f), nil
}

// ExtinctionRatioDB is the max/min ratio of a transmission curve in dB, on the
// same floor as the extinction metric.
func ExtinctionRatioDB(transmission []float64) float64 {
	if len(transmission) == 0 {
		return 0
	}
	return metrics.ExtinctionDB(floats.Max(transmission), floats.Min(transmission))
}

func uniformStep(grid []float64) (float64, error) {
	dx := grid[1] - grid[0]
	if dx == 0 {
		return 0, ErrNonUniform
	}
	for i := 2; i < len(grid); i++ {
		if math.Abs((grid[i]-grid[i-1])-dx) > 1e-6*math.Abs(dx) {
			return 0, ErrNonUniform
		}
	}
	return dx, nil
}
