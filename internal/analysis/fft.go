package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MinSpectrumSamples is the shortest series PowerSpectrum accepts.
const MinSpectrumSamples = 4

// flatPower is the bin power below which a series counts as constant.
const flatPower = 1e-18

var ErrShortSeries = errors.New("analysis: series too short for a spectrum")

// PowerSpectrum returns the one-sided power |X_k|^2 for k = 0..n/2 of the
// mean-removed series.
func PowerSpectrum(data []float64) ([]float64, error) {
	if len(data) < MinSpectrumSamples {
		return nil, ErrShortSeries
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		a := cmplx.Abs(spectrum[i])
		ps[i] = a * a
	}

	return ps, nil
}

// DominantFrequency returns the frequency in Hz of the strongest non-zero
// bin for samples spaced dt apart. A flat series yields 0.
func DominantFrequency(data []float64, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, errors.New("analysis: sample spacing must be positive")
	}

	ps, err := PowerSpectrum(data)
	if err != nil {
		return 0, err
	}

	peak, best := 0, flatPower
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			peak, best = k, ps[k]
		}
	}
	if peak == 0 {
		return 0, nil
	}

	return float64(peak) / (float64(len(data)) * dt), nil
}
