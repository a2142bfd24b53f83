// Package analysis inspects rendered sonifications: the dominant frequency
// of each tone segment and summary statistics of an automaton's densities.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/go-ca-sonify/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// minSamplesForStdDev is the smallest sample count with a defined
// unbiased standard deviation.
const minSamplesForStdDev = 2

// Spectrum computes magnitude spectra of fixed-length segments.
// A Spectrum reuses its buffers and is not safe for concurrent use.
type Spectrum struct {
	fft    *fourier.FFT
	n      int
	coeffs []complex128
	mags   []float64
}

// NewSpectrum returns a Spectrum for segments of n samples.
func NewSpectrum(n int) *Spectrum {
	return &Spectrum{
		fft:    fourier.NewFFT(n),
		n:      n,
		coeffs: make([]complex128, n/2+1),
		mags:   make([]float64, n/2+1),
	}
}

// Magnitudes returns |X[k]| for k in [0, n/2]. The returned slice is
// reused by the next call.
func (s *Spectrum) Magnitudes(segment []float64) []float64 {
	s.coeffs = s.fft.Coefficients(s.coeffs, segment)
	for k, c := range s.coeffs {
		s.mags[k] = cmplx.Abs(c)
	}
	return s.mags
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin,
// refined by parabolic interpolation over its neighbors. Silent segments
// return 0.
func (s *Spectrum) DominantFrequency(segment []float64, sampleRate int) float64 {
	mags := s.Magnitudes(segment)
	if len(mags) < 2 {
		return 0
	}

	peak := floats.MaxIdx(mags[1:]) + 1
	if mags[peak] == 0 {
		return 0
	}

	offset := 0.0
	if peak < len(mags)-1 {
		a, b, c := mags[peak-1], mags[peak], mags[peak+1]
		if denom := a - 2*b + c; denom != 0 {
			offset = 0.5 * (a - c) / denom
		}
	}
	return (float64(peak) + offset) * float64(sampleRate) / float64(s.n)
}

// DominantFrequency is a one-shot form of Spectrum.DominantFrequency.
func DominantFrequency(segment []float64, sampleRate int) float64 {
	if len(segment) == 0 {
		return 0
	}
	return NewSpectrum(len(segment)).DominantFrequency(segment, sampleRate)
}

// SegmentFrequencies splits signal into consecutive segments of segLen
// samples and returns the dominant frequency of each. A trailing partial
// segment is ignored.
func SegmentFrequencies(signal []float64, segLen, sampleRate int) []float64 {
	if segLen <= 0 {
		return nil
	}
	count := len(signal) / segLen
	out := make([]float64, count)
	if count == 0 {
		return out
	}

	spec := NewSpectrum(segLen)
	for i := range count {
		out[i] = spec.DominantFrequency(signal[i*segLen:(i+1)*segLen], sampleRate)
	}
	return out
}

// RMS returns the root mean square level of s.
func RMS(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return math.Sqrt(simdops.Energy(s) / float64(len(s)))
}

// Summary describes the distribution of values in a series.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize returns the mean, unbiased standard deviation and extremes of x.
// The standard deviation of fewer than two values is 0.
func Summarize(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}
	var sum Summary
	if len(x) < minSamplesForStdDev {
		sum.Mean = x[0]
	} else {
		sum.Mean, sum.StdDev = stat.MeanStdDev(x, nil)
	}
	sum.Min = floats.Min(x)
	sum.Max = floats.Max(x)
	return sum
}
