// Package mapping reduces automaton rows to densities and maps them linearly
// onto a frequency range.
package mapping

import (
	"slices"

	"github.com/tphakala/go-ca-sonify/internal/automaton"
	"github.com/tphakala/go-ca-sonify/internal/simdops"
)

// Default frequency range in Hz.
const (
	DefaultFreqMin = 220.0
	DefaultFreqMax = 880.0
)

// Density returns the fraction of live cells in s, in [0, 1].
// An empty state has density 0.
func Density(s automaton.State) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(s.Ones()) / float64(len(s))
}

// Densities returns one density per row of h, in order. Rows may differ
// in width; each is divided by its own length.
func Densities(h automaton.History) []float64 {
	out := make([]float64, len(h))

	// Rows are summed as float vectors so the count runs through the SIMD path.
	var row []float64
	for i, s := range h {
		if len(s) == 0 {
			continue
		}
		row = slices.Grow(row[:0], len(s))[:len(s)]
		for j, c := range s {
			row[j] = float64(c)
		}
		out[i] = simdops.Sum(row) / float64(len(s))
	}
	return out
}

// Frequency maps a density onto [fmin, fmax].
func Frequency(density, fmin, fmax float64) float64 {
	return fmin + density*(fmax-fmin)
}

// MapToFrequencies returns one frequency per row of h: a row with no live
// cells maps to exactly fmin and a full row to exactly fmax.
func MapToFrequencies(h automaton.History, fmin, fmax float64) []float64 {
	freqs := Densities(h)
	for i, d := range freqs {
		freqs[i] = Frequency(d, fmin, fmax)
	}
	return freqs
}
