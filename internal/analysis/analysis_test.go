package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-ca-sonify/internal/synth"
	"github.com/tphakala/go-ca-sonify/internal/testutil"
)

const (
	testRate   = 44100
	testSegDur = 0.05
)

func sine(freq float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * freq * float64(i) / testRate)
	}
	return s
}

func TestDominantFrequency_BinAligned(t *testing.T) {
	n := synth.SegmentLength(testSegDur, testRate) // 20 Hz bins

	for _, f := range []float64{180, 440, 1000, 1200} {
		got := DominantFrequency(sine(f, n), testRate)
		assert.InDelta(t, f, got, testutil.FrequencyTol, "freq %g", f)
	}
}

func TestDominantFrequency_BetweenBins(t *testing.T) {
	n := synth.SegmentLength(testSegDur, testRate)
	binWidth := float64(testRate) / float64(n)

	got := DominantFrequency(sine(690, n), testRate)
	assert.InDelta(t, 690, got, binWidth/2)
}

func TestDominantFrequency_Silence(t *testing.T) {
	assert.Equal(t, 0.0, DominantFrequency(make([]float64, 512), testRate))
	assert.Equal(t, 0.0, DominantFrequency(nil, testRate))
}

func TestSegmentFrequencies_RenderedSequence(t *testing.T) {
	freqs := []float64{220, 440, 880, 1200, 180}
	signal := synth.Render(freqs, testSegDur, testRate, 0.1)
	segLen := synth.SegmentLength(testSegDur, testRate)

	got := SegmentFrequencies(signal, segLen, testRate)

	require.Len(t, got, len(freqs))
	testutil.AssertSlicesInDelta(t, freqs, got, testutil.FrequencyTol)
}

func TestSegmentFrequencies_PartialTail(t *testing.T) {
	got := SegmentFrequencies(make([]float64, 250), 100, testRate)
	assert.Len(t, got, 2)
	assert.Nil(t, SegmentFrequencies(make([]float64, 10), 0, testRate))
	assert.Empty(t, SegmentFrequencies(make([]float64, 10), 100, testRate))
}

func TestRMS(t *testing.T) {
	n := synth.SegmentLength(testSegDur, testRate)
	assert.InDelta(t, 1/math.Sqrt2, RMS(sine(440, n)), 1e-3)
	assert.Equal(t, 0.0, RMS(nil))
	assert.Equal(t, 2.0, RMS([]float64{2, -2, 2, -2}))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	assert.Equal(t, 2.5, s.Mean)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	single := Summarize([]float64{0.25})
	assert.Equal(t, Summary{Mean: 0.25, Min: 0.25, Max: 0.25}, single)

	assert.Equal(t, Summary{}, Summarize(nil))
}
