package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-ca-sonify/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

func TestSegmentLength(t *testing.T) {
	tests := []struct {
		dur  float64
		rate int
		want int
	}{
		{0.05, 44100, 2205},
		{0.1, 44100, 4410},
		{0.05, 48000, 2400},
		{0.001, 8000, 8},
		{0.00001, 44100, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SegmentLength(tt.dur, tt.rate), "dur=%g rate=%d", tt.dur, tt.rate)
	}
}

func TestRampLength(t *testing.T) {
	assert.Equal(t, 441, RampLength(44100))
	assert.Equal(t, 480, RampLength(48000))
	assert.Equal(t, 0, RampLength(50))
}

func TestEnvelope_Shape(t *testing.T) {
	const rate = 44100
	n := SegmentLength(DefaultSegmentDuration, rate)
	ramp := RampLength(rate)

	env := Envelope(n, rate)

	require.Len(t, env, n)
	assert.Equal(t, 0.0, env[0], "attack starts at 0")
	assert.Equal(t, 1.0, env[ramp-1], "attack ends at 1")
	assert.Equal(t, 1.0, env[n-ramp], "release starts at 1")
	assert.Equal(t, 0.0, env[n-1], "release ends at 0")
	for i := ramp; i < n-ramp; i++ {
		require.Equal(t, 1.0, env[i], "sustain at %d", i)
	}

	// Attack rises, release falls.
	for i := 1; i < ramp; i++ {
		require.Greater(t, env[i], env[i-1])
	}
	for i := n - ramp + 1; i < n; i++ {
		require.Less(t, env[i], env[i-1])
	}
}

func TestEnvelope_OverlappingRamps(t *testing.T) {
	// rate 1000 -> ramp of 10 samples, segment of 15 samples.
	const rate = 1000
	ramp := RampLength(rate)
	require.Equal(t, 10, ramp)

	env := Envelope(15, rate)
	release := linspace(1, 0, ramp)
	attack := linspace(0, 1, ramp)

	// First five samples keep the attack; the last ten are the release.
	assert.Equal(t, attack[:5], env[:5])
	assert.Equal(t, release, env[5:])
}

func TestEnvelope_ShorterThanRamp(t *testing.T) {
	const rate = 1000 // ramp of 10
	env := Envelope(4, rate)
	release := linspace(1, 0, 10)

	require.Len(t, env, 4)
	assert.Equal(t, release[6:], env)
}

func TestEnvelope_NoRamp(t *testing.T) {
	env := Envelope(5, 50)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, env)
	assert.Empty(t, Envelope(0, 44100))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, linspace(0, 1, 5))
	assert.Equal(t, []float64{1, 0.5, 0}, linspace(1, 0, 3))
	assert.Equal(t, []float64{0}, linspace(0, 1, 1))
	assert.Empty(t, linspace(0, 1, 0))
}

func TestSegment(t *testing.T) {
	const (
		rate = 44100
		freq = 440.0
		amp  = 0.5
	)
	seg := Segment(freq, DefaultSegmentDuration, rate, amp)
	env := Envelope(len(seg), rate)

	require.Len(t, seg, 2205)
	testutil.AssertNoNaNOrInf(t, seg)
	assert.Equal(t, 0.0, seg[0])

	dt := DefaultSegmentDuration / float64(len(seg))
	for _, k := range []int{100, 700, 1500, 2100} {
		want := amp * env[k] * math.Sin(2*math.Pi*freq*(float64(k)*dt))
		assert.InDelta(t, want, seg[k], testutil.DefaultTolerance, "sample %d", k)
	}

	assert.LessOrEqual(t, floats.Max(seg), amp)
	assert.GreaterOrEqual(t, floats.Min(seg), -amp)
}

func TestRender_LengthAndOrder(t *testing.T) {
	freqs := []float64{220, 440, 880}
	signal := Render(freqs, DefaultSegmentDuration, DefaultSampleRate, DefaultAmplitude)

	n := SegmentLength(DefaultSegmentDuration, DefaultSampleRate)
	testutil.AssertLengthEquals(t, signal, len(freqs)*n)

	for i, f := range freqs {
		want := Segment(f, DefaultSegmentDuration, DefaultSampleRate, DefaultAmplitude)
		testutil.AssertSlicesInDelta(t, want, signal[i*n:(i+1)*n], 0, "segment %d", i)
	}
}

func TestRender_Clip(t *testing.T) {
	freqs := []float64{100, 440, 1000, 5000}

	for _, amp := range []float64{0.1, 0.9, 1.0, 3.0} {
		signal := Render(freqs, DefaultSegmentDuration, DefaultSampleRate, amp)
		testutil.AssertAllInRange(t, signal, -ClipLevel, ClipLevel, "amp %g", amp)
	}

	loud := Render([]float64{440}, DefaultSegmentDuration, DefaultSampleRate, 1.0)
	assert.Equal(t, ClipLevel, floats.Max(loud), "full-scale tone must hit the ceiling")
	assert.Equal(t, -ClipLevel, floats.Min(loud))
}

func TestRender_Deterministic(t *testing.T) {
	freqs := []float64{180, 300, 1200}
	a := Render(freqs, 0.05, 44100, 0.1)
	b := Render(freqs, 0.05, 44100, 0.1)
	assert.Equal(t, a, b)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil, 0.05, 44100, 0.1))
	assert.Empty(t, Render([]float64{440}, 0, 44100, 0.1))
}

func TestClip(t *testing.T) {
	s := []float64{-2, -0.9, -0.5, 0, 0.5, 0.9, 2}
	Clip(s, 0.9)
	assert.Equal(t, []float64{-0.9, -0.9, -0.5, 0, 0.5, 0.9, 0.9}, s)
}

func TestDuration(t *testing.T) {
	assert.InDelta(t, 30.0, Duration(600*2205, 44100), 1e-9)
	assert.Equal(t, 0.0, Duration(100, 0))
}

func BenchmarkRender(b *testing.B) {
	freqs := make([]float64, 600)
	for i := range freqs {
		freqs[i] = 180 + float64(i%100)*10
	}

	for b.Loop() {
		_ = Render(freqs, DefaultSegmentDuration, DefaultSampleRate, DefaultAmplitude)
	}
}
