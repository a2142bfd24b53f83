// Package synth renders frequency sequences as concatenated sine tones.
//
// Each frequency becomes one segment of floor(segmentDuration*sampleRate)
// samples shaped by a linear 10 ms attack and release. Segments are joined
// without gaps and the result is hard-clipped to ±ClipLevel.
package synth

import (
	"math"

	"github.com/tphakala/go-ca-sonify/internal/simdops"
)

// SegmentLength returns the number of samples in one tone segment.
// The product is truncated toward zero.
func SegmentLength(segmentDuration float64, sampleRate int) int {
	return int(float64(sampleRate) * segmentDuration)
}

// RampLength returns the attack/release length in samples.
func RampLength(sampleRate int) int {
	return int(rampSeconds * float64(sampleRate))
}

// linspace fills n evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	switch {
	case n <= 0:
		return out
	case n == 1:
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for k := range out {
		out[k] = float64(k)*step + start
	}
	out[n-1] = stop
	return out
}

// Envelope returns the gain curve for a segment of n samples: a linear
// 0→1 ramp over the first ramp samples, 1→0 over the last ramp samples and 1
// in between. When the ramps overlap the release overwrites the attack; when
// n is shorter than a ramp only the leading (attack) or trailing (release)
// part of the ramp that fits is applied.
func Envelope(n, sampleRate int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	env := make([]float64, n)
	for i := range env {
		env[i] = 1
	}

	ramp := RampLength(sampleRate)
	if ramp <= 0 {
		return env
	}

	attack := linspace(0, 1, ramp)
	copy(env, attack)

	release := linspace(1, 0, ramp)
	for k, v := range release {
		if i := n - ramp + k; i >= 0 {
			env[i] = v
		}
	}
	return env
}

// Segment renders a single tone of frequency freq.
func Segment(freq, segmentDuration float64, sampleRate int, amplitude float64) []float64 {
	n := SegmentLength(segmentDuration, sampleRate)
	if n <= 0 {
		return []float64{}
	}
	gain := Envelope(n, sampleRate)
	simdops.Scale(gain, gain, amplitude)

	out := make([]float64, n)
	renderTone(out, gain, freq, segmentDuration/float64(n))
	return out
}

// renderTone writes gain[k]*sin(2πf·k·dt) into dst.
func renderTone(dst, gain []float64, freq, dt float64) {
	w := twoPi * freq
	for k := range dst {
		dst[k] = gain[k] * math.Sin(w*(float64(k)*dt))
	}
}

// Render concatenates one segment per frequency, in order, and clips the
// result to [-ClipLevel, ClipLevel]. The envelope is shared by every segment.
func Render(freqs []float64, segmentDuration float64, sampleRate int, amplitude float64) []float64 {
	n := SegmentLength(segmentDuration, sampleRate)
	if n <= 0 || len(freqs) == 0 {
		return []float64{}
	}

	gain := Envelope(n, sampleRate)
	simdops.Scale(gain, gain, amplitude)
	dt := segmentDuration / float64(n)

	signal := make([]float64, len(freqs)*n)
	for i, f := range freqs {
		renderTone(signal[i*n:(i+1)*n], gain, f, dt)
	}

	Clip(signal, ClipLevel)
	return signal
}

// Clip limits every sample of s to [-level, level] in place.
func Clip(s []float64, level float64) {
	for i, v := range s {
		switch {
		case v > level:
			s[i] = level
		case v < -level:
			s[i] = -level
		}
	}
}

// Duration returns the length of a rendered signal in seconds.
func Duration(samples, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(samples) / float64(sampleRate)
}
