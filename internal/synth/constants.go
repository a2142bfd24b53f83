package synth

import "math"

// Rendering defaults
const (
	DefaultSampleRate      = 44100
	DefaultSegmentDuration = 0.05 // seconds per tone
	DefaultAmplitude       = 0.12
)

// Envelope and headroom constants
const (
	// rampSeconds is the attack and release length of each tone.
	rampSeconds = 0.01

	// ClipLevel is the absolute ceiling applied after concatenation.
	ClipLevel = 0.9

	twoPi = 2 * math.Pi
)
