package sonify

// Batch defaults
const (
	DefaultOutputDir       = "wolfram_wavs"
	DefaultSampleRate      = 44100
	DefaultSegmentDuration = 0.05 // seconds per automaton step
	DefaultDuration        = 30.0 // seconds per file
	DefaultWidth           = 128
	DefaultFreqMin         = 180.0
	DefaultFreqMax         = 1200.0
	DefaultAmplitude       = 0.10
)

// Rule range limits
const (
	MinRule = 0
	MaxRule = 255

	// Rule 0 is the all-zero fixed point and is skipped by default.
	DefaultFirstRule = 1
	DefaultLastRule  = MaxRule
)

// Output file naming: FilePrefix + rule number + FileExt.
const (
	FilePrefix = "ca_rule"
	FileExt    = ".wav"
)

// Output constants
const (
	// dirPerm is used when creating the output directory.
	dirPerm = 0o755
)
