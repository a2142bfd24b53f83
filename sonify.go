package sonify

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/tphakala/go-ca-sonify/internal/automaton"
	"github.com/tphakala/go-ca-sonify/internal/mapping"
	"github.com/tphakala/go-ca-sonify/internal/synth"
	"github.com/tphakala/go-ca-sonify/internal/wavio"
)

// Config holds batch generation settings.
type Config struct {
	// OutputDir receives one WAV file per rule. It is created if absent.
	OutputDir string

	// SampleRate of the rendered audio in Hz.
	SampleRate int

	// SegmentDuration is the length in seconds of the tone for one
	// automaton generation.
	SegmentDuration float64

	// Duration is the target length in seconds of each file. The number of
	// generations is floor(Duration / SegmentDuration).
	Duration float64

	// Width is the number of cells in the automaton ring.
	Width int

	// FreqMin and FreqMax bound the density-to-frequency mapping in Hz.
	FreqMin float64
	FreqMax float64

	// Amplitude is the peak gain of each tone before clipping.
	Amplitude float64

	// FirstRule and LastRule select the inclusive range of rules to render.
	FirstRule int
	LastRule  int

	// EnableParallel renders rules concurrently.
	EnableParallel bool

	// Workers bounds the goroutines used when EnableParallel is set.
	// Zero means GOMAXPROCS.
	Workers int

	// ContinueOnError records a failed rule and moves on instead of
	// aborting the batch.
	ContinueOnError bool

	// Progress, when set, is called after each file is written with the
	// rule number and the count of files written so far. Calls are
	// serialized.
	Progress func(rule, done int)
}

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid sonify configuration")
)

// DefaultConfig returns the batch settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		OutputDir:       DefaultOutputDir,
		SampleRate:      DefaultSampleRate,
		SegmentDuration: DefaultSegmentDuration,
		Duration:        DefaultDuration,
		Width:           DefaultWidth,
		FreqMin:         DefaultFreqMin,
		FreqMax:         DefaultFreqMax,
		Amplitude:       DefaultAmplitude,
		FirstRule:       DefaultFirstRule,
		LastRule:        DefaultLastRule,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	if c.SegmentDuration <= 0 {
		return fmt.Errorf("%w: segment duration must be positive", ErrInvalidConfig)
	}

	if synth.SegmentLength(c.SegmentDuration, c.SampleRate) < 1 {
		return fmt.Errorf("%w: segment duration %gs is shorter than one sample", ErrInvalidConfig, c.SegmentDuration)
	}

	if c.Steps() < 1 {
		return fmt.Errorf("%w: duration %gs is shorter than one segment", ErrInvalidConfig, c.Duration)
	}

	if c.Width < 1 {
		return fmt.Errorf("%w: width must be at least 1", ErrInvalidConfig)
	}

	if c.FreqMin < 0 || c.FreqMax < c.FreqMin {
		return fmt.Errorf("%w: frequency range must satisfy 0 <= min <= max", ErrInvalidConfig)
	}

	if c.Amplitude < 0 {
		return fmt.Errorf("%w: amplitude must not be negative", ErrInvalidConfig)
	}

	if c.FirstRule < MinRule || c.LastRule > MaxRule || c.FirstRule > c.LastRule {
		return fmt.Errorf("%w: rule range must lie within %d-%d", ErrInvalidConfig, MinRule, MaxRule)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Steps returns the number of automaton generations per file.
func (c *Config) Steps() int {
	if c.SegmentDuration <= 0 {
		return 0
	}
	return int(c.Duration / c.SegmentDuration)
}

// SegmentLength returns the number of samples per generation.
func (c *Config) SegmentLength() int {
	return synth.SegmentLength(c.SegmentDuration, c.SampleRate)
}

// Rules returns the rule numbers to render, in increasing order.
func (c *Config) Rules() []int {
	if c.FirstRule > c.LastRule {
		return nil
	}
	rules := make([]int, 0, c.LastRule-c.FirstRule+1)
	for r := c.FirstRule; r <= c.LastRule; r++ {
		rules = append(rules, r)
	}
	return rules
}

// RuleFilename returns the file name used for rule, e.g. "ca_rule30.wav".
func RuleFilename(rule int) string {
	return FilePrefix + strconv.Itoa(rule) + FileExt
}

// RulePath joins the configured output directory and RuleFilename.
func (c *Config) RulePath(rule int) string {
	return filepath.Join(c.OutputDir, RuleFilename(rule))
}

// RuleFrequencies simulates rule and returns one frequency per generation.
func RuleFrequencies(rule int, c *Config) []float64 {
	history := automaton.Simulate(automaton.Rule(rule), c.Width, c.Steps())
	return mapping.MapToFrequencies(history, c.FreqMin, c.FreqMax)
}

// RenderRule runs the full pipeline for rule and returns the clipped signal.
func RenderRule(rule int, c *Config) []float64 {
	freqs := RuleFrequencies(rule, c)
	return synth.Render(freqs, c.SegmentDuration, c.SampleRate, c.Amplitude)
}

// WriteRule renders rule and writes it to c.RulePath(rule). It returns the
// number of samples written.
func WriteRule(rule int, c *Config) (int, error) {
	signal := RenderRule(rule, c)
	if err := wavio.Write(c.RulePath(rule), signal, c.SampleRate); err != nil {
		return 0, err
	}
	return len(signal), nil
}
