// Command ca-wavs renders every elementary cellular automaton rule as a WAV file.
//
// Usage:
//
//	ca-wavs                                  # rules 1-255 into ./wolfram_wavs
//	ca-wavs -out sounds -duration 10         # shorter files elsewhere
//	ca-wavs -first 30 -last 30 -v            # a single rule
//	ca-wavs -parallel -keep-going            # concurrent, skip failing rules
//
// With no flags each rule gets 30 s of audio,
// 50 ms per generation, 128 cells, 180-1200 Hz, amplitude 0.10, 44.1 kHz.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	sonify "github.com/tphakala/go-ca-sonify"
	"github.com/tphakala/go-ca-sonify/internal/synth"
)

const (
	// progressInterval prints a progress line for every Nth rule.
	progressInterval = 10
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := sonify.DefaultConfig()

	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory (created if absent)")
	flag.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "Sample rate in Hz")
	flag.Float64Var(&cfg.SegmentDuration, "segment", cfg.SegmentDuration, "Seconds of audio per automaton generation")
	flag.Float64Var(&cfg.Duration, "duration", cfg.Duration, "Seconds of audio per rule")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Number of cells in the automaton ring")
	flag.Float64Var(&cfg.FreqMin, "fmin", cfg.FreqMin, "Frequency in Hz for an empty row")
	flag.Float64Var(&cfg.FreqMax, "fmax", cfg.FreqMax, "Frequency in Hz for a full row")
	flag.Float64Var(&cfg.Amplitude, "amp", cfg.Amplitude, "Tone amplitude before clipping")
	flag.IntVar(&cfg.FirstRule, "first", cfg.FirstRule, "First rule to render (0-255)")
	flag.IntVar(&cfg.LastRule, "last", cfg.LastRule, "Last rule to render (0-255)")
	flag.BoolVar(&cfg.EnableParallel, "parallel", cfg.EnableParallel, "Render rules concurrently")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines for -parallel (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.ContinueOnError, "keep-going", cfg.ContinueOnError, "Log failed rules and continue instead of aborting")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		return fmt.Errorf("unexpected arguments: %v", flag.Args())
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Rules: %d-%d", cfg.FirstRule, cfg.LastRule)
		log.Printf("Steps: %d x %gs (%d samples each)", cfg.Steps(), cfg.SegmentDuration, cfg.SegmentLength())
		log.Printf("Ring width: %d cells", cfg.Width)
		log.Printf("Frequency range: %g-%g Hz, amplitude %g", cfg.FreqMin, cfg.FreqMax, cfg.Amplitude)
		log.Printf("Sample rate: %d Hz", cfg.SampleRate)
		if cfg.EnableParallel {
			log.Printf("Parallel: enabled")
		}
	}

	cfg.Progress = func(rule, _ int) {
		if rule%progressInterval == 0 {
			log.Printf("Generated rule %d", rule)
		}
	}

	log.Printf("Generating rules %d-%d into '%s'...", cfg.FirstRule, cfg.LastRule, cfg.OutputDir)

	start := time.Now()
	stats, err := sonify.Generate(&cfg)
	if stats != nil && len(stats.Failed) > 0 {
		log.Printf("Failed rules: %v", stats.Failed)
	}
	if err != nil {
		return err
	}

	if *verbose {
		elapsed := time.Since(start)
		seconds := synth.Duration(int(stats.Samples), cfg.SampleRate)
		log.Printf("Wrote %d files, %d samples (%.1fs of audio) in %.2fs",
			stats.Written, stats.Samples, seconds, elapsed.Seconds())
	}
	return nil
}
