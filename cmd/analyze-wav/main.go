// Command analyze-wav checks a generated file against its automaton.
//
// It splits the file into tone segments, estimates the dominant frequency of
// each with an FFT and compares it with the frequency the rule's density
// predicts.
//
// Usage:
//
//	analyze-wav wolfram_wavs/ca_rule30.wav
//	analyze-wav -rule 90 -rows 20 some.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	sonify "github.com/tphakala/go-ca-sonify"
	"github.com/tphakala/go-ca-sonify/internal/analysis"
	"github.com/tphakala/go-ca-sonify/internal/automaton"
	"github.com/tphakala/go-ca-sonify/internal/mapping"
	"github.com/tphakala/go-ca-sonify/internal/synth"
	"github.com/tphakala/go-ca-sonify/internal/wavio"
)

const (
	minRequiredArgs = 1
	defaultRows     = 10
	unknownRule     = -1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	defaults := sonify.DefaultConfig()

	rule := flag.Int("rule", unknownRule, "Rule number (default: parsed from ca_ruleN.wav)")
	segment := flag.Float64("segment", defaults.SegmentDuration, "Seconds per automaton generation")
	width := flag.Int("width", defaults.Width, "Automaton ring width")
	fmin := flag.Float64("fmin", defaults.FreqMin, "Frequency in Hz for an empty row")
	fmax := flag.Float64("fmax", defaults.FreqMax, "Frequency in Hz for a full row")
	rows := flag.Int("rows", defaultRows, "Segments to print in detail")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	path := args[0]

	if *rule == unknownRule {
		parsed, err := ruleFromFilename(path)
		if err != nil {
			return err
		}
		*rule = parsed
	}

	samples, info, err := wavio.Read(path)
	if err != nil {
		return err
	}

	segLen := synth.SegmentLength(*segment, info.SampleRate)
	if segLen < 1 {
		return fmt.Errorf("segment of %gs is shorter than one sample at %d Hz", *segment, info.SampleRate)
	}
	measured := analysis.SegmentFrequencies(samples, segLen, info.SampleRate)

	history := automaton.Simulate(automaton.Rule(*rule), *width, len(measured))
	expected := mapping.MapToFrequencies(history, *fmin, *fmax)

	rep := compare(expected, measured)
	densities := analysis.Summarize(mapping.Densities(history))

	fmt.Printf("%s: rule %d, %d Hz, %d samples, %d segments of %d\n",
		filepath.Base(path), *rule, info.SampleRate, info.Samples, len(measured), segLen)
	fmt.Printf("  RMS level: %.4f\n", analysis.RMS(samples))
	fmt.Printf("  Density: mean %.4f, stddev %.4f, range %.4f-%.4f\n",
		densities.Mean, densities.StdDev, densities.Min, densities.Max)
	fmt.Printf("  Frequency error: mean %.2f Hz, max %.2f Hz (segment %d)\n",
		rep.meanAbsError, rep.maxAbsError, rep.worst)

	for i := range min(*rows, len(measured)) {
		fmt.Printf("  %4d  expected %8.2f Hz  measured %8.2f Hz\n", i, expected[i], measured[i])
	}
	return nil
}
