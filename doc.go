// Package sonify renders elementary cellular automata as audio.
//
// Each of Wolfram's 256 two-state, three-neighbor rules is simulated from a
// single live cell, every generation is reduced to its live-cell density,
// the density is mapped linearly onto a frequency range and each frequency
// becomes one short enveloped sine tone. The concatenated tones are written
// as a 16-bit mono PCM WAV file per rule.
//
// # Pipeline
//
//	Simulate -> MapToFrequencies -> Render -> Write
//	(history)    (one Hz per row)   (clip ±0.9)  (int16, truncated)
//
// # Quick Start
//
// To render every non-trivial rule with the defaults:
//
//	cfg := sonify.DefaultConfig()
//	stats, err := sonify.Generate(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d files\n", stats.Written)
//
// To render a single rule in memory:
//
//	signal := sonify.RenderRule(110, &cfg)
//
// # Defaults
//
// Files go to "wolfram_wavs" as ca_rule1.wav .. ca_rule255.wav. Each file is
// 30 s long: 600 steps of 50 ms on a 128-cell ring, 180-1200 Hz, amplitude
// 0.10, 44.1 kHz.
//
// # Errors
//
// A failed file write aborts the batch unless [Config.ContinueOnError] is
// set, in which case the failure is recorded in [Stats.Failed] and every
// per-rule error is returned joined after the remaining rules are written.
//
// # Concurrency
//
// Rules share no state, so [Config.EnableParallel] renders them on a bounded
// pool of goroutines. Output files are identical to a sequential run.
package sonify
