package sonify

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"sync"
)

// Stats summarizes a Generate run.
type Stats struct {
	// Written is the number of files written.
	Written int

	// Failed lists rules whose file could not be written, in increasing order.
	Failed []int

	// Steps is the number of automaton generations per file.
	Steps int

	// Samples is the total number of samples written across all files.
	Samples int64
}

// Generate renders every rule in the configured range and writes one WAV file
// per rule into c.OutputDir. Rules are processed in increasing order unless
// c.EnableParallel is set.
func Generate(c *Config) (*Stats, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.OutputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	stats := &Stats{Steps: c.Steps()}
	rules := c.Rules()

	var err error
	if c.EnableParallel && c.workerCount(len(rules)) > 1 {
		err = generateParallel(c, rules, stats)
	} else {
		err = generateSequential(c, rules, stats)
	}
	return stats, err
}

// workerCount returns the pool size for n rules.
func (c *Config) workerCount(n int) int {
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return min(workers, n)
}

// record folds one rule's outcome into stats and reports progress.
// Callers serialize access.
func (s *Stats) record(c *Config, rule, samples int, err error) error {
	if err != nil {
		s.Failed = append(s.Failed, rule)
		return fmt.Errorf("rule %d: %w", rule, err)
	}
	s.Written++
	s.Samples += int64(samples)
	if c.Progress != nil {
		c.Progress(rule, s.Written)
	}
	return nil
}

// generateSequential writes rules one by one.
func generateSequential(c *Config, rules []int, stats *Stats) error {
	var errs []error
	for _, rule := range rules {
		n, err := WriteRule(rule, c)
		if err := stats.record(c, rule, n, err); err != nil {
			if !c.ContinueOnError {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// generateParallel writes rules on a bounded worker pool. Without
// ContinueOnError, dispatch stops after the first failure and in-flight
// rules are allowed to finish.
func generateParallel(c *Config, rules []int, stats *Stats) error {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		errs  []error
		abort = make(chan struct{})
		once  sync.Once
	)

	jobs := make(chan int)
	for range c.workerCount(len(rules)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				n, err := WriteRule(rule, c)

				mu.Lock()
				if err := stats.record(c, rule, n, err); err != nil {
					errs = append(errs, err)
					if !c.ContinueOnError {
						once.Do(func() { close(abort) })
					}
				}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, rule := range rules {
		select {
		case jobs <- rule:
		case <-abort:
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	slices.Sort(stats.Failed)
	return errors.Join(errs...)
}
