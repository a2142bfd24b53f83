package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	sonify "github.com/tphakala/go-ca-sonify"
)

// ruleFromFilename extracts N from a path ending in ca_ruleN.wav.
func ruleFromFilename(path string) (int, error) {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, sonify.FilePrefix) || !strings.HasSuffix(base, sonify.FileExt) {
		return 0, fmt.Errorf("cannot infer rule from %q, use -rule", base)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(base, sonify.FilePrefix), sonify.FileExt))
	if err != nil || n < sonify.MinRule || n > sonify.MaxRule {
		return 0, fmt.Errorf("cannot infer rule from %q, use -rule", base)
	}
	return n, nil
}

// report holds the per-segment frequency comparison.
type report struct {
	meanAbsError float64
	maxAbsError  float64
	worst        int
}

// compare measures how far measured strays from expected over their
// common length.
func compare(expected, measured []float64) report {
	n := min(len(expected), len(measured))
	var rep report
	if n == 0 {
		return rep
	}

	var total float64
	for i := range n {
		d := math.Abs(expected[i] - measured[i])
		total += d
		if d > rep.maxAbsError {
			rep.maxAbsError = d
			rep.worst = i
		}
	}
	rep.meanAbsError = total / float64(n)
	return rep
}
