// Package result builds a RunResult from a measured pair's raw timing
// vectors: outlier filtering, z-score, and the significance decision rule.
package result

import (
	"math"

	"github.com/benchpair/benchpair/internal/outlier"
	"github.com/benchpair/benchpair/internal/stats"
)

// minRelativeEffect is the minimum-effect threshold below which a
// statistically significant z-score is still ignored: noise this small is
// not worth reporting even when it is real. It is intentionally not part of
// measure.Settings, named here so promoting it to a setting later is a
// one-line change.
const minRelativeEffect = 0.005

// significanceZ is the z-score magnitude corresponding to a roughly 99%
// two-sided normal significance threshold.
const significanceZ = 2.6

// RunResult is the outcome of measuring one baseline/candidate pair.
type RunResult struct {
	Name        string
	Baseline    stats.Summary[int64]
	Candidate   stats.Summary[int64]
	Diff        stats.Summary[int64]
	Significant bool
	Outliers    int
}

// CalculateRunResult applies the outlier filter (if enabled), computes the
// paired-difference z-score, and classifies significance.
// baseline and candidate must be non-empty summaries of equal-length
// vectors with diff already paired as candidate[i]-baseline[i].
func CalculateRunResult(name string, baselineSummary, candidateSummary stats.Summary[int64], diff []int64, filterOutliers bool) (RunResult, bool) {
	var (
		diffSummary stats.Summary[int64]
		ok          bool
		outliersCnt int
	)

	if filterOutliers {
		thresholds, found := outlier.IQRThresholds(diff)
		var filtered []int64
		if found {
			filtered, outliersCnt = outlier.Filter(diff, thresholds)
		} else {
			// No usable IQR fences: pass the series through unfiltered
			// rather than guess at thresholds.
			filtered = diff
		}
		diffSummary, ok = stats.From(filtered)
	} else {
		diffSummary, ok = stats.From(diff)
	}

	if !ok {
		// EmptyInput / DeadlineBeforeFirstSample: no samples survived to
		// summarize, so no RunResult can be produced for this pair.
		return RunResult{}, false
	}

	stdDev := math.Sqrt(diffSummary.Variance)
	stdErr := stdDev / math.Sqrt(float64(diffSummary.N))

	var z float64
	if stdErr != 0 {
		z = diffSummary.Mean / stdErr
	}
	// stdErr == 0 means z would be 0/0; leaving z at its zero value makes
	// significant false rather than dividing by zero.

	var relativeEffect float64
	if candidateSummary.Mean != 0 {
		relativeEffect = math.Abs(diffSummary.Mean / candidateSummary.Mean)
	}

	significant := math.Abs(z) >= significanceZ && relativeEffect > minRelativeEffect

	return RunResult{
		Name:        name,
		Baseline:    baselineSummary,
		Candidate:   candidateSummary,
		Diff:        diffSummary,
		Significant: significant,
		Outliers:    outliersCnt,
	}, true
}
