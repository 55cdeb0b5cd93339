package result

import (
	"github.com/benchpair/benchpair/internal/bench"
	"github.com/benchpair/benchpair/internal/measure"
	"github.com/benchpair/benchpair/internal/stats"
)

// Tries is the fixed number of calibration repetitions per H0/H1 test.
const Tries = 10

// CalibrationReport holds the false-positive (H0) and true-positive (H1)
// counts for one registered pair.
type CalibrationReport struct {
	Name string

	// H0BaselineSignificant / H0CandidateSignificant count how many of the
	// Tries self-comparison runs were misclassified significant.
	H0BaselineSignificant  int
	H0CandidateSignificant int

	// H1Significant counts how many of the Tries baseline-vs-candidate runs
	// were classified significant.
	H1Significant int
}

// CalibrateSimple runs the H0/H1 calibration suite for a generator-less
// pair.
func CalibrateSimple(baseline, candidate bench.MeasureTarget) CalibrationReport {
	settings := measure.CalibrationSettings()
	return CalibrationReport{
		Name:                   baseline.Name() + "-" + candidate.Name(),
		H0BaselineSignificant:  calibrateSimple(baseline, baseline, settings),
		H0CandidateSignificant: calibrateSimple(candidate, candidate, settings),
		H1Significant:          calibrateSimple(baseline, candidate, settings),
	}
}

func calibrateSimple(a, b bench.MeasureTarget, settings measure.Settings) int {
	significant := 0
	for i := 0; i < Tries; i++ {
		paired := measure.PairSimple(a, b, settings)
		significant += countSignificant(a.Name(), b.Name(), paired)
	}
	return significant
}

// CalibratePair runs the H0/H1 calibration suite for a generator-bound
// baseline/candidate pair sharing a Generator.
func CalibratePair[H, N any](gen bench.Generator[H, N], baseline, candidate bench.BenchmarkFn[H, N]) CalibrationReport {
	settings := measure.CalibrationSettings()
	return CalibrationReport{
		Name:                   baseline.Name() + "-" + candidate.Name(),
		H0BaselineSignificant:  calibratePair(gen, baseline, baseline, settings),
		H0CandidateSignificant: calibratePair(gen, candidate, candidate, settings),
		H1Significant:          calibratePair(gen, baseline, candidate, settings),
	}
}

func calibratePair[H, N any](gen bench.Generator[H, N], a, b bench.BenchmarkFn[H, N], settings measure.Settings) int {
	significant := 0
	for i := 0; i < Tries; i++ {
		paired := measure.Pair[H, N](gen, a, b, settings)
		significant += countSignificant(a.Name(), b.Name(), paired)
	}
	return significant
}

func countSignificant(baselineName, candidateName string, paired measure.Paired) int {
	baselineSummary, ok1 := summarize(paired.Baseline)
	candidateSummary, ok2 := summarize(paired.Candidate)
	if !ok1 || !ok2 {
		return 0
	}

	run, ok := CalculateRunResult(baselineName+"/"+candidateName, baselineSummary, candidateSummary, paired.Diff, true)
	if !ok {
		return 0
	}
	if run.Significant {
		return 1
	}
	return 0
}

func summarize(values []int64) (stats.Summary[int64], bool) {
	return stats.From(values)
}
