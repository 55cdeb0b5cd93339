package result_test

import (
	"testing"

	"github.com/benchpair/benchpair/internal/bench"
	"github.com/benchpair/benchpair/internal/result"
	"github.com/benchpair/benchpair/internal/stats"
)

func TestCalculateRunResultDegenerateVariance(t *testing.T) {
	diff := []int64{5, 5, 5, 5, 5}
	baseline, _ := stats.From([]int64{10, 10, 10, 10, 10})
	candidate, _ := stats.From([]int64{15, 15, 15, 15, 15})

	run, ok := result.CalculateRunResult("identical", baseline, candidate, diff, true)
	if !ok {
		t.Fatal("expected a result")
	}
	if run.Significant {
		t.Error("expected significant=false for zero-variance diff (degenerate z)")
	}
}

func TestCalculateRunResultSignificant(t *testing.T) {
	diff := make([]int64, 200)
	for i := range diff {
		// Strong, consistent 10% effect with tiny jitter so variance is
		// nonzero but small relative to the mean.
		diff[i] = 1000 + int64(i%3)
	}
	baseline, _ := stats.From(repeat(10000, 200))
	candidate, _ := stats.From(repeat(11000, 200))

	run, ok := result.CalculateRunResult("clear-effect", baseline, candidate, diff, true)
	if !ok {
		t.Fatal("expected a result")
	}
	if !run.Significant {
		t.Errorf("expected significant=true, z-ish diff mean=%f", run.Diff.Mean)
	}
}

func TestCalculateRunResultUndetectableOutliersPassesThroughUnfiltered(t *testing.T) {
	diff := []int64{1, 1, 1, 1, 1, 1, 1, 1}
	baseline, _ := stats.From(repeat(1, 8))
	candidate, _ := stats.From(repeat(2, 8))

	run, ok := result.CalculateRunResult("flat", baseline, candidate, diff, true)
	if !ok {
		t.Fatal("expected a result")
	}
	if run.Outliers != 0 {
		t.Errorf("Outliers = %d, want 0 when thresholds are undetectable", run.Outliers)
	}
	if run.Diff.N != len(diff) {
		t.Errorf("Diff.N = %d, want %d (unfiltered)", run.Diff.N, len(diff))
	}
}

func TestCalibrateSimpleH0LowFalsePositiveRate(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical calibration check, skipped in short mode")
	}

	sum := bench.Func("sum5000", func() any {
		total := 0
		for i := 0; i < 5000; i++ {
			total += i
		}
		return total
	})
	sum2 := bench.Func("sum5000-2", func() any {
		total := 0
		for i := 0; i < 5000; i++ {
			total += i
		}
		return total
	})

	report := result.CalibrateSimple(sum, sum2)
	if report.H0BaselineSignificant > 2 {
		t.Errorf("H0 false-positive count = %d, want <= 2 with high probability", report.H0BaselineSignificant)
	}
}

func repeat(v int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
