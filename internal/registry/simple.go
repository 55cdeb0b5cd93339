package registry

import (
	"sort"
	"strings"

	"github.com/benchpair/benchpair/internal/bench"
	"github.com/benchpair/benchpair/internal/measure"
	"github.com/benchpair/benchpair/internal/reporter"
	"github.com/benchpair/benchpair/internal/result"
)

// SimpleRegistry holds generator-less (zero-argument) baseline/candidate
// pairs, which have no haystack/needle generator to share.
type SimpleRegistry struct {
	funcs     map[string][2]bench.MeasureTarget
	reporters []reporter.Reporter
}

// NewSimple returns an empty SimpleRegistry.
func NewSimple() *SimpleRegistry {
	return &SimpleRegistry{funcs: make(map[string][2]bench.MeasureTarget)}
}

func (r *SimpleRegistry) AddReporter(rep reporter.Reporter) {
	r.reporters = append(r.reporters, rep)
}

// AddPair registers a generator-less baseline/candidate pair under the key
// "<baseline>-<candidate>".
func (r *SimpleRegistry) AddPair(baseline, candidate bench.MeasureTarget) {
	key := baseline.Name() + "-" + candidate.Name()
	r.funcs[key] = [2]bench.MeasureTarget{baseline, candidate}
}

// ListFunctions returns the registered pair keys in sorted order.
func (r *SimpleRegistry) ListFunctions() []string {
	keys := make([]string, 0, len(r.funcs))
	for k := range r.funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RunByName measures every pair whose key contains filter.
func (r *SimpleRegistry) RunByName(filter string, settings measure.Settings) {
	keys := r.ListFunctions()
	startReported := false

	for _, key := range keys {
		pair := r.funcs[key]
		if !strings.Contains(key, filter) {
			continue
		}
		if !startReported {
			for _, rep := range r.reporters {
				rep.OnStart("")
			}
			startReported = true
		}

		baseline, candidate := pair[0], pair[1]
		paired := measure.PairSimple(baseline, candidate, settings)
		baselineSummary, ok1 := summarize(paired.Baseline)
		candidateSummary, ok2 := summarize(paired.Candidate)
		if !ok1 || !ok2 {
			continue
		}

		name := pairName(baseline.Name(), candidate.Name())
		run, ok := result.CalculateRunResult(name, baselineSummary, candidateSummary, paired.Diff, settings.OutlierDetectionEnabled)
		if !ok {
			continue
		}
		feedRawSamples(r.reporters, paired)
		for _, rep := range r.reporters {
			rep.OnComplete(&run)
		}
	}
}

// RunCalibration runs the H0/H1 calibration suite for every registered
// pair.
func (r *SimpleRegistry) RunCalibration() []result.CalibrationReport {
	keys := r.ListFunctions()
	reports := make([]result.CalibrationReport, 0, len(keys))
	for _, key := range keys {
		pair := r.funcs[key]
		reports = append(reports, result.CalibrateSimple(pair[0], pair[1]))
	}
	return reports
}
