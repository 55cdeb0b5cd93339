// Package registry holds named baseline/candidate pairs and the generators
// that feed them, and drives them through the measurement loop on behalf of
// a CLI subcommand.
package registry

import (
	"sort"
	"strings"

	"github.com/benchpair/benchpair/internal/bench"
	"github.com/benchpair/benchpair/internal/measure"
	"github.com/benchpair/benchpair/internal/reporter"
	"github.com/benchpair/benchpair/internal/result"
	"github.com/benchpair/benchpair/internal/stats"
)

type fnPair[H, N any] struct {
	baseline  bench.BenchmarkFn[H, N]
	candidate bench.BenchmarkFn[H, N]
}

// Registry holds the generator-bound pairs for one haystack/needle type,
// keyed "baseline-candidate", iterated in sorted key order for
// deterministic output.
type Registry[H, N any] struct {
	funcs      map[string]fnPair[H, N]
	generators []bench.Generator[H, N]
	reporters  []reporter.Reporter
}

// New returns an empty Registry.
func New[H, N any]() *Registry[H, N] {
	return &Registry[H, N]{funcs: make(map[string]fnPair[H, N])}
}

// AddReporter registers a Reporter to be notified as pairs are measured.
func (r *Registry[H, N]) AddReporter(rep reporter.Reporter) {
	r.reporters = append(r.reporters, rep)
}

// AddGenerator registers a Generator whose payloads will be fed to every
// pair added via AddPair.
func (r *Registry[H, N]) AddGenerator(gen bench.Generator[H, N]) {
	r.generators = append(r.generators, gen)
}

// AddPair registers a baseline/candidate pair under the key
// "<baseline>-<candidate>".
func (r *Registry[H, N]) AddPair(baseline, candidate bench.BenchmarkFn[H, N]) {
	key := baseline.Name() + "-" + candidate.Name()
	r.funcs[key] = fnPair[H, N]{baseline: baseline, candidate: candidate}
}

// ListFunctions returns the registered pair keys in sorted order.
func (r *Registry[H, N]) ListFunctions() []string {
	keys := make([]string, 0, len(r.funcs))
	for k := range r.funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RunByName measures every pair whose key, or whose generator's name,
// contains filter (an empty filter matches everything), reporting each
// RunResult through the registered reporters.
func (r *Registry[H, N]) RunByName(filter string, settings measure.Settings) {
	keys := r.ListFunctions()

	for _, gen := range r.generators {
		startReported := false
		for _, key := range keys {
			pair := r.funcs[key]
			if !strings.Contains(key, filter) && !strings.Contains(gen.Name(), filter) {
				continue
			}
			if !startReported {
				for _, rep := range r.reporters {
					rep.OnStart(gen.Name())
				}
				startReported = true
			}

			paired := measure.Pair[H, N](gen, pair.baseline, pair.candidate, settings)
			baselineSummary, ok1 := summarize(paired.Baseline)
			candidateSummary, ok2 := summarize(paired.Candidate)
			if !ok1 || !ok2 {
				// DeadlineBeforeFirstSample: no samples to report.
				continue
			}

			name := pairName(pair.baseline.Name(), pair.candidate.Name())
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
}

// RunCalibration runs the H0/H1 calibration suite for every registered pair
// against the first registered generator.
func (r *Registry[H, N]) RunCalibration() []result.CalibrationReport {
	if len(r.generators) == 0 {
		return nil
	}
	gen := r.generators[0]

	keys := r.ListFunctions()
	reports := make([]result.CalibrationReport, 0, len(keys))
	for _, key := range keys {
		pair := r.funcs[key]
		reports = append(reports, result.CalibratePair[H, N](gen, pair.baseline, pair.candidate))
	}
	return reports
}

func pairName(baselineName, candidateName string) string {
	if baselineName == candidateName {
		return baselineName
	}
	return baselineName + "/" + candidateName
}

func summarize(values []int64) (stats.Summary[int64], bool) {
	return stats.From(values)
}

// feedRawSamples pushes every sample of a finished pair to reporters that
// implement reporter.RawSampleSink (the CSV dump reporter).
func feedRawSamples(reporters []reporter.Reporter, paired measure.Paired) {
	for _, rep := range reporters {
		sink, ok := rep.(reporter.RawSampleSink)
		if !ok {
			continue
		}
		for i := range paired.Baseline {
			sink.RawSample(paired.Baseline[i], paired.Candidate[i])
		}
	}
}
