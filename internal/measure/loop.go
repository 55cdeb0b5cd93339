package measure

import (
	"time"

	"github.com/benchpair/benchpair/internal/bench"
)

// Paired holds the two equal-length per-iteration timing vectors a pair
// measurement produces, plus their element-wise difference.
type Paired struct {
	Baseline  []int64
	Candidate []int64
	Diff      []int64
}

// Pair runs the paired measurement loop for a generator-bound
// baseline/candidate pair sharing a Generator. Both functions are measured
// on the same haystack and needle batch within each sample; the A/B order
// alternates by sample parity (ABBA interleaving) to cancel slow drift.
func Pair[H, N any](gen bench.Generator[H, N], baseline, candidate bench.BenchmarkFn[H, N], settings Settings) Paired {
	baselineTicks := make([]int64, 0, settings.MaxSamples)
	candidateTicks := make([]int64, 0, settings.MaxSamples)

	iterPerMs := estimateIterationsPerMs(gen, baseline, candidate)
	choices := iterationChoices(iterPerMs, settings)

	deadline := time.Now().Add(settings.MaxDuration)

	var haystack H
	needles := make([]N, 0, choices[len(choices)-1])

	for i := 0; i < settings.MaxSamples; i++ {
		if i%10 == 0 && time.Now().After(deadline) {
			break
		}

		if i%settings.SamplesPerHaystack == 0 {
			haystack = gen.NextHaystack()
		}

		// The rotation index advances once per pair of samples: each size in
		// choices is used for one ABBA sample and one BABA sample before
		// moving on.
		iterations := choices[(i/2)%len(choices)]

		needles = needles[:0]
		gen.NextNeedles(haystack, iterations, &needles)

		var baselineSample, candidateSample uint64
		if i%2 == 0 {
			baselineSample = baseline.Measure(haystack, needles)
			candidateSample = candidate.Measure(haystack, needles)
		} else {
			candidateSample = candidate.Measure(haystack, needles)
			baselineSample = baseline.Measure(haystack, needles)
		}

		baselineTicks = append(baselineTicks, int64(baselineSample)/int64(iterations))
		candidateTicks = append(candidateTicks, int64(candidateSample)/int64(iterations))
	}

	return buildPaired(baselineTicks, candidateTicks)
}

// PairSimple runs the paired measurement loop for two generator-less
// targets: zero-argument functions with no shared haystack/needle to
// coordinate.
func PairSimple(baseline, candidate bench.MeasureTarget, settings Settings) Paired {
	baselineTicks := make([]int64, 0, settings.MaxSamples)
	candidateTicks := make([]int64, 0, settings.MaxSamples)

	iterPerMs := estimateIterationsPerMsSimple(baseline, candidate)
	choices := iterationChoices(iterPerMs, settings)

	deadline := time.Now().Add(settings.MaxDuration)

	for i := 0; i < settings.MaxSamples; i++ {
		if i%10 == 0 && time.Now().After(deadline) {
			break
		}

		iterations := choices[(i/2)%len(choices)]

		var baselineSample, candidateSample uint64
		if i%2 == 0 {
			baselineSample = baseline.Measure(iterations)
			candidateSample = candidate.Measure(iterations)
		} else {
			candidateSample = candidate.Measure(iterations)
			baselineSample = baseline.Measure(iterations)
		}

		baselineTicks = append(baselineTicks, int64(baselineSample)/int64(iterations))
		candidateTicks = append(candidateTicks, int64(candidateSample)/int64(iterations))
	}

	return buildPaired(baselineTicks, candidateTicks)
}

func buildPaired(baselineTicks, candidateTicks []int64) Paired {
	diff := make([]int64, len(baselineTicks))
	for i := range diff {
		diff[i] = candidateTicks[i] - baselineTicks[i]
	}
	return Paired{Baseline: baselineTicks, Candidate: candidateTicks, Diff: diff}
}

// iterationChoices builds the rotation table iteration sizing draws from:
// every integer from MinIterationsPerSample up to
// min(iterPerMs, MaxIterationsPerSample), at least one entry.
func iterationChoices(iterPerMs int, settings Settings) []int {
	top := iterPerMs
	if top > settings.MaxIterationsPerSample {
		top = settings.MaxIterationsPerSample
	}
	if top < settings.MinIterationsPerSample {
		top = settings.MinIterationsPerSample
	}

	choices := make([]int, 0, top-settings.MinIterationsPerSample+1)
	for v := settings.MinIterationsPerSample; v <= top; v++ {
		choices = append(choices, v)
	}
	if len(choices) == 0 {
		choices = append(choices, 1)
	}
	return choices
}

// estimateIterationsPerMs measures how many iterations fit into one
// millisecond by alternating single-iteration calls to both functions for
// a 10ms pilot window. If the pilot produces zero completed alternations,
// iteration sizing falls back to 1.
func estimateIterationsPerMs[H, N any](gen bench.Generator[H, N], baseline, candidate bench.BenchmarkFn[H, N]) int {
	haystack := gen.NextHaystack()
	needle := gen.NextNeedle(haystack)
	needles := []N{needle}

	const factor = 10
	deadline := time.Now().Add(time.Millisecond * factor)

	iterations := 0
	for time.Now().Before(deadline) {
		candidate.Measure(haystack, needles)
		baseline.Measure(haystack, needles)
		iterations++
	}

	const rounding = 10
	result := iterations / factor / rounding * rounding
	if result < 1 {
		return 1
	}
	return result
}

func estimateIterationsPerMsSimple(baseline, candidate bench.MeasureTarget) int {
	const factor = 10
	deadline := time.Now().Add(time.Millisecond * factor)

	iterations := 0
	for time.Now().Before(deadline) {
		candidate.Measure(1)
		baseline.Measure(1)
		iterations++
	}

	const rounding = 10
	result := iterations / factor / rounding * rounding
	if result < 1 {
		return 1
	}
	return result
}
