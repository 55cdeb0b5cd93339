// Package bench defines the haystack/needle generator contract and the
// measured-function targets the paired measurement loop drives.
package bench

import (
	"sort"

	"github.com/benchpair/benchpair/internal/timer"
)

// MeasureTarget is the opaque, dynamically-dispatched capability every
// measured function is reduced to before it reaches the measurement loop.
// Generics live behind the construction helpers below; the loop itself
// only ever sees this interface.
type MeasureTarget interface {
	// Measure executes the wrapped function iterations times under the
	// active timer and returns the cumulative duration in timer ticks.
	Measure(iterations int) uint64

	// EstimateIterations approximates how many iterations fit into timeMs
	// of wall clock, based on a small pilot. Never returns 0.
	EstimateIterations(timeMs uint32) int

	Name() string
}

// BenchmarkFn is the typed function wrapped by a GenAndFunc target: it
// receives a haystack and a batch of needles and reports the cumulative
// timed duration of calling itself once per needle.
type BenchmarkFn[H, N any] interface {
	Measure(haystack H, needles []N) uint64
	Name() string
}

// sink is the opaque do-not-optimize destination every measured call's
// result is written to. A package-level slice of empty interfaces keeps
// results live until after the timer stops, defeating dead-code
// elimination without the overhead of a real side effect per call.
var sink []any

func consume(results []any) {
	sink = results
}

// simpleFunc wraps a zero-argument, generator-less target function.
type simpleFunc struct {
	name string
	fn   func() any
	t    timer.Timer
}

// Func builds a MeasureTarget around a zero-argument function. name must be
// non-empty: an empty name is a registration-time contract violation, not
// a runtime error, so it panics rather than returning one.
func Func(name string, fn func() any) MeasureTarget {
	if name == "" {
		panic(errEmptyName)
	}
	return &simpleFunc{name: name, fn: fn, t: timer.Default()}
}

func (f *simpleFunc) Measure(iterations int) uint64 {
	results := make([]any, 0, iterations)
	start := f.t.Start()
	for i := 0; i < iterations; i++ {
		results = append(results, f.fn())
	}
	elapsed := f.t.Stop(start)
	consume(results)
	return elapsed
}

func (f *simpleFunc) EstimateIterations(timeMs uint32) int {
	median := medianExecutionTime(f, 10)
	if median == 0 {
		return 1
	}
	estimate := int(uint64(timeMs) * 1_000_000 / median)
	if estimate < 1 {
		return 1
	}
	return estimate
}

func (f *simpleFunc) Name() string { return f.name }

// genFunc wraps a haystack/needle function with no setup step: the typed
// half of a GenAndFunc target.
type genFunc[H, N any] struct {
	name string
	fn   func(haystack H, needle N) any
	t    timer.Timer
}

// FuncFn builds a BenchmarkFn around a plain haystack/needle function.
func FuncFn[H, N any](name string, fn func(haystack H, needle N) any) BenchmarkFn[H, N] {
	if name == "" {
		panic(errEmptyName)
	}
	return &genFunc[H, N]{name: name, fn: fn, t: timer.Default()}
}

func (f *genFunc[H, N]) Measure(haystack H, needles []N) uint64 {
	results := make([]any, 0, len(needles))
	start := f.t.Start()
	for _, needle := range needles {
		results = append(results, f.fn(haystack, needle))
	}
	elapsed := f.t.Stop(start)
	consume(results)
	return elapsed
}

func (f *genFunc[H, N]) Name() string { return f.name }

// setupFunc wraps a haystack/needle function whose setup(H) -> I transform
// runs once before the timer starts. cloneFn is invoked once per needle
// inside the timed region, the honest common cost of needing a fresh
// mutable input per call.
type setupFunc[H, N, I any] struct {
	name    string
	setup   func(haystack H) I
	cloneFn func(I) I
	fn      func(input I, needle N) any
	t       timer.Timer
}

// FuncFnWithSetup builds a BenchmarkFn whose per-call input is derived from
// the haystack once (excluded from timing) and then cloned once per needle
// (included in timing).
func FuncFnWithSetup[H, N, I any](
	name string,
	setup func(haystack H) I,
	clone func(I) I,
	fn func(input I, needle N) any,
) BenchmarkFn[H, N] {
	if name == "" {
		panic(errEmptyName)
	}
	return &setupFunc[H, N, I]{name: name, setup: setup, cloneFn: clone, fn: fn, t: timer.Default()}
}

func (f *setupFunc[H, N, I]) Measure(haystack H, needles []N) uint64 {
	base := f.setup(haystack)
	results := make([]any, 0, len(needles))
	start := f.t.Start()
	for _, needle := range needles {
		results = append(results, f.fn(f.cloneFn(base), needle))
	}
	elapsed := f.t.Stop(start)
	consume(results)
	return elapsed
}

func (f *setupFunc[H, N, I]) Name() string { return f.name }

// genAndFunc binds a BenchmarkFn to the Generator that produces its
// haystack/needle inputs, and is itself an opaque MeasureTarget.
type genAndFunc[H, N any] struct {
	f    BenchmarkFn[H, N]
	g    Generator[H, N]
	name string
}

// GenAndFunc builds a MeasureTarget by pairing a typed BenchmarkFn with the
// Generator that supplies its inputs.
func GenAndFunc[H, N any](f BenchmarkFn[H, N], g Generator[H, N]) MeasureTarget {
	return &genAndFunc[H, N]{f: f, g: g, name: f.Name() + "/" + g.Name()}
}

func (g *genAndFunc[H, N]) Measure(iterations int) uint64 {
	haystack := g.g.NextHaystack()
	needles := make([]N, 0, iterations)
	g.g.NextNeedles(haystack, iterations, &needles)
	return g.f.Measure(haystack, needles)
}

func (g *genAndFunc[H, N]) EstimateIterations(timeMs uint32) int {
	const pilot = 10
	haystack := g.g.NextHaystack()
	needles := make([]N, 0, pilot)
	g.g.NextNeedles(haystack, pilot, &needles)

	measurements := make([]uint64, 0, pilot)
	for _, needle := range needles {
		measurements = append(measurements, g.f.Measure(haystack, []N{needle}))
	}

	median := medianUint64(measurements)
	if median == 0 {
		return 1
	}
	estimate := int(uint64(timeMs) * 1_000_000 / median)
	if estimate < 1 {
		return 1
	}
	return estimate
}

func (g *genAndFunc[H, N]) Name() string { return g.name }

func medianExecutionTime(target MeasureTarget, iterations int) uint64 {
	measures := make([]uint64, iterations)
	for i := range measures {
		measures[i] = target.Measure(1)
	}
	return medianUint64(measures)
}

func medianUint64(measures []uint64) uint64 {
	if len(measures) == 0 {
		return 0
	}
	sorted := make([]uint64, len(measures))
	copy(sorted, measures)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

type emptyNameError string

func (e emptyNameError) Error() string { return string(e) }

const errEmptyName = emptyNameError("bench: measured function registered with empty name")
