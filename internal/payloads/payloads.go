// Package payloads registers this repository's own tick/cancel/queue
// implementations as benchmark subjects: the comparisons their original
// standalone cmd/* mains made with a single wall-clock pass are exactly
// what the paired measurement loop exists to make statistically rigorous.
package payloads

import (
	"context"
	"time"

	"github.com/benchpair/benchpair/internal/bench"
	"github.com/benchpair/benchpair/internal/cancel"
	"github.com/benchpair/benchpair/internal/queue"
	"github.com/benchpair/benchpair/internal/tick"
)

// benchInterval is the ticker interval used across all tick pairs; it is
// long enough that Tick() essentially always reports "not yet" on both
// implementations, isolating the check overhead itself rather than the
// cost of an actual fire.
const benchInterval = time.Hour

// TickerPair returns a baseline/candidate MeasureTarget pair comparing the
// standard-library-backed StdTicker against the atomic-based AtomicTicker.
func TickerPair() (baseline, candidate bench.MeasureTarget) {
	std := tick.NewTicker(benchInterval)
	atomicTicker := tick.NewAtomicTicker(benchInterval)

	baseline = bench.Func("StdTicker.Tick", func() any {
		return std.Tick()
	})
	candidate = bench.Func("AtomicTicker.Tick", func() any {
		return atomicTicker.Tick()
	})
	return baseline, candidate
}

// CancelerPair returns a baseline/candidate MeasureTarget pair comparing
// context.Context-based cancellation against an atomic.Bool flag.
func CancelerPair() (baseline, candidate bench.MeasureTarget) {
	ctxCanceler := cancel.NewContext(context.Background())
	atomicCanceler := cancel.NewAtomic()

	baseline = bench.Func("ContextCanceler.Done", func() any {
		return ctxCanceler.Done()
	})
	candidate = bench.Func("AtomicCanceler.Done", func() any {
		return atomicCanceler.Done()
	})
	return baseline, candidate
}

// queueDepth is the fixed capacity both queue implementations are built
// with; large enough that Push/Pop under the benchmark's iteration counts
// never actually blocks on a full or empty queue.
const queueDepth = 1024

// QueuePair returns a baseline/candidate MeasureTarget pair comparing a
// channel-backed queue against the lock-free SPSC ring buffer, each
// performing one push-then-pop round trip per call.
func QueuePair() (baseline, candidate bench.MeasureTarget) {
	ch := queue.NewChannel[int](queueDepth)
	ring := queue.NewRingBuffer[int](queueDepth)

	var i int
	baseline = bench.Func("ChannelQueue.PushPop", func() any {
		i++
		ch.Push(i)
		v, _ := ch.Pop()
		return v
	})

	var j int
	candidate = bench.Func("RingBuffer.PushPop", func() any {
		j++
		ring.Push(j)
		v, _ := ring.Pop()
		return v
	})
	return baseline, candidate
}
