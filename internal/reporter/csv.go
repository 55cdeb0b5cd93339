package reporter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/benchpair/benchpair/internal/result"
)

// csvRow is one raw baseline/candidate measurement, written as
// "<baseline_ns>,<candidate_ns>" with no header. CalculateRunResult only
// hands the reporter the aggregated RunResult, so CSV rows are fed in
// separately via RawSample once a pair's measurement loop has finished.
type csvRow struct {
	baselineTicks  int64
	candidateTicks int64
}

// CSV dumps every raw sample to "<dir>/<baseline>-<candidate>.csv" without
// blocking the timed measurement loop: RawSample pushes onto a
// single-producer/single-consumer sharded ring buffer, and a background
// goroutine drains it to the file. This keeps file I/O off the hot path the
// same way the combined package's SPSC ring buffer decouples a fast
// producer from a slower consumer.
type CSV struct {
	dir string

	ring   *ring.ShardedRing[csvRow]
	done   chan struct{}
	closed chan struct{}
}

// NewCSV starts the background flush goroutine writing into dir. Call
// Close when the run is finished to drain remaining samples and close the
// file.
func NewCSV(dir string) (*CSV, error) {
	r, err := ring.NewShardedRing[csvRow](4096, 1)
	if err != nil {
		return nil, fmt.Errorf("reporter: create ring buffer: %w", err)
	}
	return &CSV{
		dir:    dir,
		ring:   r,
		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}, nil
}

// RawSample enqueues one sample's baseline/candidate ticks. Called from
// inside the measurement loop; spins briefly if the ring is momentarily
// full rather than blocking indefinitely.
func (c *CSV) RawSample(baselineTicks, candidateTicks int64) {
	row := csvRow{baselineTicks: baselineTicks, candidateTicks: candidateTicks}
	for !c.ring.Write(0, row) {
	}
}

// OnStart starts the consumer goroutine for the named pair's output file.
func (c *CSV) OnStart(string) {}

// OnComplete flushes and closes the file for the pair that just finished.
func (c *CSV) OnComplete(run *result.RunResult) {
	// run.Name may be "baseline/candidate" (registry.pairName); "/" would
	// otherwise be read as a path separator by filepath.Join.
	fileName := strings.ReplaceAll(run.Name, "/", "-") + ".csv"
	path := filepath.Join(c.dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for {
		row, ok := c.ring.TryRead()
		if !ok {
			break
		}
		fmt.Fprintf(w, "%d,%d\n", row.baselineTicks, row.candidateTicks)
	}
}
