// Package reporter implements the reporter contract: console/verbose
// terminal output, a CSV raw-measurement dump, and an optional Prometheus
// exporter. Reporters must not mutate the RunResult they are given.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benchpair/benchpair/internal/result"
)

// Reporter receives lifecycle callbacks as the registry measures pairs.
type Reporter interface {
	// OnStart fires once per generator, before its first pair is measured.
	OnStart(generatorName string)

	// OnComplete fires once per measured pair.
	OnComplete(run *result.RunResult)
}

// RawSampleSink is an optional capability a Reporter can implement to
// receive every individual paired sample, rather than only the aggregated
// RunResult OnComplete reports. CSV implements
// this; the registry feeds it one call per sample after a pair finishes.
type RawSampleSink interface {
	RawSample(baselineTicks, candidateTicks int64)
}

// Console is the default reporter: one line per pair.
type Console struct {
	Out io.Writer
}

func (c Console) OnStart(generatorName string) {
	fmt.Fprintf(c.Out, "%s\n", generatorName)
}

func (c Console) OnComplete(run *result.RunResult) {
	marker := " "
	if run.Significant {
		marker = "*"
	}
	fmt.Fprintf(c.Out, "  %s%-30s [outliers %3d] %+8.2f%%\n",
		marker, run.Name, run.Outliers, relativeDiffPercent(run))
}

// Verbose additionally prints n, mean and variance of the
// baseline/candidate/diff summaries.
type Verbose struct {
	Out io.Writer
}

func (v Verbose) OnStart(generatorName string) {
	fmt.Fprintf(v.Out, "%s\n", generatorName)
}

func (v Verbose) OnComplete(run *result.RunResult) {
	marker := " "
	if run.Significant {
		marker = "*"
	}
	fmt.Fprintf(v.Out, "  %s%s\n", marker, run.Name)
	fmt.Fprintf(v.Out, "    baseline:  n=%-8d mean=%-12.2f variance=%.2f\n", run.Baseline.N, run.Baseline.Mean, run.Baseline.Variance)
	fmt.Fprintf(v.Out, "    candidate: n=%-8d mean=%-12.2f variance=%.2f\n", run.Candidate.N, run.Candidate.Mean, run.Candidate.Variance)
	fmt.Fprintf(v.Out, "    diff:      n=%-8d mean=%-12.2f variance=%.2f outliers=%d\n", run.Diff.N, run.Diff.Mean, run.Diff.Variance, run.Outliers)
}

// JSON emits one RunResult per line as newline-delimited JSON, the format
// the compare subcommand shells out to a second binary's "pair --json" to
// read back, comparing across binaries without dynamic loading.
type JSON struct {
	Out io.Writer
}

func (j JSON) OnStart(generatorName string) {}

func (j JSON) OnComplete(run *result.RunResult) {
	// Encoding errors here would mean the RunResult itself is unmarshalable,
	// which cannot happen for this plain-data struct; nothing useful to do
	// with the error but drop it.
	_ = json.NewEncoder(j.Out).Encode(run)
}

func relativeDiffPercent(run *result.RunResult) float64 {
	if run.Candidate.Mean == 0 {
		return 0
	}
	return 100 * run.Diff.Mean / run.Candidate.Mean
}
