package reporter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benchpair/benchpair/internal/reporter"
	"github.com/benchpair/benchpair/internal/result"
	"github.com/benchpair/benchpair/internal/stats"
)

func TestConsoleReporterOutputsNameAndMarker(t *testing.T) {
	var buf bytes.Buffer
	c := reporter.Console{Out: &buf}

	run := &result.RunResult{
		Name:        "baseline/candidate",
		Diff:        stats.Summary[int64]{N: 10, Mean: 50, Variance: 2},
		Candidate:   stats.Summary[int64]{N: 10, Mean: 1000},
		Significant: true,
		Outliers:    3,
	}
	c.OnComplete(run)

	out := buf.String()
	if !strings.Contains(out, "baseline/candidate") {
		t.Errorf("expected pair name in output, got %q", out)
	}
	if !strings.Contains(out, "*") {
		t.Errorf("expected significance marker in output, got %q", out)
	}
}

func TestVerboseReporterOutputsSummaries(t *testing.T) {
	var buf bytes.Buffer
	v := reporter.Verbose{Out: &buf}

	run := &result.RunResult{
		Name:      "baseline/candidate",
		Baseline:  stats.Summary[int64]{N: 10, Mean: 900},
		Candidate: stats.Summary[int64]{N: 10, Mean: 1000},
		Diff:      stats.Summary[int64]{N: 10, Mean: 100},
	}
	v.OnComplete(run)

	out := buf.String()
	if !strings.Contains(out, "baseline:") || !strings.Contains(out, "candidate:") || !strings.Contains(out, "diff:") {
		t.Errorf("expected baseline/candidate/diff sections, got %q", out)
	}
}
