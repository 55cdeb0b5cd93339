package reporter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchpair/benchpair/internal/reporter"
	"github.com/benchpair/benchpair/internal/result"
)

func TestCSVReporterWritesRawSamples(t *testing.T) {
	dir := t.TempDir()
	c, err := reporter.NewCSV(dir)
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}

	c.RawSample(100, 110)
	c.RawSample(101, 109)

	c.OnComplete(&result.RunResult{Name: "baseline-candidate"})

	data, err := os.ReadFile(filepath.Join(dir, "baseline-candidate.csv"))
	if err != nil {
		t.Fatalf("reading dump file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), string(data))
	}
	if lines[0] != "100,110" {
		t.Errorf("line 0 = %q, want %q", lines[0], "100,110")
	}
	if lines[1] != "101,109" {
		t.Errorf("line 1 = %q, want %q", lines[1], "101,109")
	}
}
