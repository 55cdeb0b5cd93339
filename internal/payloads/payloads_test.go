package payloads_test

import (
	"testing"

	"github.com/benchpair/benchpair/internal/payloads"
)

func TestTickerPairMeasures(t *testing.T) {
	baseline, candidate := payloads.TickerPair()
	if baseline.Measure(10) == 0 && candidate.Measure(10) == 0 {
		t.Error("expected at least one non-zero measurement across baseline/candidate")
	}
	if baseline.Name() == candidate.Name() {
		t.Error("expected distinct names for baseline and candidate")
	}
}

func TestCancelerPairMeasures(t *testing.T) {
	baseline, candidate := payloads.CancelerPair()
	baseline.Measure(10)
	candidate.Measure(10)
	if baseline.Name() == candidate.Name() {
		t.Error("expected distinct names for baseline and candidate")
	}
}

func TestQueuePairMeasures(t *testing.T) {
	baseline, candidate := payloads.QueuePair()
	baseline.Measure(10)
	candidate.Measure(10)
	if baseline.Name() == candidate.Name() {
		t.Error("expected distinct names for baseline and candidate")
	}
}
