package timer_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/benchpair/benchpair/internal/timer"
)

func TestPlatformTimerMonotonic(t *testing.T) {
	tm := timer.Default()

	start := tm.Start()
	time.Sleep(time.Millisecond)
	elapsed := tm.Stop(start)

	if elapsed == 0 {
		t.Error("expected elapsed > 0 after a 1ms sleep")
	}
	if elapsed > uint64(100*time.Millisecond) {
		t.Errorf("elapsed = %dns, suspiciously large for a 1ms sleep", elapsed)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := timer.New(timer.Backend(99)); err != timer.ErrUnknownBackend {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestHardwareCycleCounter(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("hardware cycle counter is amd64-only")
	}

	tm, err := timer.New(timer.HardwareCycleCounter)
	if err != nil {
		t.Skipf("hardware cycle counter unavailable: %v", err)
	}

	start := tm.Start()
	for i := 0; i < 1_000_000; i++ {
		// spin so the elapsed cycle count is comfortably nonzero
	}
	elapsed := tm.Stop(start)

	if elapsed == 0 {
		t.Error("expected nonzero elapsed cycles")
	}
}

func TestCalibrateTSC(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("TSC calibration is amd64-only")
	}

	cyclesPerNs, err := timer.CalibrateTSC()
	if err != nil {
		t.Skipf("TSC unavailable: %v", err)
	}

	if cyclesPerNs < 0.2 || cyclesPerNs > 10 {
		t.Errorf("CalibrateTSC() = %f, expected a plausible GHz-range ratio", cyclesPerNs)
	}
}
