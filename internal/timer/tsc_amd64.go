//go:build amd64

package timer

import (
	"time"

	"github.com/klauspost/cpuid/v2"
)

// cpuTicks reads the CPU's time-stamp counter, bracketed by serializing
// fences on both sides (RDTSCP is itself partially serializing; the
// surrounding MFENCE pair prevents reordering with adjacent loads/stores).
// Implemented in tsc_amd64.s.
func cpuTicks() uint64

// hardwareTimerSupported reports whether the current CPU exposes RDTSCP and
// an invariant TSC. A TSC that isn't invariant drifts with frequency
// scaling, which would silently corrupt comparisons between samples taken
// far apart in wall time.
func hardwareTimerSupported() bool {
	return cpuid.CPU.Supports(cpuid.RDTSCP) && cpuid.CPU.Supports(cpuid.TSCINV)
}

func newHardwareTimer() (Timer, error) {
	if !hardwareTimerSupported() {
		return nil, ErrHardwareTimerUnsupported
	}
	return &TSCTimer{}, nil
}

// TSCTimer uses the CPU's time-stamp counter directly. Start/Stop report
// raw cycle counts, not nanoseconds; per spec, higher layers treat the
// backend's unit uniformly as "timer ticks" rather than converting.
type TSCTimer struct{}

// Start returns the current cycle count as a Token.
func (TSCTimer) Start() Token {
	return Token(cpuTicks())
}

// Stop returns elapsed cycles since start.
func (TSCTimer) Stop(start Token) uint64 {
	return cpuTicks() - uint64(start)
}

// CalibrateTSC measures the CPU's cycles-per-nanosecond ratio by comparing
// TSC ticks against a 10ms wall-clock sleep. This is informational only
// (e.g. for CLI diagnostics); the TSCTimer itself never converts cycles to
// nanoseconds.
func CalibrateTSC() (float64, error) {
	if !hardwareTimerSupported() {
		return 0, ErrHardwareTimerUnsupported
	}
	// Warm up the TSC path so the first real read isn't paying icache/branch
	// predictor cost.
	cpuTicks()
	cpuTicks()

	start := cpuTicks()
	t1 := time.Now()
	time.Sleep(10 * time.Millisecond)
	end := cpuTicks()
	t2 := time.Now()

	cycles := float64(end - start)
	nanos := float64(t2.Sub(t1).Nanoseconds())
	return cycles / nanos, nil
}
