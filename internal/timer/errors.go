package timer

// Error is an immutable, const error, the pattern used throughout this
// module for sentinel errors (see nomasters-haystack/errors.Error).
type Error string

func (e Error) Error() string { return string(e) }

// ErrUnknownBackend is returned by New for an out-of-range Backend value.
const ErrUnknownBackend = Error("timer: unknown backend")

// ErrHardwareTimerUnsupported is returned by New(HardwareCycleCounter) when
// the architecture is not amd64 or the CPU lacks an invariant TSC.
const ErrHardwareTimerUnsupported = Error("timer: hardware cycle counter not supported on this CPU/architecture")
