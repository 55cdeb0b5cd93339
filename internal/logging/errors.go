package logging

// Error is an immutable, const sentinel error (nomasters-haystack's
// errors.Error pattern).
type Error string

func (e Error) Error() string { return string(e) }
