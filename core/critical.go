package core

// CriticalSection is proof that the caller runs with interrupts masked.
// It is only handed out by WithCriticalSection and must not be retained
// after the callback returns.
type CriticalSection struct {
	_ struct{}
}

// WithCriticalSection runs fn with interrupts masked and restores the
// previous interrupt state afterwards. Critical sections do not nest on
// the host build.
func WithCriticalSection(fn func(cs CriticalSection)) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	fn(CriticalSection{})
}
