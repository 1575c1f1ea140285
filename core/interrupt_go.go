//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// hostMask stands in for the interrupt mask on regular Go so that tests
// driving the handler from several goroutines still get mutual exclusion.
var hostMask sync.Mutex

// disableInterrupts acquires the emulated interrupt mask
func disableInterrupts() State {
	hostMask.Lock()
	return 0
}

// restoreInterrupts releases the emulated interrupt mask
func restoreInterrupts(state State) {
	hostMask.Unlock()
}
