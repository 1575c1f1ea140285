package sim

import (
	"errors"
	"time"
)

// ErrToggleFailed is returned by Toggle while a failure is injected
var ErrToggleFailed = errors.New("sim: pin toggle failed")

// Transition is one change of the LED level
type Transition struct {
	At    time.Duration
	Level bool
}

// Pin is the simulated on-board LED
type Pin struct {
	level      bool
	failToggle bool
	toggles    int

	// OnChange, if set, is called after every level change. It runs inside
	// the interrupt handler's critical section, so it must not call
	// core.WithCriticalSection or Blinker.Stats; on the host build that
	// deadlocks.
	OnChange func(level bool)
}

// Toggle inverts the LED level
func (p *Pin) Toggle() error {
	if p.failToggle {
		return ErrToggleFailed
	}
	p.level = !p.level
	p.toggles++
	if p.OnChange != nil {
		p.OnChange(p.level)
	}
	return nil
}

// SetToggleFailure makes following Toggle calls fail
func (p *Pin) SetToggleFailure(fail bool) {
	p.failToggle = fail
}

// Level returns the current output level
func (p *Pin) Level() bool { return p.level }

// Toggles is the number of successful level changes
func (p *Pin) Toggles() int { return p.toggles }
