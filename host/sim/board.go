// Package sim is a virtual RP2040 board for running the blinker on a host.
// It models the on-board LED, the four timer alarms and their interrupt
// lines closely enough to exercise the firmware's ordering rules.
package sim

import (
	"errors"
	"time"

	"picoblink/core"
)

// AlarmCount is the number of alarm channels on the RP2040 timer
const AlarmCount = 4

var (
	ErrPinTaken    = errors.New("sim: LED pin already taken")
	ErrAlarmTaken  = errors.New("sim: alarm already taken")
	ErrNoSuchAlarm = errors.New("sim: no such alarm")
)

// Board is the simulated microcontroller. Time only moves when Advance is
// called; alarm interrupts are dispatched synchronously from Advance.
type Board struct {
	now uint64 // microseconds since boot

	led      *Pin
	ledTaken bool

	alarms [AlarmCount]*Alarm
	taken  [AlarmCount]bool
}

// NewBoard returns a board at time zero with all peripherals free
func NewBoard() *Board {
	b := &Board{led: &Pin{}}
	for i := range b.alarms {
		b.alarms[i] = &Alarm{board: b, index: i, line: &Line{}}
	}
	return b
}

// Now returns the virtual time since boot
func (b *Board) Now() time.Duration {
	return time.Duration(b.now) * time.Microsecond
}

// TakeLED hands out the on-board LED configured as a push-pull output.
// It can only be taken once.
func (b *Board) TakeLED() (*Pin, error) {
	if b.ledTaken {
		return nil, ErrPinTaken
	}
	b.ledTaken = true
	return b.led, nil
}

// TakeAlarm hands out alarm channel n. Each channel can only be taken once.
func (b *Board) TakeAlarm(n int) (*Alarm, error) {
	if n < 0 || n >= AlarmCount {
		return nil, ErrNoSuchAlarm
	}
	if b.taken[n] {
		return nil, ErrAlarmTaken
	}
	b.taken[n] = true
	return b.alarms[n], nil
}

// Line returns the interrupt line of alarm channel n
func (b *Board) Line(n int) *Line {
	return b.alarms[n].line
}

// Attach registers fn as the interrupt handler of alarm channel n
func (b *Board) Attach(n int, fn func()) {
	b.alarms[n].line.handler = fn
}

// Advance moves virtual time forward by d, firing every alarm deadline
// that falls inside the window in time order. Time never moves backwards;
// a negative d is ignored.
func (b *Board) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	end := b.now + uint64(d.Microseconds())

	b.dispatchPending()
	for {
		next := b.nextDeadline(end)
		if next == nil {
			break
		}
		b.now = next.deadline
		core.SetTime(uint32(b.now))
		next.expire()
		b.dispatchPending()
	}

	b.now = end
	core.SetTime(uint32(b.now))
}

// nextDeadline returns the armed alarm with the earliest deadline at or
// before end
func (b *Board) nextDeadline(end uint64) *Alarm {
	var next *Alarm
	for _, a := range b.alarms {
		if !a.armed || a.deadline > end {
			continue
		}
		if next == nil || a.deadline < next.deadline {
			next = a
		}
	}
	return next
}

// dispatchPending runs the handler of every alarm whose latched interrupt
// can be delivered. A latched flag is serviced once; a handler that does
// not clear it leaves it latched without being re-entered.
func (b *Board) dispatchPending() {
	for _, a := range b.alarms {
		if !a.pending || a.serviced || !a.intEnabled || !a.line.enabled {
			continue
		}
		if a.line.handler == nil {
			continue
		}
		a.serviced = true
		a.line.dispatched++
		a.line.handler()
	}
}
