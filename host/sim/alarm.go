package sim

import (
	"errors"
	"time"

	"picoblink/core"
)

// ErrScheduleRejected is returned by Schedule while a failure is injected
var ErrScheduleRejected = errors.New("sim: alarm schedule rejected")

// Alarm is one simulated one-shot timer alarm
type Alarm struct {
	board *Board
	index int
	line  *Line

	armed      bool
	deadline   uint64
	pending    bool
	serviced   bool
	intEnabled bool

	failSchedule bool

	schedules int
	clears    int
	fired     int
}

// Schedule arms the alarm to fire d after the current virtual time
func (a *Alarm) Schedule(d time.Duration) error {
	if a.failSchedule {
		return ErrScheduleRejected
	}
	ticks, ok := core.TimerFromDuration(d)
	if !ok {
		return ErrScheduleRejected
	}
	if ticks == 0 {
		ticks = 1 // the counter has to move before the compare can match
	}
	a.schedules++
	a.deadline = a.board.now + uint64(ticks)
	a.armed = true
	return nil
}

// ClearInterrupt acknowledges the latched alarm interrupt
func (a *Alarm) ClearInterrupt() {
	a.clears++
	a.pending = false
	a.serviced = false
}

// EnableInterrupt lets the alarm raise its interrupt
func (a *Alarm) EnableInterrupt() {
	a.intEnabled = true
}

// SetScheduleFailure makes every following Schedule call fail (or succeed
// again when fail is false)
func (a *Alarm) SetScheduleFailure(fail bool) {
	a.failSchedule = fail
}

// Armed reports whether a deadline is pending
func (a *Alarm) Armed() bool { return a.armed }

// Pending reports whether the interrupt flag is latched
func (a *Alarm) Pending() bool { return a.pending }

// Schedules is the number of accepted Schedule calls
func (a *Alarm) Schedules() int { return a.schedules }

// Clears is the number of ClearInterrupt calls
func (a *Alarm) Clears() int { return a.clears }

// Fired is the number of times the deadline was reached
func (a *Alarm) Fired() int { return a.fired }

// expire is called by the board when virtual time reaches the deadline.
// Repeated expiries before a clear coalesce into one latched flag.
func (a *Alarm) expire() {
	a.armed = false
	a.fired++
	if !a.pending {
		a.pending = true
		a.serviced = false
	}
}
