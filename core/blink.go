package core

import (
	"errors"
	"time"
)

var ErrAlreadyStarted = errors.New("device cell already holds a handle")

// Stats counts what the interrupt handler has done. Failures that the
// handler discards are only visible here and in the timing ring.
type Stats struct {
	Firings          uint32 // Handler runs that found the device handle
	Toggles          uint32 // Successful LED toggles
	ScheduleFailures uint32 // Alarm re-arm requests the hardware rejected
	ToggleFailures   uint32 // LED toggles that reported an error
	EmptyFirings     uint32 // Handler runs that found the cell empty
	Counter          uint8  // Current divider counter
}

// Blinker owns the divider state of the periodic toggle handler and the
// cell it shares with the initializer.
type Blinker struct {
	cell      *DeviceCell
	interval  time.Duration
	threshold uint8

	// Only touched inside a critical section
	counter uint8
	stats   Stats
}

// NewBlinker creates a blinker that exchanges its device handle through cell
func NewBlinker(cell *DeviceCell, cfg Config) (*Blinker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Blinker{
		cell:      cell,
		interval:  cfg.AlarmInterval,
		threshold: cfg.DividerThreshold,
	}, nil
}

// Start arms the first alarm, installs the LED and alarm into the cell and
// only then unmasks the interrupt line. A rejected first deadline is
// counted and otherwise ignored; the LED simply never blinks.
func (b *Blinker) Start(led OutputPin, alarm Alarm, line InterruptLine) error {
	installed := false
	WithCriticalSection(func(cs CriticalSection) {
		if b.cell.Occupied(cs) {
			return
		}
		if err := alarm.Schedule(b.interval); err != nil {
			b.stats.ScheduleFailures++
			RecordTiming(EvtRearmFailed, b.counter, 0)
		}
		alarm.EnableInterrupt()
		installed = b.cell.Install(cs, DeviceHandle{LED: led, Alarm: alarm})
		RecordTiming(EvtStarted, b.counter, uint32(b.interval.Microseconds()))
	})
	if !installed {
		return ErrAlreadyStarted
	}

	line.Enable()
	return nil
}

// HandleInterrupt is the alarm interrupt service routine. It acknowledges
// the alarm, re-arms it for the next interval and toggles the LED every
// threshold+1 firings. It never blocks and never reports errors.
func (b *Blinker) HandleInterrupt() {
	WithCriticalSection(func(cs CriticalSection) {
		h, ok := b.cell.Withdraw(cs)
		if !ok {
			b.stats.EmptyFirings++
			RecordTiming(EvtCellEmpty, b.counter, 0)
			return
		}

		// Clear before re-arming so the new deadline is not mistaken
		// for the one that just expired
		h.Alarm.ClearInterrupt()
		if err := h.Alarm.Schedule(b.interval); err != nil {
			b.stats.ScheduleFailures++
			RecordTiming(EvtRearmFailed, b.counter, b.stats.Firings)
		}

		b.stats.Firings++
		b.counter++
		if b.counter > b.threshold {
			b.counter = 0
			if err := h.LED.Toggle(); err != nil {
				b.stats.ToggleFailures++
				RecordTiming(EvtToggleFailed, b.counter, b.stats.Firings)
			} else {
				b.stats.Toggles++
				RecordTiming(EvtToggle, b.counter, b.stats.Toggles)
			}
		} else {
			RecordTiming(EvtAlarmFire, b.counter, b.stats.Firings)
		}

		b.cell.Restore(cs, h)
	})
}

// Stats returns a snapshot of the handler counters
func (b *Blinker) Stats() Stats {
	var s Stats
	WithCriticalSection(func(CriticalSection) {
		s = b.stats
		s.Counter = b.counter
	})
	return s
}
