package sim

import (
	"errors"
	"time"

	"picoblink/core"
)

// BlinkAlarm is the alarm channel the firmware uses. Alarm 0 belongs to
// the TinyGo runtime's sleep implementation.
const BlinkAlarm = 1

var ErrNegativeDuration = errors.New("sim: durations must not be negative")

// Options controls a simulated run
type Options struct {
	Duration time.Duration // Virtual time to simulate after start

	// FailScheduleAt, when non-zero, makes the alarm reject deadlines
	// from this virtual time on
	FailScheduleAt time.Duration

	// FailToggle makes every LED toggle fail
	FailToggle bool
}

// Result is what a simulated run observed
type Result struct {
	Elapsed     time.Duration
	Transitions []Transition
	Stats       core.Stats
	Dispatched  int
	Schedules   int
	Clears      int
	FinalLevel  bool
	CellLoaded  bool
}

// Machine is the blinker firmware wired to a simulated board
type Machine struct {
	Board   *Board
	LED     *Pin
	Alarm   *Alarm
	Cell    *core.DeviceCell
	Blinker *core.Blinker

	transitions []Transition
}

// NewMachine acquires the LED and blink alarm from a fresh board, attaches
// the blinker's handler and starts it, mirroring the firmware's boot path
func NewMachine(cfg core.Config) (*Machine, error) {
	board := NewBoard()

	led, err := board.TakeLED()
	if err != nil {
		return nil, err
	}
	alarm, err := board.TakeAlarm(BlinkAlarm)
	if err != nil {
		return nil, err
	}

	cell := core.NewDeviceCell()
	blinker, err := core.NewBlinker(cell, cfg)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		Board:   board,
		LED:     led,
		Alarm:   alarm,
		Cell:    cell,
		Blinker: blinker,
	}
	led.OnChange = func(level bool) {
		m.transitions = append(m.transitions, Transition{At: board.Now(), Level: level})
	}

	board.Attach(BlinkAlarm, blinker.HandleInterrupt)
	if err := blinker.Start(led, alarm, board.Line(BlinkAlarm)); err != nil {
		return nil, err
	}
	return m, nil
}

// Transitions returns the LED level changes seen so far
func (m *Machine) Transitions() []Transition {
	return m.transitions
}

// Run simulates opts.Duration of virtual time with the given failures
// injected and reports what happened
func Run(cfg core.Config, opts Options) (*Result, error) {
	if opts.Duration < 0 || opts.FailScheduleAt < 0 {
		return nil, ErrNegativeDuration
	}
	m, err := NewMachine(cfg)
	if err != nil {
		return nil, err
	}
	m.LED.SetToggleFailure(opts.FailToggle)

	if opts.FailScheduleAt > 0 && opts.FailScheduleAt < opts.Duration {
		m.Board.Advance(opts.FailScheduleAt)
		m.Alarm.SetScheduleFailure(true)
		m.Board.Advance(opts.Duration - opts.FailScheduleAt)
	} else {
		m.Board.Advance(opts.Duration)
	}

	return m.Result(), nil
}

// Result snapshots the machine state
func (m *Machine) Result() *Result {
	var loaded bool
	core.WithCriticalSection(func(cs core.CriticalSection) {
		loaded = m.Cell.Occupied(cs)
	})
	return &Result{
		Elapsed:     m.Board.Now(),
		Transitions: append([]Transition(nil), m.transitions...),
		Stats:       m.Blinker.Stats(),
		Dispatched:  m.Board.Line(BlinkAlarm).Dispatched(),
		Schedules:   m.Alarm.Schedules(),
		Clears:      m.Alarm.Clears(),
		FinalLevel:  m.LED.Level(),
		CellLoaded:  loaded,
	}
}
