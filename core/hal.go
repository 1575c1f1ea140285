package core

import "time"

// OutputPin is the digital output the blinker drives.
// Platform-specific implementations handle actual hardware control.
type OutputPin interface {
	// Toggle inverts the current output level
	Toggle() error
}

// Alarm is a one-shot, re-armable hardware alarm channel
type Alarm interface {
	// Schedule arms the alarm to fire d after the current time.
	// Returns an error if the hardware cannot honour the deadline.
	Schedule(d time.Duration) error

	// ClearInterrupt acknowledges a pending alarm interrupt
	ClearInterrupt()

	// EnableInterrupt lets the alarm raise its interrupt when it fires
	EnableInterrupt()
}

// InterruptLine is the interrupt controller input the alarm is wired to
type InterruptLine interface {
	// Enable unmasks the line at the interrupt controller
	Enable()
}

// DeviceHandle is exclusive ownership of the LED and its alarm.
// At any instant it belongs to exactly one of the cell, the initializer
// or the running interrupt handler.
type DeviceHandle struct {
	LED   OutputPin
	Alarm Alarm
}
