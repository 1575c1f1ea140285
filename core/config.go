package core

import (
	"errors"
	"time"
)

const (
	// AlarmInterval is the re-arm period of the blink alarm
	AlarmInterval = 10 * time.Millisecond

	// DividerThreshold is the counter value that must be exceeded before
	// the LED toggles, so the LED changes every DividerThreshold+1 firings
	DividerThreshold = 9

	// IdleDelay is how long the main context sleeps per idle iteration
	IdleDelay = 100 * time.Millisecond
)

var (
	ErrInvalidInterval = errors.New("alarm interval must be positive")
	ErrInvalidDivider  = errors.New("divider threshold must be below 255")
	ErrInvalidIdle     = errors.New("idle delay must be positive")
)

// Config holds the blink timing parameters
type Config struct {
	AlarmInterval    time.Duration
	DividerThreshold uint8
	IdleDelay        time.Duration
}

// DefaultConfig returns the firmware timing: a 10ms alarm toggling the LED
// every tenth firing
func DefaultConfig() Config {
	return Config{
		AlarmInterval:    AlarmInterval,
		DividerThreshold: DividerThreshold,
		IdleDelay:        IdleDelay,
	}
}

// Validate checks that the divider can be reached by an 8-bit counter and
// that the interval is usable
func (c Config) Validate() error {
	if c.AlarmInterval <= 0 {
		return ErrInvalidInterval
	}
	// counter > 255 is never true for a uint8
	if c.DividerThreshold == 255 {
		return ErrInvalidDivider
	}
	if c.IdleDelay <= 0 {
		return ErrInvalidIdle
	}
	return nil
}

// TogglePeriod is the wall-clock time between two LED level changes
func (c Config) TogglePeriod() time.Duration {
	return c.AlarmInterval * time.Duration(int(c.DividerThreshold)+1)
}
