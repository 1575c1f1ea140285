//go:build rp2040

package main

import (
	"errors"
	"machine"
)

var ErrPinTaken = errors.New("LED pin already taken")

var ledTaken bool

// ledPin is the on-board LED (GPIO25) as a push-pull output
type ledPin struct {
	pin   machine.Pin
	level bool
}

// takeLED configures the on-board LED as an output. It can be taken once.
func takeLED() (*ledPin, error) {
	if ledTaken {
		return nil, ErrPinTaken
	}
	ledTaken = true

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ledPin{pin: machine.LED}, nil
}

// Toggle inverts the LED level
func (p *ledPin) Toggle() error {
	p.level = !p.level
	p.pin.Set(p.level)
	return nil
}
