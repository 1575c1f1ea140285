//go:build rp2040

package main

import (
	"device/arm"
	"device/rp"
	"machine"
	"picoblink/core"
	"runtime/interrupt"
	"time"
)

// blinker is package level because interrupt handlers must be top-level
// functions; it is assigned before the timer line is unmasked.
var blinker *core.Blinker

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		halt(err)
	}

	core.SetDebugWriter(func(s string) {
		println(s)
	})
	core.SetDebugEnabled(true)

	led, err := takeLED()
	if err != nil {
		halt(err)
	}
	alarm, err := takeAlarm(blinkAlarm)
	if err != nil {
		halt(err)
	}

	cfg := core.DefaultConfig()
	blinker, err = core.NewBlinker(core.NewDeviceCell(), cfg)
	if err != nil {
		halt(err)
	}

	line := interrupt.New(rp.IRQ_TIMER_IRQ_1, handleBlinkAlarm)
	if err := blinker.Start(led, alarm, line); err != nil {
		halt(err)
	}
	core.DebugPrintln("blink: started")

	core.IdleLoop(cfg.IdleDelay, time.Sleep)
}

// handleBlinkAlarm services TIMER_IRQ_1
func handleBlinkAlarm(interrupt.Interrupt) {
	UpdateSystemTime()
	blinker.HandleInterrupt()
}

// halt stops the firmware for good after a startup failure
func halt(err error) {
	println("fatal: " + err.Error())
	interrupt.Disable()
	for {
		arm.Asm("wfi")
	}
}
