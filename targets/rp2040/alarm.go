//go:build rp2040

package main

import (
	"errors"
	"picoblink/core"
	"runtime/volatile"
	"time"
	"unsafe"
)

const (
	alarmCount = 4

	// runtimeAlarm is used by the TinyGo runtime to implement time.Sleep
	runtimeAlarm = 0

	// blinkAlarm drives the LED; its interrupt is TIMER_IRQ_1
	blinkAlarm = 1

	// Deadlines further out than this would be indistinguishable from
	// ones that have already passed
	maxAlarmTicks = 1<<31 - 1
)

var (
	ErrAlarmTaken   = errors.New("alarm already taken")
	ErrNoSuchAlarm  = errors.New("no such alarm")
	ErrAlarmTooLate = errors.New("alarm deadline out of range")
)

var alarmsTaken uint8 = 1 << runtimeAlarm

// hwAlarm is one channel of the RP2040 timer used as a one-shot alarm
type hwAlarm struct {
	reg  *volatile.Register32
	mask uint32
}

// takeAlarm claims alarm channel n. Each channel can be claimed once.
func takeAlarm(n uint8) (*hwAlarm, error) {
	if n >= alarmCount {
		return nil, ErrNoSuchAlarm
	}
	if alarmsTaken&(1<<n) != 0 {
		return nil, ErrAlarmTaken
	}
	alarmsTaken |= 1 << n

	return &hwAlarm{
		reg:  (*volatile.Register32)(unsafe.Pointer(uintptr(timerALARM0 + 4*uint32(n)))),
		mask: 1 << n,
	}, nil
}

// Schedule arms the alarm d from now. Writing the alarm register arms it;
// if the deadline has already slipped by when we look again, the interrupt
// is forced so the firing is not lost until the counter wraps.
func (a *hwAlarm) Schedule(d time.Duration) error {
	ticks, ok := core.TimerFromDuration(d)
	if !ok || ticks > maxAlarmTicks {
		return ErrAlarmTooLate
	}

	target := GetHardwareTime() + ticks
	a.reg.Set(target)

	if timerArmed.HasBits(a.mask) && int32(GetHardwareTime()-target) >= 0 {
		timerArmed.Set(a.mask)
		timerIntF.SetBits(a.mask)
	}
	return nil
}

// ClearInterrupt acknowledges the alarm, including a forced interrupt
func (a *hwAlarm) ClearInterrupt() {
	timerIntF.ClearBits(a.mask)
	timerIntR.Set(a.mask)
}

// EnableInterrupt lets the alarm raise its TIMER_IRQ line
func (a *hwAlarm) EnableInterrupt() {
	timerIntE.SetBits(a.mask)
}
