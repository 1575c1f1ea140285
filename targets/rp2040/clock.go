//go:build rp2040

package main

import (
	"picoblink/core"
	"runtime/volatile"
	"unsafe"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerALARM0   = timerBase + 0x10 // ALARM1..3 follow at 4 byte steps
	timerARMED    = timerBase + 0x20 // Write 1 to disarm
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word
	timerINTR     = timerBase + 0x34 // Raw interrupts, write 1 to clear
	timerINTE     = timerBase + 0x38 // Interrupt enable
	timerINTF     = timerBase + 0x3C // Interrupt force
)

var (
	timerRAWL  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
	timerArmed = (*volatile.Register32)(unsafe.Pointer(uintptr(timerARMED)))
	timerIntR  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTR)))
	timerIntE  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTE)))
	timerIntF  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTF)))
)

// GetHardwareTime reads the RP2040 hardware timer
// Returns the low 32 bits of the microsecond counter
func GetHardwareTime() uint32 {
	return timerRAWL.Get()
}

// UpdateSystemTime updates the core timer with hardware time
// Called from the alarm interrupt before the blinker runs
func UpdateSystemTime() {
	core.SetTime(GetHardwareTime())
}
