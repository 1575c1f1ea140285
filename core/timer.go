package core

import "time"

// TimerFreq is the RP2040 timer frequency: one tick per microsecond
const TimerFreq = 1000000

var systemTicks uint32

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime publishes the current hardware time (called by the platform
// before it services the alarm, and by the simulator as virtual time advances)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// TimerFromDuration converts a duration to timer ticks. The second result
// is false if the duration is negative or does not fit in 32 bits of ticks.
func TimerFromDuration(d time.Duration) (uint32, bool) {
	if d < 0 {
		return 0, false
	}
	ticks := uint64(d.Microseconds()) * TimerFreq / 1000000
	if ticks > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(ticks), true
}
