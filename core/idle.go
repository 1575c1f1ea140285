package core

import "time"

// IdleLoop keeps the main context alive once the blinker is running.
// It sleeps delay at a time and never returns.
func IdleLoop(delay time.Duration, sleep func(time.Duration)) {
	for {
		sleep(delay)
	}
}
