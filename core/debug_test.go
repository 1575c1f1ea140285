package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingRingKeepsNewestEvents(t *testing.T) {
	ClearTimingRing()
	t.Cleanup(ClearTimingRing)

	SetTime(1000)
	WithCriticalSection(func(CriticalSection) {
		for i := 0; i < TimingRingSize+4; i++ {
			RecordTiming(EvtAlarmFire, uint8(i%10), uint32(i))
		}
	})

	events := TimingEvents()
	require.Len(t, events, TimingRingSize)
	assert.Equal(t, uint32(4), events[0].Value)
	assert.Equal(t, uint32(TimingRingSize+3), events[len(events)-1].Value)
	assert.Equal(t, uint32(1000), events[0].Clock)
}

func TestDumpTimingRing(t *testing.T) {
	ClearTimingRing()
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	t.Cleanup(func() {
		SetDebugWriter(func(string) {})
		ClearTimingRing()
	})

	SetTime(20000)
	WithCriticalSection(func(CriticalSection) {
		RecordTiming(EvtToggle, 0, 3)
		RecordTiming(EvtRearmFailed, 4, 44)
	})
	DumpTimingRing()

	require.Len(t, lines, 4)
	assert.Equal(t, "[TIMING] TOGGLE clock=20000 count=0 v=3", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[TIMING] REARM_FAIL!"))
}

func TestDebugPrintlnHonoursEnable(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	t.Cleanup(func() {
		SetDebugWriter(func(string) {})
		SetDebugEnabled(false)
	})

	DebugPrintln("hidden")
	SetDebugEnabled(true)
	DebugPrintln("shown")

	assert.Equal(t, []string{"shown"}, lines)
}

func TestUtoa(t *testing.T) {
	assert.Equal(t, "0", utoa(0))
	assert.Equal(t, "4294967295", utoa(4294967295))
	assert.Equal(t, "-42", itoa(-42))
}

func TestTimerFromDuration(t *testing.T) {
	ticks, ok := TimerFromDuration(AlarmInterval)
	assert.True(t, ok)
	assert.Equal(t, uint32(10000), ticks)

	_, ok = TimerFromDuration(-1)
	assert.False(t, ok)

	_, ok = TimerFromDuration(5000 * 1e9)
	assert.False(t, ok)
}
