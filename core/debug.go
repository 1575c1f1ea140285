package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures one blinker event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Counter   uint8  // Divider counter after the event
	Clock     uint32 // System clock at event
	Value     uint32 // Context-dependent value
}

// Event type codes
const (
	EvtAlarmFire    = 1 // Handler entered with the device handle present
	EvtRearmFailed  = 2 // Alarm rejected the next deadline
	EvtToggle       = 3 // LED toggled
	EvtToggleFailed = 4 // LED toggle reported an error
	EvtCellEmpty    = 5 // Handler found the device cell empty
	EvtStarted      = 6 // Initializer installed the device handle
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Timing capture ring buffer (non-blocking, safe from the ISR)
	timingRing     [TimingRingSize]TimingEvent
	timingRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Never call it from interrupt context; use RecordTiming there.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordTiming captures a timing event in the ring buffer.
// Callers must hold a critical section.
func RecordTiming(eventType, counter uint8, value uint32) {
	idx := timingRingHead
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		Counter:   counter,
		Clock:     GetTime(),
		Value:     value,
	}
	timingRingHead = (idx + 1) % TimingRingSize
}

// TimingEvents returns the recorded events from oldest to newest
func TimingEvents() []TimingEvent {
	var events []TimingEvent
	WithCriticalSection(func(CriticalSection) {
		start := timingRingHead
		for i := uint8(0); i < TimingRingSize; i++ {
			evt := timingRing[(start+i)%TimingRingSize]
			if evt.EventType == 0 {
				continue // Empty slot
			}
			events = append(events, evt)
		}
	})
	return events
}

// EventName returns the short name used when dumping an event
func EventName(eventType uint8) string {
	switch eventType {
	case EvtAlarmFire:
		return "ALARM_FIRE"
	case EvtRearmFailed:
		return "REARM_FAIL!"
	case EvtToggle:
		return "TOGGLE"
	case EvtToggleFailed:
		return "TOGGLE_FAIL!"
	case EvtCellEmpty:
		return "CELL_EMPTY"
	case EvtStarted:
		return "STARTED"
	default:
		return "UNKNOWN"
	}
}

// DumpTimingRing outputs the timing ring buffer through the debug writer.
// It ignores debugEnabled so it can be used after a failure.
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for _, evt := range TimingEvents() {
		debugPrintln("[TIMING] " + EventName(evt.EventType) +
			" clock=" + utoa(evt.Clock) +
			" count=" + itoa(int(evt.Counter)) +
			" v=" + utoa(evt.Value))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	WithCriticalSection(func(CriticalSection) {
		for i := range timingRing {
			timingRing[i] = TimingEvent{}
		}
		timingRingHead = 0
	})
}
