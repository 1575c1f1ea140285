package sim

// Line is an interrupt controller input. Interrupts latched while the
// line is masked are delivered on the next Advance after Enable.
type Line struct {
	enabled    bool
	handler    func()
	dispatched int
}

// Enable unmasks the line
func (l *Line) Enable() {
	l.enabled = true
}

// Enabled reports whether the line is unmasked
func (l *Line) Enabled() bool { return l.enabled }

// Dispatched is the number of handler invocations
func (l *Line) Dispatched() int { return l.dispatched }
