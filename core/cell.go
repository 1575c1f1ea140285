package core

// DeviceCell is the single slot through which the initializer and the
// interrupt handler hand the LED and alarm back and forth. Every access
// requires a CriticalSection.
type DeviceCell struct {
	handle  DeviceHandle
	present bool
}

// NewDeviceCell returns an empty cell
func NewDeviceCell() *DeviceCell {
	return &DeviceCell{}
}

// Install stores h if the cell is empty. It reports false and leaves the
// cell untouched if a handle is already installed.
func (c *DeviceCell) Install(_ CriticalSection, h DeviceHandle) bool {
	if c.present {
		return false
	}
	c.handle = h
	c.present = true
	return true
}

// Withdraw removes and returns the handle, leaving the cell empty
func (c *DeviceCell) Withdraw(_ CriticalSection) (DeviceHandle, bool) {
	if !c.present {
		return DeviceHandle{}, false
	}
	h := c.handle
	c.handle = DeviceHandle{}
	c.present = false
	return h, true
}

// Restore puts a previously withdrawn handle back
func (c *DeviceCell) Restore(_ CriticalSection, h DeviceHandle) {
	c.handle = h
	c.present = true
}

// Occupied reports whether a handle is at rest in the cell
func (c *DeviceCell) Occupied(_ CriticalSection) bool {
	return c.present
}
