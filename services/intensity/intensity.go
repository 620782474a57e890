// Package intensity maps joystick deflection onto the red and blue LED
// duty cycles.
package intensity

import (
	"joyled/hal"
	"joyled/kernel"
)

// Center is the sample read with the stick at rest.
const Center = 2048

// Level is the duty for a sample: its distance from Center. The input
// domain keeps it within [0, hal.PWMPeriod].
func Level(sample uint16) uint16 {
	if sample >= Center {
		return sample - Center
	}
	return Center - sample
}

// Mapper owns the two PWM outputs. SetEnabled and Toggle run in interrupt
// context; Update runs in the loop.
type Mapper struct {
	io     hal.DigitalIO
	shared *kernel.Shared
	red    hal.Pin
	blue   hal.Pin
}

func New(io hal.DigitalIO, shared *kernel.Shared) *Mapper {
	return &Mapper{io: io, shared: shared, red: hal.PinRedLED, blue: hal.PinBlueLED}
}

// SetEnabled starts or stops both PWM generators. Stopping freezes the duty
// that was last written; starting resumes at whatever Update computes next.
func (m *Mapper) SetEnabled(on bool) {
	m.io.EnablePWM(m.red, on)
	m.io.EnablePWM(m.blue, on)
	m.shared.SetPWMEnabled(on)
}

// Toggle is the A-button handler.
func (m *Mapper) Toggle() {
	m.SetEnabled(!m.shared.PWMEnabled())
}

// Enabled reports the gate as last set by SetEnabled.
func (m *Mapper) Enabled() bool {
	return m.shared.PWMEnabled()
}

// Update writes the duty for the current samples, or does nothing while
// disabled. The enable check and the writes run with button interrupts held
// off so a disable cannot land between them.
func (m *Mapper) Update(x, y uint16) {
	state := kernel.EnterCritical()
	if m.shared.PWMEnabled() {
		m.io.SetPWMDuty(m.red, Level(x))
		m.io.SetPWMDuty(m.blue, Level(y))
	}
	kernel.ExitCritical(state)
}
