// Package toggle drives the green indicator LED and the display elements
// that mirror it.
package toggle

import (
	"joyled/hal"
	"joyled/kernel"
	"joyled/services/screen"
)

// Controller splits the work between contexts: Toggle (interrupt) changes
// the pin and raises dirty, ConsumeDirty (loop) does the slow repaint.
type Controller struct {
	io     hal.DigitalIO
	fb     hal.Framebuffer
	shared *kernel.Shared
	pin    hal.Pin
}

func New(io hal.DigitalIO, fb hal.Framebuffer, shared *kernel.Shared) *Controller {
	return &Controller{io: io, fb: fb, shared: shared, pin: hal.PinGreenLED}
}

// Toggle is the joystick-button handler. The pin is written before the
// state is published, and the loop cannot run in between.
func (c *Controller) Toggle() {
	on := !c.shared.LEDOn()
	c.io.SetLevel(c.pin, on)
	c.shared.CommitLED(on)
}

// On reports the indicator state.
func (c *Controller) On() bool {
	return c.shared.LEDOn()
}

// ConsumeDirty repaints the border and the indicator outline if a toggle is
// pending. dirty is cleared before painting, so a toggle that lands during
// the repaint is picked up on the next call.
func (c *Controller) ConsumeDirty() (bool, error) {
	if !c.shared.TakeDirty() {
		return false, nil
	}
	return true, c.Redraw(c.shared.LEDOn())
}

// Redraw paints the border and the indicator for state on.
func (c *Controller) Redraw(on bool) error {
	b, ind := screen.Border, screen.Indicator
	c.fb.DrawRect(b.X, b.Y, b.W, b.H, true, false)
	c.fb.DrawRect(ind.X, ind.Y, ind.W, ind.H, on, false)
	return c.fb.Flush()
}
