// Package marker draws the square that follows the joystick.
package marker

import (
	"joyled/hal"
	"joyled/services/screen"
)

// Renderer redraws the marker differentially: erase where it was, draw where
// it is, flush once.
type Renderer struct {
	fb   hal.Framebuffer
	cal  screen.Calibration
	size int16
}

func New(fb hal.Framebuffer, cal screen.Calibration) *Renderer {
	return &Renderer{fb: fb, cal: cal, size: screen.MarkerSize}
}

// Position maps a sample pair to the marker's top-left pixel.
func (r *Renderer) Position(x, y uint16) (px, py int16) {
	return r.cal.Map(x, y)
}

// Render erases the marker at the position of (lastX, lastY) and draws it at
// the position of (x, y). Identical arguments erase and redraw the same
// square.
func (r *Renderer) Render(x, y, lastX, lastY uint16) error {
	ox, oy := r.cal.Map(lastX, lastY)
	nx, ny := r.cal.Map(x, y)
	r.fb.DrawRect(ox, oy, r.size, r.size, false, true)
	r.fb.DrawRect(nx, ny, r.size, r.size, true, true)
	return r.fb.Flush()
}
