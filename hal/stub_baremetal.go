//go:build tinygo && baremetal

package hal

// stubFramebuffer stands in when the panel does not answer on the bus, so
// the LEDs keep working without a display.
type stubFramebuffer struct {
	w int16
	h int16
}

func (f *stubFramebuffer) Width() int16  { return f.w }
func (f *stubFramebuffer) Height() int16 { return f.h }

func (f *stubFramebuffer) Fill(on bool) {}

func (f *stubFramebuffer) DrawRect(x, y, w, h int16, on, filled bool) {}

func (f *stubFramebuffer) Flush() error { return ErrNotImplemented }
