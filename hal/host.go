//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	adc    *virtualAnalog
	io     *virtualIO
	btn    *hostButtons
	clock  *hostClock
}

// New returns a host HAL implementation. Joystick channels read center until
// a runner attaches a source to them.
func New() HAL {
	return newHostHAL()
}

func newHostHAL() *hostHAL {
	clock := newHostClock()
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(DisplayWidth, DisplayHeight),
		adc:    newVirtualAnalog(),
		io:     newVirtualIO(),
		btn:    newHostButtons(clock),
		clock:  clock,
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Framebuffer { return h.fb }
func (h *hostHAL) Analog() Analog       { return h.adc }
func (h *hostHAL) IO() DigitalIO        { return h.io }
func (h *hostHAL) Buttons() Buttons     { return h.btn }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
