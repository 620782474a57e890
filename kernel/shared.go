package kernel

import "sync/atomic"

// Shared is the only state crossing the interrupt/main-loop boundary.
//
// Ownership per field:
//   - ledOn: written by the joystick-button handler, read by the loop.
//   - dirty: set by the joystick-button handler, cleared by the loop.
//   - pwmEnabled: written by the A-button handler, read by the loop.
//
// Each field is a single word; no field depends on another being read in
// the same instant, so there are no locks.
type Shared struct {
	ledOn      atomic.Bool
	dirty      atomic.Bool
	pwmEnabled atomic.Bool
}

// NewShared returns the boot state: LED off, nothing to redraw, PWM enabled.
func NewShared() *Shared {
	s := &Shared{}
	s.pwmEnabled.Store(true)
	return s
}

// CommitLED records an indicator level that has already been written to the
// pin and marks the display dirty.
func (s *Shared) CommitLED(on bool) {
	s.ledOn.Store(on)
	s.dirty.Store(true)
}

func (s *Shared) LEDOn() bool { return s.ledOn.Load() }

// Dirty reports a pending redraw without consuming it.
func (s *Shared) Dirty() bool { return s.dirty.Load() }

// TakeDirty clears the redraw flag and reports whether it was set.
func (s *Shared) TakeDirty() bool { return s.dirty.Swap(false) }

func (s *Shared) SetPWMEnabled(on bool) { s.pwmEnabled.Store(on) }
func (s *Shared) PWMEnabled() bool      { return s.pwmEnabled.Load() }
