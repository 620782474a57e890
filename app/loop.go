package app

import (
	"fmt"

	"joyled/hal"
	"joyled/kernel"
	"joyled/services/intensity"
	"joyled/services/marker"
	"joyled/services/screen"
	"joyled/services/toggle"
)

type system struct {
	log    hal.Logger
	fb     hal.Framebuffer
	adc    hal.Analog
	shared *kernel.Shared
	events *kernel.Mailbox

	mapper *intensity.Mapper
	marker *marker.Renderer
	toggle *toggle.Controller

	// Previous samples, so the marker can be erased where it was drawn.
	lastX, lastY uint16

	pwmOn   bool
	lastErr string
}

// step is one loop iteration: sample both axes, then apply them.
func (s *system) step() error {
	s.adc.SelectChannel(hal.ChannelX)
	x := s.adc.Read()
	s.adc.SelectChannel(hal.ChannelY)
	y := s.adc.Read()

	s.mapper.Update(x, y)
	s.report(s.marker.Render(x, y, s.lastX, s.lastY))
	s.lastX, s.lastY = x, y

	if did, err := s.toggle.ConsumeDirty(); did {
		s.report(err)
		s.logf("led: %s", onOff(s.toggle.On()))
	}

	s.drainEvents()
	return nil
}

// drawFrame clears the panel and draws the static border.
func (s *system) drawFrame() {
	b := screen.Border
	s.fb.Fill(false)
	s.fb.DrawRect(b.X, b.Y, b.W, b.H, true, false)
	s.report(s.fb.Flush())
}

func (s *system) drainEvents() {
	for {
		ev, ok := s.events.TryRecv()
		if !ok {
			break
		}
		s.logf("button: %s accepted at %dus", ev.Source, ev.At)
	}
	if n := s.events.Dropped(); n > 0 {
		s.logf("button: %d events dropped", n)
	}
	if on := s.mapper.Enabled(); on != s.pwmOn {
		s.pwmOn = on
		if on {
			s.logf("pwm: enabled")
		} else {
			s.logf("pwm: disabled")
		}
	}
}

// report logs a display error the first time it is seen.
func (s *system) report(err error) {
	if err == nil {
		s.lastErr = ""
		return
	}
	if msg := err.Error(); msg != s.lastErr {
		s.lastErr = msg
		s.logf("display: %v", err)
	}
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
