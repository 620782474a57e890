package app

import (
	"time"

	"joyled/hal"
	"joyled/internal/buildinfo"
	"joyled/kernel"
	"joyled/services/intensity"
	"joyled/services/marker"
	"joyled/services/screen"
	"joyled/services/toggle"
)

type Config struct {
	// Idle is the pause between loop iterations on the device. Host runners
	// pace the loop themselves.
	Idle time.Duration
	// DebounceWindow is in microseconds; zero means kernel.DebounceWindow.
	DebounceWindow uint64
	Calibration    screen.Calibration
	// Splash holds the boot banner during bring-up, before the border is
	// drawn and the first iteration runs. Zero skips it.
	Splash time.Duration
}

func DefaultConfig() Config {
	return Config{
		Idle:           10 * time.Millisecond,
		DebounceWindow: kernel.DebounceWindow,
		Calibration:    screen.DefaultCalibration,
		Splash:         time.Second,
	}
}

// New brings the system up with the default config and returns one loop
// iteration.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newSystem(h, cfg).step
}

// Run brings the system up and loops forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			showFault(h, r)
			select {}
		}
	}()

	step := NewWithConfig(h, cfg)
	for {
		_ = step()
		time.Sleep(cfg.Idle)
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	if cfg.Idle <= 0 {
		cfg.Idle = 10 * time.Millisecond
	}
	if cfg.Calibration.ScaleX == 0 || cfg.Calibration.ScaleY == 0 {
		cfg.Calibration = screen.DefaultCalibration
	}

	shared := kernel.NewShared()
	events := &kernel.Mailbox{}
	fb := h.Display()

	s := &system{
		log:     h.Logger(),
		fb:      fb,
		adc:     h.Analog(),
		shared:  shared,
		events:  events,
		mapper:  intensity.New(h.IO(), shared),
		marker:  marker.New(fb, cfg.Calibration),
		toggle:  toggle.New(h.IO(), fb, shared),
		pwmOn:   true,
	}

	// Boot levels: indicator dark, both intensity channels running.
	h.IO().SetLevel(hal.PinGreenLED, false)
	s.mapper.SetEnabled(true)

	gate := kernel.NewGate(cfg.DebounceWindow, events)
	gate.On(hal.ButtonA, s.mapper.Toggle)
	gate.On(hal.ButtonJoystick, s.toggle.Toggle)
	h.Buttons().Subscribe(gate.Handle)

	s.logf("joyled %s", buildinfo.Long())
	if cfg.Splash > 0 {
		s.report(drawSplash(fb, "joyled", buildinfo.String()))
		sleep(cfg.Splash)
	}
	s.drawFrame()
	return s
}

// sleep is replaced in tests.
var sleep = time.Sleep
