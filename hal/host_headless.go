//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// PressEvery alternates a button A press and a joystick press at this
	// cadence. Zero disables synthetic presses.
	PressEvery time.Duration
}

// RunHeadless runs the firmware without opening a window. The joystick axes
// follow a slow Lissajous sweep.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 100
	}

	h := newHostHAL()
	h.adc.attach(ChannelX, newSweepSource(3*time.Second, 0).Read)
	h.adc.attach(ChannelY, newSweepSource(4*time.Second, 0.5).Read)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var presses <-chan time.Time
	if cfg.PressEvery > 0 {
		pt := time.NewTicker(cfg.PressEvery)
		defer pt.Stop()
		presses = pt.C
	}
	next := ButtonA

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-presses:
			h.btn.press(next)
			if next == ButtonA {
				next = ButtonJoystick
			} else {
				next = ButtonA
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
