//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"joyled/app"
	"joyled/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var scale int
	appCfg := app.DefaultConfig()
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 100, "Loop rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N iterations in headless mode (0 = run forever).")
	flag.DurationVar(&cfg.PressEvery, "press-every", 0, "Alternate synthetic A and joystick presses at this interval in headless mode.")
	flag.IntVar(&scale, "scale", 4, "Window zoom.")
	// Bring-up runs before the window opens, so the banner is off by default.
	flag.DurationVar(&appCfg.Splash, "splash", 0, "Hold the boot banner this long during bring-up.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
