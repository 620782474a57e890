//go:build tinygo && baremetal

package main

import (
	"joyled/app"
	"joyled/hal"
)

func main() {
	app.Run(hal.New())
}
