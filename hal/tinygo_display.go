//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	oledAddress = 0x3C
	oledI2CFreq = 100 * machine.KHz
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 0}
)

// oledFramebuffer draws into the ssd1306 driver's RAM buffer; Flush pushes
// it over I2C.
type oledFramebuffer struct {
	dev *ssd1306.Device
	w   int16
	h   int16
}

func newOLEDFramebuffer() (*oledFramebuffer, error) {
	bus := machine.I2C1
	if err := bus.Configure(machine.I2CConfig{
		Frequency: oledI2CFreq,
		SDA:       machine.GP14,
		SCL:       machine.GP15,
	}); err != nil {
		return nil, fmt.Errorf("i2c1: %w", err)
	}
	// the panel ignores the first commands after a cold power-up
	time.Sleep(100 * time.Millisecond)

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    DisplayWidth,
		Height:   DisplayHeight,
		Address:  oledAddress,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearBuffer()
	if err := dev.Display(); err != nil {
		return nil, fmt.Errorf("ssd1306 at %#x: %w", oledAddress, err)
	}
	return &oledFramebuffer{dev: dev, w: DisplayWidth, h: DisplayHeight}, nil
}

func (f *oledFramebuffer) Width() int16  { return f.w }
func (f *oledFramebuffer) Height() int16 { return f.h }

func (f *oledFramebuffer) set(x, y int16, on bool) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	if on {
		f.dev.SetPixel(x, y, white)
	} else {
		f.dev.SetPixel(x, y, black)
	}
}

func (f *oledFramebuffer) Fill(on bool) {
	if !on {
		f.dev.ClearBuffer()
		return
	}
	drawRect(f.set, 0, 0, f.w, f.h, true, true)
}

func (f *oledFramebuffer) DrawRect(x, y, w, h int16, on, filled bool) {
	drawRect(f.set, x, y, w, h, on, filled)
}

func (f *oledFramebuffer) Flush() error {
	return f.dev.Display()
}
