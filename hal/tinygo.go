//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	adc    *picoAnalog
	io     *picoIO
	btn    *picoButtons
}

// New returns the Pico HAL: SSD1306 on I2C1, joystick on ADC0/ADC1, red and
// blue LEDs on PWM slice 6, buttons on GP5 and GP22.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	io, err := newPicoIO()
	if err != nil {
		logger.WriteLineString(fmt.Sprintf("hal: pwm: %v", err))
	}

	var fb Framebuffer
	if oled, err := newOLEDFramebuffer(); err == nil {
		fb = oled
	} else {
		logger.WriteLineString(fmt.Sprintf("hal: display: %v", err))
		fb = &stubFramebuffer{w: DisplayWidth, h: DisplayHeight}
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		adc:    newPicoAnalog(),
		io:     io,
		btn:    newPicoButtons(),
	}
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Display() Framebuffer { return h.fb }
func (h *tinyGoHAL) Analog() Analog       { return h.adc }
func (h *tinyGoHAL) IO() DigitalIO        { return h.io }
func (h *tinyGoHAL) Buttons() Buttons     { return h.btn }
