//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

// pwmCarrierPeriod matches the SDK setup of clkdiv 255 and wrap 4095 at
// 125 MHz, about 120 Hz.
const pwmCarrierPeriod = 255 * (PWMPeriod + 1) * 8 // ns

// pwmConfigPeriod is what Configure must be asked for. Configure sizes the
// divider for a 16-bit TOP; SetTop(PWMPeriod) then shortens the period by
// 65536/(PWMPeriod+1), landing on pwmCarrierPeriod.
const pwmConfigPeriod = pwmCarrierPeriod * 65536 / (PWMPeriod + 1) // ns

type pwmOut struct {
	dev pwmDevice
	ch  uint8
}

type picoIO struct {
	pwm map[Pin]pwmOut
}

func newPicoIO() (*picoIO, error) {
	io := &picoIO{pwm: make(map[Pin]pwmOut, 2)}

	green := machine.Pin(PinGreenLED)
	green.Configure(machine.PinConfig{Mode: machine.PinOutput})
	green.Low()

	for _, p := range []Pin{PinBlueLED, PinRedLED} {
		out, err := configurePWM(machine.Pin(p))
		if err != nil {
			return io, fmt.Errorf("GP%d: %w", p, err)
		}
		io.pwm[p] = out
	}
	return io, nil
}

func configurePWM(pin machine.Pin) (pwmOut, error) {
	dev := pwmForPin(pin)
	if dev == nil {
		return pwmOut{}, ErrNotImplemented
	}
	if err := dev.Configure(machine.PWMConfig{Period: pwmConfigPeriod}); err != nil {
		return pwmOut{}, err
	}
	ch, err := dev.Channel(pin)
	if err != nil {
		return pwmOut{}, err
	}
	dev.SetTop(PWMPeriod)
	dev.Set(ch, 0)
	dev.Enable(true)
	return pwmOut{dev: dev, ch: ch}, nil
}

func (io *picoIO) SetLevel(p Pin, level bool) {
	machine.Pin(p).Set(level)
}

func (io *picoIO) Level(p Pin) bool {
	return machine.Pin(p).Get()
}

// EnablePWM gates the whole slice; red and blue share slice 6.
func (io *picoIO) EnablePWM(p Pin, enable bool) {
	if out, ok := io.pwm[p]; ok {
		out.dev.Enable(enable)
	}
}

func (io *picoIO) SetPWMDuty(p Pin, duty uint16) {
	if out, ok := io.pwm[p]; ok {
		out.dev.Set(out.ch, uint32(duty))
	}
}

// picoAnalog reads the joystick through the shared RP2040 ADC mux.
type picoAnalog struct {
	adcs [2]machine.ADC
	sel  ADCChannel
}

func newPicoAnalog() *picoAnalog {
	machine.InitADC()
	a := &picoAnalog{
		adcs: [2]machine.ADC{
			{Pin: machine.ADC0},
			{Pin: machine.ADC1},
		},
	}
	for i := range a.adcs {
		a.adcs[i].Configure(machine.ADCConfig{})
	}
	return a
}

func (a *picoAnalog) SelectChannel(ch ADCChannel) {
	if int(ch) < len(a.adcs) {
		a.sel = ch
	}
}

// Read returns 12 bits; machine.ADC scales to 16.
func (a *picoAnalog) Read() uint16 {
	return a.adcs[a.sel].Get() >> 4
}

// picoButtons routes falling edges on GP5 and GP22 to one handler.
type picoButtons struct {
	fn func(Edge)
}

func newPicoButtons() *picoButtons {
	return &picoButtons{}
}

var buttonPins = [...]struct {
	pin machine.Pin
	id  ButtonID
}{
	{machine.GP5, ButtonA},
	{machine.GP22, ButtonJoystick},
}

func (b *picoButtons) Subscribe(fn func(Edge)) {
	b.fn = fn
	for _, bp := range buttonPins {
		bp.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		bp.pin.SetInterrupt(machine.PinFalling, b.handle)
	}
}

//go:noinline
func (b *picoButtons) handle(pin machine.Pin) {
	at := micros()
	for _, bp := range buttonPins {
		if bp.pin == pin {
			b.fn(Edge{Source: bp.id, At: at})
			return
		}
	}
}
