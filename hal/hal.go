package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Framebuffer is a monochrome pixel buffer plus a "flush" hook.
//
// Drawing only touches the buffer; nothing reaches the panel until Flush.
type Framebuffer interface {
	Width() int16
	Height() int16
	Fill(on bool)
	DrawRect(x, y, w, h int16, on, filled bool)
	Flush() error
}

// ADCChannel selects one analog input of the converter.
type ADCChannel uint8

// Analog is a single multiplexed 12-bit converter.
type Analog interface {
	SelectChannel(ch ADCChannel)
	// Read samples the selected channel. The result is in [0, 4095].
	Read() uint16
}

// Pin identifies a board output.
type Pin uint8

// DigitalIO drives discrete and PWM outputs.
type DigitalIO interface {
	SetLevel(pin Pin, level bool)
	Level(pin Pin) bool
	// EnablePWM starts or stops the PWM generator feeding pin. A disabled
	// output keeps its last duty so re-enabling resumes where it stopped.
	EnablePWM(pin Pin, enable bool)
	SetPWMDuty(pin Pin, duty uint16)
}

// ButtonID names an edge-triggered input.
type ButtonID uint8

const (
	ButtonA ButtonID = iota
	ButtonJoystick
)

func (b ButtonID) String() string {
	switch b {
	case ButtonA:
		return "a"
	case ButtonJoystick:
		return "joystick"
	default:
		return "unknown"
	}
}

// Edge is a falling edge on a button input, stamped with monotonic
// microseconds since boot.
type Edge struct {
	Source ButtonID
	At     uint64
}

// Buttons delivers edges to a single handler.
//
// On hardware the handler runs in interrupt context: it must not block,
// allocate, or touch the display. Handlers for different sources never
// run concurrently with each other.
type Buttons interface {
	Subscribe(fn func(Edge))
}

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	Display() Framebuffer
	Analog() Analog
	IO() DigitalIO
	Buttons() Buttons
}
