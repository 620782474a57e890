// Package haltest provides recording fakes of the hal interfaces.
package haltest

import (
	"fmt"
	"sync"

	"joyled/hal"
)

// Op is one recorded framebuffer call.
type Op struct {
	Kind       string // "fill", "rect" or "flush"
	X, Y, W, H int16
	On, Filled bool
}

func (o Op) String() string {
	switch o.Kind {
	case "rect":
		return fmt.Sprintf("rect(%d,%d,%d,%d,on=%v,filled=%v)", o.X, o.Y, o.W, o.H, o.On, o.Filled)
	case "fill":
		return fmt.Sprintf("fill(%v)", o.On)
	default:
		return o.Kind
	}
}

// Framebuffer records every call in order.
type Framebuffer struct {
	mu       sync.Mutex
	W, H     int16
	ops      []Op
	FlushErr error
}

func NewFramebuffer() *Framebuffer {
	return &Framebuffer{W: hal.DisplayWidth, H: hal.DisplayHeight}
}

func (f *Framebuffer) Width() int16  { return f.W }
func (f *Framebuffer) Height() int16 { return f.H }

func (f *Framebuffer) Fill(on bool) {
	f.record(Op{Kind: "fill", On: on})
}

func (f *Framebuffer) DrawRect(x, y, w, h int16, on, filled bool) {
	f.record(Op{Kind: "rect", X: x, Y: y, W: w, H: h, On: on, Filled: filled})
}

func (f *Framebuffer) Flush() error {
	f.record(Op{Kind: "flush"})
	return f.FlushErr
}

func (f *Framebuffer) record(op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
}

// Ops returns and clears the recorded calls.
func (f *Framebuffer) Ops() []Op {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := f.ops
	f.ops = nil
	return ops
}

// PWM is the recorded state of one PWM output.
type PWM struct {
	Enabled bool
	Duty    uint16
	Writes  int
}

// IO records discrete levels and PWM state per pin.
type IO struct {
	mu     sync.Mutex
	levels map[hal.Pin]bool
	pwm    map[hal.Pin]*PWM
}

func NewIO() *IO {
	return &IO{levels: make(map[hal.Pin]bool), pwm: make(map[hal.Pin]*PWM)}
}

func (io *IO) SetLevel(p hal.Pin, level bool) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.levels[p] = level
}

func (io *IO) Level(p hal.Pin) bool {
	io.mu.Lock()
	defer io.mu.Unlock()
	return io.levels[p]
}

func (io *IO) EnablePWM(p hal.Pin, enable bool) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.out(p).Enabled = enable
}

func (io *IO) SetPWMDuty(p hal.Pin, duty uint16) {
	io.mu.Lock()
	defer io.mu.Unlock()
	o := io.out(p)
	o.Duty = duty
	o.Writes++
}

// PWM returns a copy of the state of p.
func (io *IO) PWM(p hal.Pin) PWM {
	io.mu.Lock()
	defer io.mu.Unlock()
	return *io.out(p)
}

func (io *IO) out(p hal.Pin) *PWM {
	o, ok := io.pwm[p]
	if !ok {
		o = &PWM{}
		io.pwm[p] = o
	}
	return o
}

// Analog returns fixed values per channel and logs the selection order.
type Analog struct {
	mu     sync.Mutex
	values map[hal.ADCChannel]uint16
	sel    hal.ADCChannel
	reads  []hal.ADCChannel
}

func NewAnalog() *Analog {
	return &Analog{values: make(map[hal.ADCChannel]uint16)}
}

// Set fixes the value returned for ch.
func (a *Analog) Set(ch hal.ADCChannel, v uint16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[ch] = v
}

func (a *Analog) SelectChannel(ch hal.ADCChannel) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sel = ch
}

func (a *Analog) Read() uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reads = append(a.reads, a.sel)
	return a.values[a.sel]
}

// Reads returns and clears the channels read, in order.
func (a *Analog) Reads() []hal.ADCChannel {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.reads
	a.reads = nil
	return r
}

// Buttons lets a test fire edges at the subscribed handler.
type Buttons struct {
	fn func(hal.Edge)
}

func (b *Buttons) Subscribe(fn func(hal.Edge)) { b.fn = fn }

// Press delivers an edge for src at the given microsecond timestamp.
func (b *Buttons) Press(src hal.ButtonID, at uint64) {
	if b.fn != nil {
		b.fn(hal.Edge{Source: src, At: at})
	}
}

// Logger collects lines.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

func (l *Logger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *Logger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// HAL bundles the fakes.
type HAL struct {
	Log  *Logger
	FB   *Framebuffer
	ADC  *Analog
	Pins *IO
	Btn  *Buttons
}

func New() *HAL {
	return &HAL{
		Log:  &Logger{},
		FB:   NewFramebuffer(),
		ADC:  NewAnalog(),
		Pins: NewIO(),
		Btn:  &Buttons{},
	}
}

func (h *HAL) Logger() hal.Logger       { return h.Log }
func (h *HAL) Display() hal.Framebuffer { return h.FB }
func (h *HAL) Analog() hal.Analog       { return h.ADC }
func (h *HAL) IO() hal.DigitalIO        { return h.Pins }
func (h *HAL) Buttons() hal.Buttons     { return h.Btn }
