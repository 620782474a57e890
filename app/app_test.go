package app

import (
	"errors"
	"image/color"
	"reflect"
	"strings"
	"testing"
	"time"

	"joyled/hal"
	"joyled/hal/haltest"
	"joyled/services/screen"
)

func newTestSystem(t *testing.T) (*haltest.HAL, func() error) {
	t.Helper()
	h := haltest.New()
	cfg := DefaultConfig()
	cfg.Splash = 0
	step := NewWithConfig(h, cfg)
	h.FB.Ops()
	return h, step
}

func hasLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestBootDrawsBorder(t *testing.T) {
	h := haltest.New()
	cfg := DefaultConfig()
	cfg.Splash = 0
	_ = NewWithConfig(h, cfg)

	want := []haltest.Op{
		{Kind: "fill"},
		{Kind: "rect", X: 3, Y: 3, W: 122, H: 60, On: true},
		{Kind: "flush"},
	}
	if got := h.FB.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("boot ops = %v, want %v", got, want)
	}
	if h.Pins.Level(hal.PinGreenLED) {
		t.Fatal("indicator lit at boot")
	}
	if !h.Pins.PWM(hal.PinRedLED).Enabled || !h.Pins.PWM(hal.PinBlueLED).Enabled {
		t.Fatal("intensity PWM not enabled at boot")
	}
}

func TestStepSamplesXThenY(t *testing.T) {
	h, step := newTestSystem(t)

	_ = step()

	want := []hal.ADCChannel{hal.ChannelX, hal.ChannelY}
	if got := h.ADC.Reads(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reads = %v, want %v", got, want)
	}
}

func TestCenteredStick(t *testing.T) {
	h, step := newTestSystem(t)
	h.ADC.Set(hal.ChannelX, 2048)
	h.ADC.Set(hal.ChannelY, 2048)

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	if d := h.Pins.PWM(hal.PinRedLED).Duty; d != 0 {
		t.Fatalf("red duty = %d, want 0", d)
	}
	if d := h.Pins.PWM(hal.PinBlueLED).Duty; d != 0 {
		t.Fatalf("blue duty = %d, want 0", d)
	}

	// The first erase targets the boot position (0, 0).
	want := []haltest.Op{
		{Kind: "rect", X: 8, Y: 52, W: 8, H: 8, On: false, Filled: true},
		{Kind: "rect", X: 60, Y: 29, W: 8, H: 8, On: true, Filled: true},
		{Kind: "flush"},
	}
	if got := h.FB.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}

	_ = step()
	ops := h.FB.Ops()
	if ops[0].X != 60 || ops[0].Y != 29 {
		t.Fatalf("second step erased at (%d,%d), want (60,29)", ops[0].X, ops[0].Y)
	}
}

func TestJoystickToggleEndToEnd(t *testing.T) {
	h, step := newTestSystem(t)
	h.ADC.Set(hal.ChannelX, 2048)
	h.ADC.Set(hal.ChannelY, 2048)
	_ = step()
	h.FB.Ops()

	h.Btn.Press(hal.ButtonJoystick, 400_000)
	if !h.Pins.Level(hal.PinGreenLED) {
		t.Fatal("green LED not lit by the handler")
	}

	_ = step()
	ops := h.FB.Ops()
	want := []haltest.Op{
		{Kind: "rect", X: 3, Y: 3, W: 122, H: 60, On: true},
		{Kind: "rect", X: 6, Y: 6, W: 116, H: 54, On: true},
		{Kind: "flush"},
	}
	if len(ops) != 6 || !reflect.DeepEqual(ops[3:], want) {
		t.Fatalf("ops = %v, want marker then %v", ops, want)
	}

	lines := h.Log.Lines()
	if !hasLine(lines, "button: joystick accepted at 400000us") || !hasLine(lines, "led: on") {
		t.Fatalf("log = %q", lines)
	}

	_ = step()
	if ops := h.FB.Ops(); len(ops) != 3 {
		t.Fatalf("repainted again without a toggle: %v", ops)
	}
}

func TestBouncedPressIgnored(t *testing.T) {
	h, step := newTestSystem(t)

	h.Btn.Press(hal.ButtonJoystick, 400_000)
	h.Btn.Press(hal.ButtonJoystick, 450_000)
	h.Btn.Press(hal.ButtonA, 700_000)
	_ = step()

	if !h.Pins.Level(hal.PinGreenLED) {
		t.Fatal("bounce undid the toggle")
	}
	if !h.Pins.PWM(hal.PinRedLED).Enabled {
		t.Fatal("A press inside the shared window was accepted")
	}
	for _, l := range h.Log.Lines() {
		if strings.Contains(l, "450000") || strings.Contains(l, "700000") {
			t.Fatalf("rejected edge logged: %q", l)
		}
	}
}

func TestEarlyBootPressRejected(t *testing.T) {
	h, _ := newTestSystem(t)

	h.Btn.Press(hal.ButtonJoystick, 250_000)
	if h.Pins.Level(hal.PinGreenLED) {
		t.Fatal("press within the first window after boot was accepted")
	}
}

func TestButtonAFreezesIntensity(t *testing.T) {
	h, step := newTestSystem(t)
	h.ADC.Set(hal.ChannelX, 1000)
	h.ADC.Set(hal.ChannelY, 3000)
	_ = step()

	h.Btn.Press(hal.ButtonA, 400_000)
	h.ADC.Set(hal.ChannelX, 4095)
	h.ADC.Set(hal.ChannelY, 0)
	_ = step()

	red, blue := h.Pins.PWM(hal.PinRedLED), h.Pins.PWM(hal.PinBlueLED)
	if red.Enabled || blue.Enabled {
		t.Fatal("PWM still enabled after A")
	}
	if red.Duty != 1048 || blue.Duty != 952 {
		t.Fatalf("duty = %d/%d, want frozen 1048/952", red.Duty, blue.Duty)
	}
	if !hasLine(h.Log.Lines(), "pwm: disabled") {
		t.Fatalf("log = %q", h.Log.Lines())
	}

	h.Btn.Press(hal.ButtonA, 800_000)
	_ = step()
	red = h.Pins.PWM(hal.PinRedLED)
	if !red.Enabled || red.Duty != 2047 {
		t.Fatalf("red = %+v, want enabled with duty 2047", red)
	}
	if d := h.Pins.PWM(hal.PinBlueLED).Duty; d != 2048 {
		t.Fatalf("blue duty = %d, want 2048", d)
	}
	if !hasLine(h.Log.Lines(), "pwm: enabled") {
		t.Fatalf("log = %q", h.Log.Lines())
	}
}

func TestFlushErrorLoggedOnce(t *testing.T) {
	h, step := newTestSystem(t)
	h.FB.FlushErr = errors.New("i2c: nack")

	_ = step()
	_ = step()

	n := 0
	for _, l := range h.Log.Lines() {
		if l == "display: i2c: nack" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("flush error logged %d times, want 1", n)
	}
}

func stubSleep(t *testing.T) *time.Duration {
	t.Helper()
	var slept time.Duration
	orig := sleep
	sleep = func(d time.Duration) { slept += d }
	t.Cleanup(func() { sleep = orig })
	return &slept
}

func TestSplashHeldDuringBringUp(t *testing.T) {
	slept := stubSleep(t)
	h := haltest.New()
	cfg := DefaultConfig()
	cfg.Splash = 20 * time.Millisecond
	step := NewWithConfig(h, cfg)

	if *slept != 20*time.Millisecond {
		t.Fatalf("slept %v during bring-up, want 20ms", *slept)
	}

	ops := h.FB.Ops()
	if len(ops) < 6 || ops[0].Kind != "fill" {
		t.Fatalf("bring-up ops = %v", ops)
	}
	lit := 0
	for _, op := range ops[1 : len(ops)-3] {
		if op.Kind == "rect" && op.On {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("splash drew no text")
	}
	b := screen.Border
	want := []haltest.Op{
		{Kind: "fill"},
		{Kind: "rect", X: b.X, Y: b.Y, W: b.W, H: b.H, On: true},
		{Kind: "flush"},
	}
	if got := ops[len(ops)-3:]; !reflect.DeepEqual(got, want) {
		t.Fatalf("bring-up ends with %v, want %v", got, want)
	}

	_ = step()
	if r := h.ADC.Reads(); len(r) != 2 {
		t.Fatalf("first iteration reads = %v, want X and Y", r)
	}
}

func TestDefaultConfigFirstIterationRepaints(t *testing.T) {
	stubSleep(t)
	h := haltest.New()
	step := New(h)
	h.FB.Ops()
	h.ADC.Set(hal.ChannelX, 4095)

	h.Btn.Press(hal.ButtonJoystick, 400_000)
	_ = step()

	want := []hal.ADCChannel{hal.ChannelX, hal.ChannelY}
	if got := h.ADC.Reads(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reads = %v, want %v", got, want)
	}
	if d := h.Pins.PWM(hal.PinRedLED).Duty; d != 2047 {
		t.Fatalf("red duty = %d, want 2047", d)
	}
	ops := h.FB.Ops()
	if len(ops) != 6 || ops[4].Kind != "rect" || !ops[4].On || ops[5].Kind != "flush" {
		t.Fatalf("ops = %v, want marker then lit indicator repaint", ops)
	}
	if !hasLine(h.Log.Lines(), "led: on") {
		t.Fatalf("log = %q", h.Log.Lines())
	}
}

func TestFbDisplay(t *testing.T) {
	fb := haltest.NewFramebuffer()
	d := fbDisplay{fb: fb}

	if w, h := d.Size(); w != 128 || h != 64 {
		t.Fatalf("Size() = %d,%d, want 128,64", w, h)
	}
	d.SetPixel(4, 5, color.RGBA{G: 1})
	d.SetPixel(6, 7, color.RGBA{A: 255})
	_ = d.Display()

	want := []haltest.Op{
		{Kind: "rect", X: 4, Y: 5, W: 1, H: 1, On: true, Filled: true},
		{Kind: "rect", X: 6, Y: 7, W: 1, H: 1, On: false, Filled: true},
		{Kind: "flush"},
	}
	if got := fb.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
}

func TestShowFault(t *testing.T) {
	h := haltest.New()

	showFault(h, "index out of range")

	if !hasLine(h.Log.Lines(), "joyled panic: index out of range") {
		t.Fatalf("log = %q", h.Log.Lines())
	}
	ops := h.FB.Ops()
	if len(ops) < 3 || ops[0].Kind != "fill" || ops[len(ops)-1].Kind != "flush" {
		t.Fatalf("fault ops = %v", ops)
	}
}

func TestTakeRunes(t *testing.T) {
	cases := []struct {
		in         string
		n          int16
		head, rest string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"abc", 4, "abc", ""},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
	}
	for _, c := range cases {
		head, rest := takeRunes(c.in, c.n)
		if head != c.head || rest != c.rest {
			t.Errorf("takeRunes(%q, %d) = %q, %q, want %q, %q", c.in, c.n, head, rest, c.head, c.rest)
		}
	}
}
