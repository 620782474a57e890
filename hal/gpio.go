package hal

import (
	"math"
	"sync"
	"time"
)

type virtualPin struct {
	level bool
	pwm   bool
	duty  uint16
}

// virtualIO is an in-memory DigitalIO. Every pin is both a discrete output
// and a PWM output; the host just records what firmware asked for.
type virtualIO struct {
	mu   sync.Mutex
	pins map[Pin]*virtualPin
}

func newVirtualIO() *virtualIO {
	return &virtualIO{pins: make(map[Pin]*virtualPin)}
}

func (io *virtualIO) pin(p Pin) *virtualPin {
	vp, ok := io.pins[p]
	if !ok {
		vp = &virtualPin{}
		io.pins[p] = vp
	}
	return vp
}

func (io *virtualIO) SetLevel(p Pin, level bool) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.pin(p).level = level
}

func (io *virtualIO) Level(p Pin) bool {
	io.mu.Lock()
	defer io.mu.Unlock()
	return io.pin(p).level
}

func (io *virtualIO) EnablePWM(p Pin, enable bool) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.pin(p).pwm = enable
}

func (io *virtualIO) SetPWMDuty(p Pin, duty uint16) {
	io.mu.Lock()
	defer io.mu.Unlock()
	if duty > PWMPeriod {
		duty = PWMPeriod
	}
	io.pin(p).duty = duty
}

// PWM returns the recorded generator state of pin.
func (io *virtualIO) PWM(p Pin) (enabled bool, duty uint16) {
	io.mu.Lock()
	defer io.mu.Unlock()
	vp := io.pin(p)
	return vp.pwm, vp.duty
}

// virtualAnalog is an ADC whose channels are backed by functions.
type virtualAnalog struct {
	mu      sync.Mutex
	sel     ADCChannel
	sources map[ADCChannel]func() uint16
}

func newVirtualAnalog() *virtualAnalog {
	return &virtualAnalog{sources: make(map[ADCChannel]func() uint16)}
}

func (a *virtualAnalog) attach(ch ADCChannel, src func() uint16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sources[ch] = src
}

func (a *virtualAnalog) SelectChannel(ch ADCChannel) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sel = ch
}

func (a *virtualAnalog) Read() uint16 {
	a.mu.Lock()
	src := a.sources[a.sel]
	a.mu.Unlock()
	if src == nil {
		return adcCenter
	}
	v := src()
	if v > adcMax {
		v = adcMax
	}
	return v
}

const (
	adcMax    = 4095
	adcCenter = 2048
)

// sweepSource produces a sine over the full ADC range, used as a stand-in
// joystick axis when no window is available.
type sweepSource struct {
	t0     time.Time
	now    func() time.Time
	period time.Duration
	phase  float64
}

func newSweepSource(period time.Duration, phase float64) *sweepSource {
	return newSweepSourceWithClock(period, phase, time.Now)
}

func newSweepSourceWithClock(period time.Duration, phase float64, now func() time.Time) *sweepSource {
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = 4 * time.Second
	}
	return &sweepSource{t0: now(), now: now, period: period, phase: phase}
}

func (s *sweepSource) Read() uint16 {
	elapsed := s.now().Sub(s.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	frac := float64(elapsed%s.period) / float64(s.period)
	v := math.Sin(2*math.Pi*frac + s.phase)
	return uint16(math.Round(float64(adcCenter) + v*float64(adcMax-adcCenter)))
}
