//go:build !tinygo

package hal

import "time"

// hostClock is the host stand-in for the RP2040 microsecond timer.
type hostClock struct {
	t0  time.Time
	now func() time.Time
}

func newHostClock() *hostClock {
	return newHostClockWith(time.Now)
}

func newHostClockWith(now func() time.Time) *hostClock {
	if now == nil {
		now = time.Now
	}
	return &hostClock{t0: now(), now: now}
}

// Micros returns microseconds since the clock was created.
func (c *hostClock) Micros() uint64 {
	d := c.now().Sub(c.t0)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Microsecond)
}
