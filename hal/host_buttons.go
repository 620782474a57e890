//go:build !tinygo

package hal

import "sync"

// hostButtons turns simulated presses into edges. The mutex plays the role
// of the shared interrupt priority: one handler invocation at a time.
type hostButtons struct {
	mu    sync.Mutex
	clock *hostClock
	fn    func(Edge)
}

func newHostButtons(clock *hostClock) *hostButtons {
	return &hostButtons{clock: clock}
}

func (b *hostButtons) Subscribe(fn func(Edge)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fn = fn
}

// press delivers one falling edge for src, stamped now.
func (b *hostButtons) press(src ButtonID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fn == nil {
		return
	}
	b.fn(Edge{Source: src, At: b.clock.Micros()})
}
