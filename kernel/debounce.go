package kernel

import "joyled/hal"

// DebounceWindow is the quiet time, in microseconds, required after an
// accepted edge before the next one counts.
const DebounceWindow uint64 = 300_000

// Debounce decides whether e is a real press given the timestamp of the
// last accepted edge. The window is shared by every source: a press on one
// button also masks the other for DebounceWindow.
func Debounce(e hal.Edge, last uint64) (accept bool, next uint64) {
	return debounce(e, last, DebounceWindow)
}

func debounce(e hal.Edge, last, window uint64) (bool, uint64) {
	if e.At-last > window {
		return true, e.At
	}
	return false, last
}

// Gate filters raw edges and dispatches the survivors to per-source handlers.
//
// Handle runs in interrupt context. last is not atomic: both sources share
// one interrupt priority, so Handle is never re-entered.
type Gate struct {
	window   uint64
	last     uint64
	handlers [2]func()
	events   *Mailbox
}

// NewGate returns a gate with the given window in microseconds. Accepted
// edges are posted to events when it is non-nil.
func NewGate(window uint64, events *Mailbox) *Gate {
	if window == 0 {
		window = DebounceWindow
	}
	return &Gate{
		window: window,
		events: events,
	}
}

// On registers fn for src. Register everything before subscribing the gate.
func (g *Gate) On(src hal.ButtonID, fn func()) {
	if int(src) < len(g.handlers) {
		g.handlers[src] = fn
	}
}

// Handle is the edge callback to pass to hal.Buttons.Subscribe.
func (g *Gate) Handle(e hal.Edge) {
	accept, next := debounce(e, g.last, g.window)
	if !accept {
		return
	}
	g.last = next
	if int(e.Source) < len(g.handlers) && g.handlers[e.Source] != nil {
		g.handlers[e.Source]()
	}
	if g.events != nil {
		g.events.TrySend(Event{Source: e.Source, At: e.At})
	}
}

// Last returns the DebounceClock. Only call it where Handle cannot run.
func (g *Gate) Last() uint64 { return g.last }
