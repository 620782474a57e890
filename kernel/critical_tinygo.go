//go:build tinygo

package kernel

import "runtime/interrupt"

type State = interrupt.State

// EnterCritical holds off button interrupts until ExitCritical. Edges that
// arrive meanwhile stay latched and are serviced on exit.
func EnterCritical() State {
	return interrupt.Disable()
}

func ExitCritical(state State) {
	interrupt.Restore(state)
}
