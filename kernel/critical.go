//go:build !tinygo

package kernel

// State is a placeholder for interrupt state on regular Go.
type State uintptr

// EnterCritical is a no-op on the host: edge handlers already run on the
// same goroutine as the loop.
func EnterCritical() State {
	return 0
}

// ExitCritical is a no-op on the host.
func ExitCritical(state State) {}
