// Package form guards against duplicate submits. Each form instance
// owns one Guard running Idle -> Submitting -> {Succeeded, Failed};
// a new submit is rejected while the previous one is still in flight.
package form

import (
	"errors"
	"sync"
)

var ErrSubmitInFlight = errors.New("submit already in flight")

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Guard struct {
	mu    sync.Mutex
	state State
}

// Begin moves the guard to Submitting. It fails with ErrSubmitInFlight
// when a submit is already running; a finished form may submit again.
func (g *Guard) Begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateSubmitting {
		return ErrSubmitInFlight
	}

	g.state = StateSubmitting

	return nil
}

// Finish records the outcome of the in-flight submit.
func (g *Guard) Finish(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.state = StateFailed
		return
	}

	g.state = StateSucceeded
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}
