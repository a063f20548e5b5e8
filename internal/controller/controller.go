// Package controller holds the per-screen view state machines. Each
// controller reconciles domain service results into a locally held list the
// presentation layer renders from: load failures transition the whole view
// to Failed, while mutation failures leave the loaded data untouched and
// surface the error to the caller.
package controller

import (
	"errors"
	"sync"
)

// Phase is the lifecycle state of one view.
type Phase string

// View phases. A freshly constructed controller is Idle; the first Load
// moves it to Loading. From Failed the only way forward is another Load
// (the retry trigger).
const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// ErrStale indicates an operation resolved after the view unmounted or after
// a newer load superseded it. The late result is discarded, never applied.
var ErrStale = errors.New("view state is stale")

// viewState is the shared phase machine embedded by every controller.
// Service delays are not cancellable, so an operation may resolve after the
// view is gone; the generation counter lets the completion detect that and
// drop its result.
type viewState struct {
	mu     sync.Mutex
	phase  Phase
	errMsg string
	gen    int
	closed bool
}

func newViewState() viewState {
	return viewState{phase: PhaseIdle}
}

// begin transitions to Loading and returns the generation token the eventual
// completion must present.
func (v *viewState) begin() (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, ErrStale
	}

	v.gen++
	v.phase = PhaseLoading
	v.errMsg = ""
	return v.gen, nil
}

// complete finishes the load started with the given generation. Late or
// post-close completions are ignored and reported as stale.
func (v *viewState) complete(gen int, errMsg string, apply func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || gen != v.gen {
		return ErrStale
	}

	if errMsg != "" {
		v.phase = PhaseFailed
		v.errMsg = errMsg
		return nil
	}

	if apply != nil {
		apply()
	}
	v.phase = PhaseReady
	v.errMsg = ""
	return nil
}

// mutate applies an optimistic local change. Only a Ready view accepts
// mutations, and applying one never re-enters Loading.
func (v *viewState) mutate(apply func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrStale
	}
	if v.phase != PhaseReady {
		return nil
	}

	apply()
	return nil
}

// Phase returns the current view phase.
func (v *viewState) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

// ErrMessage returns the human-readable load failure, or empty.
func (v *viewState) ErrMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Close marks the view unmounted. In-flight operations that resolve later
// find a closed view and discard their results.
func (v *viewState) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
