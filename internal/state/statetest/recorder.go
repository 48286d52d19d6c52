// Package statetest provides a recording dispatcher for testing thunks.
package statetest

import (
	"context"
	"sync"

	"eatgo/internal/actions"
	"eatgo/internal/state"
)

// Recorder records every dispatched action and keeps a reduced state so
// thunks under test can read what they wrote.
type Recorder struct {
	mu      sync.Mutex
	state   state.State
	actions []actions.Action
}

// NewRecorder starts from initial.
func NewRecorder(initial state.State) *Recorder {
	return &Recorder{state: initial}
}

// Dispatch records a and reduces it into the recorder's state.
func (r *Recorder) Dispatch(a actions.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
	r.state = state.Reduce(r.state, a)
}

// State returns the reduced state.
func (r *Recorder) State() state.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Actions returns a copy of the recorded actions.
func (r *Recorder) Actions() []actions.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]actions.Action(nil), r.actions...)
}

// Types returns the recorded action types in order.
func (r *Recorder) Types() []actions.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]actions.Type, len(r.actions))
	for i, a := range r.actions {
		out[i] = a.Type
	}
	return out
}

// Run executes t against the recorder.
func (r *Recorder) Run(ctx context.Context, t state.Thunk) error {
	return t(ctx, r, r.State)
}

var _ state.Dispatcher = (*Recorder)(nil)
