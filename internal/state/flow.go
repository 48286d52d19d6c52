package state

import "eatgo/internal/actions"

// Fail records err against flow and returns it, so thunks can end with
// `return state.Fail(d, flow, err)`.
func Fail(d Dispatcher, flow actions.Flow, err error) error {
	d.Dispatch(actions.SetError(flow, err))
	return err
}

// Recover clears a previously recorded failure for flow. It dispatches nothing
// when no failure is recorded.
func Recover(d Dispatcher, getState GetState, flow actions.Flow) {
	if getState().Err(flow) != "" {
		d.Dispatch(actions.ClearError(flow))
	}
}
