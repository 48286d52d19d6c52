// Package state holds application state and the rules for changing it.
//
// State is a plain value. Reduce maps (State, Action) to a new State without
// mutating its input. Store wraps a State behind a mutex, applies dispatched
// actions one at a time and notifies subscribers after each one.
//
// Asynchronous work is expressed as a Thunk: a function that receives the
// store's dispatcher and a state reader, performs its remote calls and
// dispatches plain actions as it goes. Thunks return their failure instead of
// swallowing it.
package state
