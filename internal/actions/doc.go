// Package actions defines the state-transition descriptors understood by the
// reducer in package state, and pure constructors for each of them.
//
// Constructors have no side effects: given equal input they return equal
// descriptors, so callers and tests can compare them with reflect.DeepEqual.
// Anything that touches the network or durable storage lives in the command
// services under internal/services instead.
package actions
