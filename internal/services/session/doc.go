// Package session manages the access token: logging in, logging out and
// restoring a token saved by an earlier run.
//
// The in-memory token and the durable copy are kept in step. Login saves the
// token before dispatching it; logout removes the stored copy before clearing
// the in-memory one.
package session
