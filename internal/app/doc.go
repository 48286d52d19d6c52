// Package app wires application dependencies for the CLI and the
// interactive view.
//
// It builds the token store, API client, state store and services from
// Config, exposing them via the Wire struct for commands to use.
package app
