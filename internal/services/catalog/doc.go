// Package catalog loads the browsing data: regions, categories and the
// restaurant list for the current selection.
//
// Every command is returned as a state.Thunk. Remote calls are made one after
// another, never in parallel, and a failure stops the command where it is.
package catalog
