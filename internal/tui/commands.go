package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"eatgo/internal/actions"
	"eatgo/internal/state"
)

// Store is the part of the state store the views use.
type Store interface {
	state.Dispatcher
	State() state.State
	Run(ctx context.Context, t state.Thunk) error
}

// CatalogCommands builds the catalog command procedures.
type CatalogCommands interface {
	LoadInitialData() state.Thunk
	SelectRegion(regionID int64) state.Thunk
	SelectCategory(categoryID int64) state.Thunk
}

// RestaurantCommands builds the restaurant detail command procedures.
type RestaurantCommands interface {
	LoadRestaurant(restaurantID int64) state.Thunk
	SendReview(restaurantID int64) state.Thunk
}

// SessionCommands builds the login and logout command procedures.
type SessionCommands interface {
	RequestLogin() state.Thunk
	Logout() state.Thunk
}

// thunkDoneMsg reports a finished command procedure. The failure itself is
// already in the store; err is kept for the status line.
type thunkDoneMsg struct {
	flow actions.Flow
	err  error
}

// stateChangedMsg is delivered after every dispatch when the root model is
// subscribed to the store.
type stateChangedMsg struct{}

// OpenRestaurantMsg asks the root model to show a restaurant's detail page.
type OpenRestaurantMsg struct{ ID int64 }

// run executes t through the store off the update loop.
func run(ctx context.Context, s Store, flow actions.Flow, t state.Thunk) tea.Cmd {
	return func() tea.Msg {
		return thunkDoneMsg{flow: flow, err: s.Run(ctx, t)}
	}
}
