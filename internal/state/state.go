package state

import (
	"eatgo/internal/actions"
	"eatgo/internal/domain"
)

// RestaurantStatus tracks the detail view's load cycle.
type RestaurantStatus int

const (
	NotLoaded RestaurantStatus = iota
	Loading
	Loaded
	Failed
)

func (s RestaurantStatus) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not-loaded"
	}
}

// State is the whole client state. Slices are never modified in place once
// stored, so snapshots may share them safely.
type State struct {
	Regions     []domain.Region
	Categories  []domain.Category
	Restaurants []domain.Restaurant

	SelectedRegion   *domain.Region
	SelectedCategory *domain.Category

	Restaurant        *domain.Restaurant
	RestaurantStatus  RestaurantStatus
	RestaurantReviews []domain.Review

	LoginFields  domain.Fields
	ReviewFields domain.Fields
	AccessToken  domain.AccessToken

	Errors map[actions.Flow]string
}

// Initial returns the state the app starts with: empty lists, blank forms,
// logged out.
func Initial() State {
	return State{
		LoginFields:  domain.Fields{"email": "", "password": ""},
		ReviewFields: blankReviewFields(),
	}
}

func blankReviewFields() domain.Fields {
	return domain.Fields{"score": "", "description": ""}
}

// LoggedIn reports whether an access token is held.
func (s State) LoggedIn() bool { return !s.AccessToken.Empty() }

// Err returns the last recorded failure for flow, or "".
func (s State) Err(flow actions.Flow) string { return s.Errors[flow] }
