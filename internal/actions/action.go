package actions

import "fmt"

// Type names a state transition.
type Type string

const (
	TypeSetRegions        Type = "setRegions"
	TypeSetCategories     Type = "setCategories"
	TypeSetRestaurants    Type = "setRestaurants"
	TypeSetRestaurant     Type = "setRestaurant"
	TypeSetReviews        Type = "setReviews"
	TypeSelectRegion      Type = "selectRegion"
	TypeSelectCategory    Type = "selectCategory"
	TypeChangeLoginField  Type = "changeLoginField"
	TypeSetAccessToken    Type = "setAccessToken"
	TypeChangeReviewField Type = "changeReviewField"
	TypeClearReviewFields Type = "clearReviewFields"
	TypeLogout            Type = "logout"
	TypeSetError          Type = "setError"
	TypeClearError        Type = "clearError"
)

// Action is an immutable descriptor. Payload is nil for payload-less types and
// otherwise one of the *Payload structs in this package.
type Action struct {
	Type    Type
	Payload any
}

// String renders the action type for logs.
func (a Action) String() string {
	if a.Payload == nil {
		return string(a.Type)
	}
	return fmt.Sprintf("%s %+v", a.Type, a.Payload)
}

// Flow identifies an asynchronous command for error bookkeeping.
type Flow string

const (
	FlowInitial     Flow = "initial"
	FlowRestaurants Flow = "restaurants"
	FlowRestaurant  Flow = "restaurant"
	FlowLogin       Flow = "login"
	FlowReview      Flow = "review"
)
