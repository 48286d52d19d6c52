package actions

import "eatgo/internal/domain"

func SetRegions(regions []domain.Region) Action {
	return Action{Type: TypeSetRegions, Payload: RegionsPayload{Regions: regions}}
}

func SetCategories(categories []domain.Category) Action {
	return Action{Type: TypeSetCategories, Payload: CategoriesPayload{Categories: categories}}
}

func SetRestaurants(restaurants []domain.Restaurant) Action {
	return Action{Type: TypeSetRestaurants, Payload: RestaurantsPayload{Restaurants: restaurants}}
}

// SetRestaurant stores the loaded detail. Pass nil to signal loading.
func SetRestaurant(restaurant *domain.Restaurant) Action {
	return Action{Type: TypeSetRestaurant, Payload: RestaurantPayload{Restaurant: restaurant}}
}

func SetReviews(reviews domain.Reviews) Action {
	return Action{Type: TypeSetReviews, Payload: ReviewsPayload{Reviews: reviews.Reviews}}
}

func SelectRegion(regionID int64) Action {
	return Action{Type: TypeSelectRegion, Payload: RegionIDPayload{RegionID: regionID}}
}

func SelectCategory(categoryID int64) Action {
	return Action{Type: TypeSelectCategory, Payload: CategoryIDPayload{CategoryID: categoryID}}
}

func ChangeLoginField(name, value string) Action {
	return Action{Type: TypeChangeLoginField, Payload: FieldPayload{Name: name, Value: value}}
}

func SetAccessToken(token domain.AccessToken) Action {
	return Action{Type: TypeSetAccessToken, Payload: AccessTokenPayload{AccessToken: token}}
}

func ChangeReviewField(name, value string) Action {
	return Action{Type: TypeChangeReviewField, Payload: FieldPayload{Name: name, Value: value}}
}

func ClearReviewFields() Action {
	return Action{Type: TypeClearReviewFields}
}

// Logout clears the in-memory token. It does not touch durable storage; the
// session service's Logout command removes the stored copy first.
func Logout() Action {
	return Action{Type: TypeLogout}
}

// SetError records a failed flow so the view can render it.
func SetError(flow Flow, err error) Action {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Action{Type: TypeSetError, Payload: ErrorPayload{Flow: flow, Message: msg}}
}

func ClearError(flow Flow) Action {
	return Action{Type: TypeClearError, Payload: FlowPayload{Flow: flow}}
}
