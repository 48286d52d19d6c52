package actions

import "eatgo/internal/domain"

type RegionsPayload struct {
	Regions []domain.Region
}

type CategoriesPayload struct {
	Categories []domain.Category
}

type RestaurantsPayload struct {
	Restaurants []domain.Restaurant
}

// RestaurantPayload carries the loaded restaurant. A nil Restaurant marks the
// detail view as loading.
type RestaurantPayload struct {
	Restaurant *domain.Restaurant
}

type ReviewsPayload struct {
	Reviews []domain.Review
}

type RegionIDPayload struct {
	RegionID int64
}

type CategoryIDPayload struct {
	CategoryID int64
}

// FieldPayload is a single form field edit.
type FieldPayload struct {
	Name  string
	Value string
}

type AccessTokenPayload struct {
	AccessToken domain.AccessToken
}

type ErrorPayload struct {
	Flow    Flow
	Message string
}

type FlowPayload struct {
	Flow Flow
}
