package interfaces

import (
	"context"

	domaintypes "eatgo/internal/domain/types"
)

// APIClient is how we talk to the remote restaurant API, all with context.
// None of the calls are retried.
type APIClient interface {
	FetchRegions(ctx context.Context) ([]domaintypes.Region, error)
	FetchCategories(ctx context.Context) ([]domaintypes.Category, error)
	FetchRestaurants(
		ctx context.Context,
		query domaintypes.RestaurantQuery,
	) ([]domaintypes.Restaurant, error)
	FetchRestaurant(ctx context.Context, restaurantID int64) (domaintypes.Restaurant, error)
	FetchReviews(ctx context.Context, restaurantID int64) (domaintypes.Reviews, error)

	PostLogin(ctx context.Context, credentials domaintypes.Credentials) (domaintypes.AccessToken, error)
	PostReview(ctx context.Context, submission domaintypes.ReviewSubmission) error
}
