package restaurant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"eatgo/internal/actions"
	"eatgo/internal/domain"
	"eatgo/internal/state"
)

var (
	// ErrNotLoggedIn is returned by SendReview when no access token is held.
	ErrNotLoggedIn = errors.New("log in before writing a review")
	// ErrInvalidScore is returned when the score field is not an integer.
	ErrInvalidScore = errors.New("score must be a whole number")
)

// Service builds restaurant detail commands.
type Service struct {
	api domain.APIClient
	log *zap.Logger
}

// New returns a restaurant service. A nil logger disables logging.
func New(api domain.APIClient, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, log: log.Named("restaurant")}
}

// LoadRestaurant dispatches setRestaurant(nil), fetches the restaurant and
// then its reviews, and finally dispatches setRestaurant followed by
// setReviews. On failure the detail is marked failed.
func (s *Service) LoadRestaurant(restaurantID int64) state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		d.Dispatch(actions.SetRestaurant(nil))

		restaurant, err := s.api.FetchRestaurant(ctx, restaurantID)
		if err != nil {
			return state.Fail(d, actions.FlowRestaurant, fmt.Errorf("fetch restaurant %d: %w", restaurantID, err))
		}

		reviews, err := s.api.FetchReviews(ctx, restaurantID)
		if err != nil {
			return state.Fail(d, actions.FlowRestaurant, fmt.Errorf("fetch reviews %d: %w", restaurantID, err))
		}

		d.Dispatch(actions.SetRestaurant(&restaurant))
		d.Dispatch(actions.SetReviews(reviews))

		s.log.Debug("restaurant loaded",
			zap.Int64("restaurant_id", restaurantID),
			zap.Int("reviews", len(reviews.Reviews)),
		)
		return nil
	}
}

// SendReview posts the review form for restaurantID using the held access
// token, re-fetches the reviews and dispatches them, then clears the form.
func (s *Service) SendReview(restaurantID int64) state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		st := get()
		if !st.LoggedIn() {
			return state.Fail(d, actions.FlowReview, ErrNotLoggedIn)
		}

		score, err := parseScore(st.ReviewFields.Get("score"))
		if err != nil {
			return state.Fail(d, actions.FlowReview, err)
		}

		err = s.api.PostReview(ctx, domain.ReviewSubmission{
			AccessToken:  st.AccessToken,
			RestaurantID: restaurantID,
			Score:        score,
			Description:  st.ReviewFields.Get("description"),
		})
		if err != nil {
			return state.Fail(d, actions.FlowReview, fmt.Errorf("post review: %w", err))
		}

		reviews, err := s.api.FetchReviews(ctx, restaurantID)
		if err != nil {
			return state.Fail(d, actions.FlowReview, fmt.Errorf("refresh reviews: %w", err))
		}
		d.Dispatch(actions.SetReviews(reviews))
		d.Dispatch(actions.ClearReviewFields())
		state.Recover(d, get, actions.FlowReview)

		s.log.Info("review sent", zap.Int64("restaurant_id", restaurantID), zap.Int("score", score))
		return nil
	}
}

func parseScore(raw string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScore, raw)
	}
	return score, nil
}
