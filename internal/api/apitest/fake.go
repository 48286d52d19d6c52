// Package apitest provides an in-memory domain.APIClient for tests.
package apitest

import (
	"context"
	"sync"

	"eatgo/internal/domain"
)

// Fake answers API calls from its fields and records every call by name.
// Set Errs[name] to make that call fail.
type Fake struct {
	mu sync.Mutex

	Regions     []domain.Region
	Categories  []domain.Category
	Restaurants []domain.Restaurant
	Details     map[int64]domain.Restaurant
	Token       domain.AccessToken

	Errs map[string]error

	Calls       []string
	Queries     []domain.RestaurantQuery
	Logins      []domain.Credentials
	Submissions []domain.ReviewSubmission
}

func (f *Fake) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
	return f.Errs[name]
}

// CallNames returns a copy of the recorded call names.
func (f *Fake) CallNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *Fake) FetchRegions(ctx context.Context) ([]domain.Region, error) {
	if err := f.record("FetchRegions"); err != nil {
		return nil, err
	}
	return f.Regions, nil
}

func (f *Fake) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	if err := f.record("FetchCategories"); err != nil {
		return nil, err
	}
	return f.Categories, nil
}

func (f *Fake) FetchRestaurants(ctx context.Context, q domain.RestaurantQuery) ([]domain.Restaurant, error) {
	if err := f.record("FetchRestaurants"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.Queries = append(f.Queries, q)
	f.mu.Unlock()
	return f.Restaurants, nil
}

func (f *Fake) FetchRestaurant(ctx context.Context, id int64) (domain.Restaurant, error) {
	if err := f.record("FetchRestaurant"); err != nil {
		return domain.Restaurant{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.Details[id]
	r.Reviews = nil
	return r, nil
}

func (f *Fake) FetchReviews(ctx context.Context, id int64) (domain.Reviews, error) {
	if err := f.record("FetchReviews"); err != nil {
		return domain.Reviews{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.Reviews{Reviews: append([]domain.Review(nil), f.Details[id].Reviews...)}, nil
}

func (f *Fake) PostLogin(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	if err := f.record("PostLogin"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Logins = append(f.Logins, creds)
	return f.Token, nil
}

// PostReview records the submission and appends it to the restaurant's
// reviews so a later FetchReviews sees it.
func (f *Fake) PostReview(ctx context.Context, sub domain.ReviewSubmission) error {
	if err := f.record("PostReview"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Submissions = append(f.Submissions, sub)
	if f.Details == nil {
		f.Details = map[int64]domain.Restaurant{}
	}
	r := f.Details[sub.RestaurantID]
	r.Reviews = append(append([]domain.Review(nil), r.Reviews...), domain.Review{
		ID:           int64(len(r.Reviews) + 1),
		RestaurantID: sub.RestaurantID,
		Description:  sub.Description,
		Score:        sub.Score,
	})
	f.Details[sub.RestaurantID] = r
	return nil
}

var _ domain.APIClient = (*Fake)(nil)
