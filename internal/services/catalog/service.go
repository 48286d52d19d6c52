package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eatgo/internal/actions"
	"eatgo/internal/domain"
	"eatgo/internal/state"
)

// Service builds catalog commands against an API client.
type Service struct {
	api domain.APIClient
	log *zap.Logger
}

// New returns a catalog service. A nil logger disables logging.
func New(api domain.APIClient, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, log: log.Named("catalog")}
}

// LoadInitialData fetches regions, then categories, dispatching each as it
// arrives. If regions fail, categories are never requested.
func (s *Service) LoadInitialData() state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		regions, err := s.api.FetchRegions(ctx)
		if err != nil {
			return state.Fail(d, actions.FlowInitial, fmt.Errorf("fetch regions: %w", err))
		}
		d.Dispatch(actions.SetRegions(regions))

		categories, err := s.api.FetchCategories(ctx)
		if err != nil {
			return state.Fail(d, actions.FlowInitial, fmt.Errorf("fetch categories: %w", err))
		}
		d.Dispatch(actions.SetCategories(categories))

		state.Recover(d, get, actions.FlowInitial)
		s.log.Debug("initial data loaded",
			zap.Int("regions", len(regions)),
			zap.Int("categories", len(categories)),
		)
		return nil
	}
}

// LoadRestaurants lists restaurants for the selected region and category. It
// does nothing until both are selected.
func (s *Service) LoadRestaurants() state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		st := get()
		region, category := st.SelectedRegion, st.SelectedCategory
		if region == nil || category == nil {
			return nil
		}

		restaurants, err := s.api.FetchRestaurants(ctx, domain.RestaurantQuery{
			RegionName: region.Name,
			CategoryID: category.ID,
		})
		if err != nil {
			return state.Fail(d, actions.FlowRestaurants, fmt.Errorf("fetch restaurants: %w", err))
		}
		d.Dispatch(actions.SetRestaurants(restaurants))
		state.Recover(d, get, actions.FlowRestaurants)
		return nil
	}
}

// SelectRegion selects a region and reloads the restaurant list.
func (s *Service) SelectRegion(regionID int64) state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		d.Dispatch(actions.SelectRegion(regionID))
		return s.LoadRestaurants()(ctx, d, get)
	}
}

// SelectCategory selects a category and reloads the restaurant list.
func (s *Service) SelectCategory(categoryID int64) state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		d.Dispatch(actions.SelectCategory(categoryID))
		return s.LoadRestaurants()(ctx, d, get)
	}
}
