package state

import (
	"eatgo/internal/actions"
	"eatgo/internal/domain"
)

// Reducer maps a state and an action to the next state.
type Reducer func(State, actions.Action) State

// Reduce is the application reducer. Unknown actions, and known actions with a
// payload of the wrong type, leave the state unchanged.
func Reduce(s State, a actions.Action) State {
	switch a.Type {
	case actions.TypeSetRegions:
		if p, ok := a.Payload.(actions.RegionsPayload); ok {
			s.Regions = p.Regions
		}
	case actions.TypeSetCategories:
		if p, ok := a.Payload.(actions.CategoriesPayload); ok {
			s.Categories = p.Categories
		}
	case actions.TypeSetRestaurants:
		if p, ok := a.Payload.(actions.RestaurantsPayload); ok {
			s.Restaurants = p.Restaurants
		}
	case actions.TypeSetRestaurant:
		if p, ok := a.Payload.(actions.RestaurantPayload); ok {
			s.Restaurant = p.Restaurant
			if p.Restaurant == nil {
				s.RestaurantStatus = Loading
				s.Errors = withoutError(s.Errors, actions.FlowRestaurant)
			} else {
				s.RestaurantStatus = Loaded
			}
		}
	case actions.TypeSetReviews:
		if p, ok := a.Payload.(actions.ReviewsPayload); ok {
			s.RestaurantReviews = p.Reviews
		}
	case actions.TypeSelectRegion:
		if p, ok := a.Payload.(actions.RegionIDPayload); ok {
			s.SelectedRegion = findRegion(s.Regions, p.RegionID)
		}
	case actions.TypeSelectCategory:
		if p, ok := a.Payload.(actions.CategoryIDPayload); ok {
			s.SelectedCategory = findCategory(s.Categories, p.CategoryID)
		}
	case actions.TypeChangeLoginField:
		if p, ok := a.Payload.(actions.FieldPayload); ok {
			s.LoginFields = s.LoginFields.With(p.Name, p.Value)
		}
	case actions.TypeSetAccessToken:
		if p, ok := a.Payload.(actions.AccessTokenPayload); ok {
			s.AccessToken = p.AccessToken
		}
	case actions.TypeChangeReviewField:
		if p, ok := a.Payload.(actions.FieldPayload); ok {
			s.ReviewFields = s.ReviewFields.With(p.Name, p.Value)
		}
	case actions.TypeClearReviewFields:
		s.ReviewFields = blankReviewFields()
	case actions.TypeLogout:
		s.AccessToken = ""
	case actions.TypeSetError:
		if p, ok := a.Payload.(actions.ErrorPayload); ok {
			s.Errors = withError(s.Errors, p.Flow, p.Message)
			if p.Flow == actions.FlowRestaurant {
				s.RestaurantStatus = Failed
			}
		}
	case actions.TypeClearError:
		if p, ok := a.Payload.(actions.FlowPayload); ok {
			s.Errors = withoutError(s.Errors, p.Flow)
		}
	}
	return s
}

func findRegion(regions []domain.Region, id int64) *domain.Region {
	for i := range regions {
		if regions[i].ID == id {
			r := regions[i]
			return &r
		}
	}
	return nil
}

func findCategory(categories []domain.Category, id int64) *domain.Category {
	for i := range categories {
		if categories[i].ID == id {
			c := categories[i]
			return &c
		}
	}
	return nil
}

func withError(errs map[actions.Flow]string, flow actions.Flow, msg string) map[actions.Flow]string {
	out := make(map[actions.Flow]string, len(errs)+1)
	for k, v := range errs {
		out[k] = v
	}
	out[flow] = msg
	return out
}

func withoutError(errs map[actions.Flow]string, flow actions.Flow) map[actions.Flow]string {
	if _, ok := errs[flow]; !ok {
		return errs
	}
	out := make(map[actions.Flow]string, len(errs))
	for k, v := range errs {
		if k != flow {
			out[k] = v
		}
	}
	return out
}
