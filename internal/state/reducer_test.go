package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatgo/internal/actions"
	"eatgo/internal/domain"
	"eatgo/internal/state"
)

func TestReduce_UnknownActionLeavesStateUnchanged(t *testing.T) {
	s := state.Initial()
	got := state.Reduce(s, actions.Action{Type: "nope"})
	assert.Equal(t, s, got)
}

func TestReduce_WrongPayloadIgnored(t *testing.T) {
	s := state.Initial()
	got := state.Reduce(s, actions.Action{Type: actions.TypeSetRegions, Payload: "regions"})
	assert.Nil(t, got.Regions)
}

func TestReduce_Lists(t *testing.T) {
	s := state.Initial()
	s = state.Reduce(s, actions.SetRegions([]domain.Region{{ID: 1, Name: "서울"}}))
	s = state.Reduce(s, actions.SetCategories([]domain.Category{{ID: 1, Name: "한식"}}))
	s = state.Reduce(s, actions.SetRestaurants([]domain.Restaurant{{ID: 1, Name: "마법사주방"}}))

	assert.Len(t, s.Regions, 1)
	assert.Len(t, s.Categories, 1)
	assert.Len(t, s.Restaurants, 1)
}

func TestReduce_SelectResolvesAgainstLoadedLists(t *testing.T) {
	s := state.Initial()
	s = state.Reduce(s, actions.SetRegions([]domain.Region{{ID: 1, Name: "서울"}, {ID: 2, Name: "부산"}}))
	s = state.Reduce(s, actions.SetCategories([]domain.Category{{ID: 7, Name: "한식"}}))

	s = state.Reduce(s, actions.SelectRegion(2))
	s = state.Reduce(s, actions.SelectCategory(7))
	require.NotNil(t, s.SelectedRegion)
	require.NotNil(t, s.SelectedCategory)
	assert.Equal(t, "부산", s.SelectedRegion.Name)
	assert.Equal(t, "한식", s.SelectedCategory.Name)

	s = state.Reduce(s, actions.SelectRegion(99))
	assert.Nil(t, s.SelectedRegion)
}

func TestReduce_RestaurantStatusCycle(t *testing.T) {
	s := state.Initial()
	assert.Equal(t, state.NotLoaded, s.RestaurantStatus)

	s = state.Reduce(s, actions.SetRestaurant(nil))
	assert.Equal(t, state.Loading, s.RestaurantStatus)
	assert.Nil(t, s.Restaurant)

	s = state.Reduce(s, actions.SetRestaurant(&domain.Restaurant{ID: 1, Name: "마법사주방"}))
	assert.Equal(t, state.Loaded, s.RestaurantStatus)

	s = state.Reduce(s, actions.SetRestaurant(nil))
	s = state.Reduce(s, actions.SetError(actions.FlowRestaurant, errors.New("boom")))
	assert.Equal(t, state.Failed, s.RestaurantStatus)
	assert.Equal(t, "boom", s.Err(actions.FlowRestaurant))

	// A fresh load clears the old failure.
	s = state.Reduce(s, actions.SetRestaurant(nil))
	assert.Equal(t, state.Loading, s.RestaurantStatus)
	assert.Empty(t, s.Err(actions.FlowRestaurant))
}

func TestReduce_FieldsAreCopied(t *testing.T) {
	before := state.Initial()
	after := state.Reduce(before, actions.ChangeReviewField("score", "5"))

	assert.Equal(t, "5", after.ReviewFields.Get("score"))
	assert.Equal(t, "", before.ReviewFields.Get("score"))

	after = state.Reduce(after, actions.ClearReviewFields())
	assert.Equal(t, "", after.ReviewFields.Get("score"))

	login := state.Reduce(before, actions.ChangeLoginField("email", "tester@example.com"))
	assert.Equal(t, "tester@example.com", login.LoginFields.Get("email"))
	assert.Equal(t, "", before.LoginFields.Get("email"))
}

func TestReduce_TokenAndLogout(t *testing.T) {
	s := state.Reduce(state.Initial(), actions.SetAccessToken("TOKEN"))
	assert.True(t, s.LoggedIn())

	s = state.Reduce(s, actions.Logout())
	assert.False(t, s.LoggedIn())
}

func TestReduce_Errors(t *testing.T) {
	before := state.Reduce(state.Initial(), actions.SetError(actions.FlowLogin, errors.New("denied")))
	after := state.Reduce(before, actions.ClearError(actions.FlowLogin))

	assert.Equal(t, "denied", before.Err(actions.FlowLogin))
	assert.Empty(t, after.Err(actions.FlowLogin))
}

func TestReduce_SetReviews(t *testing.T) {
	reviews := []domain.Review{{ID: 1, Name: "테스터", Description: "정말 맛있어요!", Score: 5}}
	s := state.Reduce(state.Initial(), actions.SetReviews(domain.Reviews{Reviews: reviews}))
	assert.Equal(t, reviews, s.RestaurantReviews)
}
