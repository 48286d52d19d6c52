package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatgo/internal/actions"
	"eatgo/internal/api/apitest"
	"eatgo/internal/domain"
	"eatgo/internal/services/restaurant"
	"eatgo/internal/state"
)

var wizardKitchen = domain.Restaurant{ID: 1, Name: "마법사주방", Address: "서울시 강남구"}

func restaurantFake() *apitest.Fake {
	r := wizardKitchen
	r.Reviews = []domain.Review{{ID: 1, Name: "테스터", Description: "정말 맛있어요!", Score: 5}}
	return &apitest.Fake{Details: map[int64]domain.Restaurant{1: r}}
}

func loadedActions() []actions.Action {
	r := wizardKitchen
	return []actions.Action{
		actions.SetRestaurant(&r),
		actions.SetReviews(domain.Reviews{Reviews: []domain.Review{
			{ID: 1, Name: "테스터", Description: "정말 맛있어요!", Score: 5},
		}}),
	}
}

func loggedIn() actions.Action { return actions.SetAccessToken("ACCESS_TOKEN") }

func TestRestaurantModel_InitLoadsRestaurant(t *testing.T) {
	store := newStore()
	fake := restaurantFake()
	m := NewRestaurantModel(context.Background(), store, restaurant.New(fake, nil), 1)

	done := doneMsgs(execCmd(m.Init()))

	require.Len(t, done, 1)
	assert.Equal(t, actions.FlowRestaurant, done[0].flow)
	assert.NoError(t, done[0].err)
	assert.Equal(t, []string{"FetchRestaurant", "FetchReviews"}, fake.CallNames())
	assert.Equal(t, state.Loaded, store.State().RestaurantStatus)
}

func TestRestaurantModel_RendersLoading(t *testing.T) {
	for name, store := range map[string]*countingStore{
		"not loaded":            newStore(),
		"loading":               newStore(actions.SetRestaurant(nil)),
		"loading and logged in": newStore(actions.SetRestaurant(nil), loggedIn()),
	} {
		t.Run(name, func(t *testing.T) {
			m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 1)
			view := m.View()
			assert.Contains(t, view, "Loading...")
			assert.NotContains(t, view, LabelScore)
			assert.NotContains(t, view, LabelDescription)
		})
	}
}

func TestRestaurantModel_OtherRestaurantCountsAsLoading(t *testing.T) {
	store := newStore(append(loadedActions(), loggedIn())...)
	m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 2)

	view := m.View()
	assert.Contains(t, view, "Loading...")
	assert.NotContains(t, view, "마법사주방")
	assert.NotContains(t, view, LabelScore)
	assert.NotContains(t, view, LabelSubmitReview)

	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyTab)
	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Zero(t, store.calls())
}

func TestRestaurantModel_RendersDetail(t *testing.T) {
	store := newStore(loadedActions()...)
	m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 1)

	view := m.View()
	assert.Contains(t, view, "마법사주방")
	assert.Contains(t, view, "서울시")
	assert.Contains(t, view, "정말 맛있어요!")
}

func TestRestaurantModel_ReviewsNewestFirst(t *testing.T) {
	acts := append(loadedActions(), actions.SetReviews(domain.Reviews{Reviews: []domain.Review{
		{ID: 1, Name: "a", Description: "first"},
		{ID: 3, Name: "c", Description: "third"},
		{ID: 2, Name: "b", Description: "second"},
	}}))
	m := NewRestaurantModel(context.Background(), newStore(acts...), restaurant.New(restaurantFake(), nil), 1)

	view := m.View()
	third := strings.Index(view, "third")
	second := strings.Index(view, "second")
	first := strings.Index(view, "first")
	assert.True(t, third < second && second < first, "got %q", view)
}

func TestRestaurantModel_ReviewFormOnlyWhenLoggedIn(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		m := NewRestaurantModel(context.Background(), newStore(loadedActions()...), restaurant.New(restaurantFake(), nil), 1)
		view := m.View()
		assert.NotContains(t, view, LabelScore)
		assert.NotContains(t, view, LabelDescription)
		assert.NotContains(t, view, LabelSubmitReview)
	})

	t.Run("logged in", func(t *testing.T) {
		store := newStore(append(loadedActions(), loggedIn())...)
		m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 1)
		view := m.View()
		assert.Contains(t, view, LabelScore)
		assert.Contains(t, view, LabelDescription)
		assert.Contains(t, view, LabelSubmitReview)
	})
}

func TestRestaurantModel_KeysIgnoredWhenLoggedOut(t *testing.T) {
	store := newStore(loadedActions()...)
	m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 1)

	m, _ = m.Update(keyRunes("5"))
	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Zero(t, store.calls())
}

func TestRestaurantModel_ChangesDispatchReviewField(t *testing.T) {
	store := newStore(append(loadedActions(), loggedIn())...)
	m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 1)

	m, _ = m.Update(keyRunes("5"))
	m, _ = m.Update(keyTab)
	_, _ = m.Update(keyRunes("정말 최고"))

	assert.Equal(t, []actions.Action{
		actions.ChangeReviewField("score", "5"),
		actions.ChangeReviewField("description", "정말 최고"),
	}, store.viewDispatches())
	assert.Equal(t, "5", store.State().ReviewFields.Get("score"))
	assert.Equal(t, "정말 최고", store.State().ReviewFields.Get("description"))
}

func TestRestaurantModel_MountAndSubmitAreTwoStoreCalls(t *testing.T) {
	store := newStore(loggedIn())
	m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 1)

	for _, msg := range execCmd(m.Init()) {
		m, _ = m.Update(msg)
	}
	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyTab)
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	done := doneMsgs(execCmd(cmd))
	require.Len(t, done, 1)
	assert.Equal(t, actions.FlowReview, done[0].flow)
	assert.Equal(t, 2, store.calls())
}

func TestRestaurantModel_SubmitRefreshesReviewsAndClearsForm(t *testing.T) {
	store := newStore(append(loadedActions(), loggedIn())...)
	fake := restaurantFake()
	m := NewRestaurantModel(context.Background(), store, restaurant.New(fake, nil), 1)

	m, _ = m.Update(keyRunes("4"))
	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyRunes("또 올게요"))
	m, _ = m.Update(keyTab)
	m, cmd := m.Update(keyEnter)

	for _, msg := range execCmd(cmd) {
		m, _ = m.Update(msg)
	}

	require.Len(t, fake.Submissions, 1)
	assert.Equal(t, 4, fake.Submissions[0].Score)
	assert.Equal(t, domain.AccessToken("ACCESS_TOKEN"), fake.Submissions[0].AccessToken)

	st := store.State()
	assert.Len(t, st.RestaurantReviews, 2)
	assert.Empty(t, st.ReviewFields.Get("score"))
	assert.Empty(t, st.ReviewFields.Get("description"))
	assert.Contains(t, m.View(), "또 올게요")
}

func TestRestaurantModel_RendersFailure(t *testing.T) {
	store := newStore(
		actions.SetRestaurant(nil),
		actions.SetError(actions.FlowRestaurant, errors.New("restaurant 9 not found")),
	)
	m := NewRestaurantModel(context.Background(), store, restaurant.New(restaurantFake(), nil), 9)

	view := m.View()
	assert.Contains(t, view, "restaurant 9 not found")
	assert.NotContains(t, view, "Loading...")
}

func TestRestaurantModel_RendersReviewError(t *testing.T) {
	fake := restaurantFake()
	fake.Errs = map[string]error{"PostReview": errors.New("server unavailable")}
	store := newStore(append(loadedActions(), loggedIn())...)
	m := NewRestaurantModel(context.Background(), store, restaurant.New(fake, nil), 1)

	m, _ = m.Update(keyRunes("3"))
	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyTab)
	_, cmd := m.Update(keyEnter)
	done := doneMsgs(execCmd(cmd))

	require.Len(t, done, 1)
	assert.Error(t, done[0].err)
	assert.Contains(t, m.View(), "server unavailable")
	assert.Equal(t, "3", store.State().ReviewFields.Get("score"), "form is kept on failure")
}
