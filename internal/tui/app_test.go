package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"eatgo/internal/actions"
	"eatgo/internal/api/apitest"
	"eatgo/internal/domain"
	"eatgo/internal/services/catalog"
	"eatgo/internal/services/restaurant"
	"eatgo/internal/services/session"
	"eatgo/internal/state"
	"eatgo/internal/store/storetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestApp(t *testing.T, fake *apitest.Fake) (App, *state.Store) {
	t.Helper()
	store := state.NewStore(state.Initial())
	app := NewApp(context.Background(), store, Commands{
		Catalog:     catalog.New(fake, nil),
		Restaurants: restaurant.New(fake, nil),
		Session:     session.New(fake, storetest.NewMemory(), nil),
	})
	t.Cleanup(app.Close)
	return app, store
}

func update(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := app.Update(msg)
	a, ok := next.(App)
	require.True(t, ok)
	return a, cmd
}

func TestApp_StoreChangesWakeTheView(t *testing.T) {
	app, store := newTestApp(t, &apitest.Fake{})

	store.Dispatch(actions.SetRegions([]domain.Region{{ID: 1, Name: "서울"}}))

	msg := app.waitForChange()()
	assert.Equal(t, stateChangedMsg{}, msg)

	app, cmd := update(t, app, msg)
	require.NotNil(t, cmd, "the wait is re-armed")
	assert.Contains(t, app.View(), "서울")
}

func TestApp_CloseReleasesWaiter(t *testing.T) {
	app, _ := newTestApp(t, &apitest.Fake{})
	app.Close()
	app.Close()

	assert.Nil(t, app.waitForChange()())
}

func TestApp_OpenRestaurantShowsDetail(t *testing.T) {
	fake := &apitest.Fake{Details: map[int64]domain.Restaurant{
		3: {ID: 3, Name: "마법사주방", Address: "서울시 강남구"},
	}}
	app, _ := newTestApp(t, fake)

	app, cmd := update(t, app, OpenRestaurantMsg{ID: 3})
	assert.Contains(t, app.View(), "Loading...")

	for _, msg := range execCmd(cmd) {
		app, _ = update(t, app, msg)
	}
	assert.Contains(t, app.View(), "마법사주방")

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, app.View(), "마법사주방")
}

func TestApp_OpenRestaurantDropsPreviousDetail(t *testing.T) {
	app, store := newTestApp(t, &apitest.Fake{})
	previous := domain.Restaurant{ID: 1, Name: "양천주가", Address: "서울시"}
	store.Dispatch(actions.SetRestaurant(&previous))
	store.Dispatch(actions.SetAccessToken("TOKEN"))

	app, _ = update(t, app, OpenRestaurantMsg{ID: 2})

	assert.Nil(t, store.State().Restaurant)
	assert.Equal(t, state.Loading, store.State().RestaurantStatus)
	view := app.View()
	assert.Contains(t, view, "Loading...")
	assert.NotContains(t, view, "양천주가")
}

func TestApp_LoginPage(t *testing.T) {
	app, _ := newTestApp(t, &apitest.Fake{})

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Contains(t, app.View(), LabelEmail)
	assert.Contains(t, app.View(), LabelPassword)
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t, &apitest.Fake{})

	_, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_QOnlyQuitsFromCatalog(t *testing.T) {
	app, _ := newTestApp(t, &apitest.Fake{})

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyCtrlL})
	_, cmd := update(t, app, keyRunes("q"))
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
}
