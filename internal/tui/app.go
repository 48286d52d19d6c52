package tui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"eatgo/internal/actions"
	"eatgo/internal/state"
)

type page int

const (
	pageCatalog page = iota
	pageRestaurant
	pageLogin
)

// ObservableStore is a Store that reports changes.
type ObservableStore interface {
	Store
	Subscribe(l state.Listener) (unsubscribe func())
}

// Commands groups the command procedure builders the pages need.
type Commands struct {
	Catalog     CatalogCommands
	Restaurants RestaurantCommands
	Session     SessionCommands
}

// App is the root model.
type App struct {
	ctx      context.Context
	store    ObservableStore
	commands Commands

	page       page
	catalog    CatalogModel
	login      LoginModel
	restaurant *RestaurantModel

	changes     chan struct{}
	done        chan struct{}
	closeOnce   *sync.Once
	unsubscribe func()

	styles Styles
}

// NewApp builds the root model and subscribes it to store. Call Close when
// the program exits.
func NewApp(ctx context.Context, store ObservableStore, commands Commands) App {
	changes := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func(state.State) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return App{
		ctx:         ctx,
		store:       store,
		commands:    commands,
		catalog:     NewCatalogModel(ctx, store, commands.Catalog),
		login:       NewLoginModel(ctx, store, commands.Session),
		changes:     changes,
		done:        make(chan struct{}),
		closeOnce:   &sync.Once{},
		unsubscribe: unsubscribe,
		styles:      DefaultStyles(),
	}
}

// Close drops the store subscription.
func (m App) Close() {
	m.closeOnce.Do(func() {
		m.unsubscribe()
		close(m.done)
	})
}

// Init starts on the catalog page.
func (m App) Init() tea.Cmd {
	return tea.Batch(m.catalog.Init(), m.waitForChange())
}

// waitForChange blocks until the store changes or the app is closed.
func (m App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.changes:
			return stateChangedMsg{}
		case <-m.done:
			return nil
		}
	}
}

// Update handles messages.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		return m, m.waitForChange()

	case OpenRestaurantMsg:
		// Drop the previous detail before the new page first renders.
		m.store.Dispatch(actions.SetRestaurant(nil))
		r := NewRestaurantModel(m.ctx, m.store, m.commands.Restaurants, msg.ID)
		m.restaurant = &r
		m.page = pageRestaurant
		return m, r.Init()

	case thunkDoneMsg:
		return m.routeDone(msg)

	case spinner.TickMsg:
		if m.restaurant == nil {
			return m, nil
		}
		r, cmd := m.restaurant.Update(msg)
		m.restaurant = &r
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.page = pageCatalog
			return m, nil
		case "ctrl+l":
			m.page = pageLogin
			return m, nil
		case "q":
			if m.page == pageCatalog {
				return m, tea.Quit
			}
		}
		return m.updatePage(msg)
	}
	return m, nil
}

func (m App) routeDone(msg thunkDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.flow {
	case actions.FlowRestaurant, actions.FlowReview:
		if m.restaurant != nil {
			r, cmd := m.restaurant.Update(msg)
			m.restaurant = &r
			return m, cmd
		}
	case actions.FlowLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m App) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageRestaurant:
		if m.restaurant != nil {
			r, c := m.restaurant.Update(msg)
			m.restaurant, cmd = &r, c
		}
	case pageLogin:
		m.login, cmd = m.login.Update(msg)
	default:
		m.catalog, cmd = m.catalog.Update(msg)
	}
	return m, cmd
}

// View renders the active page.
func (m App) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("EatGo"))
	b.WriteString("\n")

	switch m.page {
	case pageRestaurant:
		if m.restaurant != nil {
			b.WriteString(m.restaurant.View())
		}
	case pageLogin:
		b.WriteString(m.login.View())
	default:
		b.WriteString(m.catalog.View())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m App) help() string {
	switch m.page {
	case pageCatalog:
		return "←/→ column • ↑/↓ move • enter select • ctrl+l login • q quit"
	default:
		return "tab next field • enter submit • esc back • ctrl+c quit"
	}
}

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, store ObservableStore, commands Commands, opts ...tea.ProgramOption) error {
	app := NewApp(ctx, store, commands)
	defer app.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(app, opts...).Run()
	return err
}
