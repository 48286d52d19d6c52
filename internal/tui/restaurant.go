package tui

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"eatgo/internal/actions"
	"eatgo/internal/domain"
	"eatgo/internal/state"
)

// Labels of the review form.
const (
	LabelScore        = "평점"
	LabelDescription  = "리뷰 내용"
	LabelSubmitReview = "리뷰 남기기"
)

// RestaurantModel shows one restaurant, its reviews and, when logged in, the
// review form.
type RestaurantModel struct {
	ctx      context.Context
	store    Store
	commands RestaurantCommands
	id       int64

	spinner spinner.Model
	form    form
	styles  Styles
}

// NewRestaurantModel returns the detail page for restaurantID.
func NewRestaurantModel(ctx context.Context, store Store, commands RestaurantCommands, restaurantID int64) RestaurantModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := RestaurantModel{
		ctx:      ctx,
		store:    store,
		commands: commands,
		id:       restaurantID,
		spinner:  sp,
		form: newForm(LabelSubmitReview,
			newField(LabelScore, "score", "0-5"),
			newField(LabelDescription, "description", ""),
		),
		styles: DefaultStyles(),
	}
	m.form.sync(store.State().ReviewFields)
	return m
}

// RestaurantID returns the id this page shows.
func (m RestaurantModel) RestaurantID() int64 { return m.id }

// Init loads the restaurant and its reviews.
func (m RestaurantModel) Init() tea.Cmd {
	return tea.Batch(
		run(m.ctx, m.store, actions.FlowRestaurant, m.commands.LoadRestaurant(m.id)),
		m.spinner.Tick,
	)
}

// Update handles messages.
func (m RestaurantModel) Update(msg tea.Msg) (RestaurantModel, tea.Cmd) {
	st := m.store.State()
	m.form.sync(st.ReviewFields)

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loaded(st) {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case thunkDoneMsg:
		if msg.flow == actions.FlowReview && msg.err == nil {
			m.form.sync(m.store.State().ReviewFields)
			return m, m.form.focusAt(0)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.loaded(st) || !st.LoggedIn() {
			return m, nil
		}
		if handled, submitted, cmd := m.form.navigate(msg.String()); handled {
			if submitted {
				return m, run(m.ctx, m.store, actions.FlowReview, m.commands.SendReview(m.id))
			}
			return m, cmd
		}
		changed, cmd := m.form.update(msg)
		if changed != nil {
			m.store.Dispatch(actions.ChangeReviewField(changed.name, changed.input.Value()))
		}
		return m, cmd
	}
	return m, nil
}

// View renders the page from the current store state.
func (m RestaurantModel) View() string {
	st := m.store.State()

	switch {
	case m.loaded(st):
	case st.RestaurantStatus == state.Failed:
		return m.styles.Error.Render("Failed to load restaurant: " + st.Err(actions.FlowRestaurant))
	default:
		return m.spinner.View() + " Loading..."
	}

	var b strings.Builder
	r := st.Restaurant
	b.WriteString(m.styles.Title.Render(r.Name))
	b.WriteString("\n")
	b.WriteString(r.Address)
	b.WriteString("\n")
	if r.Information != "" {
		b.WriteString(m.styles.Muted.Render(r.Information))
		b.WriteString("\n")
	}

	if st.LoggedIn() {
		b.WriteString("\n")
		b.WriteString(m.form.view(m.styles))
		b.WriteString("\n")
		if reason := st.Err(actions.FlowReview); reason != "" {
			b.WriteString(m.styles.Error.Render(reason))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("리뷰"))
	b.WriteString("\n")
	reviews := sortedReviews(st.RestaurantReviews)
	if len(reviews) == 0 {
		b.WriteString(m.styles.Muted.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, rv := range reviews {
		b.WriteString(m.styles.Item.Render(fmt.Sprintf("%s  %d점  %s", rv.Name, rv.Score, rv.Description)))
		b.WriteString("\n")
	}
	return b.String()
}

// loaded reports whether the store holds this page's restaurant. A detail
// left over from another page counts as still loading.
func (m RestaurantModel) loaded(st state.State) bool {
	return st.RestaurantStatus == state.Loaded && st.Restaurant != nil && st.Restaurant.ID == m.id
}

// sortedReviews returns reviews newest first.
func sortedReviews(in []domain.Review) []domain.Review {
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b domain.Review) int { return cmp.Compare(b.ID, a.ID) })
	return out
}
