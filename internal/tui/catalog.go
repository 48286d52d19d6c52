package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eatgo/internal/actions"
	"eatgo/internal/state"
)

type catalogColumn int

const (
	columnRegions catalogColumn = iota
	columnCategories
	columnRestaurants
	columnCount
)

// selectedMark is appended to the selected region and category.
const selectedMark = "(V)"

// CatalogModel lists regions and categories and the restaurants matching the
// selected pair.
type CatalogModel struct {
	ctx      context.Context
	store    Store
	commands CatalogCommands

	column catalogColumn
	cursor [columnCount]int
	styles Styles
}

// NewCatalogModel returns the catalog page.
func NewCatalogModel(ctx context.Context, store Store, commands CatalogCommands) CatalogModel {
	return CatalogModel{
		ctx:      ctx,
		store:    store,
		commands: commands,
		styles:   DefaultStyles(),
	}
}

// Init loads regions and categories.
func (m CatalogModel) Init() tea.Cmd {
	return run(m.ctx, m.store, actions.FlowInitial, m.commands.LoadInitialData())
}

// Update handles messages.
func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	st := m.store.State()
	switch key.String() {
	case "left", "h", "shift+tab":
		m.column = (m.column + columnCount - 1) % columnCount
	case "right", "l", "tab":
		m.column = (m.column + 1) % columnCount
	case "up", "k":
		if m.cursor[m.column] > 0 {
			m.cursor[m.column]--
		}
	case "down", "j":
		if m.cursor[m.column] < m.columnLen(st)-1 {
			m.cursor[m.column]++
		}
	case "enter":
		return m, m.choose(st)
	}
	return m, nil
}

func (m CatalogModel) columnLen(st state.State) int {
	switch m.column {
	case columnRegions:
		return len(st.Regions)
	case columnCategories:
		return len(st.Categories)
	default:
		return len(st.Restaurants)
	}
}

// choose acts on the item under the cursor.
func (m CatalogModel) choose(st state.State) tea.Cmd {
	i := m.cursor[m.column]
	if i >= m.columnLen(st) {
		return nil
	}
	switch m.column {
	case columnRegions:
		return run(m.ctx, m.store, actions.FlowRestaurants, m.commands.SelectRegion(st.Regions[i].ID))
	case columnCategories:
		return run(m.ctx, m.store, actions.FlowRestaurants, m.commands.SelectCategory(st.Categories[i].ID))
	default:
		id := st.Restaurants[i].ID
		return func() tea.Msg { return OpenRestaurantMsg{ID: id} }
	}
}

// View renders the three columns.
func (m CatalogModel) View() string {
	st := m.store.State()

	var regions, categories, restaurants []string
	var selRegion, selCategory int64 = -1, -1
	if st.SelectedRegion != nil {
		selRegion = st.SelectedRegion.ID
	}
	if st.SelectedCategory != nil {
		selCategory = st.SelectedCategory.ID
	}
	for _, r := range st.Regions {
		regions = append(regions, mark(r.Name, r.ID == selRegion))
	}
	for _, c := range st.Categories {
		categories = append(categories, mark(c.Name, c.ID == selCategory))
	}
	for _, r := range st.Restaurants {
		restaurants = append(restaurants, r.Name)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(columnRegions, "지역", regions),
		m.renderColumn(columnCategories, "분류", categories),
		m.renderColumn(columnRestaurants, "레스토랑", restaurants),
	)

	var b strings.Builder
	b.WriteString(body)
	for _, flow := range []actions.Flow{actions.FlowInitial, actions.FlowRestaurants} {
		if reason := st.Err(flow); reason != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.Error.Render(reason))
		}
	}
	return b.String()
}

func (m CatalogModel) renderColumn(col catalogColumn, title string, items []string) string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("  -"))
	}
	for i, item := range items {
		if col == m.column && i == m.cursor[col] {
			b.WriteString(m.styles.Cursor.Render("> " + item))
		} else {
			b.WriteString(m.styles.Item.Render(item))
		}
		b.WriteString("\n")
	}
	return m.styles.Column.Render(b.String())
}

func mark(name string, selected bool) string {
	if selected {
		return name + selectedMark
	}
	return name
}
