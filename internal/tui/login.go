package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eatgo/internal/actions"
)

// Labels of the login page.
const (
	LabelEmail    = "E-mail"
	LabelPassword = "Password"
	LabelLogin    = "Log in"
	LabelLogout   = "Log out"
)

// LoginModel is the login form, or a logout control once logged in.
type LoginModel struct {
	ctx      context.Context
	store    Store
	commands SessionCommands

	form   form
	styles Styles
}

// NewLoginModel returns the login page.
func NewLoginModel(ctx context.Context, store Store, commands SessionCommands) LoginModel {
	password := newField(LabelPassword, "password", "")
	password.input.EchoMode = textinput.EchoPassword

	m := LoginModel{
		ctx:      ctx,
		store:    store,
		commands: commands,
		form:     newForm(LabelLogin, newField(LabelEmail, "email", "you@example.com"), password),
		styles:   DefaultStyles(),
	}
	m.form.sync(store.State().LoginFields)
	return m
}

// Init does nothing; the session is restored before the view starts.
func (m LoginModel) Init() tea.Cmd { return nil }

// Update handles messages.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	st := m.store.State()
	m.form.sync(st.LoginFields)

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if st.LoggedIn() {
		if key.String() == "enter" {
			return m, run(m.ctx, m.store, actions.FlowLogin, m.commands.Logout())
		}
		return m, nil
	}

	if handled, submitted, cmd := m.form.navigate(key.String()); handled {
		if submitted {
			return m, run(m.ctx, m.store, actions.FlowLogin, m.commands.RequestLogin())
		}
		return m, cmd
	}
	changed, cmd := m.form.update(key)
	if changed != nil {
		m.store.Dispatch(actions.ChangeLoginField(changed.name, changed.input.Value()))
	}
	return m, cmd
}

// View renders the form or the logout control.
func (m LoginModel) View() string {
	st := m.store.State()

	var b strings.Builder
	if st.LoggedIn() {
		b.WriteString(m.styles.Success.Render("Logged in"))
		b.WriteString("\n")
		b.WriteString(m.styles.ButtonFocused.Render(LabelLogout))
	} else {
		b.WriteString(m.form.view(m.styles))
	}
	if reason := st.Err(actions.FlowLogin); reason != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(reason))
	}
	return b.String()
}
