package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eatgo/internal/domain"
)

// field is one labelled input bound to a form field name.
type field struct {
	label string
	name  string
	input textinput.Model
}

func newField(label, name, placeholder string) field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	return field{label: label, name: name, input: in}
}

// form is an ordered list of fields followed by a single submit control.
// The store owns the values; the inputs mirror them.
type form struct {
	fields []field
	submit string
	focus  int // len(fields) means the submit control
}

func newForm(submit string, fields ...field) form {
	f := form{fields: fields, submit: submit}
	f.focusAt(0)
	return f
}

// focusAt moves focus to i, wrapping around the submit control.
func (f *form) focusAt(i int) tea.Cmd {
	n := len(f.fields) + 1
	f.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.focus {
			cmd = f.fields[j].input.Focus()
			continue
		}
		f.fields[j].input.Blur()
	}
	return cmd
}

func (f form) onSubmit() bool { return f.focus == len(f.fields) }

// sync copies values into the inputs. Inputs that already match are left
// alone so the cursor does not jump.
func (f *form) sync(values domain.Fields) {
	for i := range f.fields {
		v := values.Get(f.fields[i].name)
		if f.fields[i].input.Value() != v {
			f.fields[i].input.SetValue(v)
		}
	}
}

// update routes msg to the focused input and returns the field whose value
// changed, if any.
func (f *form) update(msg tea.Msg) (*field, tea.Cmd) {
	if f.onSubmit() {
		return nil, nil
	}
	fl := &f.fields[f.focus]
	before := fl.input.Value()

	var cmd tea.Cmd
	fl.input, cmd = fl.input.Update(msg)
	if fl.input.Value() == before {
		return nil, cmd
	}
	return fl, cmd
}

// navigate handles focus keys. It reports whether the key was consumed and
// whether the submit control was activated.
func (f *form) navigate(key string) (handled, submitted bool, cmd tea.Cmd) {
	switch key {
	case "tab", "down":
		return true, false, f.focusAt(f.focus + 1)
	case "shift+tab", "up":
		return true, false, f.focusAt(f.focus - 1)
	case "enter":
		if f.onSubmit() {
			return true, true, nil
		}
		return true, false, f.focusAt(f.focus + 1)
	}
	return false, false, nil
}

func (f form) view(s Styles) string {
	var b strings.Builder
	for _, fl := range f.fields {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.Label.Render(fl.label), fl.input.View()))
		b.WriteString("\n")
	}
	button := s.Button
	if f.onSubmit() {
		button = s.ButtonFocused
	}
	b.WriteString(button.Render(f.submit))
	return b.String()
}
