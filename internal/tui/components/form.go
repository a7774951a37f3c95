package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Form is an ordered group of text inputs with a single focused field.
type Form struct {
	Fields []TextInput
	focus  int
}

// NewForm creates a form focused on its first field.
func NewForm(fields ...TextInput) Form {
	f := Form{Fields: fields}
	for i := range f.Fields {
		f.Fields[i].Blur()
	}
	if len(f.Fields) > 0 {
		f.Fields[0].Focus()
	}
	return f
}

// Init starts the cursor blink.
func (f Form) Init() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[0].Init()
}

// Update routes focus keys and forwards everything else to the focused field.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.Fields) == 0 {
		return f, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f, f.FocusIndex(f.focus + 1)
		case "shift+tab", "up":
			return f, f.FocusIndex(f.focus - 1)
		}
	}

	var cmd tea.Cmd
	f.Fields[f.focus], cmd = f.Fields[f.focus].Update(msg)
	return f, cmd
}

// FocusIndex moves focus to field i, wrapping around at both ends.
func (f *Form) FocusIndex(i int) tea.Cmd {
	n := len(f.Fields)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	f.Fields[f.focus].Blur()
	f.focus = i
	return f.Fields[f.focus].Focus()
}

// Focus returns the index of the focused field.
func (f Form) Focus() int {
	return f.focus
}

// OnLastField reports whether the last field has focus.
func (f Form) OnLastField() bool {
	return f.focus == len(f.Fields)-1
}

// Values returns the raw values of every field in order.
func (f Form) Values() []string {
	vals := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		vals[i] = field.Value()
	}
	return vals
}

// ClearAll empties every field and focuses the first one.
func (f *Form) ClearAll() tea.Cmd {
	for i := range f.Fields {
		f.Fields[i].Clear()
	}
	return f.FocusIndex(0)
}

// Blur removes focus from every field so key presses are ignored.
func (f *Form) Blur() {
	for i := range f.Fields {
		f.Fields[i].Blur()
	}
}

// Refocus restores focus to the previously focused field.
func (f *Form) Refocus() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[f.focus].Focus()
}

// View renders every field, one below the other.
func (f Form) View(width int) string {
	var out string
	for _, field := range f.Fields {
		out += field.View(width) + "\n"
	}
	return out
}
