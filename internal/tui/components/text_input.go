package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FilterFunc rewrites the raw field value after every edit.
type FilterFunc func(string) string

// TextInput is a styled text entry component wrapping bubbles/textinput.
// Submission is left to the owning step; the input only edits, filters and
// renders its value.
type TextInput struct {
	Label    string
	Required bool
	input    textinput.Model
	filter   FilterFunc

	// Styles
	LabelStyle  lipgloss.Style
	BorderStyle lipgloss.Style
	FocusStyle  lipgloss.Style
	HintStyle   lipgloss.Style
	AccentColor lipgloss.Color
}

// NewTextInput creates a new styled, focused text input.
func NewTextInput(label, placeholder string, charLimit int, filter FilterFunc, accentColor lipgloss.Color, labelStyle, borderStyle, focusStyle, hintStyle lipgloss.Style) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = charLimit
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(accentColor)

	return TextInput{
		Label:       label,
		Required:    true,
		input:       ti,
		filter:      filter,
		LabelStyle:  labelStyle,
		BorderStyle: borderStyle,
		FocusStyle:  focusStyle,
		HintStyle:   hintStyle,
		AccentColor: accentColor,
	}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards the message to the underlying input and applies the
// filter to the resulting value.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.filter != nil {
		raw := t.input.Value()
		if filtered := t.filter(raw); filtered != raw {
			t.input.SetValue(filtered)
			t.input.CursorEnd()
		}
	}
	return t, cmd
}

// View renders the labelled input box.
func (t TextInput) View(width int) string {
	var out string

	label := t.Label
	if t.Required {
		label += " *"
	}
	out += "  " + t.LabelStyle.Render(label) + "\n"

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	t.input.Width = inputWidth

	border := t.BorderStyle
	if t.input.Focused() {
		border = t.FocusStyle
	}
	out += "  " + border.Width(inputWidth).Render(t.input.View()) + "\n"
	return out
}

// Value returns the current raw value.
func (t TextInput) Value() string {
	return t.input.Value()
}

// TrimmedValue returns the value without surrounding whitespace.
func (t TextInput) TrimmedValue() string {
	return strings.TrimSpace(t.input.Value())
}

// SetValue replaces the value, running it through the filter.
func (t *TextInput) SetValue(v string) {
	if t.filter != nil {
		v = t.filter(v)
	}
	t.input.SetValue(v)
	t.input.CursorEnd()
}

// Clear empties the field.
func (t *TextInput) Clear() {
	t.input.Reset()
}

// Focus gives the field keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes keyboard focus; a blurred field ignores key presses.
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.input.Focused()
}
