package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut hint.
type KeyBinding struct {
	Key  string
	Desc string
}

// KbdHint renders a horizontal keyboard shortcut hint bar.
type KbdHint struct {
	Bindings  []KeyBinding
	KeyStyle  lipgloss.Style
	DescStyle lipgloss.Style
}

// NewKbdHint creates a KbdHint with the given styles.
func NewKbdHint(keyStyle, descStyle lipgloss.Style) KbdHint {
	return KbdHint{
		KeyStyle:  keyStyle,
		DescStyle: descStyle,
	}
}

// View renders the keyboard hints.
func (k KbdHint) View() string {
	var parts []string
	for _, b := range k.Bindings {
		part := k.KeyStyle.Render(b.Key) + " " + k.DescStyle.Render(b.Desc)
		parts = append(parts, part)
	}
	return "  " + strings.Join(parts, "    ")
}

// InputHints returns standard hints for single-field entry steps.
func InputHints() []KeyBinding {
	return []KeyBinding{
		{Key: "⏎", Desc: "continuar"},
		{Key: "esc", Desc: "salir"},
	}
}

// FormHints returns hints for multi-field forms.
func FormHints() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Desc: "siguiente campo"},
		{Key: "⏎", Desc: "registrar"},
		{Key: "ctrl+b", Desc: "volver"},
		{Key: "esc", Desc: "salir"},
	}
}

// ReviewHints returns hints for confirmation screens.
func ReviewHints() []KeyBinding {
	return []KeyBinding{
		{Key: "⏎", Desc: "confirmar"},
		{Key: "backspace", Desc: "volver"},
		{Key: "esc", Desc: "salir"},
	}
}

// ResultHints returns hints for the emission result screen.
func ResultHints() []KeyBinding {
	return []KeyBinding{
		{Key: "↑↓", Desc: "contrato"},
		{Key: "d", Desc: "descargar"},
		{Key: "m", Desc: "enviar"},
		{Key: "D/M", Desc: "todos"},
		{Key: "n", Desc: "nueva emisión"},
		{Key: "esc", Desc: "salir"},
	}
}
