package steps

import (
	"time"

	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
	"github.com/initializ/practicas/logging"
)

// Env carries what every step needs besides its own service.
type Env struct {
	Styles *tui.StyleSet
	// ErrorDisplay is how long an error message stays on screen.
	ErrorDisplay time.Duration
	// Schedule delivers delayed messages; nil means tea.Tick.
	Schedule tui.Scheduler
	Log      logging.Logger
}

func (e Env) logger() logging.Logger {
	if e.Log == nil {
		return logging.Nop{}
	}
	return e.Log
}

func (e Env) newFlash() tui.Flash {
	return tui.NewFlash(e.ErrorDisplay, e.Schedule)
}

func (e Env) newInput(label, placeholder string, charLimit int, filter components.FilterFunc) components.TextInput {
	return components.NewTextInput(
		label,
		placeholder,
		charLimit,
		filter,
		e.Styles.Theme.Accent,
		e.Styles.AccentTxt,
		e.Styles.InactiveBorder,
		e.Styles.ActiveBorder,
		e.Styles.DimTxt,
	)
}

func (e Env) hints(bindings []components.KeyBinding) string {
	k := components.NewKbdHint(e.Styles.KbdKey, e.Styles.KbdDesc)
	k.Bindings = bindings
	return k.View() + "\n"
}

func (e Env) errorAlert(f tui.Flash, width int) string {
	return components.Alert(f.Text(), "✗", e.Styles.ErrorBox, width)
}

func (e Env) summaryBox(title string, rows []components.SummaryRow) components.SummaryBox {
	return components.NewSummaryBox(
		title,
		rows,
		e.Styles.Title,
		e.Styles.SummaryKey,
		e.Styles.SummaryValue,
		e.Styles.BorderedBox,
	)
}

func (e Env) notice(title string, lines []string) components.Notice {
	return components.NewNotice(title, lines, e.Styles.AccentTxt.Bold(true), e.Styles.InfoBox)
}

func (e Env) cardList(items []components.CardItem, selectable bool) components.CardList {
	t := e.Styles.Theme
	return components.NewCardList(items, selectable, t.Accent, t.Primary, t.Secondary, t.Dim, t.Border, t.ActiveBorder)
}

// header renders the step heading and its one-line description.
func (e Env) header(title, desc string) string {
	out := "  " + e.Styles.Title.Render(title) + "\n"
	if desc != "" {
		out += "  " + e.Styles.Subtitle.Render(desc) + "\n"
	}
	return out + "\n"
}
