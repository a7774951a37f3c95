package steps

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// call tracks the single service call a step may have in flight. Each
// call is tagged with an attempt number; results for any other attempt are
// dropped.
type call struct {
	attempt int
	cancel  context.CancelFunc
	spinner spinner.Model
}

func newCall(color lipgloss.Color) call {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(color)
	return call{spinner: sp}
}

// start begins a new attempt and returns its context and number.
func (c *call) start() (context.Context, int) {
	c.abort()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	return ctx, c.attempt
}

func (c *call) pending() bool {
	return c.cancel != nil
}

// finish reports whether attempt is the one in flight and, if so, ends it.
func (c *call) finish(attempt int) bool {
	if c.cancel == nil || attempt != c.attempt {
		return false
	}
	c.cancel()
	c.cancel = nil
	return true
}

// abort cancels the call in flight and invalidates its result.
func (c *call) abort() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.attempt++
}

func (c *call) tick() tea.Cmd {
	return c.spinner.Tick
}

// update advances the spinner. It reports whether msg was a spinner tick.
func (c *call) update(msg tea.Msg) (tea.Cmd, bool) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil, false
	}
	if !c.pending() {
		return nil, true
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(tick)
	return cmd, true
}

func (c call) view(text string, style lipgloss.Style) string {
	return "  " + c.spinner.View() + " " + style.Render(text) + "\n"
}
