package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Notice renders a titled, bordered list of short lines, such as the test
// sentinels accepted by a mock step.
type Notice struct {
	Title string
	Lines []string

	TitleStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

// NewNotice creates a notice box.
func NewNotice(title string, lines []string, titleStyle, borderStyle lipgloss.Style) Notice {
	return Notice{
		Title:       title,
		Lines:       lines,
		TitleStyle:  titleStyle,
		BorderStyle: borderStyle,
	}
}

// View renders the notice.
func (n Notice) View(width int) string {
	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}

	var b strings.Builder
	if n.Title != "" {
		b.WriteString(n.TitleStyle.Render(n.Title))
		b.WriteString("\n")
	}
	for _, line := range n.Lines {
		b.WriteString("• " + line + "\n")
	}
	return "  " + n.BorderStyle.Width(boxWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// Alert renders a one-line message in a bordered box, or "" when msg is empty.
func Alert(msg string, icon string, style lipgloss.Style, width int) string {
	if msg == "" {
		return ""
	}
	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}
	return "  " + style.Width(boxWidth).Render(icon+" "+msg) + "\n"
}
