package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CardItem is one bordered entry of a CardList.
type CardItem struct {
	Label       string
	Description string
	Badge       string
	Icon        string
}

// CardList renders items as bordered cards. When Selectable, a cursor can
// be moved over the cards.
type CardList struct {
	Items      []CardItem
	Selectable bool
	cursor     int

	// Styles
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	AccentColor    lipgloss.Color
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	DimColor       lipgloss.Color
}

// NewCardList creates a new card list.
func NewCardList(items []CardItem, selectable bool, accentColor, primaryColor, secondaryColor, dimColor, borderColor, activeBorderColor lipgloss.Color) CardList {
	return CardList{
		Items:          items,
		Selectable:     selectable,
		AccentColor:    accentColor,
		PrimaryColor:   primaryColor,
		SecondaryColor: secondaryColor,
		DimColor:       dimColor,
		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(activeBorderColor).
			Padding(0, 1),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),
	}
}

// Update moves the cursor on up/down keys.
func (c CardList) Update(msg tea.Msg) (CardList, tea.Cmd) {
	if !c.Selectable {
		return c, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if c.cursor > 0 {
				c.cursor--
			}
		case "down", "j":
			if c.cursor < len(c.Items)-1 {
				c.cursor++
			}
		}
	}
	return c, nil
}

// Cursor returns the index under the cursor.
func (c CardList) Cursor() int {
	return c.cursor
}

// View renders the cards.
func (c CardList) View(width int) string {
	var out string

	itemWidth := width - 6
	if itemWidth < 30 {
		itemWidth = 30
	}

	for i, item := range c.Items {
		active := c.Selectable && i == c.cursor

		labelStyle := lipgloss.NewStyle().Foreground(c.PrimaryColor).Bold(true)
		marker := lipgloss.NewStyle().Foreground(c.DimColor).Render("○")
		if active {
			marker = lipgloss.NewStyle().Foreground(c.AccentColor).Render("◉")
		}

		icon := ""
		if item.Icon != "" {
			icon = item.Icon + "  "
		}
		firstLine := fmt.Sprintf("%s%s", icon, labelStyle.Render(item.Label))

		right := ""
		if item.Badge != "" {
			right = lipgloss.NewStyle().Foreground(c.SecondaryColor).Render("[" + item.Badge + "]")
		}
		if c.Selectable {
			right = strings.TrimSpace(right + " " + marker)
		}
		padding := itemWidth - lipgloss.Width(firstLine) - lipgloss.Width(right) - 4
		if padding < 1 {
			padding = 1
		}
		content := firstLine + strings.Repeat(" ", padding) + right
		if item.Description != "" {
			content += "\n" + lipgloss.NewStyle().Foreground(c.SecondaryColor).Render(item.Description)
		}

		border := c.InactiveBorder.Width(itemWidth)
		if active {
			border = c.ActiveBorder.Width(itemWidth)
		}
		out += "  " + border.Render(content) + "\n"
	}

	return out
}
