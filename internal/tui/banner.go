package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBanner returns the branded header for a wizard. subtitle names the
// workflow being run.
func RenderBanner(styles *StyleSet, version, subtitle string, width int) string {
	if version == "" {
		version = "dev"
	}

	title := styles.Banner.Render("🎓  Sistema de Prácticas Profesionales") + "  " + styles.VersionPill.Render("v"+version)
	sub := styles.Subtitle.Render(subtitle)

	dividerWidth := width - 4
	if dividerWidth < 20 {
		dividerWidth = 20
	}
	if dividerWidth > 60 {
		dividerWidth = 60
	}
	divider := lipgloss.NewStyle().
		Foreground(styles.Theme.Border).
		Render(strings.Repeat("─", dividerWidth))

	return fmt.Sprintf("  %s\n  %s\n  %s\n\n", title, sub, divider)
}
