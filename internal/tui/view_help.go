package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/wordmint/internal/idea"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	keysHelp := strings.Join([]string{
		"Tab / Shift+Tab   move between fields",
		"Space             toggle patterns and remember-key",
		"Left / Right      adjust idea count and creativity",
		"Enter             generate",
		"Esc               stop a run / go back / quit",
		"c, s              copy or save results",
	}, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleBox.Width(min(60, a.width-4)).Render(keysHelp)))
	b.WriteString("\n\n")

	var patterns []string
	for _, p := range idea.Patterns {
		patterns = append(patterns, p.Label()+": "+p.Description())
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleBox.Width(min(60, a.width-4)).Render("Patterns:\n"+strings.Join(patterns, "\n"))))
	b.WriteString("\n\n")

	note := styleSubtitle.Render("Form state lives in ~/.config/wordmint/config.yaml; logs next to it.")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, note))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Any key] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
