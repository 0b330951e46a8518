package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderLoading() string {
	var b strings.Builder
	s := a.state

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Generating")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	topic := styleSubtitle.Render("> " + truncate(s.cfg.Topic, 55))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, topic))
	b.WriteString("\n\n")

	elapsed := time.Since(s.startedAt).Round(time.Second)
	line := fmt.Sprintf("%s Waiting for Gemini...  %s", s.spin.View(), elapsed)
	box := styleBox.Width(min(50, a.width-4)).Render(line)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Stop")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
