package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/wordmint/internal/idea"
)

func (a *App) renderResults() string {
	var b strings.Builder
	s := a.state

	if s.result == nil {
		return a.renderForm()
	}

	header := fmt.Sprintf("%d ideas for \"%s\"", len(s.result.Ideas), truncate(s.result.Topic, 40))
	if s.result.Angle != "" {
		header += " · " + truncate(s.result.Angle, 30)
	}
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(header)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s.results.View()))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(truncate(s.notice, max(10, a.width-4)))))
		b.WriteString("\n")
	}

	status := styleStatusBar.Render("[c] Copy  [s] Save  [n] New  [Enter] Rerun  [j/k] Scroll  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}

// renderCards lays out one bordered card per idea for the viewport.
func (a *App) renderCards(width int) string {
	var cards []string
	for i, id := range a.state.result.Ideas {
		cards = append(cards, renderCard(i+1, id, width-2))
	}
	return strings.Join(cards, "\n")
}

func renderCard(n int, id idea.Idea, width int) string {
	var b strings.Builder

	b.WriteString(styleTerm.Render(fmt.Sprintf("%d. %s", n, id.Term)))
	if id.Pattern != "" {
		b.WriteString("  " + stylePatternTag.Render(id.Pattern))
	}
	b.WriteString("\n")

	if id.Pitch != "" {
		b.WriteString(id.Pitch + "\n")
	}
	if id.Tagline != "" {
		b.WriteString(styleSubtitle.Italic(true).Render("\""+id.Tagline+"\"") + "\n")
	}
	if len(id.AltSpellings) > 0 {
		b.WriteString(styleSubtitle.Render("Also: "+strings.Join(id.AltSpellings, ", ")) + "\n")
	}
	if id.Rationale != "" {
		b.WriteString(styleSubtitle.Render(id.Rationale))
	}

	return styleBox.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// downloadDir is where saved idea files land: ~/Downloads when present,
// else the home directory, else the working directory.
func downloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	downloads := filepath.Join(home, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return home
}
