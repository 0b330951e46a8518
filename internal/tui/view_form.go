package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/wordmint/internal/idea"
)

const logo = `
 █   █ ███ ███ ███  █▄ ▄█ █ █▄ █ ███
 █ █ █ █ █ █▄▀ █ █  █ ▀ █ █ █ ▀█  █
 ▀▀ ▀▀ ▀▀▀ ▀ ▀ ▀▀▀  ▀   ▀ ▀ ▀  ▀  ▀
`

func (a *App) renderForm() string {
	var b strings.Builder
	s := a.state

	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("coin new words, names, and brands")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	var rows []string
	rows = append(rows, a.formRow(fieldTopic, "Topic", s.topicInput.View()))
	rows = append(rows, a.formRow(fieldAngle, "Angle", s.angleInput.View()))
	rows = append(rows, a.formRow(fieldCount, "Ideas", countWidget(s.cfg.Count, s.focus == fieldCount)))
	rows = append(rows, a.formRow(fieldTemp, "Creativity", tempWidget(s.cfg.Temperature, s.focus == fieldTemp)))
	rows = append(rows, "")
	rows = append(rows, styleSubtitle.Render("  Patterns — leave all off for \"any that fit\""))
	for i := range idea.Patterns {
		rows = append(rows, a.patternRow(i))
	}
	rows = append(rows, "")
	rows = append(rows, a.formRow(fieldKey(), "API key", s.keyInput.View()))
	rows = append(rows, a.formRow(fieldRemember(), "Remember",
		checkbox(s.cfg.RememberKey)+styleSubtitle.Render("  keep the key in config.yaml")))

	box := styleBox.Width(min(76, a.width-4)).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(s.notice)))
		b.WriteString("\n")
	}

	status := styleStatusBar.Render("[Tab] Next  [Space] Toggle  [Enter] Generate  [?] Help  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) formRow(field int, label, widget string) string {
	marker := "  "
	labelStyle := styleSubtitle
	if a.state.focus == field {
		marker = "> "
		labelStyle = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
	}
	return marker + labelStyle.Render(fmt.Sprintf("%-11s", label)) + widget
}

func (a *App) patternRow(i int) string {
	p := idea.Patterns[i]
	field := fieldPatternFirst + i
	focused := a.state.focus == field

	check := "[ ]"
	if a.state.cfg.Patterns[string(p)] {
		check = "[x]"
	}

	marker := "  "
	style := styleSubtitle
	if focused {
		marker = "> "
		style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
	}

	return marker + style.Render(fmt.Sprintf("%s %-12s", check, p.Label())) +
		styleSubtitle.Render(truncate(p.Description(), 46))
}

func countWidget(count int, focused bool) string {
	s := fmt.Sprintf("<  %2d  >", count)
	if focused {
		return lipgloss.NewStyle().Foreground(colorWhite).Render(s) +
			styleSubtitle.Render(fmt.Sprintf("  (%d-%d)", idea.MinCount, idea.MaxCount))
	}
	return styleSubtitle.Render(s)
}

func tempWidget(t float64, focused bool) string {
	filled := int(t*20 + 0.5)
	if filled > 20 {
		filled = 20
	}
	bar := lipgloss.NewStyle().Foreground(colorSecondary).Render(strings.Repeat("=", filled)) +
		styleSubtitle.Render(strings.Repeat("-", 20-filled))
	value := fmt.Sprintf(" %.2f", t)
	if focused {
		return bar + lipgloss.NewStyle().Foreground(colorWhite).Render(value)
	}
	return bar + styleSubtitle.Render(value)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
