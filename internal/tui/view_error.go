package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := a.state.runErr
	if errMsg == "" {
		errMsg = "Unknown error"
	}

	errBox := styleBox.Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	// Suggestions based on error type
	var suggestions []string
	errLower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errLower, "api key"):
		suggestions = append(suggestions, "Paste a Gemini API key into the form's API key field")
		suggestions = append(suggestions, "Keys are free at aistudio.google.com/apikey")
	case strings.Contains(errLower, "401") || strings.Contains(errLower, "unauthorized") || strings.Contains(errLower, "permission"):
		suggestions = append(suggestions, "The key was rejected; check it for typos or regenerate it")
	case strings.Contains(errLower, "valid json"):
		suggestions = append(suggestions, "The model reply could not be parsed")
		suggestions = append(suggestions, "Run it again, or lower the creativity slider")
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") || strings.Contains(errLower, "timeout") || strings.Contains(errLower, "dial"):
		suggestions = append(suggestions, "Check your internet connection and try again")
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429") || strings.Contains(errLower, "quota"):
		suggestions = append(suggestions, "You've hit the API rate limit")
		suggestions = append(suggestions, "Wait a moment and try again")
	}

	if len(suggestions) > 0 {
		suggBox := styleBox.Width(min(60, a.width-4)).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Retry  [n/Esc] Back to form  [Ctrl+C] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
