package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sant0-9/wordmint/internal/idea"
)

//go:embed system.md
var systemPrompt string

// System returns the fixed coining instruction sent with every request.
func System() string {
	return strings.TrimSpace(systemPrompt)
}

// Build maps the form fields to the user instruction. Pure; no side effects.
func Build(topic, angle string, count int, patterns []idea.Pattern) string {
	var b strings.Builder

	b.WriteString("Coin new words/names for the domain below.\n\n")
	fmt.Fprintf(&b, "Domain/topic: %s\n", topic)
	if strings.TrimSpace(angle) != "" {
		fmt.Fprintf(&b, "Angle/constraints: %s\n", angle)
	}
	fmt.Fprintf(&b, "Number of ideas: %d\n", count)

	if len(patterns) == 0 {
		b.WriteString("Patterns to explore: any that fit.\n")
	} else {
		labels := make([]string, len(patterns))
		for i, p := range patterns {
			labels[i] = p.Label()
		}
		fmt.Fprintf(&b, "Patterns to explore: %s.\n", strings.Join(labels, ", "))
	}

	b.WriteString("\nFor each idea give the term, the pattern used, a one-line pitch, ")
	b.WriteString("an optional tagline, alternate spellings, and a short rationale.")

	return b.String()
}
