// Package export handles the copy-to-clipboard and save-to-file actions.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sant0-9/wordmint/internal/idea"
)

// CopyText renders ideas as numbered "term — pitch" lines.
func CopyText(ideas []idea.Idea) string {
	var b strings.Builder
	for i, id := range ideas {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, id.Term, id.Pitch)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Copy puts the numbered idea lines on the OS clipboard.
func Copy(ideas []idea.Idea) error {
	return clipboard.WriteAll(CopyText(ideas))
}

// Save writes {topic, angle, ideas} as indented JSON into dir and returns
// the path.
func Save(dir, topic, angle string, ideas []idea.Idea) (string, error) {
	doc := idea.Export{Topic: topic, Angle: angle, Ideas: ideas}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("wordmint-%s-%s.json", slug(topic), time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// slug makes a filesystem-safe fragment from the topic.
func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "ideas"
	}
	if len(out) > 40 {
		out = strings.Trim(out[:40], "-")
	}
	return out
}
