// Package parse turns a raw model reply into validated ideas. The request
// asks for schema-constrained JSON, but compliance is not guaranteed, so
// this package is the only defense against malformed replies.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sant0-9/wordmint/internal/idea"
	"github.com/sant0-9/wordmint/internal/llm"
)

// ErrMalformed is returned when no strategy recovers a usable ideas array.
var ErrMalformed = errors.New("model did not return valid JSON ideas")

type envelope struct {
	Ideas []idea.Idea `json:"ideas"`
}

// strategy attempts to recover the reply envelope from raw text. Strategies
// are tried in order; the first to yield a non-empty ideas array wins.
type strategy func(string) (*envelope, error)

var strategies = []strategy{parseDirect, parseBraceWindow}

// Normalize runs extract, fence stripping, and the parse strategies, then
// validates the result.
func Normalize(resp *llm.Response) ([]idea.Idea, error) {
	text := StripFences(ExtractText(resp))
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformed)
	}

	var lastErr error
	for _, try := range strategies {
		env, err := try(text)
		if err != nil {
			lastErr = err
			continue
		}
		if len(env.Ideas) == 0 {
			lastErr = errors.New("reply lacks an ideas array")
			continue
		}
		return env.Ideas, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrMalformed, lastErr)
}

// ExtractText prefers the convenience text field, falling back to joining
// the reply fragments in order.
func ExtractText(resp *llm.Response) string {
	if resp == nil {
		return ""
	}
	if strings.TrimSpace(resp.Text) != "" {
		return resp.Text
	}
	return strings.Join(resp.Fragments, "")
}

// StripFences drops markdown code-fence lines wrapping the payload.
func StripFences(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var kept []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func parseDirect(s string) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// parseBraceWindow rescues replies with prose around a JSON block by taking
// the substring from the first '{' to the last '}'. Greedy to the last
// brace on purpose: the occasional trailing commentary it swallows has
// proven rarer than truncated objects a shorter window would produce.
func parseBraceWindow(s string) (*envelope, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object found in reply")
	}
	return parseDirect(s[start : end+1])
}
