package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sant0-9/wordmint/internal/idea"
	"github.com/sant0-9/wordmint/internal/llm"
)

const validReply = `{"ideas":[{"term":"Vinylry","pattern":"suffix","pitch":"A label that presses small runs.","tagline":"Press play.","alt_spellings":["Vinylrie"],"rationale":"Vinyl plus the -ry of artisan trades."}]}`

var validIdeas = []idea.Idea{
	{
		Term:         "Vinylry",
		Pattern:      "suffix",
		Pitch:        "A label that presses small runs.",
		Tagline:      "Press play.",
		AltSpellings: []string{"Vinylrie"},
		Rationale:    "Vinyl plus the -ry of artisan trades.",
	},
}

func TestNormalizeFencedRoundTrip(t *testing.T) {
	resp := &llm.Response{Text: "```json\n" + validReply + "\n```"}

	got, err := Normalize(resp)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !reflect.DeepEqual(got, validIdeas) {
		t.Errorf("Normalize() = %+v, want %+v", got, validIdeas)
	}
}

func TestNormalizeProseAroundJSON(t *testing.T) {
	resp := &llm.Response{Text: "Sure! Here are your ideas:\n\n" + validReply + "\n\nEnjoy!"}

	got, err := Normalize(resp)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(got) != 1 || got[0].Term != "Vinylry" {
		t.Errorf("Normalize() = %+v, want the Vinylry idea", got)
	}
}

func TestNormalizeFragmentFallback(t *testing.T) {
	// Empty convenience text: the fragments are concatenated in order.
	resp := &llm.Response{
		Fragments: []string{`{"ideas":[{"term":"Vinylry",`, `"pattern":"suffix","pitch":"p","alt_spellings":[],"rationale":"r"}]}`},
	}

	got, err := Normalize(resp)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(got) != 1 || got[0].Term != "Vinylry" {
		t.Errorf("Normalize() = %+v, want one Vinylry idea", got)
	}
}

func TestNormalizeFailures(t *testing.T) {
	tests := []struct {
		name string
		resp *llm.Response
	}{
		{"nil response", nil},
		{"empty reply", &llm.Response{}},
		{"whitespace reply", &llm.Response{Text: "  \n "}},
		{"no json at all", &llm.Response{Text: "I could not produce ideas."}},
		{"json array not object", &llm.Response{Text: `[1, 2, 3]`}},
		{"object without ideas", &llm.Response{Text: `{"items": ["a"]}`}},
		{"empty ideas array", &llm.Response{Text: `{"ideas": []}`}},
		{"ideas not an array", &llm.Response{Text: `{"ideas": {"term": "x"}}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.resp)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Normalize() error = %v, want ErrMalformed", err)
			}
			if got != nil {
				t.Errorf("Normalize() = %+v, want nil", got)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *llm.Response
		want string
	}{
		{"prefers text", &llm.Response{Text: "hello", Fragments: []string{"a", "b"}}, "hello"},
		{"falls back to fragments", &llm.Response{Fragments: []string{"a", "b"}}, "ab"},
		{"blank text falls back", &llm.Response{Text: " \n", Fragments: []string{"x"}}, "x"},
		{"nothing", &llm.Response{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(tt.resp); got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences untouched", `{"a":1}`, `{"a":1}`},
		{"plain fences", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"language fences", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"indented fence lines", "  ```json\n{\"a\":1}\n  ```", `{"a":1}`},
		{"interior lines kept", "```\nline1\nline2\n```", "line1\nline2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
