package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestFromGenAICollectsFragmentsInOrder(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: `{"ideas":[`},
						{Text: `]}`},
					},
				},
			},
		},
	}

	got := fromGenAI(resp)
	if len(got.Fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(got.Fragments))
	}
	if got.Fragments[0] != `{"ideas":[` || got.Fragments[1] != `]}` {
		t.Errorf("fragments out of order: %q", got.Fragments)
	}
}

func TestFromGenAISkipsEmptyParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: ""}, nil, {Text: "x"}}}},
			{Content: nil},
		},
	}

	got := fromGenAI(resp)
	if len(got.Fragments) != 1 || got.Fragments[0] != "x" {
		t.Errorf("fragments = %q, want [x]", got.Fragments)
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient(t.Context(), ""); err == nil {
		t.Error("NewGeminiClient(\"\") = nil error, want key error")
	}
}
