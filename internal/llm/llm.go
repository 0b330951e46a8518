package llm

import (
	"context"

	"google.golang.org/genai"
)

// Generator is the one operation wordmint needs from a text-generation
// backend: send a prompt pair, get a reply. The interface exists so tests
// can swap in a canned backend, not to host multiple providers.
type Generator interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// Request carries everything one generation call needs.
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int32

	// Schema constrains the reply shape when the backend supports
	// structured output.
	Schema *genai.Schema
}

// Response holds the reply's convenience text plus the raw ordered
// fragments, so the normalizer can fall back when the text is empty.
type Response struct {
	Text      string
	Fragments []string
}
