package prompt

import (
	"github.com/sant0-9/wordmint/internal/idea"
	"google.golang.org/genai"
)

// ResponseSchema declares the JSON shape the service is asked to honor: an
// object with an ideas array of 3-50 items, each carrying the six Idea
// fields. The schema is a request, not a guarantee; parse defends the rest.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"ideas"},
		Properties: map[string]*genai.Schema{
			"ideas": {
				Type:     genai.TypeArray,
				MinItems: genai.Ptr[int64](idea.MinCount),
				MaxItems: genai.Ptr[int64](idea.MaxCount),
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Required: []string{
						"term", "pattern", "pitch", "tagline", "alt_spellings", "rationale",
					},
					Properties: map[string]*genai.Schema{
						"term":    {Type: genai.TypeString},
						"pattern": {Type: genai.TypeString},
						"pitch":   {Type: genai.TypeString},
						"tagline": {Type: genai.TypeString},
						"alt_spellings": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
						"rationale": {Type: genai.TypeString},
					},
				},
			},
		},
	}
}
