package idea

// Count limits accepted by the generation schema and the form.
const (
	MinCount = 3
	MaxCount = 50
)

// Idea is one coined name candidate returned by the model.
type Idea struct {
	Term         string   `json:"term"`
	Pattern      string   `json:"pattern"`
	Pitch        string   `json:"pitch"`
	Tagline      string   `json:"tagline,omitempty"`
	AltSpellings []string `json:"alt_spellings"`
	Rationale    string   `json:"rationale"`
}

// Export is the document written by the save action.
type Export struct {
	Topic string `json:"topic"`
	Angle string `json:"angle,omitempty"`
	Ideas []Idea `json:"ideas"`
}
