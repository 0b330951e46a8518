package idea

// Pattern names a word-formation strategy the model can be steered toward.
type Pattern string

const (
	PatternPortmanteau Pattern = "portmanteau"
	PatternSuffix      Pattern = "suffix"
	PatternPrefix      Pattern = "prefix"
	PatternRespelling  Pattern = "respelling"
	PatternCompound    Pattern = "compound"
	PatternMetaphor    Pattern = "metaphor"
)

// Patterns lists every pattern in display order.
var Patterns = []Pattern{
	PatternPortmanteau,
	PatternSuffix,
	PatternPrefix,
	PatternRespelling,
	PatternCompound,
	PatternMetaphor,
}

var patternLabels = map[Pattern]string{
	PatternPortmanteau: "Portmanteau",
	PatternSuffix:      "Suffix play",
	PatternPrefix:      "Prefix play",
	PatternRespelling:  "Respelling",
	PatternCompound:    "Compound",
	PatternMetaphor:    "Metaphor",
}

var patternDescriptions = map[Pattern]string{
	PatternPortmanteau: "blend two words into one (brunch, podcast)",
	PatternSuffix:      "graft an evocative suffix (-ify, -ly, -scape)",
	PatternPrefix:      "lead with a charged prefix (un-, hyper-, re-)",
	PatternRespelling:  "familiar word, unexpected spelling (Lyft, Tumblr)",
	PatternCompound:    "weld two whole words together (Facebook, Snapchat)",
	PatternMetaphor:    "borrow a vivid image from another domain (Amazon, Oracle)",
}

// Label returns the human-readable name shown in the form and in prompts.
func (p Pattern) Label() string {
	if l, ok := patternLabels[p]; ok {
		return l
	}
	return string(p)
}

// Description returns the one-line hint shown next to the toggle.
func (p Pattern) Description() string {
	return patternDescriptions[p]
}
