package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/wordmint/internal/config"
	"github.com/sant0-9/wordmint/internal/generate"
	"github.com/sant0-9/wordmint/internal/idea"
)

// Focus ring over the form. Pattern toggles occupy one slot each starting
// at fieldPatternFirst; key and remember-key come after.
const (
	fieldTopic = iota
	fieldAngle
	fieldCount
	fieldTemp
	fieldPatternFirst
)

func fieldKey() int      { return fieldPatternFirst + len(idea.Patterns) }
func fieldRemember() int { return fieldKey() + 1 }
func fieldTotal() int    { return fieldRemember() + 1 }

type state struct {
	cfg *config.Config
	svc *generate.Service

	// Form inputs
	topicInput textinput.Model
	angleInput textinput.Model
	keyInput   textinput.Model
	focus      int

	// Run lifecycle
	spin      spinner.Model
	loading   bool
	runSeq    int
	startedAt time.Time

	// Result (mutually exclusive with runErr)
	result  *generate.Result
	runErr  string
	results viewport.Model

	// Transient feedback after copy/save
	notice string
}

func newState(cfg *config.Config, svc *generate.Service) *state {
	topic := textinput.New()
	topic.Placeholder = "e.g. music labels, oat-milk coffee, dev tooling"
	topic.CharLimit = 200
	topic.Width = 46
	topic.SetValue(cfg.Topic)
	topic.Focus()

	angle := textinput.New()
	angle.Placeholder = "optional: playful, premium, one-syllable..."
	angle.CharLimit = 200
	angle.Width = 46
	angle.SetValue(cfg.Angle)

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your Gemini API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 46
	apiKey.SetValue(cfg.APIKey)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorSecondary)

	return &state{
		cfg:        cfg,
		svc:        svc,
		topicInput: topic,
		angleInput: angle,
		keyInput:   apiKey,
		spin:       sp,
		results:    viewport.New(0, 0),
	}
}

// focusedInput returns the text input under focus, or nil for the
// count/temperature/toggle rows.
func (s *state) focusedInput() *textinput.Model {
	switch s.focus {
	case fieldTopic:
		return &s.topicInput
	case fieldAngle:
		return &s.angleInput
	}
	if s.focus == fieldKey() {
		return &s.keyInput
	}
	return nil
}

func (s *state) setFocus(f int) {
	s.focus = ((f % fieldTotal()) + fieldTotal()) % fieldTotal()
	s.topicInput.Blur()
	s.angleInput.Blur()
	s.keyInput.Blur()
	if in := s.focusedInput(); in != nil {
		in.Focus()
	}
}

// syncForm copies the text inputs back into the config before a save or a
// run. Count, temperature and toggles mutate the config directly.
func (s *state) syncForm() {
	s.cfg.Topic = s.topicInput.Value()
	s.cfg.Angle = s.angleInput.Value()
	s.cfg.APIKey = s.keyInput.Value()
}
