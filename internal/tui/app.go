package tui

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/wordmint/internal/config"
	"github.com/sant0-9/wordmint/internal/export"
	"github.com/sant0-9/wordmint/internal/generate"
	"github.com/sant0-9/wordmint/internal/idea"
	"github.com/sant0-9/wordmint/internal/llm"
	"go.uber.org/zap"
)

type view int

const (
	viewForm view = iota
	viewLoading
	viewResults
	viewError
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	log      *zap.Logger
	quitting bool
}

// NewApp builds the top-level model. gen may be nil; the dispatcher then
// builds a Gemini client per run from the key in the form.
func NewApp(cfg *config.Config, gen llm.Generator, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		view:  viewForm,
		state: newState(cfg, generate.NewService(gen, log)),
		log:   log,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

// Run lifecycle messages. Each carries the run sequence so a reply from a
// superseded run is dropped.
type ideasMsg struct {
	seq    int
	result *generate.Result
}

type runErrMsg struct {
	seq int
	err error
}

type runCancelledMsg struct {
	seq int
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.refreshResults()
		return a, nil

	case spinner.TickMsg:
		if !a.state.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spin, cmd = a.state.spin.Update(msg)
		return a, cmd

	case ideasMsg:
		if msg.seq != a.state.runSeq {
			return a, nil
		}
		a.state.loading = false
		a.state.runErr = ""
		a.state.notice = ""
		a.state.result = msg.result
		a.refreshResults()
		a.state.results.GotoTop()
		a.view = viewResults
		return a, nil

	case runErrMsg:
		if msg.seq != a.state.runSeq {
			return a, nil
		}
		a.state.loading = false
		a.state.result = nil
		a.state.runErr = msg.err.Error()
		a.view = viewError
		return a, nil

	case runCancelledMsg:
		if msg.seq != a.state.runSeq {
			return a, nil
		}
		a.state.loading = false
		if a.view == viewLoading {
			a.view = viewForm
		}
		return a, nil
	}

	// Cursor blink and other component messages go to the focused input.
	if a.view == viewForm {
		if in := a.state.focusedInput(); in != nil {
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewLoading:
		return a.handleLoadingKey(msg)
	case viewResults:
		return a.handleResultsKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewHelp:
		a.view = viewForm
		return nil
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		return a.startRun()

	case key.Matches(msg, keys.Next):
		s.setFocus(s.focus + 1)
		return textinput.Blink

	case key.Matches(msg, keys.Prev):
		s.setFocus(s.focus - 1)
		return textinput.Blink
	}

	// Text fields swallow everything else, including space and '?'.
	if in := s.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		a.persist()
		return cmd
	}

	if msg.String() == "?" {
		a.view = viewHelp
		return nil
	}

	switch {
	case s.focus == fieldCount:
		switch msg.String() {
		case "left", "h", "-":
			if s.cfg.Count > idea.MinCount {
				s.cfg.Count--
				a.persist()
			}
		case "right", "l", "+", "=":
			if s.cfg.Count < idea.MaxCount {
				s.cfg.Count++
				a.persist()
			}
		}

	case s.focus == fieldTemp:
		switch msg.String() {
		case "left", "h", "-":
			s.cfg.Temperature = clampTemp(s.cfg.Temperature - 0.05)
			a.persist()
		case "right", "l", "+", "=":
			s.cfg.Temperature = clampTemp(s.cfg.Temperature + 0.05)
			a.persist()
		}

	case s.focus >= fieldPatternFirst && s.focus < fieldKey():
		if key.Matches(msg, keys.Toggle) {
			p := string(idea.Patterns[s.focus-fieldPatternFirst])
			s.cfg.Patterns[p] = !s.cfg.Patterns[p]
			a.persist()
		}

	case s.focus == fieldRemember():
		if key.Matches(msg, keys.Toggle) {
			s.cfg.RememberKey = !s.cfg.RememberKey
			a.persist()
		}
	}

	return nil
}

func (a *App) handleLoadingKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		// Stop, not quit: cancellation is silent and returns to the form.
		a.state.svc.Stop()
		a.state.loading = false
		a.view = viewForm
	}
	return nil
}

func (a *App) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch {
	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.New):
		s.notice = ""
		a.view = viewForm
		return textinput.Blink

	case key.Matches(msg, keys.Enter):
		return a.startRun()

	case key.Matches(msg, keys.Copy):
		if s.result == nil {
			return nil
		}
		if err := export.Copy(s.result.Ideas); err != nil {
			s.notice = "Copy failed: " + err.Error()
		} else {
			s.notice = "Copied to clipboard"
		}
		return nil

	case key.Matches(msg, keys.Save):
		if s.result == nil {
			return nil
		}
		path, err := export.Save(downloadDir(), s.result.Topic, s.result.Angle, s.result.Ideas)
		if err != nil {
			s.notice = "Save failed: " + err.Error()
		} else {
			s.notice = "Saved " + path
		}
		return nil
	}

	var cmd tea.Cmd
	s.results, cmd = s.results.Update(msg)
	return cmd
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		return a.startRun()
	case "n", "esc":
		a.state.runErr = ""
		a.view = viewForm
		return textinput.Blink
	}
	return nil
}

// startRun kicks off one generation run. Any in-flight run is cancelled by
// Service.Start replacing the cancel handle; its late reply is dropped by
// the sequence check.
func (a *App) startRun() tea.Cmd {
	s := a.state
	s.syncForm()

	if strings.TrimSpace(s.cfg.Topic) == "" {
		s.notice = "Enter a topic first"
		a.view = viewForm
		s.setFocus(fieldTopic)
		return textinput.Blink
	}

	s.runSeq++
	seq := s.runSeq
	s.loading = true
	s.runErr = ""
	s.result = nil
	s.notice = ""
	s.startedAt = time.Now()
	a.view = viewLoading

	run := s.svc.Start(s.cfg)
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		res, err := run()
		switch {
		case err == nil:
			return ideasMsg{seq: seq, result: res}
		case errors.Is(err, generate.ErrCancelled):
			return runCancelledMsg{seq: seq}
		default:
			return runErrMsg{seq: seq, err: err}
		}
	})
}

// persist saves the form after every change, mirroring the source system's
// storage-on-change behavior. Failures are logged, never surfaced.
func (a *App) persist() {
	a.state.syncForm()
	if err := a.state.cfg.Save(); err != nil {
		a.log.Warn("config save failed", zap.Error(err))
	}
}

func (a *App) refreshResults() {
	if a.state.result == nil {
		return
	}
	w := min(74, a.width-4)
	if w < 20 {
		w = 20
	}
	h := a.height - 8
	if h < 5 {
		h = 5
	}
	a.state.results.Width = w
	a.state.results.Height = h
	a.state.results.SetContent(a.renderCards(w))
}

func clampTemp(t float64) float64 {
	t = math.Round(t*100) / 100
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewForm:
		return a.renderForm()
	case viewLoading:
		return a.renderLoading()
	case viewResults:
		return a.renderResults()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
