// Package generate owns the run lifecycle: credential check, one
// cancellable in-flight request, and the prompt -> request -> normalize
// pipeline behind it.
package generate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sant0-9/wordmint/internal/config"
	"github.com/sant0-9/wordmint/internal/idea"
	"github.com/sant0-9/wordmint/internal/llm"
	"github.com/sant0-9/wordmint/internal/parse"
	"github.com/sant0-9/wordmint/internal/prompt"
	"go.uber.org/zap"
)

var (
	// ErrMissingKey fails a run before any request is sent.
	ErrMissingKey = errors.New("add your Gemini API key before generating")

	// ErrCancelled marks a user-initiated stop; it is not shown as an error.
	ErrCancelled = errors.New("generation cancelled")
)

const maxOutputTokens = 8192

// Result is one successful run.
type Result struct {
	RunID   string
	Topic   string
	Angle   string
	Ideas   []idea.Idea
	Elapsed time.Duration
}

// Service dispatches generation runs. At most one run is in flight; Start
// replaces the cancel handle and tells the previous run to stop.
type Service struct {
	gen llm.Generator // when nil, a Gemini client is built per run from the form's key
	log *zap.Logger

	cancel context.CancelFunc
}

func NewService(gen llm.Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, log: log}
}

// Start cancels any in-flight run, installs a fresh cancel handle, and
// returns the function that performs the run. Start and Stop are called
// from the UI loop only; the returned closure runs off-loop.
func (s *Service) Start(cfg *config.Config) func() (*Result, error) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// Deep-copy so form edits after Start never race the run goroutine.
	snapshot := *cfg
	snapshot.Patterns = make(map[string]bool, len(cfg.Patterns))
	for k, v := range cfg.Patterns {
		snapshot.Patterns[k] = v
	}
	return func() (*Result, error) {
		defer cancel()
		return s.run(ctx, &snapshot)
	}
}

// Stop cancels the current run, if any.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Service) run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingKey
	}

	runID := uuid.NewString()
	started := time.Now()
	s.log.Info("run started",
		zap.String("run_id", runID),
		zap.String("topic", cfg.Topic),
		zap.Int("count", cfg.Count),
		zap.Float64("temperature", cfg.Temperature))

	gen := s.gen
	if gen == nil {
		var err error
		gen, err = llm.NewGeminiClient(ctx, cfg.APIKey)
		if err != nil {
			return nil, err
		}
	}

	req := &llm.Request{
		Model:       cfg.Model,
		System:      prompt.System(),
		User:        prompt.Build(cfg.Topic, cfg.Angle, cfg.Count, cfg.EnabledPatterns()),
		Temperature: cfg.Temperature,
		MaxTokens:   maxOutputTokens,
		Schema:      prompt.ResponseSchema(),
	}

	resp, err := gen.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.log.Info("run cancelled", zap.String("run_id", runID))
			return nil, ErrCancelled
		}
		s.log.Warn("run failed", zap.String("run_id", runID), zap.Error(err))
		return nil, err
	}

	ideas, err := parse.Normalize(resp)
	if err != nil {
		s.log.Warn("run returned unusable reply",
			zap.String("run_id", runID), zap.Error(err))
		return nil, err
	}

	elapsed := time.Since(started)
	s.log.Info("run finished",
		zap.String("run_id", runID),
		zap.Int("ideas", len(ideas)),
		zap.Duration("elapsed", elapsed))

	return &Result{
		RunID:   runID,
		Topic:   cfg.Topic,
		Angle:   cfg.Angle,
		Ideas:   ideas,
		Elapsed: elapsed,
	}, nil
}
