package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/wordmint/internal/config"
	"github.com/sant0-9/wordmint/internal/tui"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg := config.Load()
	if cfg.APIKey == "" {
		// Env vars seed the key for users who never want it on disk.
		if key := os.Getenv("WORDMINT_API_KEY"); key != "" {
			cfg.APIKey = key
		} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.APIKey = key
		}
	}

	logger.Info("starting", zap.String("version", version))

	app := tui.NewApp(cfg, nil, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to a file under the config dir; the alt-screen UI owns
// stdout and stderr. Falls back to a no-op logger rather than failing.
func newLogger() *zap.Logger {
	path, err := config.LogPath()
	if err != nil {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zap.NewNop()
	}

	c := zap.NewProductionConfig()
	c.OutputPaths = []string{path}
	c.ErrorOutputPaths = []string{path}

	logger, err := c.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
