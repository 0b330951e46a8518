package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sant0-9/wordmint/internal/idea"
)

// writeConfig places raw YAML where Load expects it, under a fake home.
func writeConfig(t *testing.T, raw string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "wordmint")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Load()
	def := DefaultConfig()

	if cfg.Count != def.Count {
		t.Errorf("Count = %d, want %d", cfg.Count, def.Count)
	}
	if cfg.Temperature != def.Temperature {
		t.Errorf("Temperature = %v, want %v", cfg.Temperature, def.Temperature)
	}
	if cfg.Model != def.Model {
		t.Errorf("Model = %q, want %q", cfg.Model, def.Model)
	}
}

func TestLoadCorruptFileUsesDefaults(t *testing.T) {
	writeConfig(t, "topic: [unclosed\n\tnot yaml at all")

	cfg := Load()
	if cfg.Count != DefaultConfig().Count {
		t.Errorf("Count = %d, want default %d", cfg.Count, DefaultConfig().Count)
	}
}

func TestLoadClampsRanges(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		count int
		temp  float64
	}{
		{"count too high", "count: 500\ntemperature: 0.5", idea.MaxCount, 0.5},
		{"count too low", "count: 1\ntemperature: 0.5", idea.MinCount, 0.5},
		{"temperature too high", "count: 10\ntemperature: 7.5", 10, 1},
		{"temperature negative", "count: 10\ntemperature: -3", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.raw)
			cfg := Load()
			if cfg.Count != tt.count {
				t.Errorf("Count = %d, want %d", cfg.Count, tt.count)
			}
			if cfg.Temperature != tt.temp {
				t.Errorf("Temperature = %v, want %v", cfg.Temperature, tt.temp)
			}
		})
	}
}

func TestLoadFillsMissingPatterns(t *testing.T) {
	writeConfig(t, "count: 10\ntemperature: 0.5\npatterns:\n  portmanteau: true")

	cfg := Load()
	for _, p := range idea.Patterns {
		if _, ok := cfg.Patterns[string(p)]; !ok {
			t.Errorf("pattern %q missing after load", p)
		}
	}
	if !cfg.Patterns[string(idea.PatternPortmanteau)] {
		t.Error("portmanteau toggle lost on load")
	}
}

func TestSaveOmitsKeyWhenNotRemembered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.APIKey = "super-secret"
	cfg.RememberKey = false

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// In-memory key survives for the current session.
	if cfg.APIKey != "super-secret" {
		t.Error("Save() mutated the in-memory key")
	}

	path, _ := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "super-secret") {
		t.Error("key written to disk despite remember_key=false")
	}

	if got := Load(); got.APIKey != "" {
		t.Errorf("reloaded APIKey = %q, want empty", got.APIKey)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.APIKey = "key-123"
	cfg.Topic = "music labels"
	cfg.Angle = "indie"
	cfg.Count = 7
	cfg.Temperature = 0.4
	cfg.Patterns[string(idea.PatternMetaphor)] = true

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := Load()
	if got.APIKey != "key-123" || got.Topic != "music labels" || got.Angle != "indie" {
		t.Errorf("reload mismatch: %+v", got)
	}
	if got.Count != 7 || got.Temperature != 0.4 {
		t.Errorf("reload numeric mismatch: count=%d temp=%v", got.Count, got.Temperature)
	}
	if !got.Patterns[string(idea.PatternMetaphor)] {
		t.Error("metaphor toggle lost in round trip")
	}
}

func TestEnabledPatternsOrder(t *testing.T) {
	cfg := DefaultConfig()
	for k := range cfg.Patterns {
		cfg.Patterns[k] = false
	}
	cfg.Patterns[string(idea.PatternCompound)] = true
	cfg.Patterns[string(idea.PatternPortmanteau)] = true

	got := cfg.EnabledPatterns()
	want := []idea.Pattern{idea.PatternPortmanteau, idea.PatternCompound}
	if len(got) != len(want) {
		t.Fatalf("EnabledPatterns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnabledPatterns()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
