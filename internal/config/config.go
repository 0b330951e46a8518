package config

import (
	"os"
	"path/filepath"

	"github.com/sant0-9/wordmint/internal/idea"
	"gopkg.in/yaml.v3"
)

// Config is the persisted form state. It is saved after every edit so a
// restart picks up exactly where the user left off.
type Config struct {
	APIKey      string  `yaml:"api_key,omitempty"`
	RememberKey bool    `yaml:"remember_key"`
	Model       string  `yaml:"model"`
	Topic       string  `yaml:"topic,omitempty"`
	Angle       string  `yaml:"angle,omitempty"`
	Count       int     `yaml:"count"`
	Temperature float64 `yaml:"temperature"`

	// Patterns maps pattern name to enabled.
	Patterns map[string]bool `yaml:"patterns"`
}

func DefaultConfig() *Config {
	return &Config{
		RememberKey: true,
		Model:       "gemini-3-flash-preview",
		Count:       12,
		Temperature: 0.9,
		Patterns: map[string]bool{
			string(idea.PatternPortmanteau): true,
			string(idea.PatternSuffix):      true,
			string(idea.PatternPrefix):      false,
			string(idea.PatternRespelling):  false,
			string(idea.PatternCompound):    true,
			string(idea.PatternMetaphor):    false,
		},
	}
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordmint"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath is where the file-backed logger writes; the TUI owns the screen.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wordmint.log"), nil
}

// Load reads the config file. A missing or unreadable file and corrupt YAML
// all fall back to defaults; the form must come up regardless.
func Load() *Config {
	path, err := Path()
	if err != nil {
		return DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	cfg.normalize()
	return &cfg
}

// normalize repairs hand-edited or stale fields instead of rejecting them.
func (c *Config) normalize() {
	if c.Model == "" {
		c.Model = DefaultConfig().Model
	}
	if c.Count < idea.MinCount {
		c.Count = idea.MinCount
	}
	if c.Count > idea.MaxCount {
		c.Count = idea.MaxCount
	}
	if c.Temperature < 0 {
		c.Temperature = 0
	}
	if c.Temperature > 1 {
		c.Temperature = 1
	}
	if c.Patterns == nil {
		c.Patterns = DefaultConfig().Patterns
		return
	}
	for _, p := range idea.Patterns {
		if _, ok := c.Patterns[string(p)]; !ok {
			c.Patterns[string(p)] = false
		}
	}
}

// Save writes the config. When RememberKey is off the credential stays in
// memory only.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	out := *c
	if !out.RememberKey {
		out.APIKey = ""
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// EnabledPatterns returns the toggled-on patterns in catalog order.
func (c *Config) EnabledPatterns() []idea.Pattern {
	var enabled []idea.Pattern
	for _, p := range idea.Patterns {
		if c.Patterns[string(p)] {
			enabled = append(enabled, p)
		}
	}
	return enabled
}
