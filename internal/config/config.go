package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/billmgr/internal/logging"
)

// DefaultFileName is where `config init` writes when no path is given.
const DefaultFileName = "billmgr.yaml"

// Config represents the optional billmgr.yaml configuration.
type Config struct {
	Menu   MenuConfig   `yaml:"menu"`
	Prompt PromptConfig `yaml:"prompt"`
	Log    LogConfig    `yaml:"log"`
}

// MenuConfig controls the top-level menu loop.
type MenuConfig struct {
	// ExitOnUnknown ends the session on an unrecognized selection, the same
	// way a blank selection does. When false the menu is shown again.
	ExitOnUnknown bool `yaml:"exit_on_unknown"`
}

// PromptConfig controls terminal input handling.
type PromptConfig struct {
	MaxReadRetries int `yaml:"max_read_retries"` // 0 = retry forever
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a billmgr.yaml file from disk. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Menu: MenuConfig{
			ExitOnUnknown: true,
		},
		Prompt: PromptConfig{
			MaxReadRetries: 0,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Prompt.MaxReadRetries < 0 {
		return fmt.Errorf("prompt.max_read_retries must be >= 0, got %d", c.Prompt.MaxReadRetries)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
