package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when --config is unset.
const DefaultPath = ".termhack/config.yaml"

// Config holds all termhack configuration.
type Config struct {
	// Interactive session
	Session SessionConfig `yaml:"session"`

	// Batch simulation
	Simulate SimulateConfig `yaml:"simulate"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`
}

// SessionConfig configures the interactive session.
type SessionConfig struct {
	Wordlist string `yaml:"wordlist"` // newline-separated candidates; empty = args or stdin
	Prompt   string `yaml:"prompt"`
}

// SimulateConfig configures the simulate command.
type SimulateConfig struct {
	Workers    int `yaml:"workers"`     // concurrent games; 0 = GOMAXPROCS
	MaxGuesses int `yaml:"max_guesses"` // a game taking longer counts as failed
}

// UIConfig configures presentation.
type UIConfig struct {
	Mode  string `yaml:"mode"`  // text, tui
	Theme string `yaml:"theme"` // auto, light, dark
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Prompt: "> ",
		},
		Simulate: SimulateConfig{
			Workers:    0,
			MaxGuesses: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			Mode:  "text",
			Theme: "dark",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("TERMHACK_WORDLIST"); path != "" {
		c.Session.Wordlist = path
	}
	if level := os.Getenv("TERMHACK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if mode := os.Getenv("TERMHACK_UI"); mode != "" {
		c.UI.Mode = mode
	}
	if v := os.Getenv("TERMHACK_WORKERS"); v != "" {
		// Unparseable values keep the file setting.
		if n, err := strconv.Atoi(v); err == nil {
			c.Simulate.Workers = n
		}
	}
}

// ValidUIModes lists the supported session front ends.
var ValidUIModes = []string{"text", "tui"}

// ValidThemes lists the supported colour themes.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidUIModes, c.UI.Mode) {
		return fmt.Errorf("invalid ui mode: %s (valid: %v)", c.UI.Mode, ValidUIModes)
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("simulate.workers must not be negative, got %d", c.Simulate.Workers)
	}
	if c.Simulate.MaxGuesses < 1 {
		return fmt.Errorf("simulate.max_guesses must be at least 1, got %d", c.Simulate.MaxGuesses)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// GetWorkers returns the simulation worker count, resolving 0 to GOMAXPROCS.
func (c *Config) GetWorkers() int {
	if c.Simulate.Workers > 0 {
		return c.Simulate.Workers
	}
	return runtime.GOMAXPROCS(0)
}
