package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TERMHACK_WORDLIST", "TERMHACK_LOG_LEVEL", "TERMHACK_UI", "TERMHACK_WORKERS"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "text", cfg.UI.Mode)
	assert.Equal(t, 4, cfg.Simulate.MaxGuesses)
	assert.Equal(t, "> ", cfg.Session.Prompt)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Session.Wordlist = "words.txt"
	cfg.Simulate.Workers = 3
	cfg.UI.Mode = "tui"
	cfg.Logging.Categories = map[string]bool{"ui": false}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulate:\n  max_guesses: 9\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Simulate.MaxGuesses)
	assert.Equal(t, "text", cfg.UI.Mode)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ui: [unclosed"), 0644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("ui:\n  mode: gui\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "invalid ui mode")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TERMHACK_WORDLIST", "/tmp/words")
	t.Setenv("TERMHACK_LOG_LEVEL", "debug")
	t.Setenv("TERMHACK_UI", "tui")
	t.Setenv("TERMHACK_WORKERS", "6")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/tmp/words", cfg.Session.Wordlist)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "tui", cfg.UI.Mode)
	assert.Equal(t, 6, cfg.Simulate.Workers)

	t.Run("unparseable workers ignored", func(t *testing.T) {
		t.Setenv("TERMHACK_WORKERS", "many")
		cfg := DefaultConfig()
		cfg.Simulate.Workers = 2
		cfg.applyEnvOverrides()
		assert.Equal(t, 2, cfg.Simulate.Workers)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid ui theme"},
		{"negative workers", func(c *Config) { c.Simulate.Workers = -1 }, "simulate.workers"},
		{"zero max guesses", func(c *Config) { c.Simulate.MaxGuesses = 0 }, "simulate.max_guesses"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestValidate_AutoTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Theme = "auto"
	assert.NoError(t, cfg.Validate())
}

func TestGetWorkers(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.GetWorkers())
	cfg.Simulate.Workers = 5
	assert.Equal(t, 5, cfg.GetWorkers())
}

func TestLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Categories: map[string]bool{"ui": false, "session": true}}
	assert.False(t, lc.IsCategoryEnabled("ui"))
	assert.True(t, lc.IsCategoryEnabled("session"))
	assert.True(t, lc.IsCategoryEnabled("simulate"))

	lvl, err := (&LoggingConfig{}).ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = (&LoggingConfig{Level: "warn"}).ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)
}
