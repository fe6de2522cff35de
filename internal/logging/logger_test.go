package logging

import (
	"os"
	"path/filepath"
	"testing"

	"termhack/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termhack.log")
	l, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path}, false)
	require.NoError(t, err)

	l.Get(CategorySession).Info("filtered", zap.Int("remaining", 3))
	l.Get(CategorySession).Debug("hidden")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"session"`)
	assert.Contains(t, string(data), `"remaining":3`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(config.LoggingConfig{Level: "error", File: path}, true)
	require.NoError(t, err)

	l.Get(CategoryBoot).Debug("visible")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "chatty"}, false)
	assert.Error(t, err)
}

func TestGet_DisabledCategory(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{base: zap.New(core), cfg: config.LoggingConfig{Categories: map[string]bool{"ui": false}}}

	l.Get(CategoryUI).Info("dropped")
	l.Get(CategorySimulate).Info("kept")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "simulate", entry.LoggerName)
}

func TestNilAndNop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Get(CategoryBoot).Info("x") })
	assert.NoError(t, l.Sync())
	assert.NotPanics(t, func() { Nop().Get(CategorySession).Warn("x") })
}
