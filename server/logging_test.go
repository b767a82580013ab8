package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lppsite/config"
)

func TestNewLoggerWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{Env: config.EnvProduction, LogLevel: "info", LogDir: dir, LogToFile: true}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"service":"lppsite"`)
	assert.Contains(t, string(data), `"env":"production"`)
}

func TestNewLoggerWithoutFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{Env: config.EnvDevelopment, LogLevel: "debug", LogDir: dir}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(&config.Config{Env: config.EnvDevelopment, LogLevel: "loud"})
	assert.Error(t, err)
}
