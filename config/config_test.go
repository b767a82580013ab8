package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lppsite/models"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.True(t, cfg.LogToFile)
	assert.Equal(t, models.DefaultBookingURL, cfg.BookingURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LPP_ADDR", "9090")
	t.Setenv("LPP_ENV", "Production")
	t.Setenv("LPP_LOG_LEVEL", "debug")
	t.Setenv("LPP_LOG_FILE", "false")
	t.Setenv("LPP_BOOKING_URL", "https://example.com/book")
	t.Setenv("LPP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogToFile)
	assert.Equal(t, "https://example.com/book", cfg.BookingURL)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LPP_ADDR=127.0.0.1:7000\n"), 0o644))
	t.Setenv("LPP_ADDR", "")
	os.Unsetenv("LPP_ADDR")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("LPP_ENV", "staging")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("LPP_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
}

func TestNormalizeAddr(t *testing.T) {
	tests := map[string]string{
		"":               ":8080",
		"4002":           ":4002",
		":4002":          ":4002",
		"localhost:4002": "localhost:4002",
		" 80 ":           ":80",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAddr(in), "input %q", in)
	}
}
