// Package config loads the site settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lppsite/models"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the runtime settings of the site server.
type Config struct {
	Addr            string        `env:"LPP_ADDR" envDefault:":8080"`
	Env             string        `env:"LPP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LPP_LOG_LEVEL" envDefault:"info"`
	LogDir          string        `env:"LPP_LOG_DIR" envDefault:"logs"`
	LogToFile       bool          `env:"LPP_LOG_FILE" envDefault:"true"`
	BookingURL      string        `env:"LPP_BOOKING_URL"`
	ShutdownTimeout time.Duration `env:"LPP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the optional dotenv files (".env" when none are given) and then
// parses the environment. Missing dotenv files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Addr = NormalizeAddr(c.Addr)
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("LPP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env)
	}
	if c.BookingURL == "" {
		c.BookingURL = models.DefaultBookingURL
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return nil
}

// NormalizeAddr turns a bare port such as "8080" into ":8080".
func NormalizeAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ":8080"
	}
	if !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}

// IsProduction reports whether the site runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
