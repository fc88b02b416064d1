package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port          string   `env:"PORT" envDefault:"8080"`
	DatabaseURL   string   `env:"DATABASE_URL"`
	JWTSecret     string   `env:"JWT_SECRET"`
	JWTIssuer     string   `env:"JWT_ISSUER" envDefault:"cms-accounts"`
	JWTTTLMinutes int      `env:"JWT_TTL_MINUTES" envDefault:"60"`
	CORSOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	BcryptCost    int      `env:"BCRYPT_COST" envDefault:"10"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`

	// JWTTTL is derived from JWTTTLMinutes.
	JWTTTL time.Duration
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.Port = strings.TrimSpace(c.Port)
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	c.JWTSecret = strings.TrimSpace(c.JWTSecret)
	c.CORSOrigins = trimAll(c.CORSOrigins)

	if c.JWTTTLMinutes > 0 {
		c.JWTTTL = time.Duration(c.JWTTTLMinutes) * time.Minute
	} else {
		c.JWTTTL = 60 * time.Minute
	}

	if c.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return c, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func trimAll(input []string) []string {
	var out []string
	for _, part := range input {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
