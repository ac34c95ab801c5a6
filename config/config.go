package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Session configuration
//   - database.go: Database and Redis configuration
//   - http.go: HTTP server configuration
//   - services.go: External provider configuration (OpenAI, Zoom, VIN)
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// SeedDevData populates demo accounts and postings on startup.
	// Only honored when IsDev is also set.
	SeedDevData bool `env:"DEV_SEED" envDefault:"false"`

	// Session configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// External provider configuration
	OpenAI OpenAIConfig    `envPrefix:"OPENAI_"`
	Zoom   ZoomConfig      `envPrefix:"ZOOM_"`
	VIN    VINDecodeConfig `envPrefix:"VIN_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.HTTP.Sanitize()
	c.OpenAI.Sanitize()
	c.Zoom.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (the original deployment used it).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
