package config

import "time"

// defaultSessionTTL applies when SESSION_TTL is unset or out of range.
const defaultSessionTTL = 24 * time.Hour

// AuthConfig groups session-related configuration. Sessions are opaque
// bearer tokens stored in Redis with a sliding expiry.
type AuthConfig struct {
	// SessionTTL is how long a bearer session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = defaultSessionTTL
	}
}
