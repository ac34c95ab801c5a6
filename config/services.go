package config

import "strings"

// OpenAIConfig contains the AI diagnosis generator configuration. The API
// key is required for intake generation; there is no offline fallback.
type OpenAIConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL"   envDefault:"gpt-4o-mini"`
}

// Sanitize normalizes OpenAI configuration values.
func (o *OpenAIConfig) Sanitize() {
	o.APIKey = strings.TrimSpace(o.APIKey)
	o.Model = strings.TrimSpace(o.Model)
	if o.Model == "" {
		o.Model = "gpt-4o-mini"
	}
}

// ZoomConfig contains the server-to-server OAuth credentials for meeting
// provisioning. Video interviews without an explicit link fail when the
// credentials are absent; everything else works without them.
type ZoomConfig struct {
	AccountID    string `env:"ACCOUNT_ID"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	UserID       string `env:"USER_ID"  envDefault:"me"`
	Timezone     string `env:"TIMEZONE" envDefault:"Asia/Manila"`
}

// Sanitize normalizes Zoom configuration values.
func (z *ZoomConfig) Sanitize() {
	z.AccountID = strings.TrimSpace(z.AccountID)
	z.ClientID = strings.TrimSpace(z.ClientID)
	z.ClientSecret = strings.TrimSpace(z.ClientSecret)
}

// Configured reports whether all three OAuth credentials are present.
func (z *ZoomConfig) Configured() bool {
	return z.AccountID != "" && z.ClientID != "" && z.ClientSecret != ""
}

// VINDecodeConfig overrides the external VIN database endpoints. Empty
// values fall back to the public db.vin and NHTSA vPIC endpoints.
type VINDecodeConfig struct {
	DBVINURL string `env:"DBVIN_URL"`
	NHTSAURL string `env:"NHTSA_URL"`
}
