package config

// WebhookConfig controls terminal-report delivery back to the front-end
// application.
type WebhookConfig struct {
	// Endpoint is the front-end base URL; deliveries PATCH
	// <Endpoint>/external/jobs/<jobId>. Empty disables delivery (the
	// front-end poller remains the fallback).
	Endpoint string `yaml:"endpoint"`

	// SecretEnv names the env var holding the shared secret sent as
	// X-Backend-Secret.
	SecretEnv string `yaml:"secretEnv"`

	// BackoffMS is the first retry delay; it doubles per attempt.
	BackoffMS int `yaml:"backoffMs"`

	// BackoffCapMS caps the per-attempt delay.
	BackoffCapMS int `yaml:"backoffCapMs"`

	// MaxAttempts bounds delivery attempts.
	MaxAttempts int `yaml:"maxAttempts"`
}

// DefaultWebhookConfig returns the built-in webhook defaults.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		SecretEnv:    "BACKEND_SECRET",
		BackoffMS:    1000,
		BackoffCapMS: 16000,
		MaxAttempts:  5,
	}
}
