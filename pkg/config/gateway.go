package config

// ProviderConfig locates the external chat-completion provider.
type ProviderConfig struct {
	// BaseURL is the provider API root, e.g. "https://api.example.com/v1".
	// The gateway appends /chat/completions and /models.
	BaseURL string `yaml:"baseUrl"`

	// IAMEndpoint is the token-exchange URL that turns a long-lived OAuth
	// token into a short-lived bearer. Required when OAuthTokenEnv is set.
	IAMEndpoint string `yaml:"iamEndpoint"`

	// OAuthTokenEnv names the env var holding the long-lived OAuth token.
	OAuthTokenEnv string `yaml:"oauthTokenEnv"`

	// APIKeyEnv names the env var holding a short-lived API key. When both
	// credentials are present the API key wins and no exchange happens.
	APIKeyEnv string `yaml:"apiKeyEnv"`

	// DefaultModel is used when a node's data does not name a model.
	DefaultModel string `yaml:"defaultModel"`
}

// DefaultProviderConfig returns the built-in provider defaults.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		OAuthTokenEnv: "PROVIDER_OAUTH_TOKEN",
		APIKeyEnv:     "PROVIDER_API_KEY",
	}
}

// BreakerConfig tunes the provider circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the consecutive provider-fault count that opens
	// the breaker. Auth and other 4xx failures never count.
	FailureThreshold int `yaml:"failureThreshold"`

	// CooldownSeconds is how long the breaker stays open before allowing a
	// half-open trial.
	CooldownSeconds int `yaml:"cooldownSeconds"`
}

// DefaultBreakerConfig returns the built-in breaker defaults.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		FailureThreshold: 5,
		CooldownSeconds:  60,
	}
}

// IAMConfig tunes the OAuth→IAM token cache.
type IAMConfig struct {
	// TTLMinutes is how long an exchanged token is kept.
	TTLMinutes int `yaml:"ttlMinutes"`

	// RefreshWindowMinutes is how close to expiry a cached token triggers a
	// refresh instead of being served.
	RefreshWindowMinutes int `yaml:"refreshWindowMinutes"`
}

// DefaultIAMConfig returns the built-in IAM cache defaults.
func DefaultIAMConfig() *IAMConfig {
	return &IAMConfig{
		TTLMinutes:           720,
		RefreshWindowMinutes: 30,
	}
}
