// Package config loads and validates the pipeline service configuration.
//
// Configuration comes from a single pipeline.yaml in the config directory,
// merged over built-in defaults. Database settings are environment-only and
// never appear in YAML.
package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Server    *ServerConfig
	Polling   *PollingConfig
	Lease     *LeaseConfig
	Worker    *WorkerConfig
	Executor  *ExecutorConfig
	Progress  *ProgressConfig
	Provider  *ProviderConfig
	Breaker   *BreakerConfig
	IAM       *IAMConfig
	Webhook   *WebhookConfig
	Reaper    *ReaperConfig
	Retries   *RetriesConfig
	Retention *RetentionConfig
}

// Initialize is defined in loader.go

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats contains statistics about loaded configuration for startup logging.
type Stats struct {
	Kinds       int
	Parallelism int
	LeaseMin    int
	PollMS      int
}

// Stats returns statistics about the resolved configuration.
func (c *Config) Stats() Stats {
	return Stats{
		Kinds:       len(c.Worker.Kinds),
		Parallelism: c.Executor.Parallelism,
		LeaseMin:    c.Lease.InitialMinutes,
		PollMS:      c.Polling.IntervalMS,
	}
}
