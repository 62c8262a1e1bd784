package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		Polling:   DefaultPollingConfig(),
		Lease:     DefaultLeaseConfig(),
		Worker:    DefaultWorkerConfig(),
		Executor:  DefaultExecutorConfig(),
		Progress:  DefaultProgressConfig(),
		Provider:  DefaultProviderConfig(),
		Breaker:   DefaultBreakerConfig(),
		IAM:       DefaultIAMConfig(),
		Webhook:   DefaultWebhookConfig(),
		Reaper:    DefaultReaperConfig(),
		Retries:   DefaultRetriesConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func TestValidateDefaults(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			errMsg: "port",
		},
		{
			name:   "poll interval too small",
			mutate: func(c *Config) { c.Polling.IntervalMS = 0 },
			errMsg: "intervalMs",
		},
		{
			name:   "concurrency above lease batch cap",
			mutate: func(c *Config) { c.Polling.MaxConcurrentJobs = MaxLeaseBatchSize + 1 },
			errMsg: "maxConcurrentJobs",
		},
		{
			name:   "lease window zero",
			mutate: func(c *Config) { c.Lease.InitialMinutes = 0 },
			errMsg: "initialMinutes",
		},
		{
			name:   "no worker kinds",
			mutate: func(c *Config) { c.Worker.Kinds = nil },
			errMsg: "kinds",
		},
		{
			name:   "duplicate worker kind",
			mutate: func(c *Config) { c.Worker.Kinds = []string{"Prof", "Prof"} },
			errMsg: "duplicate",
		},
		{
			name:   "parallelism zero",
			mutate: func(c *Config) { c.Executor.Parallelism = 0 },
			errMsg: "parallelism",
		},
		{
			name:   "empty progress dir",
			mutate: func(c *Config) { c.Progress.LogDir = "" },
			errMsg: "logDir",
		},
		{
			name:   "breaker threshold zero",
			mutate: func(c *Config) { c.Breaker.FailureThreshold = 0 },
			errMsg: "failureThreshold",
		},
		{
			name:   "refresh window not below TTL",
			mutate: func(c *Config) { c.IAM.RefreshWindowMinutes = c.IAM.TTLMinutes },
			errMsg: "refreshWindowMinutes",
		},
		{
			name:   "webhook cap below first delay",
			mutate: func(c *Config) { c.Webhook.BackoffCapMS = c.Webhook.BackoffMS - 1 },
			errMsg: "backoffCapMs",
		},
		{
			name:   "reaper interval zero",
			mutate: func(c *Config) { c.Reaper.IntervalSeconds = 0 },
			errMsg: "intervalSeconds",
		},
		{
			name:   "negative retry cap",
			mutate: func(c *Config) { c.Retries.Max = -1 },
			errMsg: "max",
		},
		{
			name:   "retention zero days",
			mutate: func(c *Config) { c.Retention.Days = 0 },
			errMsg: "days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
