package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "pipeline.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitializeDefaultsOnly(t *testing.T) {
	// No pipeline.yaml at all — everything comes from the built-in defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Polling.IntervalMS)
	assert.Equal(t, 1, cfg.Polling.MaxConcurrentJobs)
	assert.Equal(t, 120, cfg.Lease.InitialMinutes)
	assert.Equal(t, 10, cfg.Lease.RenewMinutes)
	assert.Equal(t, []string{"Prof", "BigFive"}, cfg.Worker.Kinds)
	assert.Equal(t, 4, cfg.Executor.Parallelism)
	assert.Equal(t, "logs/executions", cfg.Progress.LogDir)
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, 60, cfg.Breaker.CooldownSeconds)
	assert.Equal(t, 720, cfg.IAM.TTLMinutes)
	assert.Equal(t, 30, cfg.IAM.RefreshWindowMinutes)
	assert.Equal(t, 1000, cfg.Webhook.BackoffMS)
	assert.Equal(t, 16000, cfg.Webhook.BackoffCapMS)
	assert.Equal(t, 5, cfg.Webhook.MaxAttempts)
	assert.Equal(t, 30, cfg.Reaper.IntervalSeconds)
	assert.Equal(t, 3, cfg.Retries.Max)
	assert.Equal(t, 90, cfg.Retention.Days)
	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
}

func TestInitializeMergesUserValuesOverDefaults(t *testing.T) {
	configDir := writeConfig(t, `
polling:
  intervalMs: 250
executor:
  parallelism: 8
worker:
  kinds: ["Prof"]
webhook:
  endpoint: "http://ui1.internal:3000"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, 250, cfg.Polling.IntervalMS)
	assert.Equal(t, 8, cfg.Executor.Parallelism)
	assert.Equal(t, []string{"Prof"}, cfg.Worker.Kinds)
	assert.Equal(t, "http://ui1.internal:3000", cfg.Webhook.Endpoint)

	// Untouched sections keep their defaults.
	assert.Equal(t, 1, cfg.Polling.MaxConcurrentJobs)
	assert.Equal(t, 120, cfg.Lease.InitialMinutes)
	assert.Equal(t, 1000, cfg.Webhook.BackoffMS)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("UI1_ENDPOINT", "http://ui1.test:9000")

	configDir := writeConfig(t, `
webhook:
  endpoint: "{{.UI1_ENDPOINT}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "http://ui1.test:9000", cfg.Webhook.Endpoint)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, "polling:\n  intervalMs: [not a number\n")

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	// maxConcurrentJobs above the dispatcher-side lease batch cap.
	configDir := writeConfig(t, `
polling:
  maxConcurrentJobs: 50
`)

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "polling", vErr.Component)
	assert.Equal(t, "maxConcurrentJobs", vErr.Field)
}

func TestConfigStats(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.Kinds)
	assert.Equal(t, 4, stats.Parallelism)
	assert.Equal(t, 120, stats.LeaseMin)
	assert.Equal(t, 5000, stats.PollMS)
}
