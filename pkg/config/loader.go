package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// PipelineYAMLConfig represents the complete pipeline.yaml file structure.
// Every section is optional; omitted sections keep their built-in defaults.
type PipelineYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Polling   *PollingConfig   `yaml:"polling"`
	Lease     *LeaseConfig     `yaml:"lease"`
	Worker    *WorkerConfig    `yaml:"worker"`
	Executor  *ExecutorConfig  `yaml:"executor"`
	Progress  *ProgressConfig  `yaml:"progress"`
	Provider  *ProviderConfig  `yaml:"provider"`
	Breaker   *BreakerConfig   `yaml:"breaker"`
	IAM       *IAMConfig       `yaml:"iam"`
	Webhook   *WebhookConfig   `yaml:"webhook"`
	Reaper    *ReaperConfig    `yaml:"reaper"`
	Retries   *RetriesConfig   `yaml:"retries"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load pipeline.yaml from configDir (missing file keeps all defaults)
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"worker_kinds", stats.Kinds,
		"executor_parallelism", stats.Parallelism,
		"lease_initial_minutes", stats.LeaseMin,
		"poll_interval_ms", stats.PollMS)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	userCfg, err := loader.loadPipelineYAML()
	if err != nil {
		return nil, NewLoadError("pipeline.yaml", err)
	}

	cfg := &Config{
		configDir: configDir,
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

	// Merge user-provided sections into the defaults (non-zero values
	// override; unset values keep the defaults above).
	if err := mergeSection(cfg.Server, userCfg.Server, "server"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Polling, userCfg.Polling, "polling"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Lease, userCfg.Lease, "lease"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Worker, userCfg.Worker, "worker"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Executor, userCfg.Executor, "executor"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Progress, userCfg.Progress, "progress"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Provider, userCfg.Provider, "provider"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Breaker, userCfg.Breaker, "breaker"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.IAM, userCfg.IAM, "iam"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Webhook, userCfg.Webhook, "webhook"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Reaper, userCfg.Reaper, "reaper"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Retries, userCfg.Retries, "retries"); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Retention, userCfg.Retention, "retention"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeSection merges a user-provided config section over its defaults.
// A nil user section is a no-op.
func mergeSection[T any](dst *T, src *T, name string) error {
	if src == nil {
		return nil
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with clearer
	// error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadPipelineYAML() (*PipelineYAMLConfig, error) {
	var config PipelineYAMLConfig

	if err := l.loadYAML("pipeline.yaml", &config); err != nil {
		// A missing pipeline.yaml means defaults-only operation.
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No pipeline.yaml found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}
