package config

import "fmt"

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}
	if err := v.validateQueueing(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateExecutor(); err != nil {
		return fmt.Errorf("executor validation failed: %w", err)
	}
	if err := v.validateGateway(); err != nil {
		return fmt.Errorf("gateway validation failed: %w", err)
	}
	if err := v.validateWebhook(); err != nil {
		return fmt.Errorf("webhook validation failed: %w", err)
	}
	if err := v.validateSweeps(); err != nil {
		return fmt.Errorf("sweep validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateServer() error {
	if v.cfg.Server.Port < 1 || v.cfg.Server.Port > 65535 {
		return NewValidationError("server", "server", "port", fmt.Errorf("must be between 1 and 65535, got %d", v.cfg.Server.Port))
	}
	return nil
}

func (v *ConfigValidator) validateQueueing() error {
	if v.cfg.Polling.IntervalMS < 1 {
		return NewValidationError("polling", "polling", "intervalMs", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Polling.MaxConcurrentJobs < 1 {
		return NewValidationError("polling", "polling", "maxConcurrentJobs", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Polling.MaxConcurrentJobs > MaxLeaseBatchSize {
		return NewValidationError("polling", "polling", "maxConcurrentJobs", fmt.Errorf("must not exceed the lease batch limit of %d", MaxLeaseBatchSize))
	}
	if v.cfg.Lease.InitialMinutes < 1 {
		return NewValidationError("lease", "lease", "initialMinutes", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Lease.RenewMinutes < 1 {
		return NewValidationError("lease", "lease", "renewMinutes", fmt.Errorf("must be at least 1"))
	}
	if len(v.cfg.Worker.Kinds) == 0 {
		return NewValidationError("worker", "worker", "kinds", fmt.Errorf("at least one pipeline kind required"))
	}
	seen := make(map[string]bool, len(v.cfg.Worker.Kinds))
	for _, kind := range v.cfg.Worker.Kinds {
		if kind == "" {
			return NewValidationError("worker", "worker", "kinds", fmt.Errorf("kind must not be empty"))
		}
		if seen[kind] {
			return NewValidationError("worker", "worker", "kinds", fmt.Errorf("duplicate kind '%s'", kind))
		}
		seen[kind] = true
	}
	return nil
}

func (v *ConfigValidator) validateExecutor() error {
	if v.cfg.Executor.Parallelism < 1 {
		return NewValidationError("executor", "executor", "parallelism", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Progress.LogDir == "" {
		return NewValidationError("progress", "progress", "logDir", fmt.Errorf("%w", ErrMissingRequiredField))
	}
	return nil
}

func (v *ConfigValidator) validateGateway() error {
	if v.cfg.Breaker.FailureThreshold < 1 {
		return NewValidationError("breaker", "breaker", "failureThreshold", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Breaker.CooldownSeconds < 1 {
		return NewValidationError("breaker", "breaker", "cooldownSeconds", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.IAM.TTLMinutes < 1 {
		return NewValidationError("iam", "iam", "ttlMinutes", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.IAM.RefreshWindowMinutes < 0 {
		return NewValidationError("iam", "iam", "refreshWindowMinutes", fmt.Errorf("must not be negative"))
	}
	if v.cfg.IAM.RefreshWindowMinutes >= v.cfg.IAM.TTLMinutes {
		return NewValidationError("iam", "iam", "refreshWindowMinutes", fmt.Errorf("must be smaller than ttlMinutes"))
	}
	return nil
}

func (v *ConfigValidator) validateWebhook() error {
	if v.cfg.Webhook.BackoffMS < 1 {
		return NewValidationError("webhook", "webhook", "backoffMs", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Webhook.BackoffCapMS < v.cfg.Webhook.BackoffMS {
		return NewValidationError("webhook", "webhook", "backoffCapMs", fmt.Errorf("must be at least backoffMs"))
	}
	if v.cfg.Webhook.MaxAttempts < 1 {
		return NewValidationError("webhook", "webhook", "maxAttempts", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *ConfigValidator) validateSweeps() error {
	if v.cfg.Reaper.IntervalSeconds < 1 {
		return NewValidationError("reaper", "reaper", "intervalSeconds", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Retries.Max < 0 {
		return NewValidationError("retries", "retries", "max", fmt.Errorf("must not be negative"))
	}
	if v.cfg.Retention.Days < 1 {
		return NewValidationError("retention", "retention", "days", fmt.Errorf("must be at least 1"))
	}
	return nil
}
