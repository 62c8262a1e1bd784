package config

// MaxLeaseBatchSize is the dispatcher-side cap on jobs handed out in one
// lease call, regardless of what the caller asks for.
const MaxLeaseBatchSize = 10

// PollingConfig controls the worker lease-poll loop.
type PollingConfig struct {
	// IntervalMS is how long a worker sleeps after an empty lease poll.
	IntervalMS int `yaml:"intervalMs"`

	// MaxConcurrentJobs is the per-worker cap on jobs taken in one lease.
	// Leases never exceed the dispatcher-side batch limit of 10.
	MaxConcurrentJobs int `yaml:"maxConcurrentJobs"`
}

// DefaultPollingConfig returns the built-in polling defaults.
func DefaultPollingConfig() *PollingConfig {
	return &PollingConfig{
		IntervalMS:        5000,
		MaxConcurrentJobs: 1,
	}
}

// LeaseConfig controls lease visibility windows.
type LeaseConfig struct {
	// InitialMinutes is the visibility window granted at lease time. It must
	// exceed the longest expected run.
	InitialMinutes int `yaml:"initialMinutes"`

	// RenewMinutes is the extension granted by each progress touch.
	RenewMinutes int `yaml:"renewMinutes"`
}

// DefaultLeaseConfig returns the built-in lease defaults.
func DefaultLeaseConfig() *LeaseConfig {
	return &LeaseConfig{
		InitialMinutes: 120,
		RenewMinutes:   10,
	}
}

// WorkerConfig selects which pipeline kinds this process runs workers for.
// Per-kind instance counts come from the settings store at pool start;
// Kinds only declares participation.
type WorkerConfig struct {
	Kinds []string `yaml:"kinds"`
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		Kinds: []string{"Prof", "BigFive"},
	}
}
