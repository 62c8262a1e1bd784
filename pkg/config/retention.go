package config

import "time"

// RetentionConfig controls execution history retention.
type RetentionConfig struct {
	// Days is how long finished ExecutionInstances (with their logs and
	// progress/dump files) are kept.
	Days int `yaml:"days"`

	// EventTTL is the maximum age of Event rows before deletion. Event
	// consumers catch up long before this; it is a safety net.
	EventTTL time.Duration `yaml:"eventTtl"`

	// SweepInterval is how often the retention sweep runs.
	SweepInterval time.Duration `yaml:"sweepInterval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Days:          90,
		EventTTL:      24 * time.Hour,
		SweepInterval: 12 * time.Hour,
	}
}

// ReaperConfig controls the expired-lease sweep.
type ReaperConfig struct {
	// IntervalSeconds is how often processing jobs are scanned for expired
	// leases.
	IntervalSeconds int `yaml:"intervalSeconds"`
}

// DefaultReaperConfig returns the built-in reaper defaults.
func DefaultReaperConfig() *ReaperConfig {
	return &ReaperConfig{
		IntervalSeconds: 30,
	}
}

// RetriesConfig bounds how often a job may be returned to the queue.
type RetriesConfig struct {
	// Max is the reap/requeue cap; past it the job fails with a
	// "max retries" message.
	Max int `yaml:"max"`
}

// DefaultRetriesConfig returns the built-in retry defaults.
func DefaultRetriesConfig() *RetriesConfig {
	return &RetriesConfig{
		Max: 3,
	}
}
