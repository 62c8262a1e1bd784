package models

// WorkerSettings is the per-pipeline-kind worker configuration staged through
// the admin API and read once when the pool starts.
type WorkerSettings struct {
	Instances         int `json:"instances"`
	PollIntervalMS    int `json:"poll_interval_ms"`
	MaxConcurrentJobs int `json:"max_concurrent_jobs"`
}

// DefaultWorkerSettings returns the settings used when a kind has no stored
// row.
func DefaultWorkerSettings() WorkerSettings {
	return WorkerSettings{
		Instances:         1,
		PollIntervalMS:    5000,
		MaxConcurrentJobs: 1,
	}
}
