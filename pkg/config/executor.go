package config

// ExecutorConfig controls DAG execution inside one run.
type ExecutorConfig struct {
	// Parallelism is the budget of concurrent node evaluations (W). A single
	// node's evaluation is always serialized; W bounds how many nodes are in
	// flight at once.
	Parallelism int `yaml:"parallelism"`
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		Parallelism: 4,
	}
}

// ProgressConfig controls the per-run progress log and dump files.
type ProgressConfig struct {
	// LogDir is the directory progress logs and structured dumps are written
	// to. Created on startup if missing.
	LogDir string `yaml:"logDir"`
}

// DefaultProgressConfig returns the built-in progress defaults.
func DefaultProgressConfig() *ProgressConfig {
	return &ProgressConfig{
		LogDir: "logs/executions",
	}
}
