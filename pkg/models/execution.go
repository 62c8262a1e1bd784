package models

// NodeResult is the serializable outcome of one node evaluation. Value holds
// the node kind's primary output; Text and Response carry the conventional
// secondary fields some kinds produce. EnvWrites records the names the node
// published into the derived variables map.
type NodeResult struct {
	Success    bool              `json:"success"`
	Value      interface{}       `json:"value,omitempty"`
	Text       string            `json:"text,omitempty"`
	Response   string            `json:"response,omitempty"`
	Error      string            `json:"error,omitempty"`
	DurationMS int64             `json:"duration_ms"`
	EnvWrites  map[string]string `json:"env_writes,omitempty"`
}

// ExecutionSummary is the executor's return value for one run.
type ExecutionSummary struct {
	ExecutionInstanceID string                `json:"execution_instance_id"`
	Executed            int                   `json:"executed"`
	Failed              int                   `json:"failed"`
	Skipped             int                   `json:"skipped"`
	DurationMS          int64                 `json:"duration_ms"`
	Results             map[string]NodeResult `json:"execution_results"`
	Variables           map[string]string     `json:"variables"`
}
