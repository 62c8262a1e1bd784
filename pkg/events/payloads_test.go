package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusPayload_JSON(t *testing.T) {
	payload := JobStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobStatus,
			JobID:     "job-123",
			Timestamp: "2026-03-01T12:00:00Z",
		},
		SessionID: "sess-1",
		BatchID:   "batch-7",
		ProjectID: "proj-9",
		Status:    "processing",
		WorkerID:  "worker-2",
		Retries:   1,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded JobStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeJobStatus, decoded.Type)
	assert.Equal(t, "job-123", decoded.JobID)
	assert.Equal(t, "sess-1", decoded.SessionID)
	assert.Equal(t, "batch-7", decoded.BatchID)
	assert.Equal(t, "proj-9", decoded.ProjectID)
	assert.Equal(t, "processing", decoded.Status)
	assert.Equal(t, "worker-2", decoded.WorkerID)
	assert.Equal(t, 1, decoded.Retries)
	assert.Equal(t, "2026-03-01T12:00:00Z", decoded.Timestamp)
}

func TestJobStatusPayload_OmitsEmptyOptionals(t *testing.T) {
	// A fresh queued job has no worker, batch, error, or retries yet.
	payload := JobStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobStatus,
			JobID:     "job-queued",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
		Status: "queued",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	s := string(data)
	assert.NotContains(t, s, "worker_id")
	assert.NotContains(t, s, "batch_id")
	assert.NotContains(t, s, "session_id")
	assert.NotContains(t, s, "error")
	assert.NotContains(t, s, "retries")
	// Status is always present, even when the zero-value string would be
	// dropped by omitempty elsewhere.
	assert.Contains(t, s, `"status":"queued"`)
}

func TestJobStatusPayload_CarriesError(t *testing.T) {
	payload := JobStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobStatus,
			JobID:     "job-err",
			Timestamp: "2026-03-01T12:00:00Z",
		},
		Status:  "failed",
		Retries: 3,
		Error:   "max retries exceeded",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded JobStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "failed", decoded.Status)
	assert.Equal(t, 3, decoded.Retries)
	assert.Equal(t, "max retries exceeded", decoded.Error)
}

func TestJobProgressPayload_JSON(t *testing.T) {
	payload := JobProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobProgress,
			JobID:     "job-200",
			Timestamp: "2026-03-01T12:00:00Z",
		},
		ExecutionInstanceID: "run-1",
		TotalNodes:          10,
		ExecutedNodes:       4,
		FailedNodes:         1,
		Percentage:          50,
		CurrentNodeID:       "node-5",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded JobProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeJobProgress, decoded.Type)
	assert.Equal(t, "job-200", decoded.JobID)
	assert.Equal(t, "run-1", decoded.ExecutionInstanceID)
	assert.Equal(t, 10, decoded.TotalNodes)
	assert.Equal(t, 4, decoded.ExecutedNodes)
	assert.Equal(t, 1, decoded.FailedNodes)
	assert.Equal(t, 50, decoded.Percentage)
	assert.Equal(t, "node-5", decoded.CurrentNodeID)
}

func TestJobProgressPayload_ZeroCountsSurvive(t *testing.T) {
	// The very first progress tick of a run has zero executed/failed. Those
	// fields must stay in the JSON: the UI resets its counters from them.
	payload := JobProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobProgress,
			JobID:     "job-0",
			Timestamp: "2026-03-01T12:00:00Z",
		},
		ExecutionInstanceID: "run-0",
		TotalNodes:          3,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"executed_nodes":0`)
	assert.Contains(t, s, `"failed_nodes":0`)
	assert.Contains(t, s, `"percentage":0`)
	assert.NotContains(t, s, "current_node_id")
}

func TestNodeStatusPayload_JSON(t *testing.T) {
	payload := NodeStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeNodeStatus,
			JobID:     "job-300",
			Timestamp: "2026-03-01T12:00:00Z",
		},
		ExecutionInstanceID: "run-3",
		NodeID:              "n-7",
		NodeLabel:           "Summarize Findings",
		Status:              NodeStatusCompleted,
		DurationMS:          1523,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded NodeStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeNodeStatus, decoded.Type)
	assert.Equal(t, "job-300", decoded.JobID)
	assert.Equal(t, "run-3", decoded.ExecutionInstanceID)
	assert.Equal(t, "n-7", decoded.NodeID)
	assert.Equal(t, "Summarize Findings", decoded.NodeLabel)
	assert.Equal(t, NodeStatusCompleted, decoded.Status)
	assert.Equal(t, int64(1523), decoded.DurationMS)
	assert.Empty(t, decoded.Error)
}

func TestNodeStatusPayload_FailedCarriesError(t *testing.T) {
	payload := NodeStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeNodeStatus,
			JobID:     "job-301",
			Timestamp: "2026-03-01T12:00:00Z",
		},
		ExecutionInstanceID: "run-4",
		NodeID:              "n-2",
		NodeLabel:           "Validate Output",
		Status:              NodeStatusFailed,
		Error:               "assertion failed: output is empty",
		DurationMS:          88,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded NodeStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, NodeStatusFailed, decoded.Status)
	assert.Equal(t, "assertion failed: output is empty", decoded.Error)
}

func TestBasePayload_FieldNames(t *testing.T) {
	// The NOTIFY consumers and the truncation envelope both route on these
	// exact JSON keys.
	data, err := json.Marshal(BasePayload{
		Type:      "job.status",
		JobID:     "j",
		Timestamp: "ts",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"job.status","job_id":"j","timestamp":"ts"}`, string(data))
}
