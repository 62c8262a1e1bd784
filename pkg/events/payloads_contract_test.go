package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJobChannelPayloads_ContainJobID is a contract test between the Go
// backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.job_id` in the
// JSON payload. ANY payload broadcast on a job-specific channel (job:{id})
// or the global jobs channel MUST include a non-empty `job_id` field —
// otherwise the frontend silently drops it.
//
// All payload structs embed BasePayload which guarantees job_id is present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.JobID
func TestJobChannelPayloads_ContainJobID(t *testing.T) {
	const testJobID = "job-contract-test"

	// Every payload type that flows through JobChannel(jobID) or
	// GlobalJobsChannel. If you add a new payload that goes through a job
	// channel, add it here — the test will fail if job_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "JobStatusPayload",
			payload: JobStatusPayload{
				BasePayload: BasePayload{
					Type:      EventTypeJobStatus,
					JobID:     testJobID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				Status:   "processing",
				WorkerID: "worker-1",
			},
		},
		{
			name: "JobProgressPayload",
			payload: JobProgressPayload{
				BasePayload: BasePayload{
					Type:      EventTypeJobProgress,
					JobID:     testJobID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				ExecutionInstanceID: "run-1",
				TotalNodes:          5,
				ExecutedNodes:       2,
				Percentage:          40,
			},
		},
		{
			name: "NodeStatusPayload",
			payload: NodeStatusPayload{
				BasePayload: BasePayload{
					Type:      EventTypeNodeStatus,
					JobID:     testJobID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				ExecutionInstanceID: "run-1",
				NodeID:              "n-1",
				NodeLabel:           "Prompt",
				Status:              NodeStatusCompleted,
				DurationMS:          10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))

			jobID, ok := decoded["job_id"].(string)
			require.True(t, ok, "payload must contain a string job_id field")
			assert.Equal(t, testJobID, jobID)

			typ, ok := decoded["type"].(string)
			require.True(t, ok, "payload must contain a string type field")
			assert.NotEmpty(t, typ)
		})
	}
}

// TestTruncationEnvelope_ContainsRoutingFields pins the shape of the
// truncated NOTIFY envelope: clients that receive it must be able to route
// it (type, job_id) and fetch the full event by db_event_id.
func TestTruncationEnvelope_ContainsRoutingFields(t *testing.T) {
	big := make([]byte, 9000)
	for i := range big {
		big[i] = 'z'
	}
	payload, err := json.Marshal(NodeStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeNodeStatus,
			JobID:     "job-envelope",
			Timestamp: "2026-01-01T00:00:00Z",
		},
		ExecutionInstanceID: "run-1",
		NodeID:              "n-1",
		NodeLabel:           "Prompt",
		Status:              NodeStatusFailed,
		Error:               string(big),
	})
	require.NoError(t, err)

	result, err := injectDBEventIDAndTruncate(payload, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))

	assert.Equal(t, EventTypeNodeStatus, envelope["type"])
	assert.Equal(t, "job-envelope", envelope["job_id"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "error", "bulk fields must be dropped from the envelope")
}
