package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(JobStatusPayload{
			BasePayload: BasePayload{
				Type:  EventTypeJobStatus,
				JobID: "abc-123",
			},
			Status: "processing",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeJobStatus)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longError := make([]byte, 8000)
		for i := range longError {
			longError[i] = 'a'
		}
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:  EventTypeNodeStatus,
				JobID: "abc-123",
			},
			NodeID: "node-1",
			Status: NodeStatusFailed,
			Error:  string(longError),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(JobProgressPayload{
			BasePayload: BasePayload{
				Type: EventTypeJobProgress,
			},
			TotalNodes: 3,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longError := make([]byte, 8000)
		for i := range longError {
			longError[i] = 'x'
		}
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:  EventTypeNodeStatus,
				JobID: "job-789",
			},
			NodeID: "node-456",
			Status: NodeStatusFailed,
			Error:  string(longError),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeNodeStatus)
		assert.Contains(t, result, "job-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes. Marshal an
		// empty struct first to measure the overhead of the struct's fixed
		// fields; the 20-byte margin keeps the test from flipping if new
		// fields with non-zero defaults are added to NodeStatusPayload.
		base, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		errSize := 7900 - len(base) - 20
		errText := make([]byte, errSize)
		for i := range errText {
			errText[i] = 'b'
		}
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{Type: "t"},
			Error:       string(errText),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(JobStatusPayload{
			BasePayload: BasePayload{
				Type:  EventTypeJobStatus,
				JobID: "job-1",
			},
			Status: "queued",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "job-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longError := make([]byte, 8000)
		for i := range longError {
			longError[i] = 'x'
		}
		payload, _ := json.Marshal(NodeStatusPayload{
			BasePayload: BasePayload{
				Type:  EventTypeNodeStatus,
				JobID: "job-789",
			},
			NodeID: "node-456",
			Status: NodeStatusFailed,
			Error:  string(longError),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "job-789")
	})

	t.Run("rejects malformed payload bytes", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not-json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
