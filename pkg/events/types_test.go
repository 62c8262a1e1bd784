package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobChannel(t *testing.T) {
	tests := []struct {
		name  string
		jobID string
		want  string
	}{
		{
			name:  "formats job channel correctly",
			jobID: "abc-123",
			want:  "job:abc-123",
		},
		{
			name:  "handles UUID format",
			jobID: "550e8400-e29b-41d4-a716-446655440000",
			want:  "job:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "handles empty string",
			jobID: "",
			want:  "job:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JobChannel(tt.jobID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeJobStatus,
		EventTypeNodeStatus,
		EventTypeJobProgress,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestNodeStatusConstants(t *testing.T) {
	assert.Equal(t, "completed", NodeStatusCompleted)
	assert.Equal(t, "failed", NodeStatusFailed)
	assert.NotEqual(t, NodeStatusCompleted, NodeStatusFailed)
}

func TestGlobalJobsChannel(t *testing.T) {
	assert.Equal(t, "jobs", GlobalJobsChannel)
}

func TestClientMessage_Unmarshal(t *testing.T) {
	t.Run("catchup carries last_event_id", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal(
			[]byte(`{"action":"catchup","channel":"job:abc","last_event_id":42}`), &msg))
		assert.Equal(t, "catchup", msg.Action)
		assert.Equal(t, "job:abc", msg.Channel)
		require.NotNil(t, msg.LastEventID)
		assert.Equal(t, 42, *msg.LastEventID)
	})

	t.Run("absent last_event_id stays nil", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal(
			[]byte(`{"action":"subscribe","channel":"jobs"}`), &msg))
		assert.Equal(t, "subscribe", msg.Action)
		assert.Nil(t, msg.LastEventID)
	})
}
