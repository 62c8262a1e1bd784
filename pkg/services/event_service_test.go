package services

import (
	"context"
	"testing"
	"time"

	"github.com/assessflow/pipeline/pkg/models"
	testdb "github.com/assessflow/pipeline/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("creates event successfully", func(t *testing.T) {
		jobID := uuid.New().String()
		req := models.CreateEventRequest{
			JobID:   jobID,
			Channel: "job:" + jobID,
			Payload: map[string]any{"type": "job.status", "status": "queued"},
		}

		event, err := eventService.CreateEvent(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.Channel, event.Channel)
		assert.Equal(t, jobID, event.JobID)
		assert.NotNil(t, event.Payload)
		assert.NotNil(t, event.CreatedAt)
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	jobID := uuid.New().String()
	channel := "job:" + jobID

	// Create events
	evt1, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		JobID:   jobID,
		Channel: channel,
		Payload: map[string]any{"seq": 1},
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	evt2, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		JobID:   jobID,
		Channel: channel,
		Payload: map[string]any{"seq": 2},
	})
	require.NoError(t, err)

	t.Run("retrieves events since ID", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, evt2.ID, events[0].ID)
	})

	t.Run("retrieves all events when sinceID is 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("respects limit parameter", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("ignores other channels", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, "job:"+uuid.New().String(), 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 0)
	})
}

func TestEventService_CleanupJobEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	jobID := uuid.New().String()
	otherJobID := uuid.New().String()

	// Create events for two jobs
	for i := 0; i < 3; i++ {
		_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			JobID:   jobID,
			Channel: "job:" + jobID,
			Payload: map[string]any{"seq": i},
		})
		require.NoError(t, err)
	}
	_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		JobID:   otherJobID,
		Channel: "job:" + otherJobID,
		Payload: map[string]any{"seq": 0},
	})
	require.NoError(t, err)

	t.Run("cleans up all job events", func(t *testing.T) {
		count, err := eventService.CleanupJobEvents(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		// Verify deleted
		events, err := eventService.GetEventsSince(ctx, "job:"+jobID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 0)

		// Other job untouched
		events, err = eventService.GetEventsSince(ctx, "job:"+otherJobID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestEventService_CleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	jobID := uuid.New().String()

	// Create event directly with old created_at (bypassing service)
	oldTime := time.Now().Add(-48 * time.Hour)
	_, err := client.Event.Create().
		SetJobID(jobID).
		SetChannel("job:" + jobID).
		SetPayload(map[string]any{}).
		SetCreatedAt(oldTime).
		Save(ctx)
	require.NoError(t, err)

	// And one fresh event that must survive
	_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{
		JobID:   jobID,
		Channel: "job:" + jobID,
		Payload: map[string]any{"fresh": true},
	})
	require.NoError(t, err)

	t.Run("cleans up old events only", func(t *testing.T) {
		count, err := eventService.CleanupExpiredEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		events, err := eventService.GetEventsSince(ctx, "job:"+jobID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}
