package events_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/assessflow/pipeline/pkg/events"
	"github.com/assessflow/pipeline/pkg/services"
	"github.com/assessflow/pipeline/test/util"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	jobID        string
	channel      string // job:<jobID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	jobID := uuid.New().String()
	channel := JobChannel(jobID)

	// Real components
	publisher := NewEventPublisher(db)
	eventService := services.NewEventService(entClient)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		jobID:        jobID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribe connects a WebSocket, reads connection.established, subscribes
// to the given channel, and reads subscription.confirmed. The confirmation
// is sent only after the PG LISTEN is active, so no propagation polling is
// needed before publishing.
func (env *streamingTestEnv) subscribe(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	return conn
}

func (env *streamingTestEnv) nodeStatus(nodeID, status string) NodeStatusPayload {
	return NodeStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeNodeStatus,
			JobID:     env.jobID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ExecutionInstanceID: "run-1",
		NodeID:              nodeID,
		NodeLabel:           "Node " + nodeID,
		Status:              status,
		DurationMS:          5,
	}
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.jobID, env.nodeStatus("n-1", NodeStatusCompleted)))
	require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.jobID, env.nodeStatus("n-2", NodeStatusFailed)))

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.jobID, events[0].JobID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeNodeStatus, events[0].Payload["type"])
	assert.Equal(t, "n-1", events[0].Payload["node_id"])

	assert.Equal(t, "n-2", events[1].Payload["node_id"])
	assert.Equal(t, NodeStatusFailed, events[1].Payload["status"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_JobStatusPersistsOnlyJobChannel(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishJobStatus(ctx, env.jobID, JobStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobStatus,
			JobID:     env.jobID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:   "processing",
		WorkerID: "worker-77",
	})
	require.NoError(t, err)

	// One persisted row, on the job channel.
	jobEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, jobEvents, 1)
	assert.Equal(t, "processing", jobEvents[0].Payload["status"])

	// The global jobs copy is transient — nothing persisted there.
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalJobsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "global jobs channel copies should not be persisted")
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishJobProgress(ctx, env.jobID, JobProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobProgress,
			JobID:     env.jobID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ExecutionInstanceID: "run-1",
		TotalNodes:          4,
		ExecutedNodes:       1,
		Percentage:          25,
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribe(t, env.channel)

	require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.jobID, env.nodeStatus("n-ws", NodeStatusCompleted)))

	// The event arrives via pg_notify → listener → manager.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNodeStatus, msg["type"])
	assert.Equal(t, "n-ws", msg["node_id"])
	assert.Equal(t, env.jobID, msg["job_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_GlobalJobsFanout(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscriber on the global channel sees status copies for every job
	// without knowing job ids up front.
	conn := env.subscribe(t, GlobalJobsChannel)

	err := env.publisher.PublishJobStatus(ctx, env.jobID, JobStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobStatus,
			JobID:     env.jobID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status: "completed",
	})
	require.NoError(t, err)

	// The global channel is shared database-wide, so tolerate events from
	// other runs and wait for ours.
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "did not receive global job.status for %s", env.jobID)
		msg := readJSONTimeout(t, conn, 5*time.Second)
		if msg["job_id"] != env.jobID {
			continue
		}
		assert.Equal(t, EventTypeJobStatus, msg["type"])
		assert.Equal(t, "completed", msg["status"])
		return
	}
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribe(t, env.channel)

	err := env.publisher.PublishJobProgress(ctx, env.jobID, JobProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeJobProgress,
			JobID:     env.jobID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ExecutionInstanceID: "run-1",
		TotalNodes:          8,
		ExecutedNodes:       3,
		FailedNodes:         1,
		Percentage:          50,
		CurrentNodeID:       "n-4",
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeJobProgress, msg["type"])
	assert.Equal(t, float64(50), msg["percentage"])
	assert.Equal(t, "n-4", msg["current_node_id"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_OversizedEventTruncatedOnWire(t *testing.T) {
	// A payload past the NOTIFY limit arrives as a truncation envelope on
	// the socket, while the full payload stays queryable from the DB.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribe(t, env.channel)

	payload := env.nodeStatus("n-big", NodeStatusFailed)
	payload.Error = strings.Repeat("e", 9000)
	require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.jobID, payload))

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNodeStatus, msg["type"])
	assert.Equal(t, env.jobID, msg["job_id"])
	assert.Equal(t, true, msg["truncated"])
	require.NotNil(t, msg["db_event_id"])

	// Catchup path returns the full event.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, strings.Repeat("e", 9000), events[0].Payload["error"])
	assert.Equal(t, events[0].ID, int(msg["db_event_id"].(float64)))
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		p := env.nodeStatus(uuid.New().String(), NodeStatusCompleted)
		p.DurationMS = int64(i)
		require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.jobID, p))
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection). Subscribing
	// auto-catches-up the full history.
	conn := env.subscribe(t, env.channel)

	for i := 1; i <= 3; i++ {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeNodeStatus, msg["type"])
		assert.Equal(t, float64(i), msg["duration_ms"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["duration_ms"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
