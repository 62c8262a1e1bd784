package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests. It honors sinceID
// and limit so catchup assertions stay deterministic even with the
// auto-catchup that runs on every subscribe.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, ev := range m.events {
		if ev.ID <= sinceID {
			continue
		}
		out = append(out, ev)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	return setupTestManagerWith(t, &mockCatchupQuerier{})
}

func setupTestManagerWith(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
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
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)

	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "job:test-123"})

	// subscription.confirmed is sent only after the channel is live, so no
	// propagation wait is needed.
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "job:test-123", msg["channel"])

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("job:test-123"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2) // connection.established

	channel := "job:broadcast-test"
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1) // subscription.confirmed
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn2) // subscription.confirmed

	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, "test", msg1["type"])
	assert.Equal(t, "hello", msg1["data"])
	assert.Equal(t, "test", msg2["type"])
	assert.Equal(t, "hello", msg2["data"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_AutoCatchupOnSubscribe(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": EventTypeNodeStatus, "seq": float64(1)}},
		{ID: 11, Payload: map[string]any{"type": EventTypeNodeStatus, "seq": float64(2)}},
		{ID: 12, Payload: map[string]any{"type": EventTypeJobStatus, "seq": float64(3)}},
	}
	_, server := setupTestManagerWith(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "job:catchup-test"})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// The full history arrives immediately after the confirmation, in order,
	// with db_event_id injected from the row id.
	for i := 1; i <= 3; i++ {
		msg = readJSON(t, conn)
		assert.Equal(t, float64(i), msg["seq"])
		assert.Equal(t, float64(i+9), msg["db_event_id"])
	}

	// Explicit catchup from the last seen id returns nothing.
	lastEventID := 12
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "job:catchup-test", LastEventID: &lastEventID})

	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive events past the last seen id")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]any{"type": EventTypeNodeStatus, "seq": i},
		}
	}
	_, server := setupTestManagerWith(t, &mockCatchupQuerier{events: manyEvents})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "job:overflow-test"})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Exactly catchupLimit events, then the overflow marker.
	for i := 0; i < catchupLimit; i++ {
		msg = readJSON(t, conn)
		require.Equal(t, float64(i), msg["seq"])
	}
	msg = readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", msg["type"])
	assert.Equal(t, true, msg["has_more"])
	assert.Equal(t, "job:overflow-test", msg["channel"])
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A catchup query failure is logged but must not kill the connection.
	_, server := setupTestManagerWith(t, &mockCatchupQuerier{err: fmt.Errorf("database unreachable")})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "job:err-test"})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	lastEventID := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "job:err-test", LastEventID: &lastEventID})

	// Connection should still be alive — ping/pong works
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "job:concurrent-test"
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	// Broadcast 20 messages concurrently
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]any{"type": "concurrent", "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	// Read all 20 messages (order may vary due to concurrency)
	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_ConcurrentSubscribeSameChannel(t *testing.T) {
	// Many clients subscribing to the same channel at once: all must end up
	// confirmed and receiving broadcasts (the first subscriber gates the
	// shared channel state for the rest).
	manager, server := setupTestManager(t)

	const n = 8
	conns := make([]*websocket.Conn, n)
	channel := "job:stampede-test"

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		conns[i] = connectWS(t, server)
		readJSON(t, conns[i]) // connection.established
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(conn *websocket.Conn) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			data, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
			_ = conn.Write(ctx, websocket.MessageText, data)
		}(conns[i])
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		msg := readJSON(t, conns[i])
		assert.Equal(t, "subscription.confirmed", msg["type"], "client %d", i)
	}
	assert.Equal(t, n, manager.subscriberCount(channel))

	payload, _ := json.Marshal(map[string]string{"type": "fanout"})
	manager.Broadcast(channel, payload)
	for i := 0; i < n; i++ {
		msg := readJSON(t, conns[i])
		assert.Equal(t, "fanout", msg["type"], "client %d", i)
	}
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	// Should not panic
	payload, _ := json.Marshal(map[string]string{"type": "test"})
	manager.Broadcast("nonexistent-channel", payload)
}

func TestConnectionManager_MultipleChannels(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "job:ch1"})
	readJSON(t, conn) // subscription.confirmed
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "job:ch2"})
	readJSON(t, conn) // subscription.confirmed

	payload, _ := json.Marshal(map[string]string{"type": "test", "channel": "ch1"})
	manager.Broadcast("job:ch1", payload)

	msg := readJSON(t, conn)
	assert.Equal(t, "ch1", msg["channel"])

	payload2, _ := json.Marshal(map[string]string{"type": "test", "channel": "ch2"})
	manager.Broadcast("job:ch2", payload2)

	msg2 := readJSON(t, conn)
	assert.Equal(t, "ch2", msg2["channel"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "job:unsub-test"
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})

	// Unsubscribe sends no acknowledgement; poll the registry instead.
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast — should NOT be received
	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()

	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// Client subscribed to ch1 should NOT receive ch2 broadcasts
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2) // connection.established

	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: "job:ch1"})
	readJSON(t, conn1) // subscription.confirmed
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: "job:ch2"})
	readJSON(t, conn2) // subscription.confirmed

	payload1, _ := json.Marshal(map[string]string{"type": "test", "target": "ch1"})
	manager.Broadcast("job:ch1", payload1)

	msg := readJSON(t, conn1)
	assert.Equal(t, "ch1", msg["target"])

	// conn2 should NOT receive ch1's message — verify with timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive ch1 broadcast")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribe with empty channel should return error
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Unsubscribe with empty channel should return error
	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Catchup with empty channel should return error
	lastEventID := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "", LastEventID: &lastEventID})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection should still be alive after validation errors
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	channel := "job:cleanup-test"
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	// Close the connection
	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond, "connection should be cleaned up")

	// Broadcast should not panic
	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(channel, payload)
	})
}
