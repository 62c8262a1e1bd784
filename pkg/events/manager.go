package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup response.
// If more events were missed, a catchup.overflow message tells the client to
// do a full REST reload instead of paginating catchup requests.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber of a channel arrives. Without it a stalled connection would block
// the client's read loop indefinitely.
const listenTimeout = 10 * time.Second

// CatchupEvent holds one row returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier queries persisted events for catchup. Implemented by
// services.EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// client is one WebSocket connection. channels is touched only by the
// goroutine running the connection's read loop, so it needs no lock.
type client struct {
	id       string
	conn     *websocket.Conn
	channels map[string]bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// channelState tracks the local subscribers of one NOTIFY channel.
// ready is closed once the backing LISTEN attempt finished; listenErr is
// written before the close when the attempt failed. Subscribers that find
// the channel already registered wait on ready instead of issuing their own
// LISTEN, so nobody is confirmed before the channel is actually live.
type channelState struct {
	members   map[string]*client
	ready     chan struct{}
	listenErr error
}

// ConnectionManager owns all WebSocket clients of this process and their
// channel subscriptions, and bridges them to the PostgreSQL LISTEN stream.
type ConnectionManager struct {
	mu       sync.RWMutex
	clients  map[string]*client
	channels map[string]*channelState

	catchup      CatchupQuerier
	writeTimeout time.Duration

	listenerMu sync.RWMutex
	listener   *NotifyListener
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		clients:      make(map[string]*client),
		channels:     make(map[string]*channelState),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN. Called
// once during startup after both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs the lifecycle of one WebSocket connection. Called by
// the HTTP handler after the upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &client{
		id:       uuid.New().String(),
		conn:     conn,
		channels: make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}

	m.mu.Lock()
	m.clients[c.id] = c
	m.mu.Unlock()
	defer m.dropClient(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends an event payload to every connection subscribed to channel.
// Connection pointers are snapshotted under the lock and written to outside
// it, so a slow client cannot stall register/unregister.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.mu.RLock()
	st, exists := m.channels[channel]
	if !exists {
		m.mu.RUnlock()
		return
	}
	targets := make([]*client, 0, len(st.members))
	for _, c := range st.members {
		targets = append(targets, c)
	}
	m.mu.RUnlock()

	for _, c := range targets {
		if err := m.sendRaw(c, event); err != nil {
			slog.Warn("Failed to send to WebSocket client", "connection_id", c.id, "error", err)
		}
	}
}

// ActiveConnections returns the number of connected WebSocket clients.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// subscriberCount reports the subscribers of a channel. Tests poll it
// instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.channels[channel]; ok {
		return len(st.members)
	}
	return 0
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *client, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up from the beginning so late subscribers see the
		// full persisted history of the channel.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers the client on a channel. The first subscriber issues
// the LISTEN synchronously and publishes the outcome through channelState;
// everyone else waits on ready. Either way, a nil return guarantees the PG
// LISTEN is active, which closes the gap where events published between
// subscription.confirmed and LISTEN would be lost.
func (m *ConnectionManager) subscribe(c *client, channel string) error {
	m.mu.Lock()
	st, exists := m.channels[channel]
	owner := false
	if !exists {
		st = &channelState{members: make(map[string]*client), ready: make(chan struct{})}
		m.channels[channel] = st
		owner = true
	}
	st.members[c.id] = c
	m.mu.Unlock()

	if owner {
		st.listenErr = m.startListen(channel)
		close(st.ready)
		if st.listenErr != nil {
			m.dropChannel(channel, st)
		}
	} else {
		select {
		case <-st.ready:
		case <-c.ctx.Done():
			return c.ctx.Err()
		}
	}

	if st.listenErr != nil {
		return fmt.Errorf("LISTEN on channel %s: %w", channel, st.listenErr)
	}

	c.channels[channel] = true
	return nil
}

func (m *ConnectionManager) startListen(channel string) error {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.Subscribe(ctx, channel); err != nil {
		slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
		return err
	}
	return nil
}

// dropChannel removes a channel entry after a failed LISTEN, but only if it
// still maps to the same state; a later subscribe may have re-created it.
func (m *ConnectionManager) dropChannel(channel string, st *channelState) {
	m.mu.Lock()
	if m.channels[channel] == st {
		delete(m.channels, channel)
	}
	m.mu.Unlock()
}

// unsubscribe removes the client from a channel and stops the LISTEN when the
// last subscriber leaves.
func (m *ConnectionManager) unsubscribe(c *client, channel string) {
	m.mu.Lock()
	st, exists := m.channels[channel]
	last := false
	if exists {
		delete(st.members, c.id)
		if len(st.members) == 0 {
			delete(m.channels, channel)
			last = true
		}
	}
	m.mu.Unlock()

	delete(c.channels, channel)

	if !last {
		return
	}

	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}

	// UNLISTEN runs on a goroutine that re-checks the registry first: a
	// rapid unsubscribe/resubscribe cycle re-creates the channel entry, and
	// dropping the LISTEN then would silence the new subscriber.
	go func() {
		m.mu.RLock()
		_, resubscribed := m.channels[channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// handleCatchup sends the persisted events of channel with id > sinceID.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *client, channel string, sinceID int) {
	if m.catchup == nil {
		return
	}

	// Query one past the limit to detect overflow.
	events, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	overflow := len(events) > catchupLimit
	if overflow {
		events = events[:catchupLimit]
	}

	// Stored payloads carry no db_event_id (it is injected into the NOTIFY
	// copy at publish time), so add it here from the row id.
	for _, ev := range events {
		ev.Payload["db_event_id"] = ev.ID
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, data); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.id, "error", err)
			return
		}
	}

	if overflow {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// dropClient removes a disconnected client and all its subscriptions.
func (m *ConnectionManager) dropClient(c *client) {
	for ch := range c.channels {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.clients, c.id)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *client, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.id, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.id, "error", err)
	}
}

// sendRaw writes raw bytes to one client with the configured write timeout.
func (m *ConnectionManager) sendRaw(c *client, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
