package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// notifyWaitSlice bounds each WaitForNotification call so the loop can
	// periodically service LISTEN/UNLISTEN requests on the same connection.
	notifyWaitSlice = 100 * time.Millisecond

	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// subRequest asks the receive loop to LISTEN or UNLISTEN a channel.
// All channel management goes through the loop because pgx connections
// do not tolerate Exec concurrent with WaitForNotification.
type subRequest struct {
	channel string
	listen  bool
	reply   chan error
}

// NotifyListener owns the dedicated PostgreSQL LISTEN connection and fans
// incoming NOTIFY payloads out to the ConnectionManager. A single goroutine
// owns the connection for its whole life; Subscribe and Unsubscribe talk to
// it over a request channel and wait for the reply.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager

	requests chan subRequest
	started  atomic.Bool
	stopLoop context.CancelFunc
	done     chan struct{}
}

// NewNotifyListener creates a listener for the given connection string.
// Notifications are dispatched to manager.Broadcast.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		requests:   make(chan subRequest, 16),
	}
}

// Start dials the dedicated LISTEN connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.done = make(chan struct{})
	l.started.Store(true)

	go l.run(loopCtx, conn)

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe starts LISTENing on channel. Blocks until the receive loop has
// executed the LISTEN, so after it returns no notification on the channel
// can be missed. Subscribing twice is a no-op.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	return l.request(ctx, subRequest{channel: channel, listen: true, reply: make(chan error, 1)})
}

// Unsubscribe stops LISTENing on channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	return l.request(ctx, subRequest{channel: channel, listen: false, reply: make(chan error, 1)})
}

func (l *NotifyListener) request(ctx context.Context, req subRequest) error {
	if !l.started.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	select {
	case l.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals the receive loop to exit and waits for it to close the
// connection and finish.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)
	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.done != nil {
		select {
		case <-l.done:
		case <-ctx.Done():
		}
	}
}

// run owns conn until shutdown. It alternates between servicing subscription
// requests and waiting (briefly) for notifications, redialing with backoff
// when the connection drops.
func (l *NotifyListener) run(ctx context.Context, conn *pgx.Conn) {
	defer close(l.done)
	defer func() {
		if conn != nil {
			_ = conn.Close(context.Background())
		}
	}()

	active := make(map[string]struct{})

	for {
		if ctx.Err() != nil {
			return
		}

		l.serveRequests(ctx, conn, active)

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitSlice)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		switch {
		case err == nil:
			l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
		case ctx.Err() != nil:
			return
		case waitCtx.Err() != nil:
			// Wait slice elapsed; loop back for pending requests.
		default:
			slog.Error("NOTIFY receive error", "error", err)
			conn = l.redial(ctx, conn, active)
			if conn == nil {
				return
			}
		}
	}
}

// serveRequests drains pending LISTEN/UNLISTEN requests. A request whose
// channel is already in the desired state succeeds without touching the
// connection.
func (l *NotifyListener) serveRequests(ctx context.Context, conn *pgx.Conn, active map[string]struct{}) {
	for {
		select {
		case req := <-l.requests:
			req.reply <- l.applyRequest(ctx, conn, active, req)
		default:
			return
		}
	}
}

func (l *NotifyListener) applyRequest(ctx context.Context, conn *pgx.Conn, active map[string]struct{}, req subRequest) error {
	_, subscribed := active[req.channel]
	if req.listen == subscribed {
		return nil
	}

	verb := "UNLISTEN "
	if req.listen {
		verb = "LISTEN "
	}
	if _, err := conn.Exec(ctx, verb+pgx.Identifier{req.channel}.Sanitize()); err != nil {
		return fmt.Errorf("%s%s failed: %w", verb, req.channel, err)
	}

	if req.listen {
		active[req.channel] = struct{}{}
		slog.Debug("Subscribed to NOTIFY channel", "channel", req.channel)
	} else {
		delete(active, req.channel)
	}
	return nil
}

// redial closes the broken connection and dials a new one with exponential
// backoff, re-issuing LISTEN for every active channel. Returns nil only when
// ctx is cancelled.
func (l *NotifyListener) redial(ctx context.Context, old *pgx.Conn, active map[string]struct{}) *pgx.Conn {
	if old != nil {
		_ = old.Close(ctx)
	}

	delay := reconnectBaseDelay
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", delay)
			delay = min(delay*2, reconnectMaxDelay)
			continue
		}

		for ch := range active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}

		slog.Info("NotifyListener reconnected")
		return conn
	}
}
