package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseChunk(content string) string {
	return fmt.Sprintf(`data: {"choices":[{"delta":{"content":%q}}]}`+"\n\n", content)
}

func TestGateway_StreamComplete(t *testing.T) {
	t.Run("yields deltas until DONE", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			flusher := w.(http.Flusher)

			_, _ = fmt.Fprint(w, ": keepalive\n\n")
			_, _ = fmt.Fprint(w, sseChunk("Hello"))
			_, _ = fmt.Fprint(w, sseChunk(", "))
			_, _ = fmt.Fprint(w, sseChunk("world"))
			_, _ = fmt.Fprint(w, `data: {"choices":[{"delta":{},"finish_reason":"stop"}]}`+"\n\n")
			_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
			flusher.Flush()
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		deltas, errs := g.StreamComplete(context.Background(), &CompletionRequest{
			Messages: []Message{{Role: RoleUser, Content: "hi"}},
		})

		var got string
		for delta := range deltas {
			got += delta
		}
		assert.Equal(t, "Hello, world", got)
		assert.NoError(t, <-errs)
	})

	t.Run("stream request carries stream flag", func(t *testing.T) {
		var sawStream bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req CompletionRequest
			_ = jsonDecode(r, &req)
			sawStream = req.Stream
			_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		deltas, errs := g.StreamComplete(context.Background(), &CompletionRequest{})
		for range deltas {
		}
		require.NoError(t, <-errs)
		assert.True(t, sawStream)
	})

	t.Run("http error surfaces before any delta", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		deltas, errs := g.StreamComplete(context.Background(), &CompletionRequest{})
		for range deltas {
			t.Fatal("no deltas expected")
		}
		err := <-errs
		require.Error(t, err)
		assert.Equal(t, KindProviderError, KindOf(err))
	})

	t.Run("cancellation closes the stream", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			flusher := w.(http.Flusher)
			_, _ = fmt.Fprint(w, sseChunk("first"))
			flusher.Flush()
			// Hold the stream open until the client goes away.
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		g := newTestGateway(t, server.URL, nil)

		ctx, cancel := context.WithCancel(context.Background())
		deltas, errs := g.StreamComplete(ctx, &CompletionRequest{})

		select {
		case delta := <-deltas:
			assert.Equal(t, "first", delta)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for first delta")
		}

		cancel()

		// The delta channel must close promptly after cancellation.
		deadline := time.After(2 * time.Second)
		for {
			select {
			case _, open := <-deltas:
				if !open {
					err := <-errs
					require.Error(t, err)
					return
				}
			case <-deadline:
				t.Fatal("stream did not close after cancel")
			}
		}
	})
}

// jsonDecode keeps handler bodies short.
func jsonDecode(r *http.Request, v interface{}) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
