package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/config"
)

// newTestGateway builds a gateway pointed at the given fake provider with
// an API-key credential, so no IAM exchange happens unless a test asks
// for one.
func newTestGateway(t *testing.T, baseURL string, breakerCfg *config.BreakerConfig) *Gateway {
	t.Helper()
	t.Setenv("TEST_PROVIDER_API_KEY", "test-key")

	provider := &config.ProviderConfig{
		BaseURL:       baseURL,
		APIKeyEnv:     "TEST_PROVIDER_API_KEY",
		OAuthTokenEnv: "TEST_PROVIDER_OAUTH_TOKEN",
		DefaultModel:  "test-model",
	}
	if breakerCfg == nil {
		breakerCfg = config.DefaultBreakerConfig()
	}
	return New(provider, breakerCfg, config.DefaultIAMConfig())
}

func completionBody(content string) string {
	resp := CompletionResponse{
		ID: "cmpl-1",
		Choices: []Choice{
			{Message: ChoiceMessage{Role: RoleAssistant, Content: content}, FinishReason: "stop"},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGateway_Complete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		var gotAuth, gotPath string
		var gotReq CompletionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody("hello from provider")))
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		resp, err := g.Complete(context.Background(), &CompletionRequest{
			Messages: []Message{{Role: RoleUser, Content: "hi"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "hello from provider", resp.Content())
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "/chat/completions", gotPath)
		// Empty model falls back to the configured default.
		assert.Equal(t, "test-model", gotReq.Model)
	})

	t.Run("401 classifies as auth rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindAuthRejected, KindOf(err))
	})

	t.Run("400 classifies as bad request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindBadRequest, KindOf(err))
	})

	t.Run("500 classifies as provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindProviderError, KindOf(err))
	})

	t.Run("transport failure classifies as unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close() // nothing listening anymore

		g := newTestGateway(t, server.URL, nil)

		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindProviderUnavailable, KindOf(err))
	})

	t.Run("missing credentials rejected without a wire call", func(t *testing.T) {
		g := newTestGateway(t, "http://unused.invalid", nil)
		t.Setenv("TEST_PROVIDER_API_KEY", "")

		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindAuthRejected, KindOf(err))
	})
}

func TestGateway_Breaker(t *testing.T) {
	t.Run("five consecutive 5xx open the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, &config.BreakerConfig{FailureThreshold: 5, CooldownSeconds: 60})

		for i := 0; i < 5; i++ {
			_, err := g.Complete(context.Background(), &CompletionRequest{})
			require.Error(t, err)
			assert.Equal(t, KindProviderError, KindOf(err), "call %d should hit the provider", i+1)
		}

		// Sixth call fails fast with the remaining cooldown attached.
		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindProviderUnavailable, KindOf(err))

		var ge *Error
		require.ErrorAs(t, err, &ge)
		assert.InDelta(t, 60, ge.RetryAfterSeconds, 2)
		assert.Equal(t, "open", g.BreakerState())
	})

	t.Run("half-open success closes the breaker", func(t *testing.T) {
		var failing atomic.Bool
		failing.Store(true)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if failing.Load() {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, &config.BreakerConfig{FailureThreshold: 5, CooldownSeconds: 1})

		for i := 0; i < 5; i++ {
			_, err := g.Complete(context.Background(), &CompletionRequest{})
			require.Error(t, err)
		}
		assert.Equal(t, "open", g.BreakerState())

		failing.Store(false)
		time.Sleep(1100 * time.Millisecond)

		resp, err := g.Complete(context.Background(), &CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Content())
		assert.Equal(t, "closed", g.BreakerState())
	})

	t.Run("half-open failure re-opens the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, &config.BreakerConfig{FailureThreshold: 5, CooldownSeconds: 1})

		for i := 0; i < 5; i++ {
			_, _ = g.Complete(context.Background(), &CompletionRequest{})
		}
		time.Sleep(1100 * time.Millisecond)

		// Trial call hits the provider and fails.
		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindProviderError, KindOf(err))
		assert.Equal(t, "open", g.BreakerState())

		// And the very next call fails fast again.
		_, err = g.Complete(context.Background(), &CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, KindProviderUnavailable, KindOf(err))
	})

	t.Run("auth failures never trip the breaker", func(t *testing.T) {
		var unauthorized atomic.Bool
		unauthorized.Store(true)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if unauthorized.Load() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, &config.BreakerConfig{FailureThreshold: 5, CooldownSeconds: 60})

		for i := 0; i < 10; i++ {
			_, err := g.Complete(context.Background(), &CompletionRequest{})
			require.Error(t, err)
			assert.Equal(t, KindAuthRejected, KindOf(err))
		}
		assert.Equal(t, "closed", g.BreakerState())

		unauthorized.Store(false)
		_, err := g.Complete(context.Background(), &CompletionRequest{})
		require.NoError(t, err)
	})
}

func TestGateway_ListModels(t *testing.T) {
	t.Run("listing is cached", func(t *testing.T) {
		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/models", r.URL.Path)
			calls.Add(1)
			_, _ = w.Write([]byte(`{"data":[{"id":"model-a"},{"id":"model-b"}]}`))
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		models, err := g.ListModels(context.Background())
		require.NoError(t, err)
		require.Len(t, models, 2)
		assert.Equal(t, "model-a", models[0].ID)

		// Second call served from cache.
		_, err = g.ListModels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("404 propagates classified", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		g := newTestGateway(t, server.URL, nil)

		_, err := g.ListModels(context.Background())
		require.Error(t, err)
		assert.Equal(t, KindBadRequest, KindOf(err))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindTimeout, KindOf(&Error{Kind: KindTimeout}))
	assert.Equal(t, Kind(""), KindOf(context.Canceled))
	assert.Equal(t, Kind(""), KindOf(nil))
}
