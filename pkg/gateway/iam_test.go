package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIAM is a token-exchange endpoint that counts exchanges and hands
// out sequentially numbered tokens.
func fakeIAM(t *testing.T, exchanges *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("grant_type") != "urn:ibm:params:oauth:grant-type:apikey" || r.PostForm.Get("apikey") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		n := exchanges.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"iam-token-%d","token_type":"Bearer","expires_in":43200}`, n)
	}))
}

func TestTokenCache_Bearer(t *testing.T) {
	t.Run("second call served from cache", func(t *testing.T) {
		var exchanges atomic.Int64
		server := fakeIAM(t, &exchanges)
		defer server.Close()

		cache := newTokenCache(server.URL, 12*time.Hour, 30*time.Minute)

		tok1, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, "iam-token-1", tok1)

		tok2, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, tok1, tok2)
		assert.Equal(t, int64(1), exchanges.Load())
	})

	t.Run("distinct oauth tokens get distinct entries", func(t *testing.T) {
		var exchanges atomic.Int64
		server := fakeIAM(t, &exchanges)
		defer server.Close()

		cache := newTokenCache(server.URL, 12*time.Hour, 30*time.Minute)

		tok1, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		tok2, err := cache.Bearer(context.Background(), "oauth-xyz")
		require.NoError(t, err)

		assert.NotEqual(t, tok1, tok2)
		assert.Equal(t, int64(2), exchanges.Load())
	})

	t.Run("refresh window triggers a new exchange", func(t *testing.T) {
		var exchanges atomic.Int64
		server := fakeIAM(t, &exchanges)
		defer server.Close()

		cache := newTokenCache(server.URL, 12*time.Hour, 30*time.Minute)

		base := time.Now()
		var offset time.Duration
		var offsetMu sync.Mutex
		cache.now = func() time.Time {
			offsetMu.Lock()
			defer offsetMu.Unlock()
			return base.Add(offset)
		}
		advance := func(d time.Duration) {
			offsetMu.Lock()
			offset = d
			offsetMu.Unlock()
		}

		_, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, int64(1), exchanges.Load())

		// Well inside the TTL: still cached.
		advance(6 * time.Hour)
		_, err = cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, int64(1), exchanges.Load())

		// 11h40m after issue the token is inside the 30m refresh window.
		advance(11*time.Hour + 40*time.Minute)
		tok, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, "iam-token-2", tok)
		assert.Equal(t, int64(2), exchanges.Load())

		// The refreshed token is cached again.
		advance(11*time.Hour + 41*time.Minute)
		_, err = cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, int64(2), exchanges.Load())
	})

	t.Run("concurrent misses collapse to one exchange", func(t *testing.T) {
		var exchanges atomic.Int64
		server := fakeIAM(t, &exchanges)
		defer server.Close()

		cache := newTokenCache(server.URL, 12*time.Hour, 30*time.Minute)

		var wg sync.WaitGroup
		tokens := make([]string, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tok, err := cache.Bearer(context.Background(), "oauth-abc")
				assert.NoError(t, err)
				tokens[i] = tok
			}(i)
		}
		wg.Wait()

		for _, tok := range tokens {
			assert.Equal(t, tokens[0], tok)
		}
		assert.Equal(t, int64(1), exchanges.Load())
	})

	t.Run("exchange failure serves unexpired cached token", func(t *testing.T) {
		var failing atomic.Bool
		var exchanges atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if failing.Load() {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			n := exchanges.Add(1)
			fmt.Fprintf(w, `{"access_token":"iam-token-%d","expires_in":43200}`, n)
		}))
		defer server.Close()

		cache := newTokenCache(server.URL, 12*time.Hour, 30*time.Minute)

		base := time.Now()
		var offset time.Duration
		var offsetMu sync.Mutex
		cache.now = func() time.Time {
			offsetMu.Lock()
			defer offsetMu.Unlock()
			return base.Add(offset)
		}

		tok, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)

		// Inside the refresh window with a broken exchange endpoint: the
		// stale token is still served because it has not expired.
		failing.Store(true)
		offsetMu.Lock()
		offset = 11*time.Hour + 40*time.Minute
		offsetMu.Unlock()

		tok2, err := cache.Bearer(context.Background(), "oauth-abc")
		require.NoError(t, err)
		assert.Equal(t, tok, tok2)
	})

	t.Run("4xx from exchange is auth rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		cache := newTokenCache(server.URL, 12*time.Hour, 30*time.Minute)

		_, err := cache.Bearer(context.Background(), "oauth-bad")
		require.Error(t, err)
		assert.Equal(t, KindAuthRejected, KindOf(err))
	})
}

func TestHashToken(t *testing.T) {
	// Stable and collision-free for distinct inputs we care about.
	assert.Equal(t, hashToken("a"), hashToken("a"))
	assert.NotEqual(t, hashToken("a"), hashToken("b"))
}
