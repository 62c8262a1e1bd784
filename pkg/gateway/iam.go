package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

// iamExchangeTimeout bounds one token-exchange round trip.
const iamExchangeTimeout = 60 * time.Second

// tokenEntry is one cached IAM token. expiresAt already accounts for the
// configured TTL cap; refreshAt is expiresAt minus the refresh window.
type tokenEntry struct {
	token     string
	tokenHash uint64
	expiresAt time.Time
	refreshAt time.Time
}

// tokenCache translates long-lived OAuth tokens into short-lived IAM
// bearers and caches them per OAuth token. Reads take the read lock;
// refreshes are collapsed through singleflight so only one exchange per
// key is in flight at a time.
type tokenCache struct {
	endpoint      string
	httpClient    *http.Client
	ttl           time.Duration
	refreshWindow time.Duration

	mu      sync.RWMutex
	entries map[uint64]*tokenEntry
	group   singleflight.Group

	// now is replaceable in tests to drive TTL expiry.
	now func() time.Time

	// exchanges counts completed IAM exchanges, for tests and stats.
	exchanges int64
}

func newTokenCache(endpoint string, ttl, refreshWindow time.Duration) *tokenCache {
	return &tokenCache{
		endpoint:      endpoint,
		httpClient:    &http.Client{Timeout: iamExchangeTimeout},
		ttl:           ttl,
		refreshWindow: refreshWindow,
		entries:       make(map[uint64]*tokenEntry),
		now:           time.Now,
	}
}

// hashToken computes the non-cryptographic cache key for an OAuth token.
func hashToken(oauthToken string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(oauthToken))
	return h.Sum64()
}

// Bearer returns a live IAM token for the given OAuth token, exchanging
// over the wire only when the cache misses or the cached token is inside
// its refresh window.
func (c *tokenCache) Bearer(ctx context.Context, oauthToken string) (string, error) {
	key := hashToken(oauthToken)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.refreshAt) {
		return entry.token, nil
	}

	// Miss or inside the refresh window: collapse concurrent refreshes of
	// the same key into a single exchange.
	v, err, _ := c.group.Do(fmt.Sprintf("%x", key), func() (interface{}, error) {
		// Another caller may have refreshed while we waited on the group.
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.now().Before(entry.refreshAt) {
			return entry.token, nil
		}

		token, expiresIn, err := c.exchange(ctx, oauthToken)
		if err != nil {
			// Serve the stale-but-unexpired token rather than failing the
			// caller when the exchange endpoint is briefly down.
			if ok && c.now().Before(entry.expiresAt) {
				slog.Warn("IAM exchange failed, serving cached token until expiry",
					"error", err,
					"expires_at", entry.expiresAt)
				return entry.token, nil
			}
			return nil, err
		}

		ttl := c.ttl
		if expiresIn > 0 && expiresIn < ttl {
			ttl = expiresIn
		}
		now := c.now()
		fresh := &tokenEntry{
			token:     token,
			tokenHash: key,
			expiresAt: now.Add(ttl),
			refreshAt: now.Add(ttl - c.refreshWindow),
		}

		c.mu.Lock()
		c.entries[key] = fresh
		c.exchanges++
		c.mu.Unlock()

		slog.Info("IAM token exchanged",
			"token_hash", fmt.Sprintf("%x", key),
			"expires_at", fresh.expiresAt)
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ExchangeCount returns how many wire exchanges have completed.
func (c *tokenCache) ExchangeCount() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exchanges
}

// iamResponse is the token-exchange answer. expires_in is seconds.
type iamResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// exchange performs one IAM token exchange with bounded retries inside the
// 60s deadline. Transport faults and 5xx are retried; 4xx are permanent.
func (c *tokenCache) exchange(ctx context.Context, oauthToken string) (string, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, iamExchangeTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("grant_type", "urn:ibm:params:oauth:grant-type:apikey")
	form.Set("apikey", oauthToken)
	body := form.Encode()

	var out iamResponse
	var lastStatus int
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		lastStatus = resp.StatusCode

		if resp.StatusCode != http.StatusOK {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			err := fmt.Errorf("IAM exchange HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return err
			}
			return backoff.Permanent(err)
		}

		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode IAM response: %w", err))
		}
		if out.AccessToken == "" {
			return backoff.Permanent(fmt.Errorf("IAM response missing access_token"))
		}
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 500 * time.Millisecond
	expo.MaxInterval = 5 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		kind := KindProviderUnavailable
		switch {
		case ctx.Err() == context.DeadlineExceeded:
			kind = KindTimeout
		case lastStatus >= 400 && lastStatus < 500:
			kind = KindAuthRejected
		}
		return "", 0, &Error{Kind: kind, Message: "IAM token exchange failed", StatusCode: lastStatus, Err: err}
	}

	return out.AccessToken, time.Duration(out.ExpiresIn) * time.Second, nil
}
