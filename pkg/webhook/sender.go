// Package webhook delivers terminal job notifications back to the
// front-end application. Delivery is best-effort with bounded retries;
// the report rows in the database stay the source of truth when every
// attempt fails.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/models"
)

// requestTimeout bounds one delivery round trip.
const requestTimeout = 30 * time.Second

// Sender posts job webhooks to the front-end. An empty endpoint disables
// delivery; the poller remains the fallback path.
type Sender struct {
	endpoint   string
	secret     string
	httpClient *http.Client

	initial     time.Duration
	maxInterval time.Duration
	maxAttempts int
}

// NewSender builds a sender from the webhook configuration. The shared
// secret is read from the configured environment variable once.
func NewSender(cfg *config.WebhookConfig) *Sender {
	return &Sender{
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		secret:      os.Getenv(cfg.SecretEnv),
		httpClient:  &http.Client{Timeout: requestTimeout},
		initial:     time.Duration(cfg.BackoffMS) * time.Millisecond,
		maxInterval: time.Duration(cfg.BackoffCapMS) * time.Millisecond,
		maxAttempts: cfg.MaxAttempts,
	}
}

// Deliver PATCHes the notification to <endpoint>/external/jobs/<jobId>,
// retrying transport faults and 5xx with doubling, capped backoff. 4xx
// settles the delivery too: the front-end rejected the shape and a
// retry cannot change that.
func (s *Sender) Deliver(ctx context.Context, hook models.JobWebhook) error {
	if s.endpoint == "" {
		return nil
	}

	payload, err := json.Marshal(hook)
	if err != nil {
		return fmt.Errorf("encode webhook: %w", err)
	}
	url := fmt.Sprintf("%s/external/jobs/%s", s.endpoint, hook.JobID)

	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if s.secret != "" {
			req.Header.Set("X-Backend-Secret", s.secret)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err = fmt.Errorf("webhook HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return err
		}
		return backoff.Permanent(err)
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = s.initial
	expo.MaxInterval = s.maxInterval
	expo.Multiplier = 2
	expo.RandomizationFactor = 0
	expo.MaxElapsedTime = 0

	retries := s.maxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	err = backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(expo, uint64(retries)), ctx))
	if err != nil {
		slog.Warn("Webhook delivery exhausted",
			"job_id", hook.JobID,
			"status", hook.Status,
			"attempts", attempt,
			"error", err)
		return err
	}

	if attempt > 1 {
		slog.Info("Webhook delivered after retries", "job_id", hook.JobID, "attempts", attempt)
	}
	return nil
}
