package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/config"
	"github.com/assessflow/pipeline/pkg/models"
)

func senderConfig(endpoint string) *config.WebhookConfig {
	return &config.WebhookConfig{
		Endpoint:     endpoint,
		SecretEnv:    "PIPELINE_TEST_SECRET",
		BackoffMS:    1,
		BackoffCapMS: 4,
		MaxAttempts:  5,
	}
}

func TestSender_Deliver(t *testing.T) {
	t.Setenv("PIPELINE_TEST_SECRET", "s3cret")

	t.Run("delivers the payload with the shared secret", func(t *testing.T) {
		var mu sync.Mutex
		var gotMethod, gotPath, gotSecret string
		var gotHook models.JobWebhook

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotSecret = r.Header.Get("X-Backend-Secret")
			_ = json.NewDecoder(r.Body).Decode(&gotHook)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender := NewSender(senderConfig(srv.URL))
		hook := models.JobWebhook{
			JobID:       "job-1",
			SessionID:   "sess-1",
			Status:      models.JobStatusCompleted,
			Reports:     models.ReportSet{models.ReportNameAdapted: "body"},
			CompletedAt: time.Now().UTC(),
		}
		require.NoError(t, sender.Deliver(context.Background(), hook))

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, http.MethodPatch, gotMethod)
		assert.Equal(t, "/external/jobs/job-1", gotPath)
		assert.Equal(t, "s3cret", gotSecret)
		assert.Equal(t, "sess-1", gotHook.SessionID)
		assert.Equal(t, "body", gotHook.Reports[models.ReportNameAdapted])
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender := NewSender(senderConfig(srv.URL))
		err := sender.Deliver(context.Background(), models.JobWebhook{JobID: "job-2", Status: models.JobStatusFailed})
		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("stops after the attempt budget", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		cfg := senderConfig(srv.URL)
		cfg.MaxAttempts = 3
		sender := NewSender(cfg)

		err := sender.Deliver(context.Background(), models.JobWebhook{JobID: "job-3", Status: models.JobStatusCompleted})
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry front-end rejections", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		sender := NewSender(senderConfig(srv.URL))
		err := sender.Deliver(context.Background(), models.JobWebhook{JobID: "job-4", Status: models.JobStatusCompleted})
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("is disabled without an endpoint", func(t *testing.T) {
		sender := NewSender(senderConfig(""))
		assert.NoError(t, sender.Deliver(context.Background(), models.JobWebhook{JobID: "job-5"}))
	})
}
