// Package gateway is the single outbound call surface to the external
// chat-completion provider. It owns credential translation (long-lived
// OAuth token to short-lived IAM bearer, with a TTL cache), the per-process
// circuit breaker, adaptive request deadlines, and SSE stream decoding.
// One Gateway is created per process and shared by every caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/assessflow/pipeline/pkg/config"
)

// Request deadlines. Completions run long because reasoning models can
// take most of an hour on large prompts.
const (
	completionTimeout = 90 * time.Minute
	modelsTimeout     = 30 * time.Second

	modelsCacheTTL = 5 * time.Minute
	modelsCacheKey = "models"
)

// Gateway fronts all calls to the chat-completion provider.
type Gateway struct {
	cfg *config.ProviderConfig

	completionClient *http.Client
	modelsClient     *http.Client

	tokens  *tokenCache
	breaker *providerBreaker
	models  *gocache.Cache
}

// New creates the process-wide provider gateway.
func New(provider *config.ProviderConfig, breaker *config.BreakerConfig, iam *config.IAMConfig) *Gateway {
	return &Gateway{
		cfg:              provider,
		completionClient: &http.Client{Timeout: completionTimeout},
		modelsClient:     &http.Client{Timeout: modelsTimeout},
		tokens: newTokenCache(
			provider.IAMEndpoint,
			time.Duration(iam.TTLMinutes)*time.Minute,
			time.Duration(iam.RefreshWindowMinutes)*time.Minute,
		),
		breaker: newProviderBreaker(
			breaker.FailureThreshold,
			time.Duration(breaker.CooldownSeconds)*time.Second,
		),
		models: gocache.New(modelsCacheTTL, 10*time.Minute),
	}
}

// DefaultModel returns the configured fallback model id.
func (g *Gateway) DefaultModel() string {
	return g.cfg.DefaultModel
}

// BreakerState exposes the breaker state for the health surface.
func (g *Gateway) BreakerState() string {
	return g.breaker.State()
}

// TokenExchanges reports how many IAM exchanges have run, for stats.
func (g *Gateway) TokenExchanges() int64 {
	return g.tokens.ExchangeCount()
}

// Complete performs one chat completion. The call is gated by the breaker
// and bounded by the 90-minute completion deadline.
func (g *Gateway) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if req.Model == "" {
		req.Model = g.cfg.DefaultModel
	}
	req.Stream = false

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.doComplete(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*CompletionResponse), nil
}

func (g *Gateway) doComplete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	resp, err := g.post(ctx, g.completionClient, "/chat/completions", req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var out CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{Kind: KindProviderError, Message: "decode completion response", Err: err}
	}
	return &out, nil
}

// post builds and sends one authenticated provider request. Transport and
// deadline failures come back already classified.
func (g *Gateway) post(ctx context.Context, client *http.Client, path string, payload interface{}) (*http.Response, error) {
	bearer, err := g.bearer(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}
	return resp, nil
}

// bearer resolves the outbound credential. A configured API key is used
// as-is; otherwise the OAuth token is exchanged through the IAM cache.
func (g *Gateway) bearer(ctx context.Context) (string, error) {
	if key := os.Getenv(g.cfg.APIKeyEnv); key != "" {
		return key, nil
	}
	oauthToken := os.Getenv(g.cfg.OAuthTokenEnv)
	if oauthToken == "" {
		return "", &Error{Kind: KindAuthRejected, Message: "no provider credentials configured"}
	}
	return g.tokens.Bearer(ctx, oauthToken)
}

// classifyTransport maps a client.Do failure to a gateway error kind.
func classifyTransport(ctx context.Context, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return &Error{Kind: KindTimeout, Message: "provider call deadline exceeded", Err: err}
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: "provider call timed out", Err: err}
	}
	return &Error{Kind: KindProviderUnavailable, Message: "provider unreachable", Err: err}
}

// errorFromResponse classifies a non-2xx provider status, keeping a short
// body excerpt for the logs.
func errorFromResponse(resp *http.Response) *Error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(snippet))
	if msg == "" {
		msg = resp.Status
	}
	kind := classifyStatus(resp.StatusCode)

	slog.Warn("Provider returned error status",
		"status", resp.StatusCode,
		"kind", string(kind))

	return &Error{
		Kind:       kind,
		Message:    msg,
		StatusCode: resp.StatusCode,
	}
}

// ListModels returns the provider's model listing, cached for five
// minutes. The models endpoint is optional on some providers; callers get
// the classified error when it is absent.
func (g *Gateway) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if cached, ok := g.models.Get(modelsCacheKey); ok {
		return cached.([]ModelInfo), nil
	}

	bearer, err := g.bearer(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"/models", nil)
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "build request", Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := g.modelsClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var listing struct {
		Data []ModelInfo `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, &Error{Kind: KindProviderError, Message: "decode model listing", Err: err}
	}

	g.models.Set(modelsCacheKey, listing.Data, gocache.DefaultExpiration)
	slog.Info("Provider model listing refreshed", "models", len(listing.Data))
	return listing.Data, nil
}
