package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assessflow/pipeline/pkg/gateway"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/services"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error",
			err:  &services.ValidationError{Field: "kind", Message: "unknown"},
			want: http.StatusBadRequest,
		},
		{
			name: "cycle error",
			err:  &graph.CycleError{Nodes: []string{"a", "b"}},
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("loading job: %w", services.ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "invalid input",
			err:  fmt.Errorf("%w: empty project id", services.ErrInvalidInput),
			want: http.StatusBadRequest,
		},
		{
			name: "system project",
			err:  services.ErrSystemProject,
			want: http.StatusForbidden,
		},
		{
			name: "terminal job",
			err:  services.ErrTerminalJob,
			want: http.StatusConflict,
		},
		{
			name: "already exists",
			err:  services.ErrAlreadyExists,
			want: http.StatusConflict,
		},
		{
			name: "lease lost",
			err:  services.ErrLeaseLost,
			want: http.StatusConflict,
		},
		{
			name: "breaker open",
			err:  &gateway.Error{Kind: gateway.KindProviderUnavailable, RetryAfterSeconds: 42},
			want: http.StatusServiceUnavailable,
		},
		{
			name: "provider timeout",
			err:  &gateway.Error{Kind: gateway.KindTimeout},
			want: http.StatusGatewayTimeout,
		},
		{
			name: "provider auth rejected",
			err:  &gateway.Error{Kind: gateway.KindAuthRejected},
			want: http.StatusUnauthorized,
		},
		{
			name: "provider bad request",
			err:  &gateway.Error{Kind: gateway.KindBadRequest, Message: "bad payload"},
			want: http.StatusBadRequest,
		},
		{
			name: "provider 5xx falls through to internal",
			err:  &gateway.Error{Kind: gateway.KindProviderError},
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapError(tt.err)
			assert.Equal(t, tt.want, status)
			assert.Contains(t, body, "error")
		})
	}
}

func TestMapErrorBreakerCooldown(t *testing.T) {
	_, body := mapError(&gateway.Error{Kind: gateway.KindProviderUnavailable, RetryAfterSeconds: 37})
	assert.Equal(t, 37, body["retry_after_seconds"])
}
