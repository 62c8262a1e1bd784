package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/gateway"
	"github.com/assessflow/pipeline/pkg/graph"
	"github.com/assessflow/pipeline/pkg/services"
)

// respondError maps service-layer errors to HTTP responses. Every handler
// funnels failures through here so the wire mapping stays in one place.
func respondError(c *gin.Context, err error) {
	status, body := mapError(err)
	c.JSON(status, body)
}

func mapError(err error) (int, gin.H) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, gin.H{"error": validErr.Error()}
	}

	var cycleErr *graph.CycleError
	if errors.As(err, &cycleErr) {
		return http.StatusBadRequest, gin.H{"error": "invalid graph: " + cycleErr.Error()}
	}

	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		switch gwErr.Kind {
		case gateway.KindProviderUnavailable:
			return http.StatusServiceUnavailable, gin.H{
				"error":               "provider unavailable",
				"retry_after_seconds": gwErr.RetryAfterSeconds,
			}
		case gateway.KindTimeout:
			return http.StatusGatewayTimeout, gin.H{"error": "provider call timed out"}
		case gateway.KindAuthRejected:
			return http.StatusUnauthorized, gin.H{"error": "provider rejected credentials"}
		case gateway.KindBadRequest:
			return http.StatusBadRequest, gin.H{"error": gwErr.Message}
		}
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "resource not found"}
	case errors.Is(err, services.ErrSystemProject):
		return http.StatusForbidden, gin.H{"error": "system project is protected"}
	case errors.Is(err, services.ErrTerminalJob):
		return http.StatusConflict, gin.H{"error": "job already terminal"}
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrLeaseLost):
		return http.StatusConflict, gin.H{"error": err.Error()}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, gin.H{"error": "internal server error"}
}
