package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/assessflow/pipeline/pkg/database"
)

// healthHandler handles GET /api/v1/health. Reports database reachability,
// worker pool state and the provider breaker state. Answers 503 when the
// database is unreachable so load balancers can rotate the pod out.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}
	code := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		body["status"] = "unhealthy"
		body["database"] = gin.H{"status": "unreachable", "error": err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		body["database"] = dbHealth
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["workers"] = poolHealth
		if !poolHealth.IsHealthy && code == http.StatusOK {
			body["status"] = "degraded"
		}
	}

	if s.breaker != nil {
		body["provider"] = gin.H{"breaker": s.breaker.BreakerState()}
	}

	c.JSON(code, body)
}
