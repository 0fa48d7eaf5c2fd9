package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/hapkiduki/shipping-console/internal/application/dto"
)

// Counter is a store that can report its size. The in-memory repositories
// satisfy it.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthHandler reports process liveness and the state of each store.
type HealthHandler struct {
	version string
	started time.Time
	checks  map[string]Counter
}

// NewHealthHandler creates a HealthHandler. checks maps a component name to
// the store probed for it.
func NewHealthHandler(version string, checks map[string]Counter) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now(), checks: checks}
}

// Health handles GET /health. Any failing check turns the response into a
// 503 with status "unhealthy".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Checks:  make(map[string]dto.HealthCheckResult, len(h.checks)),
	}

	for name, store := range h.checks {
		start := time.Now()
		n, err := store.Count(r.Context())
		result := dto.HealthCheckResult{
			Status:       "healthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}
		if err != nil {
			result.Status = "unhealthy"
			result.Message = err.Error()
			resp.Status = "unhealthy"
		} else {
			result.Message = formatCount(n)
		}
		resp.Checks[name] = result
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func formatCount(n int64) string {
	if n == 1 {
		return "1 record"
	}
	return strconv.FormatInt(n, 10) + " records"
}
