package httpserver

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Health check handler. Reports dependency reachability alongside process
// uptime and memory usage; an unreachable dependency degrades the status but
// the report itself still returns 200.
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	overall := "healthy"
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		if err := hc.Check(ctx); err != nil {
			deps[hc.Name()] = "unhealthy"
			if overall == "healthy" {
				overall = "degraded"
			}
		} else {
			deps[hc.Name()] = "healthy"
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	health := map[string]interface{}{
		"status":         overall,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"service":        "recipe-service",
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
		"memory": map[string]interface{}{
			"alloc_bytes":       mem.Alloc,
			"total_alloc_bytes": mem.TotalAlloc,
			"sys_bytes":         mem.Sys,
			"num_gc":            mem.NumGC,
		},
		"dependencies": deps,
	}
	return c.JSON(http.StatusOK, health)
}
