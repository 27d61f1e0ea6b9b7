package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is the minimal interface for component health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	db      pinger
	cache   pinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db, cache pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status    string                `json:"status"`
	Version   string                `json:"version,omitempty"`
	Services  map[string]CompStatus `json:"services"`
	Timestamp time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Health handles GET /api/health. The database is load-bearing: if it is
// down the probe returns 503. The cache is an optimization, so a cache
// failure only degrades the reported status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	services := make(map[string]CompStatus)
	overall := "healthy"
	status := http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		services["database"] = CompStatus{Status: "down"}
		overall = "down"
		status = http.StatusServiceUnavailable
	} else {
		services["database"] = CompStatus{Status: "connected", Latency: time.Since(start).String()}
	}

	if err := h.cache.Ping(ctx); err != nil {
		services["cache"] = CompStatus{Status: "down"}
		if overall == "healthy" {
			overall = "degraded"
		}
	} else {
		services["cache"] = CompStatus{Status: "available"}
	}

	writeJSON(w, status, HealthResponse{
		Status:    overall,
		Version:   h.version,
		Services:  services,
		Timestamp: time.Now(),
	})
}
