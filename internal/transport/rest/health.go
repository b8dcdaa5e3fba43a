package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

const pingTimeout = 3 * time.Second

// storePinger defines the minimal interface for store health checks.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	kind    string
	version string
}

// NewHealthHandler creates a HealthHandler. kind names the store
// realization (memory, postgres, sqlite) reported by /health.
func NewHealthHandler(store storePinger, kind, version string) *HealthHandler {
	return &HealthHandler{store: store, kind: kind, version: version}
}

// HealthResponse is the JSON response for /health and /health/ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the store: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.check(r.Context())
	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:    overall(comp),
		Timestamp: time.Now(),
	})
}

// Health is the full health check with store latency and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.check(r.Context())
	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall(comp),
		Version:    h.version,
		Components: map[string]CompStatus{"store": comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start)

	switch {
	case err == nil:
		return CompStatus{Status: "ok", Kind: h.kind, Latency: latency.String()}
	case errors.Is(err, domain.ErrConfiguration):
		return CompStatus{Status: "unconfigured", Kind: h.kind}
	default:
		return CompStatus{Status: "down", Kind: h.kind}
	}
}

func overall(c CompStatus) string {
	if c.Status == "ok" {
		return "ok"
	}
	return "down"
}
