package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// pinger is anything the health checks can ping.
type pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	deps    map[string]pinger
	version string
}

// NewHealthHandler creates a HealthHandler. storage may be nil when poster
// storage is not configured; it is then left out of every check.
func NewHealthHandler(db, storage pinger, version string) *HealthHandler {
	deps := map[string]pinger{"database": db}
	if storage != nil {
		deps["storage"] = storage
	}
	return &HealthHandler{deps: deps, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of probing one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 until every dependency responds, so the load balancer
// holds traffic while the database or the poster bucket is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.pingAll(r.Context())
	status, code := statusOf(healthy)
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports each dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.pingAll(r.Context())
	status, code := statusOf(healthy)
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// pingAll pings the dependencies concurrently under one shared deadline.
func (h *HealthHandler) pingAll(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]CompStatus, len(h.deps))
		healthy = true
	)
	for name, p := range h.deps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := ping(ctx, p)
			mu.Lock()
			results[name] = res
			if res.Status != "ok" {
				healthy = false
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results, healthy
}

func ping(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusOf(healthy bool) (string, int) {
	if healthy {
		return "ok", http.StatusOK
	}
	return "down", http.StatusServiceUnavailable
}
