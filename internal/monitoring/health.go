package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// stallThreshold marks a run degraded when no generation has completed for
// this long.
const stallThreshold = 5 * time.Minute

// HealthChecker reports liveness of a long optimization run over HTTP.
type HealthChecker struct {
	mu             sync.RWMutex
	started        time.Time
	lastGeneration time.Time
	generation     int
	finished       bool
}

// HealthStatus is the JSON body served by the health endpoint.
type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Generation     int       `json:"generation"`
	LastGeneration time.Time `json:"last_generation,omitzero"`
	Uptime         string    `json:"uptime"`
}

// NewHealthChecker creates a health checker; the clock starts immediately.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{started: time.Now()}
}

// RecordGeneration notes that a generation completed.
func (h *HealthChecker) RecordGeneration(gen int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.generation = gen
	h.lastGeneration = time.Now()
}

// MarkFinished records that the run completed; a finished run is never
// reported as stalled.
func (h *HealthChecker) MarkFinished() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finished = true
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "running"
	switch {
	case h.finished:
		status = "finished"
	case !h.lastGeneration.IsZero() && time.Since(h.lastGeneration) > stallThreshold:
		status = "stalled"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	health := HealthStatus{
		Status:         status,
		Timestamp:      time.Now(),
		Generation:     h.generation,
		LastGeneration: h.lastGeneration,
		Uptime:         time.Since(h.started).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
