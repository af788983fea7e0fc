package handler

import (
	"context"
	"net/http"

	"github.com/panda-project/panda/internal/api/middleware"
	"github.com/panda-project/panda/internal/api/response"
)

// StorePinger reports whether the document backend is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	pinger  StorePinger
	driver  string
	version string
}

// NewHealthHandler creates a new HealthHandler. pinger may be nil for
// backends with nothing to ping.
func NewHealthHandler(pinger StorePinger, driver, version string) *HealthHandler {
	return &HealthHandler{
		pinger:  pinger,
		driver:  driver,
		version: version,
	}
}

type storeStatus struct {
	Driver    string `json:"driver"`
	Connected bool   `json:"connected"`
}

type healthData struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Store   storeStatus `json:"store"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	status := "healthy"
	connected := true
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			status = "degraded"
			connected = false
		}
	}

	data := healthData{
		Status:  status,
		Version: h.version,
		Store: storeStatus{
			Driver:    h.driver,
			Connected: connected,
		},
	}

	response.Success(w, http.StatusOK, data, requestID)
}
