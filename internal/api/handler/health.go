package handler

import (
	"net/http"
	"time"

	"github.com/DuelitDev/quant-sim/internal/api"
)

// HealthHandler answers liveness probes. It never touches the data provider.
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler reporting the given version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// Handle handles GET /health.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	sendJSONResponse(w, http.StatusOK, api.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().Format(time.RFC3339),
		Version:   h.version,
	})
}
