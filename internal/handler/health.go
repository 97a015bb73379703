package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/axiora/axiora-go"
	"github.com/axiora/axiora-go/internal/models"
)

const version = "0.3.0"

// HealthHandler handles GET /health with an Axiora connectivity check
type HealthHandler struct {
	client *axiora.Client
}

func NewHealthHandler(client *axiora.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Health handles GET /health. The Axiora check pings /coverage with a short
// timeout so a slow upstream cannot block the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	status := "healthy"

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx); err != nil {
		checks["axiora"] = "unavailable: " + err.Error()
		status = "degraded"
	} else {
		checks["axiora"] = "ok"
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	models.WriteJSON(w, code, models.HealthResponse{
		Status:  status,
		Version: version,
		Checks:  checks,
	})
}
