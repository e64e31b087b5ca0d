package handlers

import (
	"net/http"
	"time"

	"user-directory-api/pkg/lambda"
)

// HealthResponse represents the health check payload
type HealthResponse struct {
	OK          bool   `json:"ok"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// HealthHandler handles GET /health
type HealthHandler struct {
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{
		environment: environment,
	}
}

// Handle reports liveness; reaching it at all means the process is up
func (h *HealthHandler) Handle() (*lambda.Response, error) {
	return Respond(http.StatusOK, HealthResponse{
		OK:          true,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.environment,
	})
}
