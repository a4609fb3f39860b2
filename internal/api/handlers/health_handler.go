package handlers

import (
	"net/http"

	"fraud-engine/internal/api/middlew"
	"fraud-engine/internal/health"
	"fraud-engine/pkg/response"
)

type HealthHandler struct {
	service  string
	version  string
	registry *health.Registry
}

func NewHealthHandler(service, version string, registry *health.Registry) *HealthHandler {
	return &HealthHandler{
		service:  service,
		version:  version,
		registry: registry,
	}
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"fraud-detection"`
	Version string `json:"version" example:"1.0.0"`
}

type ReadinessResponse struct {
	Status string          `json:"status" example:"ready"`
	Checks []health.Status `json:"checks"`
}

// Health godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200 {object} handlers.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())
	response.WriteJSONSuccess(w, log, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	})
}

// Ready godoc
// @Summary      Readiness
// @Description  Проверяет доступность redis и, если включен аудит, postgres
// @Tags         health
// @Produce      json
// @Success      200 {object} handlers.ReadinessResponse
// @Failure      503 {object} handlers.ReadinessResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	healthy, checks := h.registry.CheckAll(r.Context())
	if !healthy {
		response.WriteJSONSuccess(w, log, http.StatusServiceUnavailable, ReadinessResponse{Status: "not_ready", Checks: checks})
		return
	}
	response.WriteJSONSuccess(w, log, http.StatusOK, ReadinessResponse{Status: "ready", Checks: checks})
}
