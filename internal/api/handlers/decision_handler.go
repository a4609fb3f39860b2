package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fraud-engine/internal/api/middlew"
	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/service"
	"fraud-engine/pkg/response"
)

type DecisionHandler struct {
	service service.Audit
}

func NewDecisionHandler(service service.Audit) *DecisionHandler {
	return &DecisionHandler{
		service: service,
	}
}

// ListDecisions godoc
// @Summary      История решений
// @Description  Последние решения по пользователю из журнала аудита, новые первыми
// @Tags         decisions
// @Produce      json
// @Security     BearerAuth
// @Param        userID path string true "ID пользователя"
// @Param        limit query int false "Количество записей (по умолчанию 20, максимум 100)"
// @Success      200 {object} models.DecisionHistoryResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /api/v1/users/{userID}/decisions [get]
func (h *DecisionHandler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ListDecisions"
	log := middlew.GetLogger(r.Context())

	userID := chi.URLParam(r, "userID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "limit must be a positive integer")
			return
		}
		limit = n
	}

	history, err := h.service.DecisionHistory(r.Context(), userID, limit)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidInput):
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "User ID is required")
		case errors.Is(err, custom_err.ErrAuditUnavailable):
			log.Error("audit store unavailable", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusServiceUnavailable, "audit_unavailable", "Decision history is temporarily unavailable")
		default:
			log.Error("failed to list decisions", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to list decisions")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, history)
}
