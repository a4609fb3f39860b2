package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fraud-engine/internal/api/middlew"
	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/rules"
	"fraud-engine/internal/service"
	"fraud-engine/pkg/response"
)

type ProfileHandler struct {
	service service.Fraud
}

func NewProfileHandler(service service.Fraud) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// GetProfile godoc
// @Summary      Профиль пользователя
// @Description  Возвращает текущий поведенческий профиль; для неизвестного пользователя пустой профиль
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        userID path string true "ID пользователя"
// @Success      200 {object} models.UserProfile
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /api/v1/users/{userID}/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetProfile"
	log := middlew.GetLogger(r.Context())

	userID := chi.URLParam(r, "userID")

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidInput):
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "User ID is required")
		default:
			log.Error("failed to load profile", slog.String("op", op), slog.String("user_id", userID), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to load profile")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, profile)
}

type RulesResponse struct {
	Rules []rules.Rule `json:"rules"`
}

// ListRules godoc
// @Summary      Правила
// @Description  Возвращает загруженный набор правил в порядке оценки
// @Tags         rules
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handlers.RulesResponse
// @Router       /api/v1/rules [get]
func (h *ProfileHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())
	response.WriteJSONSuccess(w, log, http.StatusOK, RulesResponse{Rules: h.service.Rules()})
}
