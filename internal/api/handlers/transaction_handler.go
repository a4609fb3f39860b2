package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fraud-engine/internal/api/middlew"
	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/models"
	"fraud-engine/internal/service"
	"fraud-engine/pkg/response"
)

type TransactionHandler struct {
	service service.Fraud
}

func NewTransactionHandler(service service.Fraud) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// CheckTransaction godoc
// @Summary      Проверка транзакции
// @Description  Оценивает риск транзакции, обновляет профиль пользователя и возвращает решение
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.Transaction true "Транзакция"
// @Success      200 {object} models.TransactionResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /api/v1/transaction [post]
func (h *TransactionHandler) CheckTransaction(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CheckTransaction"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var tx models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		log.Warn("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	resp, err := h.service.ProcessTransaction(r.Context(), tx)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidTransaction):
			log.Warn("invalid transaction", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			log.Error("failed to process transaction",
				slog.String("op", op),
				slog.String("user_id", tx.UserID),
				slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to process transaction")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, resp)
}
