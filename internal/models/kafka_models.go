package models

import (
	"time"

	"github.com/google/uuid"
)

// DecisionEvent событие о принятом решении по транзакции.
// Уходит в kafka (для review/blocked/alert) и в журнал аудита.
type DecisionEvent struct {
	TransactionID    uuid.UUID         `json:"transaction_id"`     // ID, выданный сервисом
	UserID           string            `json:"user_id"`            // ID пользователя
	Amount           float64           `json:"amount"`             // Сумма транзакции
	Merchant         string            `json:"merchant"`           // Мерчант
	Location         string            `json:"location"`           // Локация
	DeviceID         string            `json:"device_id"`          // Устройство
	Status           TransactionStatus `json:"status"`             // Итоговый статус
	RiskScore        float64           `json:"risk_score"`         // Нормализованный риск
	RulesTriggered   []string          `json:"rules_triggered"`    // Сработавшие правила
	Alert            bool              `json:"alert"`              // Сработало правило с action=alert
	ProcessingTimeMs int64             `json:"processing_time_ms"` // Время обработки
	Timestamp        time.Time         `json:"timestamp"`          // Время транзакции
}

// Notable решает, нужно ли публиковать событие во внешний поток
func (e DecisionEvent) Notable() bool {
	return e.Status != StatusApproved || e.Alert
}

// DecisionRecord строка журнала аудита
type DecisionRecord struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	UserID           string            `json:"user_id" db:"user_id"`
	Amount           float64           `json:"amount" db:"amount"`
	Merchant         string            `json:"merchant" db:"merchant"`
	Location         string            `json:"location" db:"location"`
	DeviceID         string            `json:"device_id" db:"device_id"`
	Status           TransactionStatus `json:"status" db:"status"`
	RiskScore        float64           `json:"risk_score" db:"risk_score"`
	RulesTriggered   []string          `json:"rules_triggered" db:"rules_triggered"`
	ProcessingTimeMs int64             `json:"processing_time_ms" db:"processing_time_ms"`
	TransactionTime  time.Time         `json:"transaction_time" db:"transaction_time"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
}

// DecisionHistoryResponse ответ со списком решений пользователя
type DecisionHistoryResponse struct {
	UserID    string            `json:"user_id"`
	Decisions []*DecisionRecord `json:"decisions"`
}
