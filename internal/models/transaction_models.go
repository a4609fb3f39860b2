package models

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxTransactionAmount верхняя граница суммы; держит среднее в профиле конечным
const MaxTransactionAmount = 1e12

// Transaction входящая платежная транзакция, живет только в рамках одной оценки
type Transaction struct {
	UserID    string    `json:"user_id" example:"user-42"`
	Amount    float64   `json:"amount" example:"149.90"`
	Merchant  string    `json:"merchant" example:"merchant-7"`
	Location  string    `json:"location" example:"US-NY"`
	DeviceID  string    `json:"device_id" example:"device-abc"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

func (t Transaction) Validate() error {
	if t.UserID == "" {
		return errors.New("user_id is required")
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return errors.New("amount must be a finite number")
	}
	if t.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	if t.Amount > MaxTransactionAmount {
		return errors.New("amount exceeds the maximum allowed value")
	}
	return nil
}

// TransactionStatus итоговое решение по транзакции
type TransactionStatus string

const (
	StatusApproved TransactionStatus = "approved"
	StatusReview   TransactionStatus = "review"
	StatusBlocked  TransactionStatus = "blocked"
)

func (s TransactionStatus) IsValid() bool {
	return s == StatusApproved || s == StatusReview || s == StatusBlocked
}

// FraudCheckResult результат оценки риска
type FraudCheckResult struct {
	IsFraud        bool     `json:"is_fraud"`
	RiskScore      float64  `json:"risk_score"`
	RulesTriggered []string `json:"rules_triggered"`
}

// TransactionResponse ответ API на проверку транзакции
type TransactionResponse struct {
	TransactionID    uuid.UUID         `json:"transaction_id"`
	Status           TransactionStatus `json:"status" example:"approved"`
	RiskScore        float64           `json:"risk_score" example:"0.15"`
	RulesTriggered   []string          `json:"rules_triggered"`
	ProcessingTimeMs int64             `json:"processing_time_ms" example:"3"`
}
