package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/health"
	"fraud-engine/internal/models"
	"fraud-engine/internal/rules"
	"fraud-engine/pkg/response"
)

func newRouter(fraud *MockFraudService, audit *MockAuditService, registry *health.Registry) http.Handler {
	r := chi.NewRouter()

	th := NewTransactionHandler(fraud)
	ph := NewProfileHandler(fraud)
	dh := NewDecisionHandler(audit)
	hh := NewHealthHandler("fraud-detection", "1.0.0", registry)

	r.Get("/health", hh.Health)
	r.Get("/ready", hh.Ready)
	r.Post("/api/v1/transaction", th.CheckTransaction)
	r.Get("/api/v1/rules", ph.ListRules)
	r.Get("/api/v1/users/{userID}/profile", ph.GetProfile)
	r.Get("/api/v1/users/{userID}/decisions", dh.ListDecisions)
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var e response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestCheckTransaction_Success(t *testing.T) {
	fraud := new(MockFraudService)
	router := newRouter(fraud, nil, nil)

	txID := uuid.New()
	fraud.On("ProcessTransaction", mock.Anything, mock.MatchedBy(func(tx models.Transaction) bool {
		return tx.UserID == "user-1" && tx.Amount == 1500 && tx.DeviceID == "d1"
	})).Return(&models.TransactionResponse{
		TransactionID:    txID,
		Status:           models.StatusBlocked,
		RiskScore:        1,
		RulesTriggered:   []string{"High amount"},
		ProcessingTimeMs: 2,
	}, nil)

	rec := do(router, http.MethodPost, "/api/v1/transaction",
		`{"user_id":"user-1","amount":1500,"merchant":"m","location":"US","device_id":"d1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, txID.String(), body["transaction_id"])
	assert.Equal(t, "blocked", body["status"])
	assert.Equal(t, 1.0, body["risk_score"])
	assert.Equal(t, []any{"High amount"}, body["rules_triggered"])
	assert.Contains(t, body, "processing_time_ms")

	fraud.AssertExpectations(t)
}

func TestCheckTransaction_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{"user_id":`, nil, http.StatusBadRequest, "invalid_json"},
		{"invalid transaction", `{"amount":-1}`, fmt.Errorf("%w: amount must be non-negative", custom_err.ErrInvalidTransaction), http.StatusBadRequest, "invalid_input"},
		{"store down", `{"user_id":"u","amount":1}`, fmt.Errorf("service.EvaluateTransaction: %w", custom_err.ErrStoreUnavailable), http.StatusInternalServerError, "internal_error"},
		{"corrupted profile", `{"user_id":"u","amount":1}`, custom_err.ErrProfileCorrupted, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fraud := new(MockFraudService)
			if tt.serviceErr != nil {
				fraud.On("ProcessTransaction", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := do(newRouter(fraud, nil, nil), http.MethodPost, "/api/v1/transaction", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			e := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, e.Error)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, e.Message, "unavailable")
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	fraud := new(MockFraudService)
	last := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fraud.On("GetProfile", mock.Anything, "user-1").Return(&models.UserProfile{
		UserID:               "user-1",
		AvgTransactionAmount: 12.5,
		TransactionCount:     2,
		LastTransactionTime:  &last,
		KnownDevices:         []string{"d1"},
		KnownLocations:       []string{},
	}, nil)
	fraud.On("GetProfile", mock.Anything, "broken").Return(nil, custom_err.ErrProfileCorrupted)

	router := newRouter(fraud, nil, nil)

	rec := do(router, http.MethodGet, "/api/v1/users/user-1/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, uint64(2), profile.TransactionCount)
	assert.Equal(t, []string{"d1"}, profile.KnownDevices)

	rec = do(router, http.MethodGet, "/api/v1/users/broken/profile", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListRules(t *testing.T) {
	fraud := new(MockFraudService)
	fraud.On("Rules").Return([]rules.Rule{
		{ID: "amount-002", Name: "High amount", Kind: rules.KindHighAmount, Threshold: 10000, RiskScore: 0.9, Action: rules.ActionReview},
	})

	rec := do(newRouter(fraud, nil, nil), http.MethodGet, "/api/v1/rules", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rule_type":"high_amount"`)
	assert.Contains(t, rec.Body.String(), `"action":"review"`)
}

func TestListDecisions(t *testing.T) {
	audit := new(MockAuditService)
	audit.On("DecisionHistory", mock.Anything, "user-1", 0).Return(&models.DecisionHistoryResponse{UserID: "user-1"}, nil)
	audit.On("DecisionHistory", mock.Anything, "user-1", 5).Return(&models.DecisionHistoryResponse{UserID: "user-1"}, nil)
	audit.On("DecisionHistory", mock.Anything, "user-2", 0).Return(nil, fmt.Errorf("x: %w", custom_err.ErrAuditUnavailable))

	router := newRouter(nil, audit, nil)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/v1/users/user-1/decisions", "").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/v1/users/user-1/decisions?limit=5", "").Code)

	rec := do(router, http.MethodGet, "/api/v1/users/user-1/decisions?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodGet, "/api/v1/users/user-2/decisions", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "audit_unavailable", decodeError(t, rec).Error)

	audit.AssertExpectations(t)
}

func TestHealthAndReady(t *testing.T) {
	registry := health.NewRegistry(time.Second)
	var redisErr error
	registry.Register("redis", health.Pinger("redis", func(context.Context) error { return redisErr }))

	router := newRouter(nil, nil, registry)

	rec := do(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"fraud-detection","version":"1.0.0"}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)

	redisErr = errors.New("dial tcp: connection refused")
	rec = do(router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
