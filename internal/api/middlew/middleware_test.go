package middlew

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/metrics"
	"fraud-engine/internal/models"
)

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) IssueToken(clientID string) (string, error) {
	args := m.Called(clientID)
	return args.String(0), args.Error(1)
}

func (m *MockAuth) ValidateToken(tokenString string) (*models.ClientClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientClaims), args.Error(1)
}

func TestWithLogger_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.RequestID(WithLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info("inside")
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"trace_id"`)
	assert.Contains(t, buf.String(), "inside")
}

func TestGetLogger_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLogger(req.Context()))
}

func TestRequireAuth(t *testing.T) {
	auth := new(MockAuth)
	auth.On("ValidateToken", "good").Return(&models.ClientClaims{ClientID: "checkout"}, nil)
	auth.On("ValidateToken", "old").Return(nil, custom_err.ErrTokenExpired)
	auth.On("ValidateToken", "early").Return(nil, custom_err.ErrTokenNotActive)
	auth.On("ValidateToken", "bad").Return(nil, custom_err.ErrInvalidToken)

	var gotClient string
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClient = GetClientID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "unauthorized"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "unauthorized"},
		{"expired", "Bearer old", http.StatusUnauthorized, "token_expired"},
		{"not active", "Bearer early", http.StatusUnauthorized, "token_not_active"},
		{"invalid", "Bearer bad", http.StatusUnauthorized, "invalid_token"},
		{"valid", "bearer good", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}

	assert.Equal(t, "checkout", gotClient)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/users/{userID}/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/"+id+"/profile", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/users/{userID}/profile", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
