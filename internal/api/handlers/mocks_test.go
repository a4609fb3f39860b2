package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fraud-engine/internal/models"
	"fraud-engine/internal/rules"
)

type MockFraudService struct {
	mock.Mock
}

func (m *MockFraudService) ProcessTransaction(ctx context.Context, tx models.Transaction) (*models.TransactionResponse, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionResponse), args.Error(1)
}

func (m *MockFraudService) EvaluateTransaction(ctx context.Context, tx models.Transaction) (*models.FraudCheckResult, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FraudCheckResult), args.Error(1)
}

func (m *MockFraudService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockFraudService) Rules() []rules.Rule {
	args := m.Called()
	return args.Get(0).([]rules.Rule)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) DecisionHistory(ctx context.Context, userID string, limit int) (*models.DecisionHistoryResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DecisionHistoryResponse), args.Error(1)
}
