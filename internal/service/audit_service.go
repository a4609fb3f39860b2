package service

import (
	"context"
	"fmt"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/models"
	"fraud-engine/internal/storage/postgres"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type Audit interface {
	DecisionHistory(ctx context.Context, userID string, limit int) (*models.DecisionHistoryResponse, error)
}

type AuditService struct {
	repo postgres.DecisionRepository
}

func NewAuditService(repo postgres.DecisionRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) DecisionHistory(ctx context.Context, userID string, limit int) (*models.DecisionHistoryResponse, error) {
	const op = "service.DecisionHistory"

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", custom_err.ErrInvalidInput)
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.DecisionHistoryResponse{
		UserID:    userID,
		Decisions: records,
	}, nil
}
