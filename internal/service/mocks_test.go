package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"fraud-engine/internal/models"
)

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Load(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileStore) Save(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockVelocityTracker struct {
	mock.Mock
}

func (m *MockVelocityTracker) Count(ctx context.Context, userID string, window time.Duration) (int64, error) {
	args := m.Called(ctx, userID, window)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVelocityTracker) Record(ctx context.Context, userID, txID string) error {
	args := m.Called(ctx, userID, txID)
	return args.Error(0)
}

type MockMetricsSink struct {
	mock.Mock
}

func (m *MockMetricsSink) RecordOutcome(ctx context.Context, blocked bool) error {
	args := m.Called(ctx, blocked)
	return args.Error(0)
}

// recordingSink collects submitted events; the dispatcher is exercised separately.
type recordingSink struct {
	mu     sync.Mutex
	events []models.DecisionEvent
}

func (s *recordingSink) Submit(event models.DecisionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Events() []models.DecisionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DecisionEvent(nil), s.events...)
}

type MockDecisionRecorder struct {
	mock.Mock
}

func (m *MockDecisionRecorder) Insert(ctx context.Context, record *models.DecisionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockKafkaProducer struct {
	mock.Mock
}

func (m *MockKafkaProducer) PublishDecision(ctx context.Context, event models.DecisionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKafkaProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockDecisionRepository struct {
	mock.Mock
}

func (m *MockDecisionRepository) Insert(ctx context.Context, record *models.DecisionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDecisionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.DecisionRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DecisionRecord), args.Error(1)
}
