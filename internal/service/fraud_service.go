package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/metrics"
	"fraud-engine/internal/models"
	"fraud-engine/internal/rules"
)

const (
	VelocityWindow       = 60 * time.Second
	BlockScoreThreshold  = 0.7
	ReviewScoreThreshold = 0.5
)

type ProfileStore interface {
	Load(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
}

type VelocityTracker interface {
	Count(ctx context.Context, userID string, window time.Duration) (int64, error)
	Record(ctx context.Context, userID, txID string) error
}

type RuleEvaluator interface {
	Evaluate(tx models.Transaction, profile *models.UserProfile, recentCount int64) (float64, []string)
	ShouldBlock(triggered []string) bool
	HasAction(triggered []string, action rules.Action) bool
	Rules() []rules.Rule
}

// DecisionSink accepts decision events for asynchronous side effects.
// Submit must not block.
type DecisionSink interface {
	Submit(event models.DecisionEvent)
}

type Fraud interface {
	ProcessTransaction(ctx context.Context, tx models.Transaction) (*models.TransactionResponse, error)
	EvaluateTransaction(ctx context.Context, tx models.Transaction) (*models.FraudCheckResult, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	Rules() []rules.Rule
}

// FraudService orchestrates one evaluation: profile load, velocity count, rule
// scoring, profile update and velocity record.
//
// No per-user locking is done. Two concurrent evaluations for the same user
// both read the same profile and the later Save wins; the velocity count is
// approximate for the same reason.
type FraudService struct {
	profiles  ProfileStore
	velocity  VelocityTracker
	rules     RuleEvaluator
	metrics   metrics.Sink
	decisions DecisionSink
	log       *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewFraudService(
	profiles ProfileStore,
	velocity VelocityTracker,
	rules RuleEvaluator,
	metrics metrics.Sink,
	decisions DecisionSink,
	log *slog.Logger,
) *FraudService {
	return &FraudService{
		profiles:  profiles,
		velocity:  velocity,
		rules:     rules,
		metrics:   metrics,
		decisions: decisions,
		log:       log,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// EvaluateTransaction scores tx and persists its effect on the user's profile
// and velocity log. Any store failure aborts the whole evaluation; no partial
// result is returned.
func (s *FraudService) EvaluateTransaction(ctx context.Context, tx models.Transaction) (*models.FraudCheckResult, error) {
	const op = "service.EvaluateTransaction"

	if tx.Timestamp.IsZero() {
		tx.Timestamp = s.now()
	}

	profile, err := s.profiles.Load(ctx, tx.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: load profile: %w", op, err)
	}

	recentCount, err := s.velocity.Count(ctx, tx.UserID, VelocityWindow)
	if err != nil {
		return nil, fmt.Errorf("%s: count velocity: %w", op, err)
	}

	riskScore, triggered := s.rules.Evaluate(tx, profile, recentCount)
	isFraud := s.rules.ShouldBlock(triggered) || riskScore > BlockScoreThreshold

	profile.Apply(tx)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: save profile: %w", op, err)
	}

	if err := s.velocity.Record(ctx, tx.UserID, s.newID().String()); err != nil {
		return nil, fmt.Errorf("%s: record velocity: %w", op, err)
	}

	if err := s.metrics.RecordOutcome(ctx, isFraud); err != nil {
		s.log.Warn("failed to record outcome metric",
			slog.String("op", op),
			slog.String("user_id", tx.UserID),
			slog.String("error", err.Error()))
	}

	return &models.FraudCheckResult{
		IsFraud:        isFraud,
		RiskScore:      riskScore,
		RulesTriggered: triggered,
	}, nil
}

// ProcessTransaction validates tx, evaluates it and builds the API response.
// The decision is handed to the decision sink after the response is built.
func (s *FraudService) ProcessTransaction(ctx context.Context, tx models.Transaction) (*models.TransactionResponse, error) {
	const op = "service.ProcessTransaction"
	start := time.Now()

	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", custom_err.ErrInvalidTransaction, err.Error())
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = s.now()
	}

	result, err := s.EvaluateTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := Classify(result)
	elapsed := time.Since(start).Milliseconds()

	resp := &models.TransactionResponse{
		TransactionID:    s.newID(),
		Status:           status,
		RiskScore:        result.RiskScore,
		RulesTriggered:   result.RulesTriggered,
		ProcessingTimeMs: elapsed,
	}

	s.log.Info("transaction processed",
		slog.String("user_id", tx.UserID),
		slog.Float64("amount", tx.Amount),
		slog.String("status", string(status)),
		slog.Float64("risk_score", result.RiskScore),
		slog.Any("rules_triggered", result.RulesTriggered),
		slog.Int64("processing_time_ms", elapsed))

	if s.decisions != nil {
		s.decisions.Submit(models.DecisionEvent{
			TransactionID:    resp.TransactionID,
			UserID:           tx.UserID,
			Amount:           tx.Amount,
			Merchant:         tx.Merchant,
			Location:         tx.Location,
			DeviceID:         tx.DeviceID,
			Status:           status,
			RiskScore:        result.RiskScore,
			RulesTriggered:   result.RulesTriggered,
			Alert:            s.rules.HasAction(result.RulesTriggered, rules.ActionAlert),
			ProcessingTimeMs: elapsed,
			Timestamp:        tx.Timestamp,
		})
	}

	return resp, nil
}

// GetProfile returns the stored profile, or an empty one for an unknown user.
func (s *FraudService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	const op = "service.GetProfile"

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", custom_err.ErrInvalidInput)
	}

	profile, err := s.profiles.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return profile, nil
}

func (s *FraudService) Rules() []rules.Rule {
	return s.rules.Rules()
}

// Classify maps a result onto a transaction status. isFraud already covers
// every score above BlockScoreThreshold.
func Classify(result *models.FraudCheckResult) models.TransactionStatus {
	switch {
	case result.IsFraud:
		return models.StatusBlocked
	case result.RiskScore > ReviewScoreThreshold:
		return models.StatusReview
	default:
		return models.StatusApproved
	}
}
