package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/models"
	"fraud-engine/internal/storage"
)

// DBTX is the subset of pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type DecisionRepository interface {
	Insert(ctx context.Context, record *models.DecisionRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.DecisionRecord, error)
}

type PgDecisionRepository struct {
	db DBTX
}

func NewDecisionRepository(db DBTX) DecisionRepository {
	return &PgDecisionRepository{db: db}
}

func (r *PgDecisionRepository) Insert(ctx context.Context, record *models.DecisionRecord) error {
	const op = "storage.Decision.Insert"

	rules := record.RulesTriggered
	if rules == nil {
		rules = []string{}
	}

	_, err := r.db.Exec(ctx, storage.InsertDecisionQuery,
		record.ID,
		record.UserID,
		record.Amount,
		record.Merchant,
		record.Location,
		record.DeviceID,
		string(record.Status),
		record.RiskScore,
		rules,
		record.ProcessingTimeMs,
		record.TransactionTime,
	)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, custom_err.ErrAuditUnavailable, err)
	}
	return nil
}

func (r *PgDecisionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.DecisionRecord, error) {
	const op = "storage.Decision.ListByUser"

	rows, err := r.db.Query(ctx, storage.ListDecisionsByUserQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, custom_err.ErrAuditUnavailable, err)
	}
	defer rows.Close()

	records := make([]*models.DecisionRecord, 0, limit)
	for rows.Next() {
		var rec models.DecisionRecord
		var status string
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Amount,
			&rec.Merchant,
			&rec.Location,
			&rec.DeviceID,
			&status,
			&rec.RiskScore,
			&rec.RulesTriggered,
			&rec.ProcessingTimeMs,
			&rec.TransactionTime,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rec.Status = models.TransactionStatus(status)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w: %w", op, custom_err.ErrAuditUnavailable, err)
	}

	return records, nil
}
