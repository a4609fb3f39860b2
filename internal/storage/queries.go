package storage

const (
	// Записать решение по транзакции в журнал аудита
	InsertDecisionQuery = `
		INSERT INTO fraud_decisions (
			id, user_id, amount, merchant, location, device_id,
			status, risk_score, rules_triggered, processing_time_ms, transaction_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`

	// Последние решения по пользователю
	ListDecisionsByUserQuery = `
		SELECT id, user_id, amount, merchant, location, device_id,
		       status, risk_score, rules_triggered, processing_time_ms,
		       transaction_time, created_at
		FROM fraud_decisions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
)
