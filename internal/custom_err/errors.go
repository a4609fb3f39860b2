package custom_err

import "errors"

var (
	// Storage errors
	ErrStoreUnavailable = errors.New("keyed store unavailable")
	ErrProfileCorrupted = errors.New("stored profile is malformed")
	ErrAuditUnavailable = errors.New("audit store unavailable")
	ErrNotFound         = errors.New("resource not found")

	// Configuration errors
	ErrInvalidRuleConfig = errors.New("invalid rule configuration")

	// Caller errors
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenNotActive = errors.New("token not active yet")

	// Validation errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidAmount      = errors.New("invalid amount")
)
