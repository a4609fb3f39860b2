// Package redisstore implements the keyed-store side of fraud scoring on
// Redis: per-user profiles (string values with TTL), sliding-window velocity
// logs (sorted sets scored by unix seconds) and outcome counters.
package redisstore

import (
	"fmt"
	"time"
)

const (
	ProfileTTL  = 24 * time.Hour
	VelocityTTL = time.Hour

	BlockedCounterKey  = "fraud:blocked:total"
	ApprovedCounterKey = "fraud:approved:total"
)

func profileKey(userID string) string {
	return fmt.Sprintf("user:%s:profile", userID)
}

func velocityKey(userID string) string {
	return fmt.Sprintf("user:%s:txns", userID)
}
