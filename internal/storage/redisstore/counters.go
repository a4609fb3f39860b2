package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fraud-engine/internal/custom_err"
)

// Counters mirrors the outcome counters into Redis with INCR so they survive
// restarts and are shared by every replica.
type Counters struct {
	client redis.Cmdable
}

func NewCounters(client redis.Cmdable) *Counters {
	return &Counters{client: client}
}

func (c *Counters) RecordOutcome(ctx context.Context, blocked bool) error {
	key := ApprovedCounterKey
	if blocked {
		key = BlockedCounterKey
	}
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("redisstore.Counters.RecordOutcome: %w: %w", custom_err.ErrStoreUnavailable, err)
	}
	return nil
}
