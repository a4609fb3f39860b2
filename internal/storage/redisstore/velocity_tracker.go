package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"fraud-engine/internal/custom_err"
)

// VelocityTracker counts a user's transactions inside a sliding window.
//
// Purge and count are two separate commands with no transaction around them,
// so a concurrent Record may or may not be observed. The count is approximate.
type VelocityTracker struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

func NewVelocityTracker(client redis.Cmdable) *VelocityTracker {
	return &VelocityTracker{client: client, ttl: VelocityTTL, now: time.Now}
}

// Count drops entries scored before now-window and returns how many remain in
// [now-window, now]. An entry scored exactly now-window is kept and counted.
func (t *VelocityTracker) Count(ctx context.Context, userID string, window time.Duration) (int64, error) {
	const op = "redisstore.VelocityTracker.Count"

	key := velocityKey(userID)
	now := t.now().Unix()
	minScore := now - int64(window/time.Second)

	if err := t.client.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(minScore, 10)).Err(); err != nil {
		return 0, fmt.Errorf("%s: purge: %w: %w", op, custom_err.ErrStoreUnavailable, err)
	}

	count, err := t.client.ZCount(ctx, key, strconv.FormatInt(minScore, 10), strconv.FormatInt(now, 10)).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: count: %w: %w", op, custom_err.ErrStoreUnavailable, err)
	}
	return count, nil
}

// Record adds txID scored by the current second and pushes the key's expiry
// out so idle users are reclaimed without a purge.
func (t *VelocityTracker) Record(ctx context.Context, userID, txID string) error {
	const op = "redisstore.VelocityTracker.Record"

	key := velocityKey(userID)
	now := t.now().Unix()

	if err := t.client.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: txID}).Err(); err != nil {
		return fmt.Errorf("%s: add: %w: %w", op, custom_err.ErrStoreUnavailable, err)
	}
	if err := t.client.Expire(ctx, key, t.ttl).Err(); err != nil {
		return fmt.Errorf("%s: expire: %w: %w", op, custom_err.ErrStoreUnavailable, err)
	}
	return nil
}
