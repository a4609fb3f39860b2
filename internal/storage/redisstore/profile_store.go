package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/models"
)

// ProfileStore keeps one JSON-encoded profile per user. Saves overwrite
// unconditionally (last writer wins) and refresh the TTL.
type ProfileStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewProfileStore(client redis.Cmdable) *ProfileStore {
	return &ProfileStore{client: client, ttl: ProfileTTL}
}

// Load returns the stored profile, or a fresh one tagged with userID on miss.
func (s *ProfileStore) Load(ctx context.Context, userID string) (*models.UserProfile, error) {
	const op = "redisstore.ProfileStore.Load"

	value, err := s.client.Get(ctx, profileKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.NewUserProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, custom_err.ErrStoreUnavailable, err)
	}

	profile := &models.UserProfile{}
	if err := json.Unmarshal([]byte(value), profile); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, custom_err.ErrProfileCorrupted, err)
	}
	if profile.KnownDevices == nil {
		profile.KnownDevices = []string{}
	}
	if profile.KnownLocations == nil {
		profile.KnownLocations = []string{}
	}
	return profile, nil
}

func (s *ProfileStore) Save(ctx context.Context, profile *models.UserProfile) error {
	const op = "redisstore.ProfileStore.Save"

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, custom_err.ErrProfileCorrupted, err)
	}

	if err := s.client.Set(ctx, profileKey(profile.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, custom_err.ErrStoreUnavailable, err)
	}
	return nil
}
