package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addrs         []string
	Password      string
	DB            int
	PoolSize      int
	DialTimeout   time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// NewRedisClient подключается к redis (одиночный узел или кластер, если
// адресов несколько) и ждет успешного PING с экспоненциальной задержкой.
func NewRedisClient(ctx context.Context, cfg RedisConfig, log *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        cfg.Addrs,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.DialTimeout,
		WriteTimeout: cfg.DialTimeout,
		// повторы запросов не делаем: политика ретраев на стороне вызывающего
		MaxRetries: -1,
	})

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			log.Info("подключение к redis успешно", slog.Any("addrs", cfg.Addrs))
			return client, nil
		}

		log.Warn("ping redis не удался",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", attempts),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, fmt.Errorf("подключение к redis прервано: %w", ctx.Err())
		case <-time.After(cfg.RetryDelay * time.Duration(1<<i)):
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("не удалось подключиться к redis после %d попыток: %w", attempts, err)
}
