// Package storage provides the Redis-backed implementation of the
// leaderboard store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hustleworks/nashville-hustle/pkg/leaderboard"
)

// highScoresKey is the single fixed key the list lives under.
const highScoresKey = "hustle:highscores"

// RedisStore implements leaderboard.Store on a Redis instance.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements the Store interface
var _ leaderboard.Store = (*RedisStore)(nil)

// NewRedisStore creates a store talking to the given address.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup).
func (r *RedisStore) WaitForConnection(ctx context.Context, maxWait time.Duration) error {
	deadline := time.Now().Add(maxWait)
	for {
		err := r.Ping(ctx)
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("redis not available after %s: %w", maxWait, err)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
		case <-time.After(time.Second):
		}
	}
}

// Load reads the high-score list. A missing key or malformed payload is
// treated as an empty list; only transport errors are returned.
func (r *RedisStore) Load(ctx context.Context) ([]leaderboard.HighScore, error) {
	data, err := r.client.Get(ctx, highScoresKey).Result()
	if errors.Is(err, redis.Nil) {
		return []leaderboard.HighScore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load high scores: %w", err)
	}

	var scores []leaderboard.HighScore
	if err := json.Unmarshal([]byte(data), &scores); err != nil {
		r.logger.Warn("discarding malformed high-score data", "error", err)
		return []leaderboard.HighScore{}, nil
	}
	return scores, nil
}

// Save writes the list back, sorted and truncated to the top entries.
func (r *RedisStore) Save(ctx context.Context, scores []leaderboard.HighScore) error {
	data, err := json.Marshal(leaderboard.Trim(scores))
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := r.client.Set(ctx, highScoresKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}
