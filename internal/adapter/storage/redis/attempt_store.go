package redis

import (
	"context"
	"fmt"
	"time"

	"sim-registry/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// AttemptStore implements ports.VerifyAttemptStore with Redis counters.
// Verification and swap are identity-guessing targets; the HTTP layer
// throttles attempts per phone number through this store.
type AttemptStore struct {
	client *goredis.Client
	prefix string
}

// NewAttemptStore creates a new Redis-backed attempt store.
func NewAttemptStore(client *goredis.Client) *AttemptStore {
	return &AttemptStore{
		client: client,
		prefix: "verify_attempts:",
	}
}

// Allow records one attempt against the phone number and reports whether
// it stays within the limit. Fixed-window counter: INCR + EXPIRE on a key
// scoped by windowID, windowID = time / window.
func (s *AttemptStore) Allow(ctx context.Context, phoneNumber string, limit int64, window time.Duration) (*ports.AttemptResult, error) {
	now := time.Now()
	windowID := now.Unix() / int64(window.Seconds())
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, phoneNumber, windowID)

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis attempt incr: %w", err)
	}

	// Set expiry only on first increment (new window)
	if count == 1 {
		s.client.Expire(ctx, redisKey, window+time.Second) // +1s safety margin
	}

	resetAt := (windowID + 1) * int64(window.Seconds())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.AttemptResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
