package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sim-registry/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReportCache implements ports.FraudReportCache using Redis. The fraud
// gate re-checks aggregated reports while a registration form is being
// filled in; a short TTL saves the repeated fan-out without hiding fresh
// reports for long.
type ReportCache struct {
	client *goredis.Client
	prefix string
}

// NewReportCache creates a new Redis-backed fraud report cache.
func NewReportCache(client *goredis.Client) *ReportCache {
	return &ReportCache{
		client: client,
		prefix: "fraud_reports:",
	}
}

// Get retrieves cached reports for a national id. The second return is
// false on a cache miss. An empty cached slice is a valid hit: "no
// reports" is itself a cacheable answer.
func (c *ReportCache) Get(ctx context.Context, nationalID string) ([]domain.FraudReport, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+nationalID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis report cache get: %w", err)
	}

	var reports []domain.FraudReport
	if err := json.Unmarshal(val, &reports); err != nil {
		return nil, false, fmt.Errorf("redis report cache decode: %w", err)
	}
	return reports, true, nil
}

// Set stores aggregated reports for a national id with TTL.
func (c *ReportCache) Set(ctx context.Context, nationalID string, reports []domain.FraudReport, ttl time.Duration) error {
	payload, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("redis report cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+nationalID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis report cache set: %w", err)
	}
	return nil
}
