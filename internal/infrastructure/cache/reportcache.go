// Package cache holds the Redis-backed local report cache. It is the
// non-authoritative side of report storage: entries land here first and are
// reconciled into the relational store by the sync use case.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"chamados/internal/domain/report"
	"chamados/internal/shared/config"
)

// ReportCache stores report payloads in one Redis hash per kind, keyed by
// period key.
type ReportCache struct {
	client *redis.Client
}

func NewReportCache(cfg *config.RedisConfig) *ReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &ReportCache{client: client}
}

// NewReportCacheWithClient wires an existing client.
func NewReportCacheWithClient(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

func (c *ReportCache) LoadAll(ctx context.Context, kind report.Kind) (map[string]report.Payload, error) {
	entries, err := c.client.HGetAll(ctx, cacheKey(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load report cache: %w", err)
	}

	payloads := make(map[string]report.Payload, len(entries))
	for periodKey, raw := range entries {
		var payload report.Payload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, fmt.Errorf("failed to decode cached report %s: %w", periodKey, err)
		}
		payloads[periodKey] = payload
	}

	return payloads, nil
}

func (c *ReportCache) Put(ctx context.Context, kind report.Kind, periodKey string, payload report.Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode report payload: %w", err)
	}

	if err := c.client.HSet(ctx, cacheKey(kind), periodKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}

	return nil
}

func (c *ReportCache) Remove(ctx context.Context, kind report.Kind, periodKey string) error {
	if err := c.client.HDel(ctx, cacheKey(kind), periodKey).Err(); err != nil {
		return fmt.Errorf("failed to remove cached report: %w", err)
	}
	return nil
}

// Ping checks the Redis connection on startup.
func (c *ReportCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *ReportCache) Close() error {
	return c.client.Close()
}

func cacheKey(kind report.Kind) string {
	return "report_cache:" + kind.String()
}
