package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/metrics"
)

const (
	insightsKeyPrefix = "insights_cache:"
	insightsTTL       = time.Hour
)

// InsightsCache stores computed analytics bundles in Redis with a one-hour
// freshness window. A stale or missing bundle reads as a miss (nil, nil).
type InsightsCache struct {
	client *goredis.Client
}

func NewInsightsCache(client *goredis.Client) *InsightsCache {
	return &InsightsCache{client: client}
}

func insightsKey(userID string) string {
	return insightsKeyPrefix + userID
}

func (c *InsightsCache) Get(ctx context.Context, userID string) (*domain.AnalyticsBundle, error) {
	raw, err := c.client.Get(ctx, insightsKey(userID)).Bytes()
	if err == goredis.Nil {
		metrics.InsightsCacheMisses.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read insights cache: %w", err)
	}

	var bundle domain.AnalyticsBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		// A corrupt value behaves like a miss; the caller recomputes
		// and overwrites it.
		metrics.InsightsCacheMisses.Inc()
		return nil, nil
	}

	metrics.InsightsCacheHits.Inc()
	return &bundle, nil
}

func (c *InsightsCache) Set(ctx context.Context, userID string, bundle *domain.AnalyticsBundle) error {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode insights bundle: %w", err)
	}
	if err := c.client.Set(ctx, insightsKey(userID), raw, insightsTTL).Err(); err != nil {
		return fmt.Errorf("failed to write insights cache: %w", err)
	}
	return nil
}
