package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	skillRollupKey = "analytics:skills"
	userStatsKey   = "analytics:user:%d"
	cacheTTL       = 5 * time.Minute
)

// ErrCacheMiss is returned when the key is absent or caching is disabled.
var ErrCacheMiss = errors.New("analytics: cache miss")

// Cache keeps computed analytics in Redis for a short TTL. A nil client is
// valid and behaves as an always-miss cache, so callers never need to know
// whether Redis is configured.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) GetSkillRollup(ctx context.Context) ([]SkillAnalytics, error) {
	var entries []SkillAnalytics
	if err := c.get(ctx, skillRollupKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Cache) SetSkillRollup(ctx context.Context, entries []SkillAnalytics) {
	c.set(ctx, skillRollupKey, entries)
}

func (c *Cache) GetUserStats(ctx context.Context, userID uint) (*UserStats, error) {
	var stats UserStats
	if err := c.get(ctx, fmt.Sprintf(userStatsKey, userID), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Cache) SetUserStats(ctx context.Context, userID uint, stats *UserStats) {
	c.set(ctx, fmt.Sprintf(userStatsKey, userID), stats)
}

func (c *Cache) get(ctx context.Context, key string, dest interface{}) error {
	if c == nil || c.client == nil {
		return ErrCacheMiss
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(payload, dest)
}

// set is best-effort: a failed write just means the next read recomputes.
func (c *Cache) set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, payload, cacheTTL)
}
