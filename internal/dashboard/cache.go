package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKey = "dashboard:summary"

// Cache is a short-lived Redis cache for the dashboard summary. All methods
// degrade to a miss on Redis trouble; the dashboard never fails because the
// cache is down. A nil *Cache is a no-op.
type Cache struct {
	Rdb *redis.Client
	TTL time.Duration
}

// Get returns the cached summary, or (nil, false) on a miss.
func (c *Cache) Get(ctx context.Context) (*Summary, bool) {
	if c == nil || c.Rdb == nil {
		return nil, false
	}
	raw, err := c.Rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("dashboard cache read failed")
		}
		return nil, false
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false
	}
	return &summary, true
}

// Set stores the summary for the configured TTL.
func (c *Cache) Set(ctx context.Context, summary *Summary) {
	if c == nil || c.Rdb == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.Rdb.Set(ctx, cacheKey, raw, c.TTL).Err(); err != nil {
		log.Warn().Err(err).Msg("dashboard cache write failed")
	}
}

// Invalidate drops the cached summary. Called after payment or unit writes.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.Rdb == nil {
		return
	}
	if err := c.Rdb.Del(ctx, cacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("dashboard cache invalidation failed")
	}
}
