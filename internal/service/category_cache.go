package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/trivialab/trivia-backend/internal/config"
)

// RedisCategoryCache is the Redis-backed CategoryCache used in production.
// Every failure is logged and reported as a miss so Redis outages never
// take category reads down with them.
type RedisCategoryCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewRedisCategoryCache creates a RedisCategoryCache with the given TTL.
func NewRedisCategoryCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisCategoryCache {
	return &RedisCategoryCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "category_cache").Logger(),
	}
}

// GetMap reads the cached category map, reporting ok=false on a miss or
// any Redis/decoding failure.
func (c *RedisCategoryCache) GetMap(ctx context.Context) (map[int]string, bool) {
	raw, err := c.rdb.Get(ctx, config.CacheKey.CategoryMapKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("category cache read failed")
		}
		return nil, false
	}

	var m map[int]string
	if err := json.Unmarshal(raw, &m); err != nil {
		c.log.Warn().Err(err).Msg("category cache payload invalid")
		return nil, false
	}
	return m, true
}

// SetMap stores the category map with the configured TTL. Best effort.
func (c *RedisCategoryCache) SetMap(ctx context.Context, categories map[int]string) {
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, config.CacheKey.CategoryMapKey(), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("category cache write failed")
	}
}
