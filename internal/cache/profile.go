package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const profileKeyPrefix = "public_profile:"

// ProfileCache keeps the public booking-page payload per shop slug. The cache
// is best-effort: a nil client or any redis failure degrades to a database
// read, never to an error.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl, log: log}
}

// Get unmarshals the cached payload for slug into dest. Returns false on
// miss, disabled cache, or any redis error.
func (c *ProfileCache) Get(ctx context.Context, slug string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, profileKeyPrefix+slug).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("slug", slug).Msg("profile cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("slug", slug).Msg("profile cache entry corrupt")
		return false
	}
	return true
}

func (c *ProfileCache) Set(ctx context.Context, slug string, v any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, profileKeyPrefix+slug, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("slug", slug).Msg("profile cache write failed")
	}
}

// Invalidate drops the cached payload after an owner mutates shop data.
func (c *ProfileCache) Invalidate(ctx context.Context, slug string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, profileKeyPrefix+slug).Err(); err != nil {
		c.log.Warn().Err(err).Str("slug", slug).Msg("profile cache invalidation failed")
	}
}
