package catalog

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// The cache is advisory, never load-bearing: every failure degrades to
// the same fallback path as a plain miss, and invalidation errors are
// logged and swallowed.

type CacheState int

const (
	CacheHit CacheState = iota
	CacheMiss
	CacheUnavailable
)

// CacheLookup is the explicit result of a counter read. Miss and
// Unavailable are routed to the same database fallback by the caller.
type CacheLookup struct {
	State CacheState
	Count int
}

type LikeCache interface {
	GetCount(ctx context.Context, albumID string) CacheLookup
	SetCount(ctx context.Context, albumID string, count int)
	Invalidate(ctx context.Context, albumID string)
}

const likeCacheTTL = 30 * time.Minute

type RedisLikeCache struct {
	rdb *redis.Client
}

func NewRedisLikeCache(rdb *redis.Client) *RedisLikeCache {
	return &RedisLikeCache{rdb: rdb}
}

func likeKey(albumID string) string {
	return "album:" + albumID + ":likes"
}

func (c *RedisLikeCache) GetCount(ctx context.Context, albumID string) CacheLookup {
	if c.rdb == nil {
		return CacheLookup{State: CacheUnavailable}
	}
	val, err := c.rdb.Get(ctx, likeKey(albumID)).Result()
	if err == redis.Nil {
		return CacheLookup{State: CacheMiss}
	}
	if err != nil {
		log.Printf("catalog-service: like cache get: %v", err)
		return CacheLookup{State: CacheUnavailable}
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		// An unparseable entry is as good as no entry.
		log.Printf("catalog-service: like cache parse %q: %v", val, err)
		return CacheLookup{State: CacheMiss}
	}
	return CacheLookup{State: CacheHit, Count: count}
}

func (c *RedisLikeCache) SetCount(ctx context.Context, albumID string, count int) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, likeKey(albumID), strconv.Itoa(count), likeCacheTTL).Err(); err != nil {
		log.Printf("catalog-service: like cache set: %v", err)
	}
}

func (c *RedisLikeCache) Invalidate(ctx context.Context, albumID string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, likeKey(albumID)).Err(); err != nil {
		log.Printf("catalog-service: like cache invalidate: %v", err)
	}
}
