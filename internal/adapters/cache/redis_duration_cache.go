// Package cache provides the redis-backed lookaside cache for zip-pair
// drive durations.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"order-grouping-service/internal/metrics"
	"order-grouping-service/internal/platform/obs"
	"order-grouping-service/internal/ports"
)

// Default lifetime of a cached duration. Traffic patterns drift, so
// entries expire rather than living forever.
const defaultTTL = 24 * time.Hour

// RedisDurationCache implements the DurationCache port over redis.
// Misses and redis failures are reported distinctly so callers can fall
// through to on-demand computation.
type RedisDurationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDurationCache(rdb *redis.Client) *RedisDurationCache {
	return &RedisDurationCache{rdb: rdb, ttl: defaultTTL}
}

type cachedDuration struct {
	DistanceMeters  int `json:"distance_meters"`
	DurationSeconds int `json:"duration_seconds"`
}

func key(originZip, destZip string) string {
	return "durations:" + originZip + "|" + destZip
}

// Get fetches the cached result for one zip pair. The second return
// value is false on a miss.
func (c *RedisDurationCache) Get(ctx context.Context, originZip, destZip string) (_ ports.DurationResult, _ bool, err error) {
	defer obs.Time(ctx, "durations.cache.Get")(&err)

	if c.rdb == nil {
		return ports.DurationResult{}, false, errors.New("duration cache: redis client is nil")
	}
	if originZip == "" || destZip == "" {
		return ports.DurationResult{}, false, errors.New("duration cache: origin and destination must be non-empty")
	}

	raw, err := c.rdb.Get(ctx, key(originZip, destZip)).Result()
	if errors.Is(err, redis.Nil) {
		metrics.DurationCacheHits.WithLabelValues("miss").Inc()
		return ports.DurationResult{}, false, nil
	}
	if err != nil {
		return ports.DurationResult{}, false, fmt.Errorf("duration cache: get %s->%s: %w", originZip, destZip, err)
	}

	var v cachedDuration
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		// A corrupt entry is treated as a miss so it gets rewritten.
		metrics.DurationCacheHits.WithLabelValues("miss").Inc()
		return ports.DurationResult{}, false, nil
	}

	metrics.DurationCacheHits.WithLabelValues("hit").Inc()
	return ports.DurationResult{DistanceMeters: v.DistanceMeters, DurationSeconds: v.DurationSeconds}, true, nil
}

// Put stores a result for one zip pair with the cache TTL.
func (c *RedisDurationCache) Put(ctx context.Context, originZip, destZip string, res ports.DurationResult) (err error) {
	defer obs.Time(ctx, "durations.cache.Put")(&err)

	if c.rdb == nil {
		return errors.New("duration cache: redis client is nil")
	}
	if originZip == "" || destZip == "" {
		return errors.New("duration cache: origin and destination must be non-empty")
	}

	raw, err := json.Marshal(cachedDuration{
		DistanceMeters:  res.DistanceMeters,
		DurationSeconds: res.DurationSeconds,
	})
	if err != nil {
		return fmt.Errorf("duration cache: marshal %s->%s: %w", originZip, destZip, err)
	}

	if err := c.rdb.Set(ctx, key(originZip, destZip), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("duration cache: set %s->%s: %w", originZip, destZip, err)
	}

	return nil
}
