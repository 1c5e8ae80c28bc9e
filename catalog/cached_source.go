package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/cache"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// CacheKey is the redis key holding the encoded catalog snapshot.
const CacheKey = "catalog:services"

// ErrCacheMiss is returned by a KV when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// KV is the subset of a key-value store CachedSource needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisKV adapts a go-redis client to KV.
type RedisKV struct {
	Client *redis.Client
}

func (r RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (r RedisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

func (r RedisKV) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// CachedSource serves the catalog from an in-process snapshot, then from the
// shared KV, and only then from the underlying source. Cache failures are
// logged and bypassed; only the underlying source can fail a request.
type CachedSource struct {
	src   Source
	kv    KV
	local *cache.Snapshot[[]models.Service]
}

// NewCachedSource wraps src. kv may be nil to use only the local snapshot.
func NewCachedSource(src Source, kv KV, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src:   src,
		kv:    kv,
		local: cache.NewSnapshot[[]models.Service](ttl),
	}
}

func (c *CachedSource) ListServices(ctx context.Context) ([]models.Service, error) {
	if services, ok := c.local.Get(); ok {
		return services, nil
	}

	if services, ok := c.fromKV(ctx); ok {
		c.local.Set(services)
		return services, nil
	}

	services, err := c.src.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	c.local.Set(services)
	c.toKV(ctx, services)
	return services, nil
}

// Invalidate drops both cache layers.
func (c *CachedSource) Invalidate(ctx context.Context) {
	c.local.Invalidate()
	if c.kv == nil {
		return
	}
	if err := c.kv.Del(ctx, CacheKey); err != nil {
		config.Log.Warnf("[catalog.cache] failed to invalidate: %v", err)
	}
}

func (c *CachedSource) fromKV(ctx context.Context) ([]models.Service, bool) {
	if c.kv == nil {
		return nil, false
	}
	raw, err := c.kv.Get(ctx, CacheKey)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			config.Log.Warnf("[catalog.cache] read failed: %v", err)
		}
		return nil, false
	}
	services, skipped, err := DecodeServices(raw)
	if err != nil || skipped > 0 {
		config.Log.Warnf("[catalog.cache] discarding corrupt snapshot (skipped=%d err=%v)", skipped, err)
		return nil, false
	}
	return services, true
}

func (c *CachedSource) toKV(ctx context.Context, services []models.Service) {
	if c.kv == nil {
		return
	}
	raw, err := json.Marshal(services)
	if err != nil {
		config.Log.Warnf("[catalog.cache] encode failed: %v", err)
		return
	}
	if err := c.kv.Set(ctx, CacheKey, raw, c.local.TTL()); err != nil {
		config.Log.Warnf("[catalog.cache] write failed: %v", err)
	}
}
