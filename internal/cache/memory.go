package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/metrics"
)

// Ensure MemoryCache implements interfaces.FastCache
var _ interfaces.FastCache = (*MemoryCache)(nil)

// envelope wraps a stored value with its own expiry, since bigcache only has
// a global life window.
type envelope struct {
	Data      []byte `json:"data"`
	ExpiresAt int64  `json:"expiresAt"`
}

func (e *envelope) expired() bool {
	return time.Now().Unix() >= e.ExpiresAt
}

// MemoryCache is the in-process fast-cache backing store. It does not
// support pattern deletion.
type MemoryCache struct {
	cache      *bigcache.BigCache
	defaultTTL time.Duration
	logger     *zap.Logger

	// Serializes the get-then-set inside SetNX. The store is per-process,
	// so this is as strong a lock as the backend can offer.
	nxMu sync.Mutex
}

// NewMemoryCache creates an in-process store sized per config.
func NewMemoryCache(cfg *config.MemoryConfig, logger *zap.Logger) (*MemoryCache, error) {
	bcConfig := bigcache.DefaultConfig(cfg.DefaultTTL)
	bcConfig.HardMaxCacheSize = cfg.SizeMB
	bcConfig.Verbose = false
	bcConfig.MaxEntrySize = 1024 * 1024

	bc, err := bigcache.New(context.Background(), bcConfig)
	if err != nil {
		return nil, err
	}

	return &MemoryCache{
		cache:      bc,
		defaultTTL: cfg.DefaultTTL,
		logger:     logger,
	}, nil
}

// Get retrieves a value, treating decode failures and expired envelopes as
// misses.
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := mc.cache.Get(key)
	if err != nil {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		mc.logger.Warn("Failed to unmarshal cache envelope", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("memory", "decode")
		_ = mc.cache.Delete(key)
		return nil, false
	}

	if env.expired() {
		_ = mc.cache.Delete(key)
		return nil, false
	}

	return env.Data, true
}

// Set stores a value with the given TTL (the store default when zero).
func (mc *MemoryCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}

	env := envelope{
		Data:      val,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}

	data, err := json.Marshal(&env)
	if err != nil {
		metrics.RecordCacheError("memory", "encode")
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "failed to encode cache entry", err)
	}

	if err := mc.cache.Set(key, data); err != nil {
		metrics.RecordCacheError("memory", "set")
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "failed to set cache entry", err)
	}

	return nil
}

// SetNX sets key only if absent.
func (mc *MemoryCache) SetNX(ctx context.Context, key string, val []byte, ttl time.Duration) (bool, error) {
	mc.nxMu.Lock()
	defer mc.nxMu.Unlock()

	if _, found := mc.Get(ctx, key); found {
		return false, nil
	}

	if err := mc.Set(ctx, key, val, ttl); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a key; deleting an absent key is not an error.
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	err := mc.cache.Delete(key)
	if err != nil && err != bigcache.ErrEntryNotFound {
		metrics.RecordCacheError("memory", "delete")
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "failed to delete cache entry", err)
	}
	return nil
}

// DeleteByPattern is a no-op: the in-process store cannot enumerate keys by
// glob.
func (mc *MemoryCache) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	return 0, nil
}

// Reset clears the whole store.
func (mc *MemoryCache) Reset(ctx context.Context) error {
	return mc.cache.Reset()
}

// SupportsPatternDelete reports the pattern-deletion capability.
func (mc *MemoryCache) SupportsPatternDelete() bool {
	return false
}

// Close releases the backing store.
func (mc *MemoryCache) Close() error {
	return mc.cache.Close()
}
