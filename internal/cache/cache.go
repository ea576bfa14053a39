// Package cache implements the fast tier: a key-value store backed either by
// Redis (remote, pattern-delete capable) or bigcache (in-process). The
// backing store is selected once at construction.
package cache

import (
	"go.uber.org/zap"

	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
)

// New selects the backing store: Redis when connection parameters are
// present, otherwise the in-process store with its shorter default TTL.
func New(cfg *config.Config, logger *zap.Logger) (interfaces.FastCache, error) {
	if cfg.Redis.URL != "" {
		logger.Info("Fast cache backed by Redis", zap.String("url", cfg.Redis.URL))
		return NewRedisCache(&cfg.Redis, logger), nil
	}

	logger.Info("Fast cache backed by in-process store",
		zap.Int("size_mb", cfg.Memory.SizeMB),
		zap.Duration("default_ttl", cfg.Memory.DefaultTTL))
	return NewMemoryCache(&cfg.Memory, logger)
}
