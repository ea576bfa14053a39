package cache

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/metrics"
)

// Ensure RedisCache implements interfaces.FastCache
var _ interfaces.FastCache = (*RedisCache)(nil)

// scanPageSize bounds one SCAN page during pattern deletion.
const scanPageSize = 100

// RedisCache is the remote fast-cache backing store. The connection is lazy:
// nothing is dialed until the first operation, and a failed connection is
// retried at most once per backoff window so request latency never stacks
// behind reconnection storms.
type RedisCache struct {
	cfg    *config.RedisConfig
	logger *zap.Logger

	mu          sync.Mutex
	client      interfaces.RedisClient
	nextConnect time.Time

	// dial is swappable for tests.
	dial func(cfg *config.RedisConfig) (interfaces.RedisClient, error)
}

// NewRedisCache creates the store without opening a connection.
func NewRedisCache(cfg *config.RedisConfig, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		cfg:    cfg,
		logger: logger,
		dial:   dialRedis,
	}
}

// NewRedisCacheWithClient creates the store around an existing client.
func NewRedisCacheWithClient(cfg *config.RedisConfig, client interfaces.RedisClient, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		cfg:    cfg,
		logger: logger,
		client: client,
		dial:   dialRedis,
	}
}

// dialRedis parses the Redis URL and opens a verified connection.
func dialRedis(cfg *config.RedisConfig) (interfaces.RedisClient, error) {
	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	host := parsedURL.Hostname()
	port := parsedURL.Port()
	if port == "" {
		port = "6379"
	}

	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.SendTimeout,
		PoolSize:     cfg.PoolSize,
	}

	if parsedURL.User != nil {
		if password, ok := parsedURL.User.Password(); ok {
			opts.Password = password
		}
	}

	if len(parsedURL.Path) > 1 {
		if db, err := strconv.Atoi(parsedURL.Path[1:]); err == nil {
			opts.DB = db
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}

// conn returns the connected client, dialing lazily. While a reconnect is
// pending the error returns immediately instead of blocking the request.
func (rc *RedisCache) conn() (interfaces.RedisClient, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.client != nil {
		return rc.client, nil
	}

	if time.Now().Before(rc.nextConnect) {
		return nil, fmt.Errorf("redis reconnect pending until %s", rc.nextConnect.Format(time.RFC3339))
	}

	client, err := rc.dial(rc.cfg)
	if err != nil {
		rc.nextConnect = time.Now().Add(rc.cfg.ReconnectBackoff)
		rc.logger.Error("Redis connect failed, backing off",
			zap.Duration("backoff", rc.cfg.ReconnectBackoff),
			zap.Error(err))
		return nil, err
	}

	rc.logger.Info("Connected to Redis")
	rc.client = client
	return client, nil
}

// dropConn discards the current client after an operation failure and
// schedules a single reconnect attempt after the backoff.
func (rc *RedisCache) dropConn() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.client != nil {
		_ = rc.client.Close()
		rc.client = nil
	}
	rc.nextConnect = time.Now().Add(rc.cfg.ReconnectBackoff)
}

// Get retrieves a value; any failure degrades to a miss.
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	done := metrics.TimeCacheOperation("get", "redis")
	defer done()

	client, err := rc.conn()
	if err != nil {
		return nil, false
	}

	opCtx, cancel := context.WithTimeout(ctx, rc.cfg.ReadTimeout)
	defer cancel()

	data, err := client.Get(opCtx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		rc.logger.Error("Redis get failed", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("redis", "get")
		rc.dropConn()
		return nil, false
	}

	return data, true
}

// Set stores a value with the given TTL; failures surface as typed write
// errors so the caller can decide whether to retry.
func (rc *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	done := metrics.TimeCacheOperation("set", "redis")
	defer done()

	client, err := rc.conn()
	if err != nil {
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "redis unavailable", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, rc.cfg.SendTimeout)
	defer cancel()

	if err := client.Set(opCtx, key, val, ttl).Err(); err != nil {
		metrics.RecordCacheError("redis", "set")
		rc.dropConn()
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "failed to set cache entry", err)
	}

	return nil
}

// SetNX sets key only if absent; used for the distributed creation lock.
func (rc *RedisCache) SetNX(ctx context.Context, key string, val []byte, ttl time.Duration) (bool, error) {
	client, err := rc.conn()
	if err != nil {
		return false, apperr.Wrap(apperr.CodeCacheWriteFailed, "redis unavailable", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, rc.cfg.SendTimeout)
	defer cancel()

	set, err := client.SetNX(opCtx, key, val, ttl).Result()
	if err != nil {
		metrics.RecordCacheError("redis", "setnx")
		rc.dropConn()
		return false, apperr.Wrap(apperr.CodeCacheWriteFailed, "failed to acquire lock key", err)
	}

	return set, nil
}

// Delete removes a key.
func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	client, err := rc.conn()
	if err != nil {
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "redis unavailable", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, rc.cfg.SendTimeout)
	defer cancel()

	if err := client.Del(opCtx, key).Err(); err != nil {
		metrics.RecordCacheError("redis", "delete")
		rc.dropConn()
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "failed to delete cache entry", err)
	}

	return nil
}

// DeleteByPattern scans for keys matching the glob in bounded pages until the
// cursor wraps to its start value, then removes the matches in one
// non-blocking bulk unlink. Returns the number of keys removed.
func (rc *RedisCache) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	done := metrics.TimeCacheOperation("delete_by_pattern", "redis")
	defer done()

	client, err := rc.conn()
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeCacheWriteFailed, "redis unavailable", err)
	}

	var keys []string
	var cursor uint64

	for {
		page, next, err := client.Scan(ctx, cursor, pattern, scanPageSize).Result()
		if err != nil {
			metrics.RecordCacheError("redis", "scan")
			rc.dropConn()
			return 0, apperr.Wrap(apperr.CodeCacheWriteFailed, "pattern scan failed", err)
		}

		keys = append(keys, page...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return 0, nil
	}

	removed, err := client.Unlink(ctx, keys...).Result()
	if err != nil {
		metrics.RecordCacheError("redis", "unlink")
		rc.dropConn()
		return 0, apperr.Wrap(apperr.CodeCacheWriteFailed, "bulk unlink failed", err)
	}

	rc.logger.Debug("Pattern delete completed",
		zap.String("pattern", pattern),
		zap.Int64("removed", removed))

	return int(removed), nil
}

// Reset flushes the current database.
func (rc *RedisCache) Reset(ctx context.Context) error {
	client, err := rc.conn()
	if err != nil {
		return apperr.Wrap(apperr.CodeCacheWriteFailed, "redis unavailable", err)
	}
	return client.FlushDB(ctx).Err()
}

// SupportsPatternDelete reports the pattern-deletion capability.
func (rc *RedisCache) SupportsPatternDelete() bool {
	return true
}

// Close closes the connection if one was opened.
func (rc *RedisCache) Close() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.client == nil {
		return nil
	}
	err := rc.client.Close()
	rc.client = nil
	return err
}
