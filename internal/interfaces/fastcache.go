package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -package=mock -source=fastcache.go -destination=mock/fastcache.go

// FastCache is the first read tier: a low-latency key-value store backed
// either by an in-process store or a remote Redis-compatible server.
//
// Get degrades to a miss on any backend failure; Set and Delete surface a
// typed cache_write_failed error so write-path callers can decide whether to
// retry. DeleteByPattern is a no-op returning 0 on backends that do not
// support pattern deletion.
type FastCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	// SetNX sets key only if absent; returns whether the value was set.
	// Used as the short-TTL distributed lock for subscription creation.
	SetNX(ctx context.Context, key string, val []byte, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes all keys matching the glob pattern and returns
	// how many were removed.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	Reset(ctx context.Context) error
	// SupportsPatternDelete is computed once at construction.
	SupportsPatternDelete() bool
}
