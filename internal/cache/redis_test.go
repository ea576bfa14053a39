package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/interfaces/mock"
)

func testRedisConfig() *config.RedisConfig {
	return &config.RedisConfig{
		URL:              "redis://localhost:6379",
		ConnectTimeout:   time.Second,
		ReadTimeout:      time.Second,
		SendTimeout:      time.Second,
		PoolSize:         2,
		ReconnectBackoff: time.Minute,
	}
}

func newTestRedisCache(t *testing.T) (*RedisCache, *mock.MockRedisClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockRedisClient(ctrl)
	rc := NewRedisCacheWithClient(testRedisConfig(), client, zap.NewNop())
	return rc, client
}

func TestRedisCacheGet(t *testing.T) {
	rc, client := newTestRedisCache(t)
	ctx := context.Background()

	client.EXPECT().Get(gomock.Any(), "key1").Return(redis.NewStringResult("value1", nil))

	data, found := rc.Get(ctx, "key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), data)
}

func TestRedisCacheGetMiss(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Get(gomock.Any(), "missing").Return(redis.NewStringResult("", redis.Nil))

	_, found := rc.Get(context.Background(), "missing")
	assert.False(t, found)
}

func TestRedisCacheGetErrorDegradesToMiss(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Get(gomock.Any(), "key1").Return(redis.NewStringResult("", errors.New("broken pipe")))
	client.EXPECT().Close().Return(nil)

	_, found := rc.Get(context.Background(), "key1")
	assert.False(t, found)

	// The connection was dropped; the next write fails fast during the
	// reconnect backoff instead of dialing.
	err := rc.Set(context.Background(), "key1", []byte("v"), time.Minute)
	assert.True(t, apperr.HasCode(err, apperr.CodeCacheWriteFailed))
}

func TestRedisCacheSet(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Set(gomock.Any(), "key1", []byte("value1"), time.Minute).
		Return(redis.NewStatusResult("OK", nil))

	assert.NoError(t, rc.Set(context.Background(), "key1", []byte("value1"), time.Minute))
}

func TestRedisCacheSetError(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Set(gomock.Any(), "key1", []byte("value1"), time.Minute).
		Return(redis.NewStatusResult("", errors.New("oom")))
	client.EXPECT().Close().Return(nil)

	err := rc.Set(context.Background(), "key1", []byte("value1"), time.Minute)
	assert.True(t, apperr.HasCode(err, apperr.CodeCacheWriteFailed))
}

func TestRedisCacheSetNX(t *testing.T) {
	rc, client := newTestRedisCache(t)
	ctx := context.Background()

	client.EXPECT().SetNX(gomock.Any(), "lock", []byte("1"), time.Minute).
		Return(redis.NewBoolResult(true, nil))
	acquired, err := rc.SetNX(ctx, "lock", []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	client.EXPECT().SetNX(gomock.Any(), "lock", []byte("1"), time.Minute).
		Return(redis.NewBoolResult(false, nil))
	acquired, err = rc.SetNX(ctx, "lock", []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestRedisCacheDelete(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Del(gomock.Any(), "key1").Return(redis.NewIntResult(1, nil))

	assert.NoError(t, rc.Delete(context.Background(), "key1"))
}

func TestRedisCacheDeleteByPattern(t *testing.T) {
	rc, client := newTestRedisCache(t)
	ctx := context.Background()

	// Two SCAN pages, then a single bulk unlink of everything collected.
	client.EXPECT().Scan(gomock.Any(), uint64(0), "pf:eth:1:0xabc:*", int64(scanPageSize)).
		Return(redis.NewScanCmdResult([]string{"pf:eth:1:0xabc:alchemy"}, 42, nil))
	client.EXPECT().Scan(gomock.Any(), uint64(42), "pf:eth:1:0xabc:*", int64(scanPageSize)).
		Return(redis.NewScanCmdResult([]string{"pf:eth:1:0xabc:moralis"}, 0, nil))
	client.EXPECT().Unlink(gomock.Any(), "pf:eth:1:0xabc:alchemy", "pf:eth:1:0xabc:moralis").
		Return(redis.NewIntResult(2, nil))

	removed, err := rc.DeleteByPattern(ctx, "pf:eth:1:0xabc:*")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.True(t, rc.SupportsPatternDelete())
}

func TestRedisCacheDeleteByPatternNoMatches(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Scan(gomock.Any(), uint64(0), "pf:none:*", int64(scanPageSize)).
		Return(redis.NewScanCmdResult(nil, 0, nil))

	removed, err := rc.DeleteByPattern(context.Background(), "pf:none:*")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisCacheLazyConnectBackoff(t *testing.T) {
	rc := NewRedisCache(testRedisConfig(), zap.NewNop())

	dials := 0
	rc.dial = func(cfg *config.RedisConfig) (interfaces.RedisClient, error) {
		dials++
		return nil, errors.New("connection refused")
	}

	// First operation dials and fails; the second stays inside the backoff
	// window and must not dial again.
	_, found := rc.Get(context.Background(), "key1")
	assert.False(t, found)
	_, found = rc.Get(context.Background(), "key1")
	assert.False(t, found)

	assert.Equal(t, 1, dials)
}

func TestRedisCacheClose(t *testing.T) {
	rc, client := newTestRedisCache(t)

	client.EXPECT().Close().Return(nil)
	assert.NoError(t, rc.Close())

	// Closing again is a no-op.
	assert.NoError(t, rc.Close())
}
