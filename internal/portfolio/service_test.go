package portfolio

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/bus"
	"portfolio-cache/internal/cachekey"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/interfaces/mock"
	"portfolio-cache/internal/models"
	"portfolio-cache/internal/registry"
)

type serviceFixture struct {
	fast     *mock.MockFastCache
	store    *mock.MockPortfolioStore
	registry *registry.Registry
	bus      *bus.Bus
	service  *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	cfg := &config.Config{
		Cache: config.CacheConfig{
			Prefix:     "pf",
			FreshTTL:   10 * time.Minute,
			DurableTTL: 24 * time.Hour,
		},
	}

	f := &serviceFixture{
		fast:     mock.NewMockFastCache(ctrl),
		store:    mock.NewMockPortfolioStore(ctrl),
		registry: registry.New(logger),
		bus:      bus.New(logger),
	}
	f.service = NewService(f.fast, f.store, f.registry, cachekey.NewCodec(logger), f.bus, cfg, logger)
	return f
}

func (f *serviceFixture) registerMockService(t *testing.T, chain string) *mock.MockBalanceService {
	t.Helper()
	svc := mock.NewMockBalanceService(gomock.NewController(t))
	svc.EXPECT().CurrentProvider().Return("alchemy").AnyTimes()
	f.registry.Register(func(string) interfaces.BalanceService { return svc }, chain)
	return svc
}

func testBalances() *models.Balances {
	return &models.Balances{
		Native: models.NativeBalance{Symbol: "ETH", Balance: "1000000000000000000", Decimals: 18},
	}
}

func TestGetPortfolioFastHit(t *testing.T) {
	f := newServiceFixture(t)

	data, err := json.Marshal(testBalances())
	require.NoError(t, err)
	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return(data, true)

	// Neither the durable store nor a live fetch may be touched.
	result, err := f.service.GetPortfolio(context.Background(), "eth", "0xabc", "")
	require.NoError(t, err)

	assert.Equal(t, SourceFast, result.Source)
	assert.Equal(t, "ethereum", result.Chain)
	assert.Equal(t, int64(1), result.ChainID)
	assert.Equal(t, "ETH", result.Balances.Native.Symbol)
}

func TestGetPortfolioDurableHitWritesThrough(t *testing.T) {
	f := newServiceFixture(t)

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "").Return(&models.PortfolioSnapshot{
		Chain:     "ethereum",
		ChainID:   1,
		Address:   "0xabc",
		Native:    models.NativeBalance{Symbol: "ETH", Balance: "5"},
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	f.fast.EXPECT().Set(gomock.Any(), "pf:ethereum:1:0xabc", gomock.Any(), 10*time.Minute).Return(nil)

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "")
	require.NoError(t, err)

	assert.Equal(t, SourceDurable, result.Source)
	assert.Equal(t, "5", result.Balances.Native.Balance)
}

func TestGetPortfolioExpiredDurableFallsToLive(t *testing.T) {
	f := newServiceFixture(t)
	svc := f.registerMockService(t, "ethereum")

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "").Return(&models.PortfolioSnapshot{
		Chain:     "ethereum",
		ChainID:   1,
		Address:   "0xabc",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	svc.EXPECT().GetBalances(gomock.Any(), "0xabc", "mainnet").Return(testBalances(), nil)

	var published *models.PortfolioUpdatedEvent
	f.bus.Subscribe(models.TopicPortfolioUpdated, func(ctx context.Context, payload any) error {
		published, _ = payload.(*models.PortfolioUpdatedEvent)
		return nil
	})

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "")
	require.NoError(t, err)

	assert.Equal(t, SourceLive, result.Source)
	require.NotNil(t, published)
	assert.Equal(t, "ethereum", published.Chain)
	assert.Equal(t, "0xabc", published.Address)
	assert.Equal(t, 10*time.Minute, published.TTL)
}

func TestGetPortfolioBothTiersMiss(t *testing.T) {
	f := newServiceFixture(t)
	svc := f.registerMockService(t, "ethereum")

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "").Return(nil, nil)
	svc.EXPECT().GetBalances(gomock.Any(), "0xabc", "mainnet").Return(testBalances(), nil)

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
}

func TestGetPortfolioStoreErrorDegradesToLive(t *testing.T) {
	f := newServiceFixture(t)
	svc := f.registerMockService(t, "ethereum")

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "").Return(nil, assert.AnError)
	svc.EXPECT().GetBalances(gomock.Any(), "0xabc", "mainnet").Return(testBalances(), nil)

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
}

func TestGetPortfolioUndecodableFastEntryDropped(t *testing.T) {
	f := newServiceFixture(t)

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return([]byte("{not json"), true)
	f.fast.EXPECT().Delete(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "").Return(&models.PortfolioSnapshot{
		Chain:     "ethereum",
		ChainID:   1,
		Address:   "0xabc",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	f.fast.EXPECT().Set(gomock.Any(), "pf:ethereum:1:0xabc", gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "")
	require.NoError(t, err)
	assert.Equal(t, SourceDurable, result.Source)
}

func TestGetPortfolioWithProviderUsesProviderKey(t *testing.T) {
	f := newServiceFixture(t)

	data, err := json.Marshal(testBalances())
	require.NoError(t, err)
	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc:moralis").Return(data, true)

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "moralis")
	require.NoError(t, err)
	assert.Equal(t, SourceFast, result.Source)
	assert.Equal(t, "moralis", result.Provider)
}

func TestGetPortfolioWithProviderPinsLiveFetch(t *testing.T) {
	f := newServiceFixture(t)
	svc := f.registerMockService(t, "ethereum")

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc:moralis").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "moralis").Return(nil, nil)
	// The mock has no explicit-provider path, so the pinned proxy falls back
	// to the base fetch.
	svc.EXPECT().GetBalances(gomock.Any(), "0xabc", "mainnet").Return(testBalances(), nil)

	result, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "moralis")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
}

func TestGetPortfolioUnknownChain(t *testing.T) {
	f := newServiceFixture(t)

	f.fast.EXPECT().Get(gomock.Any(), "pf:unknownchain:0xabc").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(0), "0xabc", "").Return(nil, nil)

	_, err := f.service.GetPortfolio(context.Background(), "unknownchain", "0xabc", "")
	assert.True(t, apperr.HasCode(err, apperr.CodeChainNotSupported))
}

func TestGetPortfolioLiveFetchFailure(t *testing.T) {
	f := newServiceFixture(t)
	svc := f.registerMockService(t, "ethereum")

	f.fast.EXPECT().Get(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil, false)
	f.store.EXPECT().Get(gomock.Any(), int64(1), "0xabc", "").Return(nil, nil)
	svc.EXPECT().GetBalances(gomock.Any(), "0xabc", "mainnet").Return(nil, assert.AnError)

	_, err := f.service.GetPortfolio(context.Background(), "ethereum", "0xabc", "")
	assert.True(t, apperr.HasCode(err, apperr.CodeBalanceFetchFailed))
}

func TestInvalidateAddressCache(t *testing.T) {
	f := newServiceFixture(t)

	f.fast.EXPECT().DeleteByPattern(gomock.Any(), "pf:ethereum:1:0xabc:*").Return(3, nil)
	f.fast.EXPECT().Delete(gomock.Any(), "pf:ethereum:1:0xabc").Return(nil)
	f.store.EXPECT().DeleteByAddress(gomock.Any(), int64(1), "0xabc").Return(int64(2), nil)

	var published *models.AddressInvalidatedEvent
	f.bus.Subscribe(models.TopicAddressInvalidated, func(ctx context.Context, payload any) error {
		published, _ = payload.(*models.AddressInvalidatedEvent)
		return nil
	})

	removed, err := f.service.InvalidateAddressCache(context.Background(), "eth", "0xabc")
	require.NoError(t, err)

	assert.Equal(t, 3, removed)
	require.NotNil(t, published)
	assert.Equal(t, "ethereum", published.Chain)
	assert.Equal(t, 3, published.RemovedKeys)
}

func TestInvalidateAddressCacheSurvivesTierErrors(t *testing.T) {
	f := newServiceFixture(t)

	f.fast.EXPECT().DeleteByPattern(gomock.Any(), "pf:ethereum:1:0xabc:*").Return(0, assert.AnError)
	f.fast.EXPECT().Delete(gomock.Any(), "pf:ethereum:1:0xabc").Return(assert.AnError)
	f.store.EXPECT().DeleteByAddress(gomock.Any(), int64(1), "0xabc").Return(int64(0), assert.AnError)

	invalidated := false
	f.bus.Subscribe(models.TopicAddressInvalidated, func(ctx context.Context, payload any) error {
		invalidated = true
		return nil
	})

	removed, err := f.service.InvalidateAddressCache(context.Background(), "ethereum", "0xabc")
	require.NoError(t, err)

	// Per-tier failures are logged, the invalidated event still goes out.
	assert.Zero(t, removed)
	assert.True(t, invalidated)
}
