// Package portfolio implements the tiered read/write service: fast cache
// first, durable store fallback, live fetch last, with writes decoupled from
// the request path through the event bus.
package portfolio

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/cachekey"
	"portfolio-cache/internal/chains"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/metrics"
	"portfolio-cache/internal/models"
	"portfolio-cache/internal/registry"
)

// Source identifies which tier answered a read.
type Source string

const (
	SourceFast    Source = "fast"
	SourceDurable Source = "durable"
	SourceLive    Source = "live"
)

// Result is a portfolio read outcome.
type Result struct {
	Chain    string          `json:"chain"`
	ChainID  int64           `json:"chainId"`
	Address  string          `json:"address"`
	Provider string          `json:"provider,omitempty"`
	Source   Source          `json:"source"`
	Balances *models.Balances `json:"data"`
}

// Service orchestrates the key codec, fast cache, durable store and
// resolution registry.
type Service struct {
	fast     interfaces.FastCache
	store    interfaces.PortfolioStore
	registry *registry.Registry
	codec    *cachekey.Codec
	bus      interfaces.Bus
	cfg      *config.Config
	logger   *zap.Logger
}

// NewService creates the tiered service.
func NewService(fast interfaces.FastCache, store interfaces.PortfolioStore, reg *registry.Registry, codec *cachekey.Codec, bus interfaces.Bus, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		fast:     fast,
		store:    store,
		registry: reg,
		codec:    codec,
		bus:      bus,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *Service) key(chain string, chainID int64, address, provider string) string {
	var id *int64
	if chainID != 0 {
		id = &chainID
	}
	return s.codec.Encode(cachekey.Components{
		Prefix:   s.cfg.Cache.Prefix,
		Chain:    chain,
		ChainID:  id,
		Address:  address,
		Provider: provider,
	})
}

// GetPortfolio answers a balance request: fast cache, then durable store
// (with a write-through back into the fast tier), then a live fetch whose
// result is published for the listeners to persist.
func (s *Service) GetPortfolio(ctx context.Context, chain, address, provider string) (*Result, error) {
	canonical := chains.Normalize(chain)
	chainID, _ := chains.ID(canonical)
	key := s.key(canonical, chainID, address, provider)

	if data, found := s.fast.Get(ctx, key); found {
		var balances models.Balances
		if err := json.Unmarshal(data, &balances); err == nil {
			s.logger.Debug("Fast cache hit", zap.String("key", key))
			metrics.RecordRead(string(SourceFast))
			return &Result{
				Chain: canonical, ChainID: chainID, Address: address,
				Provider: provider, Source: SourceFast, Balances: &balances,
			}, nil
		}
		s.logger.Warn("Dropping undecodable fast cache entry", zap.String("key", key))
		_ = s.fast.Delete(ctx, key)
	}
	s.logger.Debug("Fast cache miss", zap.String("key", key))

	snap, err := s.store.Get(ctx, chainID, address, provider)
	if err != nil {
		// Read-path store errors degrade to a miss.
		s.logger.Error("Durable store read failed", zap.String("key", key), zap.Error(err))
	}
	if snap != nil && !snap.Expired() {
		s.logger.Debug("Durable store hit", zap.String("key", key))
		metrics.RecordRead(string(SourceDurable))

		balances := snap.ToBalances()
		if data, err := json.Marshal(balances); err == nil {
			if err := s.fast.Set(ctx, key, data, s.cfg.Cache.FreshTTL); err != nil {
				s.logger.Warn("Write-through to fast cache failed", zap.String("key", key), zap.Error(err))
			}
		}

		return &Result{
			Chain: canonical, ChainID: chainID, Address: address,
			Provider: provider, Source: SourceDurable, Balances: balances,
		}, nil
	}
	s.logger.Debug("Durable store miss", zap.String("key", key))

	return s.fetchLive(ctx, canonical, chainID, address, provider)
}

// fetchLive resolves the chain service (provider-pinned when requested),
// fetches fresh balances and publishes the update event. The caller gets the
// result immediately; cache and durable writes happen in the listeners.
func (s *Service) fetchLive(ctx context.Context, chain string, chainID int64, address, provider string) (*Result, error) {
	var svc interfaces.BalanceService
	var err error
	if provider != "" {
		svc, err = s.registry.ServiceWithProvider(chain, provider)
	} else {
		svc, err = s.registry.Service(chain)
	}
	if err != nil {
		return nil, err
	}

	balances, err := svc.GetBalances(ctx, address, chains.Network(chain))
	if err != nil {
		if apperr.CodeOf(err) != "" {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.CodeBalanceFetchFailed, "live balance fetch failed", err)
	}

	metrics.RecordRead(string(SourceLive))
	s.logger.Debug("Live fetch succeeded",
		zap.String("chain", chain),
		zap.String("address", address),
		zap.String("provider", svc.CurrentProvider()))

	s.bus.Publish(ctx, models.TopicPortfolioUpdated, &models.PortfolioUpdatedEvent{
		Chain:    chain,
		ChainID:  chainID,
		Address:  address,
		Provider: provider,
		Balances: balances,
		TTL:      s.cfg.Cache.FreshTTL,
	})

	return &Result{
		Chain: chain, ChainID: chainID, Address: address,
		Provider: provider, Source: SourceLive, Balances: balances,
	}, nil
}

// InvalidateAddressCache removes every fast-cache entry and durable row for
// an address and publishes the invalidated event. The publish step failing
// never rolls back the deletions.
func (s *Service) InvalidateAddressCache(ctx context.Context, chain, address string) (int, error) {
	canonical := chains.Normalize(chain)
	chainID, _ := chains.ID(canonical)

	base := s.key(canonical, chainID, address, "")

	removed, err := s.fast.DeleteByPattern(ctx, base+cachekey.Delimiter+"*")
	if err != nil {
		s.logger.Error("Pattern delete failed", zap.String("pattern", base), zap.Error(err))
	}
	if err := s.fast.Delete(ctx, base); err != nil {
		s.logger.Warn("Failed to delete base cache key", zap.String("key", base), zap.Error(err))
	}
	metrics.RecordKeysInvalidated(removed)

	deleted, err := s.store.DeleteByAddress(ctx, chainID, address)
	if err != nil {
		s.logger.Error("Durable store delete failed",
			zap.String("chain", canonical),
			zap.String("address", address),
			zap.Error(err))
	}

	s.logger.Debug("Address cache invalidated",
		zap.String("chain", canonical),
		zap.String("address", address),
		zap.Int("fast_keys", removed),
		zap.Int64("durable_rows", deleted))

	s.bus.Publish(ctx, models.TopicAddressInvalidated, &models.AddressInvalidatedEvent{
		Chain:       canonical,
		ChainID:     chainID,
		Address:     address,
		RemovedKeys: removed,
	})

	return removed, nil
}
