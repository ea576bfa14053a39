package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"portfolio-cache/internal/cachekey"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/models"
)

// Reconciler triggers a webhook reconciliation pass for one chain.
type Reconciler interface {
	ReconcileChain(ctx context.Context, chain string)
}

// Listeners holds the event handlers that run the write pipeline:
// fast-cache write, durable mirror and throttled webhook reconciliation, plus
// the activity-driven invalidation.
type Listeners struct {
	service    *Service
	fast       interfaces.FastCache
	store      interfaces.PortfolioStore
	bus        interfaces.Bus
	reconciler Reconciler
	codec      *cachekey.Codec
	cfg        *config.Config
	logger     *zap.Logger

	mu            sync.Mutex
	lastReconcile map[string]time.Time
}

// NewListeners creates the pipeline listeners. reconciler may be nil when
// webhook reconciliation is disabled.
func NewListeners(service *Service, fast interfaces.FastCache, store interfaces.PortfolioStore, bus interfaces.Bus, reconciler Reconciler, codec *cachekey.Codec, cfg *config.Config, logger *zap.Logger) *Listeners {
	return &Listeners{
		service:       service,
		fast:          fast,
		store:         store,
		bus:           bus,
		reconciler:    reconciler,
		codec:         codec,
		cfg:           cfg,
		logger:        logger,
		lastReconcile: make(map[string]time.Time),
	}
}

// Register subscribes every listener on the bus. Called once at startup.
func (l *Listeners) Register() {
	l.bus.Subscribe(models.TopicPortfolioUpdated, l.handlePortfolioUpdated)
	l.bus.Subscribe(models.TopicPortfolioStored, l.handlePortfolioStored)
	l.bus.Subscribe(models.TopicAddressActivity, l.handleAddressActivity)
}

// handlePortfolioUpdated writes the fresh result to the fast cache and, only
// if that write succeeded, republishes it for the durable mirror.
func (l *Listeners) handlePortfolioUpdated(ctx context.Context, payload any) error {
	ev, ok := payload.(*models.PortfolioUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}

	data, err := json.Marshal(ev.Balances)
	if err != nil {
		return fmt.Errorf("failed to encode balances: %w", err)
	}

	key := l.eventKey(ev.Chain, ev.ChainID, ev.Address, ev.Provider)
	if err := l.fast.Set(ctx, key, data, ev.TTL); err != nil {
		return fmt.Errorf("fast cache write for %s: %w", key, err)
	}

	l.bus.Publish(ctx, models.TopicPortfolioStored, &models.PortfolioStoredEvent{
		Chain:    ev.Chain,
		ChainID:  ev.ChainID,
		Address:  ev.Address,
		Provider: ev.Provider,
		Balances: ev.Balances,
		TTL:      l.cfg.Cache.DurableTTL,
	})

	return nil
}

// handlePortfolioStored mirrors the result into the durable store and kicks a
// per-chain throttled reconciliation pass.
func (l *Listeners) handlePortfolioStored(ctx context.Context, payload any) error {
	ev, ok := payload.(*models.PortfolioStoredEvent)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}

	snap := &models.PortfolioSnapshot{
		Chain:     ev.Chain,
		ChainID:   ev.ChainID,
		Address:   ev.Address,
		Provider:  ev.Provider,
		ExpiresAt: time.Now().Add(ev.TTL),
	}
	if ev.Balances != nil {
		snap.Native = ev.Balances.Native
		snap.Tokens = ev.Balances.Tokens
		snap.NFTs = ev.Balances.NFTs
	}

	if err := l.store.Upsert(ctx, snap); err != nil {
		return fmt.Errorf("durable upsert for %s/%s: %w", ev.Chain, ev.Address, err)
	}

	l.maybeReconcile(ctx, ev.Chain)
	return nil
}

// handleAddressActivity invalidates both cache tiers for the address. Events
// flagged FromInvalidation are ignored so invalidation never feeds itself.
func (l *Listeners) handleAddressActivity(ctx context.Context, payload any) error {
	ev, ok := payload.(*models.AddressActivityEvent)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}

	if ev.FromInvalidation {
		l.logger.Debug("Skipping invalidation-originated activity event",
			zap.String("chain", ev.Chain),
			zap.String("address", ev.Address))
		return nil
	}

	if _, err := l.service.InvalidateAddressCache(ctx, ev.Chain, ev.Address); err != nil {
		return fmt.Errorf("invalidation for %s/%s: %w", ev.Chain, ev.Address, err)
	}
	return nil
}

// maybeReconcile runs a reconciliation pass unless one ran for the chain
// within the throttle window.
func (l *Listeners) maybeReconcile(ctx context.Context, chain string) {
	if l.reconciler == nil {
		return
	}

	l.mu.Lock()
	last, seen := l.lastReconcile[chain]
	if seen && time.Since(last) < l.cfg.Reconcile.Throttle {
		l.mu.Unlock()
		return
	}
	l.lastReconcile[chain] = time.Now()
	l.mu.Unlock()

	l.reconciler.ReconcileChain(ctx, chain)
}

func (l *Listeners) eventKey(chain string, chainID int64, address, provider string) string {
	var id *int64
	if chainID != 0 {
		id = &chainID
	}
	return l.codec.Encode(cachekey.Components{
		Prefix:   l.cfg.Cache.Prefix,
		Chain:    chain,
		ChainID:  id,
		Address:  address,
		Provider: provider,
	})
}
