// Package webhook keeps the external push-notification subscription's
// address list in sync with the set of addresses holding a live cache entry,
// and verifies inbound notification signatures.
package webhook

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/metrics"
)

type sigKey struct {
	url   string
	chain string
}

type signingKeyEntry struct {
	key       string
	expiresAt time.Time
}

// Service reconciles webhook subscriptions against durable-store freshness.
// All operations return a bool or empty value instead of an error: webhook
// consistency is eventually repaired by the next pass, never a per-request
// concern.
type Service struct {
	client interfaces.WebhookProviderClient
	fast   interfaces.FastCache
	store  interfaces.PortfolioStore
	cfg    *config.Config
	logger *zap.Logger

	mu   sync.Mutex
	subs map[string]string
	keys map[sigKey]signingKeyEntry
}

// New creates the reconciliation service.
func New(client interfaces.WebhookProviderClient, fast interfaces.FastCache, store interfaces.PortfolioStore, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		fast:   fast,
		store:  store,
		cfg:    cfg,
		logger: logger,
		subs:   make(map[string]string),
		keys:   make(map[sigKey]signingKeyEntry),
	}
}

// callbackURL is the delivery URL registered with the provider for a chain.
func (s *Service) callbackURL(chain string) string {
	if s.cfg.Webhook.CallbackURL == "" {
		return ""
	}
	return s.cfg.Webhook.CallbackURL + "/" + chain
}

// UpdateWebhookAddresses adds and removes addresses on the chain's
// subscription. Returns false on missing configuration, missing subscription
// or provider failure, each logged with its cause.
func (s *Service) UpdateWebhookAddresses(ctx context.Context, chain string, add, remove []string) bool {
	if s.callbackURL(chain) == "" {
		s.logger.Warn("Webhook callback URL not configured", zap.String("chain", chain))
		return false
	}

	id := s.subscriptionID(ctx, chain)
	if id == "" {
		s.logger.Warn("No webhook subscription available", zap.String("chain", chain))
		return false
	}

	if len(add) == 0 && len(remove) == 0 {
		return true
	}

	if err := s.client.UpdateSubscription(ctx, id, add, remove); err != nil {
		s.logger.Error("Webhook subscription update failed",
			zap.String("chain", chain),
			zap.String("subscription", id),
			zap.Int("add", len(add)),
			zap.Int("remove", len(remove)),
			zap.Error(err))
		return false
	}

	return true
}

// ReconcileChain recomputes which addresses should be subscribed for a chain
// and applies the difference. Bulk-update failures are logged and not
// retried: the next pass re-derives both sets from current state.
func (s *Service) ReconcileChain(ctx context.Context, chain string) {
	active, err := s.store.ActiveUnmonitored(ctx, chain)
	if err != nil {
		s.logger.Error("Failed to list active unmonitored addresses", zap.String("chain", chain), zap.Error(err))
		metrics.RecordReconciliation(chain, "failed")
		return
	}

	expired, err := s.store.ExpiredMonitored(ctx, chain)
	if err != nil {
		s.logger.Error("Failed to list expired monitored addresses", zap.String("chain", chain), zap.Error(err))
		metrics.RecordReconciliation(chain, "failed")
		return
	}

	if len(active) == 0 && len(expired) == 0 {
		metrics.RecordReconciliation(chain, "ok")
		return
	}

	if !s.UpdateWebhookAddresses(ctx, chain, active, expired) {
		metrics.RecordReconciliation(chain, "failed")
		return
	}

	if len(active) > 0 {
		if err := s.store.SetMonitored(ctx, chain, active, true); err != nil {
			s.logger.Error("Failed to flag monitored addresses", zap.String("chain", chain), zap.Error(err))
		}
	}
	if len(expired) > 0 {
		if err := s.store.SetMonitored(ctx, chain, expired, false); err != nil {
			s.logger.Error("Failed to unflag monitored addresses", zap.String("chain", chain), zap.Error(err))
		}
	}

	s.logger.Info("Webhook addresses reconciled",
		zap.String("chain", chain),
		zap.Int("subscribed", len(active)),
		zap.Int("unsubscribed", len(expired)))
	metrics.RecordReconciliation(chain, "ok")

	if s.logger.Core().Enabled(zap.DebugLevel) {
		if id := s.subscriptionID(ctx, chain); id != "" {
			if addrs, err := s.client.ListAddresses(ctx, id); err == nil {
				s.logger.Debug("Webhook subscription state",
					zap.String("chain", chain),
					zap.Int("addresses", len(addrs)))
			}
		}
	}
}

// subscriptionID resolves the chain's subscription id, creating one under a
// distributed lock when absent. Returns "" when unresolved.
func (s *Service) subscriptionID(ctx context.Context, chain string) string {
	s.mu.Lock()
	if id, ok := s.subs[chain]; ok {
		s.mu.Unlock()
		return id
	}
	s.mu.Unlock()

	url := s.callbackURL(chain)

	id, err := s.client.FindSubscription(ctx, url)
	if err != nil {
		s.logger.Error("Webhook subscription lookup failed", zap.String("chain", chain), zap.Error(err))
		return ""
	}

	if id == "" {
		id = s.createSubscription(ctx, chain, url)
	}

	if id != "" {
		s.mu.Lock()
		s.subs[chain] = id
		s.mu.Unlock()
	}

	return id
}

// createSubscription runs the lock-then-check-then-create sequence. The lock
// key carries a TTL so it expires even if the release step is never reached.
func (s *Service) createSubscription(ctx context.Context, chain, url string) string {
	lockKey := s.cfg.Cache.Prefix + ":lock:webhook:" + chain

	acquired, err := s.fast.SetNX(ctx, lockKey, []byte("1"), s.cfg.Cache.LockTTL)
	if err != nil {
		s.logger.Error("Webhook creation lock failed", zap.String("chain", chain), zap.Error(err))
		return ""
	}
	if !acquired {
		s.logger.Debug("Webhook creation already in flight", zap.String("chain", chain))
		return ""
	}
	defer func() {
		if err := s.fast.Delete(ctx, lockKey); err != nil {
			s.logger.Warn("Failed to release webhook creation lock", zap.String("chain", chain), zap.Error(err))
		}
	}()

	// Covers the race where a subscription appeared between the caller's
	// first check and our lock acquisition.
	if id, err := s.client.FindSubscription(ctx, url); err == nil && id != "" {
		return id
	}

	id, err := s.client.CreateSubscription(ctx, url, nil)
	if err != nil {
		s.logger.Error("Webhook subscription creation failed", zap.String("chain", chain), zap.Error(err))
		return ""
	}

	s.logger.Info("Webhook subscription created", zap.String("chain", chain), zap.String("subscription", id))
	return id
}

// VerifySignature checks an inbound notification's signature header against
// the HMAC of the raw body. On failure the whole signing-key cache is purged
// so rotated keys are re-fetched rather than failing permanently.
func (s *Service) VerifySignature(ctx context.Context, chain string, body []byte, header string) bool {
	key := s.signingKey(ctx, chain)
	if key == "" {
		metrics.RecordWebhookVerification(false)
		return false
	}

	ok := verifySignature(key, body, header)
	if !ok {
		s.logger.Warn("Webhook signature verification failed", zap.String("chain", chain))
		s.purgeSigningKeys()
	}

	metrics.RecordWebhookVerification(ok)
	return ok
}

// signingKey resolves the signing key for (callback URL, chain), cached with
// a TTL.
func (s *Service) signingKey(ctx context.Context, chain string) string {
	k := sigKey{url: s.callbackURL(chain), chain: chain}

	s.mu.Lock()
	if entry, ok := s.keys[k]; ok && time.Now().Before(entry.expiresAt) {
		s.mu.Unlock()
		return entry.key
	}
	s.mu.Unlock()

	id := s.subscriptionID(ctx, chain)
	if id == "" {
		return ""
	}

	key, err := s.client.GetSigningKey(ctx, id)
	if err != nil {
		s.logger.Error("Signing key lookup failed", zap.String("chain", chain), zap.Error(err))
		return ""
	}

	s.mu.Lock()
	s.keys[k] = signingKeyEntry{key: key, expiresAt: time.Now().Add(s.cfg.Cache.SigningKeyTTL)}
	s.mu.Unlock()

	return key
}

func (s *Service) purgeSigningKeys() {
	s.mu.Lock()
	s.keys = make(map[sigKey]signingKeyEntry)
	s.mu.Unlock()
}
