package registry

import (
	"context"

	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/models"
)

// Ensure providerPinned implements interfaces.BalanceService
var _ interfaces.BalanceService = (*providerPinned)(nil)

// providerPinned wraps a base service, pinning the current provider for this
// handle only. The base singleton is never mutated: the provider setter is a
// no-op, and fetches route through the base's explicit-provider path when it
// offers one.
type providerPinned struct {
	base     interfaces.BalanceService
	provider string
}

func newProviderPinned(base interfaces.BalanceService, provider string) *providerPinned {
	return &providerPinned{base: base, provider: provider}
}

func (p *providerPinned) Chain() string {
	return p.base.Chain()
}

func (p *providerPinned) CurrentProvider() string {
	return p.provider
}

// SetProvider is a no-op on a pinned proxy.
func (p *providerPinned) SetProvider(string) {}

func (p *providerPinned) GetBalances(ctx context.Context, address, network string) (*models.Balances, error) {
	if fetcher, ok := p.base.(interfaces.ProviderOverrideFetcher); ok {
		return fetcher.GetBalancesVia(ctx, p.provider, address, network)
	}
	return p.base.GetBalances(ctx, address, network)
}

func (p *providerPinned) IsSupported() bool {
	return p.base.IsSupported()
}
