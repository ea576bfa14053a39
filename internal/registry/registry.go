// Package registry maps chain identifiers to balance service implementations
// and resolves per-call provider overrides without mutating the shared
// singletons.
package registry

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/chains"
	"portfolio-cache/internal/interfaces"
)

// Factory constructs a chain's balance service. Registration is explicit and
// happens once at startup; a single factory may serve a mainnet together
// with its testnets.
type Factory func(chain string) interfaces.BalanceService

type proxyKey struct {
	chain    string
	provider string
}

// Registry resolves chain names and symbols to service singletons.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	instances map[string]interfaces.BalanceService
	proxies   map[proxyKey]interfaces.BalanceService
	logger    *zap.Logger
}

// New creates an empty registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]interfaces.BalanceService),
		proxies:   make(map[proxyKey]interfaces.BalanceService),
		logger:    logger,
	}
}

// Register installs a factory for one or more chain names. Later
// registrations for the same chain win; intended for startup only.
func (r *Registry) Register(factory Factory, chainNames ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range chainNames {
		canonical := chains.Normalize(name)
		r.factories[canonical] = factory
		r.logger.Debug("Registered balance service", zap.String("chain", canonical))
	}
}

// Chains returns the registered canonical chain names.
func (r *Registry) Chains() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	return out
}

// Service resolves a chain name or symbol to its singleton service.
func (r *Registry) Service(nameOrSymbol string) (interfaces.BalanceService, error) {
	canonical := chains.Normalize(nameOrSymbol)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.serviceLocked(canonical)
}

func (r *Registry) serviceLocked(canonical string) (interfaces.BalanceService, error) {
	if svc, ok := r.instances[canonical]; ok {
		return svc, nil
	}

	factory, ok := r.factories[canonical]
	if !ok {
		return nil, apperr.New(apperr.CodeChainNotSupported,
			fmt.Sprintf("chain %q is not supported", canonical))
	}

	svc := factory(canonical)
	r.instances[canonical] = svc
	return svc, nil
}

// ServiceWithProvider resolves the chain service and returns a
// provider-pinned proxy for it. Proxies are cached per (chain, provider), so
// repeated calls return the same instance.
func (r *Registry) ServiceWithProvider(nameOrSymbol, providerType string) (interfaces.BalanceService, error) {
	provider, ok := chains.KnownProvider(providerType)
	if !ok {
		return nil, apperr.New(apperr.CodeProviderNotSupported,
			fmt.Sprintf("provider %q is not supported", providerType))
	}

	canonical := chains.Normalize(nameOrSymbol)

	r.mu.Lock()
	defer r.mu.Unlock()

	key := proxyKey{chain: canonical, provider: provider}
	if proxy, ok := r.proxies[key]; ok {
		return proxy, nil
	}

	base, err := r.serviceLocked(canonical)
	if err != nil {
		return nil, err
	}

	proxy := newProviderPinned(base, provider)
	r.proxies[key] = proxy
	return proxy, nil
}

// Dispatch reverse-looks-up the chain for chainID, resolves its service,
// sets the chain id first when the service supports switching (EVM family),
// and invokes action.
func (r *Registry) Dispatch(ctx context.Context, chainID int64, action func(ctx context.Context, svc interfaces.BalanceService) error) error {
	name, ok := chains.NameByID(chainID)
	if !ok {
		return apperr.New(apperr.CodeChainNotSupported,
			fmt.Sprintf("unknown chain id %d", chainID))
	}

	svc, err := r.Service(name)
	if err != nil {
		return err
	}

	if setter, ok := svc.(interfaces.ChainIDSetter); ok {
		setter.SetChainID(chainID)
	}

	return action(ctx, svc)
}
