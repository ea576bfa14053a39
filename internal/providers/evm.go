// Package providers implements the chain-scoped balance services and the
// thin HTTP clients for the upstream data providers.
package providers

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/chains"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/models"
)

// Ensure EVMService implements the service contracts
var (
	_ interfaces.BalanceService          = (*EVMService)(nil)
	_ interfaces.ChainIDSetter           = (*EVMService)(nil)
	_ interfaces.ProviderOverrideFetcher = (*EVMService)(nil)
)

// EVMService serves one EVM chain family. The current chain id is switchable
// so a single instance can cover a mainnet and its testnets.
type EVMService struct {
	chain   string
	clients map[string]interfaces.ProviderClient
	logger  *zap.Logger

	mu       sync.RWMutex
	chainID  int64
	provider string
}

// NewEVMService creates the service for a chain with the given provider
// clients and default provider.
func NewEVMService(chain, defaultProvider string, clients map[string]interfaces.ProviderClient, logger *zap.Logger) *EVMService {
	canonical := chains.Normalize(chain)
	chainID, _ := chains.ID(canonical)

	return &EVMService{
		chain:    canonical,
		chainID:  chainID,
		provider: defaultProvider,
		clients:  clients,
		logger:   logger,
	}
}

// Chain returns the canonical chain name.
func (s *EVMService) Chain() string {
	return s.chain
}

// CurrentProvider returns the provider the next fetch will use.
func (s *EVMService) CurrentProvider() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider
}

// SetProvider switches the default provider for this singleton.
func (s *EVMService) SetProvider(provider string) {
	if p, ok := chains.KnownProvider(provider); ok {
		s.mu.Lock()
		s.provider = p
		s.mu.Unlock()
	}
}

// SetChainID switches the current chain id before a dispatch-driven fetch.
func (s *EVMService) SetChainID(chainID int64) {
	s.mu.Lock()
	s.chainID = chainID
	s.mu.Unlock()
}

// GetBalances fetches the portfolio via the current provider.
func (s *EVMService) GetBalances(ctx context.Context, address, network string) (*models.Balances, error) {
	return s.GetBalancesVia(ctx, s.CurrentProvider(), address, network)
}

// GetBalancesVia fetches the portfolio via an explicit provider.
func (s *EVMService) GetBalancesVia(ctx context.Context, provider, address, network string) (*models.Balances, error) {
	client, ok := s.clients[provider]
	if !ok {
		return nil, apperr.New(apperr.CodeProviderNotSupported,
			fmt.Sprintf("no %s client for chain %s", provider, s.chain))
	}
	if !client.IsSupported() {
		return nil, apperr.New(apperr.CodeBalanceFetchFailed,
			fmt.Sprintf("provider %s is not configured", provider))
	}

	s.mu.RLock()
	chainID := s.chainID
	s.mu.RUnlock()

	balances, err := client.GetBalances(ctx, s.chain, chainID, address, network)
	if err != nil {
		s.logger.Warn("Balance fetch failed",
			zap.String("chain", s.chain),
			zap.String("provider", provider),
			zap.Error(err))
		return nil, apperr.Wrap(apperr.CodeBalanceFetchFailed, "balance fetch failed", err)
	}

	return balances, nil
}

// IsSupported reports whether at least one provider client is usable.
func (s *EVMService) IsSupported() bool {
	for _, client := range s.clients {
		if client.IsSupported() {
			return true
		}
	}
	return false
}
