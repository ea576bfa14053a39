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

// Ensure SolanaService implements the service contracts
var (
	_ interfaces.BalanceService          = (*SolanaService)(nil)
	_ interfaces.ProviderOverrideFetcher = (*SolanaService)(nil)
)

// SolanaService serves the Solana chain. Unlike the EVM family it has no
// switchable chain id.
type SolanaService struct {
	clients map[string]interfaces.ProviderClient
	logger  *zap.Logger

	mu       sync.RWMutex
	provider string
}

// NewSolanaService creates the Solana service.
func NewSolanaService(defaultProvider string, clients map[string]interfaces.ProviderClient, logger *zap.Logger) *SolanaService {
	return &SolanaService{
		clients:  clients,
		provider: defaultProvider,
		logger:   logger,
	}
}

// Chain returns the canonical chain name.
func (s *SolanaService) Chain() string {
	return chains.Solana
}

// CurrentProvider returns the provider the next fetch will use.
func (s *SolanaService) CurrentProvider() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider
}

// SetProvider switches the default provider for this singleton.
func (s *SolanaService) SetProvider(provider string) {
	if p, ok := chains.KnownProvider(provider); ok {
		s.mu.Lock()
		s.provider = p
		s.mu.Unlock()
	}
}

// GetBalances fetches the portfolio via the current provider.
func (s *SolanaService) GetBalances(ctx context.Context, address, network string) (*models.Balances, error) {
	return s.GetBalancesVia(ctx, s.CurrentProvider(), address, network)
}

// GetBalancesVia fetches the portfolio via an explicit provider.
func (s *SolanaService) GetBalancesVia(ctx context.Context, provider, address, network string) (*models.Balances, error) {
	client, ok := s.clients[provider]
	if !ok {
		return nil, apperr.New(apperr.CodeProviderNotSupported,
			fmt.Sprintf("no %s client for solana", provider))
	}
	if !client.IsSupported() {
		return nil, apperr.New(apperr.CodeBalanceFetchFailed,
			fmt.Sprintf("provider %s is not configured", provider))
	}

	balances, err := client.GetBalances(ctx, chains.Solana, 0, address, network)
	if err != nil {
		s.logger.Warn("Balance fetch failed",
			zap.String("chain", chains.Solana),
			zap.String("provider", provider),
			zap.Error(err))
		return nil, apperr.Wrap(apperr.CodeBalanceFetchFailed, "balance fetch failed", err)
	}

	return balances, nil
}

// IsSupported reports whether at least one provider client is usable.
func (s *SolanaService) IsSupported() bool {
	for _, client := range s.clients {
		if client.IsSupported() {
			return true
		}
	}
	return false
}
