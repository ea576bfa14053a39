package interfaces

import (
	"context"

	"portfolio-cache/internal/models"
)

//go:generate mockgen -package=mock -source=balance.go -destination=mock/balance.go

// BalanceService is a chain-scoped service able to fetch wallet balances from
// its currently selected upstream provider.
type BalanceService interface {
	// Chain returns the canonical chain name the service serves.
	Chain() string
	// CurrentProvider returns the provider the next fetch will use.
	CurrentProvider() string
	// SetProvider switches the default provider. On a provider-pinned proxy
	// this is a no-op.
	SetProvider(provider string)
	// GetBalances fetches the live portfolio for an address on the given
	// network type (mainnet/testnet).
	GetBalances(ctx context.Context, address, network string) (*models.Balances, error)
	IsSupported() bool
}

// ChainIDSetter is implemented by EVM-family multi-network services whose
// current chain id can be switched before a fetch.
type ChainIDSetter interface {
	SetChainID(chainID int64)
}

// ProviderOverrideFetcher is implemented by services that can fetch via an
// explicit provider, bypassing the current default. Provider-pinned proxies
// route through this path.
type ProviderOverrideFetcher interface {
	GetBalancesVia(ctx context.Context, provider, address, network string) (*models.Balances, error)
}

// ProviderClient is one upstream data provider's balance API.
// SDK wire formats live behind this boundary.
type ProviderClient interface {
	GetBalances(ctx context.Context, chain string, chainID int64, address, network string) (*models.Balances, error)
	IsSupported() bool
}
