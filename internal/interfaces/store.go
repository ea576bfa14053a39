package interfaces

import (
	"context"

	"portfolio-cache/internal/models"
)

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// PortfolioStore is the durable second tier: persisted, TTL-bearing snapshots
// keyed by (chain, chainId, address, provider), surviving fast-cache eviction.
type PortfolioStore interface {
	// Get returns the snapshot for the tuple, or nil when absent.
	Get(ctx context.Context, chainID int64, address, provider string) (*models.PortfolioSnapshot, error)
	// Upsert writes the snapshot, overwriting any previous row for the tuple.
	Upsert(ctx context.Context, snap *models.PortfolioSnapshot) error
	// DeleteByAddress removes all rows for (chainId, address) across
	// providers and returns how many were removed.
	DeleteByAddress(ctx context.Context, chainID int64, address string) (int64, error)
	// ActiveUnmonitored lists addresses with an unexpired snapshot that are
	// not yet webhook-monitored.
	ActiveUnmonitored(ctx context.Context, chain string) ([]string, error)
	// ExpiredMonitored lists addresses whose snapshots all expired but that
	// are still webhook-monitored.
	ExpiredMonitored(ctx context.Context, chain string) ([]string, error)
	// SetMonitored flips the webhookMonitored flag for the addresses in bulk.
	SetMonitored(ctx context.Context, chain string, addresses []string, monitored bool) error
	Close(ctx context.Context) error
}
