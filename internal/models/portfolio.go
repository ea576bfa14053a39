package models

import "time"

// NativeBalance is the chain's base-asset balance for an address.
type NativeBalance struct {
	Symbol   string  `json:"symbol" bson:"symbol"`
	Balance  string  `json:"balance" bson:"balance"`
	Decimals int     `json:"decimals" bson:"decimals"`
	USD      float64 `json:"usd,omitempty" bson:"usd,omitempty"`
}

// TokenBalance is a fungible token position.
type TokenBalance struct {
	Address  string  `json:"address" bson:"address"`
	Symbol   string  `json:"symbol" bson:"symbol"`
	Name     string  `json:"name" bson:"name"`
	Balance  string  `json:"balance" bson:"balance"`
	Decimals int     `json:"decimals" bson:"decimals"`
	USD      float64 `json:"usd,omitempty" bson:"usd,omitempty"`
	Logo     string  `json:"logo,omitempty" bson:"logo,omitempty"`
}

// NFTItem is a single owned NFT.
type NFTItem struct {
	Address    string `json:"address" bson:"address"`
	TokenID    string `json:"tokenId" bson:"tokenId"`
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	Collection string `json:"collection,omitempty" bson:"collection,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// Balances is the cache-facing portfolio shape: what a live fetch returns and
// what the fast cache stores under the address key.
type Balances struct {
	Native NativeBalance  `json:"native"`
	Tokens []TokenBalance `json:"fungibles"`
	NFTs   []NFTItem      `json:"nfts"`
}

// PortfolioSnapshot is the durable-store row for one (chain, chainId, address,
// provider) tuple. ExpiresAt is always set on write; WebhookMonitored is
// flipped by the reconciliation service only.
type PortfolioSnapshot struct {
	Chain            string         `json:"chain" bson:"chain"`
	ChainID          int64          `json:"chainId" bson:"chainId"`
	Address          string         `json:"address" bson:"address"`
	Provider         string         `json:"provider,omitempty" bson:"provider,omitempty"`
	Native           NativeBalance  `json:"native" bson:"native"`
	Tokens           []TokenBalance `json:"fungibles" bson:"fungibles"`
	NFTs             []NFTItem      `json:"nfts" bson:"nfts"`
	ExpiresAt        time.Time      `json:"expiresAt" bson:"expiresAt"`
	WebhookMonitored bool           `json:"webhookMonitored,omitempty" bson:"webhookMonitored,omitempty"`
}

// Expired reports whether the snapshot's TTL has elapsed.
func (s *PortfolioSnapshot) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ToBalances translates the durable shape into the cache-facing shape.
func (s *PortfolioSnapshot) ToBalances() *Balances {
	return &Balances{
		Native: s.Native,
		Tokens: s.Tokens,
		NFTs:   s.NFTs,
	}
}
