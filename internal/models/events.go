package models

import "time"

// Event bus topics. Within one request the stages run in this order:
// updated -> (fast write) -> stored -> (durable write) -> reconciliation.
const (
	TopicPortfolioUpdated   = "portfolio.updated"
	TopicPortfolioStored    = "portfolio.stored"
	TopicAddressActivity    = "address.activity"
	TopicAddressInvalidated = "address.invalidated"
)

// PortfolioUpdatedEvent is published after a successful live fetch, carrying
// the fresh result and the fast-cache TTL. The publisher does not wait for
// cache or durable writes.
type PortfolioUpdatedEvent struct {
	Chain    string
	ChainID  int64
	Address  string
	Provider string
	Balances *Balances
	TTL      time.Duration
}

// PortfolioStoredEvent is re-published by the cache-write listener once the
// fast-cache write succeeded; TTL here is the longer durable-store expiry.
type PortfolioStoredEvent struct {
	Chain    string
	ChainID  int64
	Address  string
	Provider string
	Balances *Balances
	TTL      time.Duration
}

// AddressActivityEvent signals on-chain activity for an address, typically
// from an inbound webhook notification. FromInvalidation guards the
// address-activity listener against reacting to its own side-effects.
type AddressActivityEvent struct {
	Chain            string
	ChainID          int64
	Address          string
	FromInvalidation bool
}

// AddressInvalidatedEvent is published after an address's cache entries were
// removed from both tiers.
type AddressInvalidatedEvent struct {
	Chain       string
	ChainID     int64
	Address     string
	RemovedKeys int
}
