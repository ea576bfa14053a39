// Package chains holds the static chain and provider tables: canonical chain
// names, numeric chain ids for the EVM family, symbol aliases, and the set of
// known upstream data providers.
package chains

import "strings"

// Canonical chain names.
const (
	Ethereum  = "ethereum"
	Polygon   = "polygon"
	BSC       = "bsc"
	Arbitrum  = "arbitrum"
	Optimism  = "optimism"
	Base      = "base"
	Avalanche = "avalanche"
	Sepolia   = "sepolia"
	Amoy      = "amoy"
	Solana    = "solana"
)

// Known provider names.
const (
	ProviderAlchemy = "alchemy"
	ProviderMoralis = "moralis"
	ProviderAnkr    = "ankr"
)

// chainIDs maps canonical chain names to their numeric chain id. Solana has
// no EVM-style chain id and is deliberately absent.
var chainIDs = map[string]int64{
	Ethereum:  1,
	Polygon:   137,
	BSC:       56,
	Arbitrum:  42161,
	Optimism:  10,
	Base:      8453,
	Avalanche: 43114,
	Sepolia:   11155111,
	Amoy:      80002,
}

// aliases maps ticker symbols and shorthand to canonical chain names.
var aliases = map[string]string{
	"eth":   Ethereum,
	"matic": Polygon,
	"pol":   Polygon,
	"bnb":   BSC,
	"arb":   Arbitrum,
	"op":    Optimism,
	"avax":  Avalanche,
	"sol":   Solana,
}

var providers = map[string]struct{}{
	ProviderAlchemy: {},
	ProviderMoralis: {},
	ProviderAnkr:    {},
}

// Normalize resolves symbols and casing to a canonical chain name. The input
// is returned lowercased unchanged when no alias matches; the caller decides
// whether the name is registered.
func Normalize(nameOrSymbol string) string {
	name := strings.ToLower(strings.TrimSpace(nameOrSymbol))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// ID returns the numeric chain id for a canonical chain name.
func ID(chain string) (int64, bool) {
	id, ok := chainIDs[Normalize(chain)]
	return id, ok
}

// NameByID reverse-looks-up the canonical chain name for a chain id.
func NameByID(chainID int64) (string, bool) {
	for name, id := range chainIDs {
		if id == chainID {
			return name, true
		}
	}
	return "", false
}

// KnownProvider reports whether name is a recognized provider,
// case-insensitively, returning the canonical lowercase form.
func KnownProvider(name string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(name))
	_, ok := providers[p]
	return p, ok
}

// Providers returns the known provider names.
func Providers() []string {
	out := make([]string, 0, len(providers))
	for p := range providers {
		out = append(out, p)
	}
	return out
}

// EVM reports whether the chain belongs to the EVM family (has a chain id).
func EVM(chain string) bool {
	_, ok := chainIDs[Normalize(chain)]
	return ok
}

// Network returns the network type used on provider calls.
func Network(chain string) string {
	switch Normalize(chain) {
	case Sepolia, Amoy:
		return "testnet"
	default:
		return "mainnet"
	}
}
