// Package cachekey implements the deterministic, reversible encoding of
// portfolio cache keys: prefix:chain[:chainId][:address][:provider][:extra...].
package cachekey

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"portfolio-cache/internal/chains"
)

// Delimiter separates key segments.
const Delimiter = ":"

// Components is the logical cache key tuple. ChainID nil means "infer from
// the chain table at encode time"; decode only ever recovers what is
// textually present in the key.
type Components struct {
	Prefix   string
	Chain    string
	ChainID  *int64
	Address  string
	Provider string
	Extra    []string
}

// Codec encodes and decodes cache keys.
type Codec struct {
	logger *zap.Logger
}

// NewCodec creates a key codec.
func NewCodec(logger *zap.Logger) *Codec {
	return &Codec{logger: logger}
}

// Encode builds the string key for c. An explicit ChainID wins over the
// static table; the provider segment is included only when it names a known
// provider. Encode is pure and never fails for well-formed input.
func (c *Codec) Encode(k Components) string {
	segments := make([]string, 0, 5+len(k.Extra))
	segments = append(segments, strings.ToLower(k.Prefix), chains.Normalize(k.Chain))

	if k.ChainID != nil {
		segments = append(segments, strconv.FormatInt(*k.ChainID, 10))
	} else if id, ok := chains.ID(k.Chain); ok {
		segments = append(segments, strconv.FormatInt(id, 10))
	}

	if k.Address != "" {
		segments = append(segments, k.Address)
	}

	if provider, ok := chains.KnownProvider(k.Provider); ok && k.Provider != "" {
		segments = append(segments, provider)
	}

	segments = append(segments, k.Extra...)

	return strings.Join(segments, Delimiter)
}

// Decode splits key back into components. Positions 0 and 1 are always
// prefix and chain; the next segment is a chain id only if it parses as an
// integer and round-trips to the same string, so an address can never be
// misread as an id; the following segment is the address; the one after that
// is a provider only if it case-insensitively matches a known provider name;
// anything left is extra. Malformed keys (fewer than two segments) decode to
// a zero Components with ok=false and are logged, never an error.
func (c *Codec) Decode(key string) (Components, bool) {
	segments := strings.Split(key, Delimiter)
	if key == "" || len(segments) < 2 {
		c.logger.Warn("Invalid cache key", zap.String("key", key))
		return Components{}, false
	}

	k := Components{Prefix: segments[0], Chain: segments[1]}
	rest := segments[2:]

	if len(rest) > 0 {
		if id, ok := parseExactInt(rest[0]); ok {
			k.ChainID = &id
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		k.Address = rest[0]
		rest = rest[1:]
	}

	if len(rest) > 0 {
		if provider, ok := chains.KnownProvider(rest[0]); ok {
			k.Provider = provider
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		k.Extra = rest
	}

	return k, true
}

// parseExactInt parses s as an int64 only if the textual form round-trips
// exactly (rejects leading zeros, signs with padding, hex-looking addresses).
func parseExactInt(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if strconv.FormatInt(id, 10) != s {
		return 0, false
	}
	return id, true
}
