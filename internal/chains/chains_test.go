package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ethereum", Ethereum},
		{"ETH", Ethereum},
		{" eth ", Ethereum},
		{"matic", Polygon},
		{"pol", Polygon},
		{"bnb", BSC},
		{"sol", Solana},
		{"unknownchain", "unknownchain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestID(t *testing.T) {
	id, ok := ID("eth")
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	id, ok = ID("polygon")
	assert.True(t, ok)
	assert.Equal(t, int64(137), id)

	_, ok = ID("solana")
	assert.False(t, ok)
}

func TestNameByID(t *testing.T) {
	name, ok := NameByID(8453)
	assert.True(t, ok)
	assert.Equal(t, Base, name)

	_, ok = NameByID(999999)
	assert.False(t, ok)
}

func TestKnownProvider(t *testing.T) {
	p, ok := KnownProvider("Alchemy")
	assert.True(t, ok)
	assert.Equal(t, ProviderAlchemy, p)

	_, ok = KnownProvider("bogus")
	assert.False(t, ok)
}

func TestEVM(t *testing.T) {
	assert.True(t, EVM("eth"))
	assert.True(t, EVM("sepolia"))
	assert.False(t, EVM("solana"))
	assert.False(t, EVM("unknownchain"))
}

func TestNetwork(t *testing.T) {
	assert.Equal(t, "mainnet", Network("ethereum"))
	assert.Equal(t, "testnet", Network("sepolia"))
	assert.Equal(t, "testnet", Network("amoy"))
}
