package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmkit/go-chains"
	"github.com/evmkit/go-chains/registry"
)

func TestResolveChain(t *testing.T) {
	reg := registry.New(nil)
	reg.Add(registry.Definition{
		Chain:  chains.FromID(424242),
		Name:   "Local Devnet",
		RPCURL: "http://localhost:8545",
	})

	tests := []struct {
		name  string
		input string
		want  chains.Chain
	}{
		{"canonical name", "optimism", chains.FromNamed(chains.Optimism)},
		{"alias", "xdai", chains.FromNamed(chains.Gnosis)},
		{"decimal ID", "8453", chains.FromNamed(chains.Base)},
		{"unknown decimal ID", "999999999999", chains.FromID(999999999999)},
		{"registry display name", "Local Devnet", chains.FromID(424242)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveChain(tt.input, reg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolveChain("bogus-chain", reg)
	assert.Error(t, err)
}

func TestBuildChainDetail_Known(t *testing.T) {
	reg := registry.New(nil)
	d := buildChainDetail(chains.FromNamed(chains.Mainnet), reg)

	assert.Equal(t, "mainnet", d.Name)
	assert.Equal(t, uint64(1), d.ChainID)
	assert.True(t, d.Known)
	assert.False(t, d.IsTestnet)
	assert.Equal(t, "ETH", d.Currency)
	assert.Equal(t, "https://etherscan.io", d.Explorer)
	assert.Equal(t, "ETHERSCAN_API_KEY", d.EtherscanKeyEnv)
	assert.Equal(t, int64(12000), d.AverageBlocktimeMs)
	assert.NotEmpty(t, d.DNSDiscovery)
	assert.NotEmpty(t, d.WrappedNativeToken)

	// Seeded registry definition shows through.
	assert.Equal(t, "Ethereum Mainnet", d.DisplayName)
	assert.NotEmpty(t, d.RPCURL)
}

func TestBuildChainDetail_Unknown(t *testing.T) {
	reg := registry.New(nil)
	d := buildChainDetail(chains.FromID(999999999999), reg)

	assert.Equal(t, "999999999999", d.Name)
	assert.False(t, d.Known)
	assert.Empty(t, d.Currency)
	assert.Empty(t, d.Explorer)
}

func TestBuildChainDetail_RegistryOnly(t *testing.T) {
	reg := registry.New(nil)
	reg.Add(registry.Definition{
		Chain:    chains.FromID(424242),
		Name:     "Local Devnet",
		RPCURL:   "http://localhost:8545",
		Explorer: "http://localhost:4000",
	})

	d := buildChainDetail(chains.FromID(424242), reg)
	assert.False(t, d.Known)
	assert.Equal(t, "Local Devnet", d.DisplayName)
	assert.Equal(t, "http://localhost:8545", d.RPCURL)
	assert.Equal(t, "http://localhost:4000", d.Explorer)
}
