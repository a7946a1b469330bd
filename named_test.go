package chains

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedChain_String(t *testing.T) {
	tests := []struct {
		chain NamedChain
		name  string
	}{
		{Mainnet, "mainnet"},
		{Sepolia, "sepolia"},
		{Optimism, "optimism"},
		{BinanceSmartChain, "bsc"},
		{Gnosis, "xdai"},
		{PolygonAmoy, "amoy"},
		{AvalancheFuji, "fuji"},
		{AnvilHardhat, "anvil-hardhat"},
		{ZkSync, "zksync"},
		{OpBNBMainnet, "opbnb-mainnet"},
		{ApeChain, "apechain"},
		{ArbitrumNova, "arbitrum-nova"},
		{TelosEvm, "telos"},
		{MemeCore, "memecore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.chain.String())
		})
	}
}

func TestParseNamed(t *testing.T) {
	n, err := ParseNamed("mainnet")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, n)

	n, err = ParseNamed("ethlive")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, n)

	// Misspelled alias decodes; canonical output stays "formicarium".
	n, err = ParseNamed("formicairum")
	require.NoError(t, err)
	assert.Equal(t, Formicarium, n)
	assert.Equal(t, "formicarium", n.String())

	_, err = ParseNamed("1")
	require.Error(t, err, "numeric IDs resolve through Parse, not ParseNamed")
	assert.True(t, errors.Is(err, ErrInvalidChainIdentifier))

	_, err = ParseNamed("bogus-chain")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidChainIdentifier))
}

func TestParseNamed_EveryAlias(t *testing.T) {
	for alias, want := range namedChainAliases {
		t.Run(alias, func(t *testing.T) {
			n, err := ParseNamed(alias)
			require.NoError(t, err)
			assert.Equal(t, want, n)
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	assert.Equal(t, Count(), len(all))
	assert.Equal(t, Mainnet, all[0])

	seen := map[NamedChain]bool{}
	for i, n := range all {
		assert.True(t, n.IsValid())
		assert.False(t, seen[n], "%s listed twice", n)
		seen[n] = true
		if i > 0 {
			assert.Less(t, uint64(all[i-1]), uint64(n), "All must be sorted by chain ID")
		}
	}
}

func TestNamedChain_IsValid(t *testing.T) {
	assert.True(t, Mainnet.IsValid())
	assert.True(t, Insectarium.IsValid())
	assert.False(t, NamedChain(999999999999).IsValid())
}

func TestNamedChain_Text(t *testing.T) {
	out, err := Sepolia.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sepolia", string(out))

	var n NamedChain
	require.NoError(t, n.UnmarshalText([]byte("arbitrum_one")))
	assert.Equal(t, Arbitrum, n)

	err = n.UnmarshalText([]byte("999999999999"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidChainIdentifier))
}

// Every variant must have a canonical name that parses back to itself. This
// guards new constants against missing table entries.
func TestNamedChain_NameRoundTrip(t *testing.T) {
	for _, n := range All() {
		s := n.String()
		require.NotEmpty(t, s, "chain %d has no canonical name", uint64(n))
		parsed, err := ParseNamed(s)
		require.NoError(t, err, "canonical name %q must parse", s)
		assert.Equal(t, n, parsed)
	}
}
