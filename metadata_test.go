package chains

import (
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sweeps every classification function over every variant. The switches in
// metadata.go are meant to be total; a variant that slipped through shows up
// here as a zero answer where one is required, and any panic fails the sweep.
func TestMetadataTotality(t *testing.T) {
	for _, n := range All() {
		t.Run(n.String(), func(t *testing.T) {
			n.AverageBlocktime()
			n.IsLegacy()
			n.SupportsShanghai()
			n.IsTestnet()
			n.NativeCurrencySymbol()
			n.EtherscanURLs()
			n.EtherscanAPIKeyName()
			n.WrappedNativeToken()
			n.PublicDNSNetworkProtocol()
			n.IsEthereum()
			n.IsOptimism()
			n.IsArbitrum()
			n.IsPolygon()
			n.IsGnosis()
			n.IsElastic()
		})
	}
}

func TestAverageBlocktime(t *testing.T) {
	d, ok := Mainnet.AverageBlocktime()
	require.True(t, ok)
	assert.Equal(t, 12*time.Second, d)

	d, ok = Arbitrum.AverageBlocktime()
	require.True(t, ok)
	assert.Equal(t, 260*time.Millisecond, d)

	d, ok = Optimism.AverageBlocktime()
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, d)

	_, ok = Morden.AverageBlocktime()
	assert.False(t, ok)
	_, ok = Goerli.AverageBlocktime()
	assert.False(t, ok)
}

func TestIsLegacy(t *testing.T) {
	for _, n := range []NamedChain{Fantom, FantomTestnet, Rsk, Ronin, Viction, Shimmer, Elastos, OptimismKovan} {
		assert.True(t, n.IsLegacy(), "%s", n)
	}
	for _, n := range []NamedChain{Mainnet, Optimism, Arbitrum, Polygon, Base, BinanceSmartChain} {
		assert.False(t, n.IsLegacy(), "%s", n)
	}
	// Unclassified chains answer false.
	assert.False(t, Cronos.IsLegacy())
	assert.False(t, Moonbeam.IsLegacy())
}

func TestSupportsShanghai(t *testing.T) {
	for _, n := range []NamedChain{Mainnet, Sepolia, Holesky, Optimism, Base, Arbitrum, Gnosis, AnvilHardhat} {
		assert.True(t, n.SupportsShanghai(), "%s", n)
	}
	for _, n := range []NamedChain{Morden, Ropsten, Fantom, Viction, Dev} {
		assert.False(t, n.SupportsShanghai(), "%s", n)
	}
}

func TestIsTestnet(t *testing.T) {
	for _, n := range []NamedChain{Goerli, Sepolia, Holesky, Hoodi, BaseSepolia, AvalancheFuji, Dev, AnvilHardhat, Cannon} {
		assert.True(t, n.IsTestnet(), "%s", n)
	}
	for _, n := range []NamedChain{Mainnet, Optimism, Base, Polygon, Arbitrum, BinanceSmartChain} {
		assert.False(t, n.IsTestnet(), "%s", n)
	}
}

func TestNativeCurrencySymbol(t *testing.T) {
	tests := []struct {
		chain  NamedChain
		symbol string
	}{
		{Mainnet, "ETH"},
		{Base, "ETH"},
		{BinanceSmartChain, "BNB"},
		{Polygon, "POL"},
		{Celo, "CELO"},
		{Mantle, "MNT"},
		{Immutable, "IMX"},
		{ImmutableTestnet, "tIMX"},
		{Rsk, "RBTC"},
		{Lens, "GHO"},
		{LensTestnet, "GRASS"},
	}
	for _, tt := range tests {
		t.Run(tt.chain.String(), func(t *testing.T) {
			got, ok := tt.chain.NativeCurrencySymbol()
			require.True(t, ok)
			assert.Equal(t, tt.symbol, got)
		})
	}

	_, ok := Fantom.NativeCurrencySymbol()
	assert.False(t, ok)
}

func TestEtherscanURLs(t *testing.T) {
	api, browser, ok := Mainnet.EtherscanURLs()
	require.True(t, ok)
	assert.Equal(t, "https://api.etherscan.io/v2/api?chainid=1", api)
	assert.Equal(t, "https://etherscan.io", browser)

	api, browser, ok = Optimism.EtherscanURLs()
	require.True(t, ok)
	assert.Equal(t, "https://api.etherscan.io/v2/api?chainid=10", api)
	assert.Equal(t, "https://optimistic.etherscan.io", browser)

	_, _, ok = Dev.EtherscanURLs()
	assert.False(t, ok)
	_, _, ok = Morden.EtherscanURLs()
	assert.False(t, ok)
}

func TestEtherscanURLs_NoTrailingSlash(t *testing.T) {
	for _, n := range All() {
		api, browser, ok := n.EtherscanURLs()
		if !ok {
			continue
		}
		assert.NotEmpty(t, api, "%s", n)
		assert.NotEmpty(t, browser, "%s", n)
		assert.False(t, strings.HasSuffix(api, "/"), "%s api URL has trailing slash", n)
		assert.False(t, strings.HasSuffix(browser, "/"), "%s browser URL has trailing slash", n)
	}
}

func TestEtherscanAPIKeyName(t *testing.T) {
	name, ok := Mainnet.EtherscanAPIKeyName()
	require.True(t, ok)
	assert.Equal(t, "ETHERSCAN_API_KEY", name)

	name, ok = Fantom.EtherscanAPIKeyName()
	require.True(t, ok)
	assert.Equal(t, "FTMSCAN_API_KEY", name)

	name, ok = Moonbeam.EtherscanAPIKeyName()
	require.True(t, ok)
	assert.Equal(t, "MOONSCAN_API_KEY", name)

	name, ok = Zora.EtherscanAPIKeyName()
	require.True(t, ok)
	assert.Equal(t, "BLOCKSCOUT_API_KEY", name)

	_, ok = Dev.EtherscanAPIKeyName()
	assert.False(t, ok)
}

func TestEtherscanAPIKey(t *testing.T) {
	t.Setenv("ETHERSCAN_API_KEY", "test-key")
	key, ok := Mainnet.EtherscanAPIKey()
	require.True(t, ok)
	assert.Equal(t, "test-key", key)

	// Chains without a conventional variable never read the environment.
	_, ok = Dev.EtherscanAPIKey()
	assert.False(t, ok)
}

func TestPublicDNSNetworkProtocol(t *testing.T) {
	seed, ok := Mainnet.PublicDNSNetworkProtocol()
	require.True(t, ok)
	assert.Equal(t,
		"enrtree://AKA3AM6LPBYEUDMVNU3BSVQJ5AD45Y7YPOHJLEF6W26QOE4VTUDPE@all.mainnet.ethdisco.net",
		seed)

	for _, n := range []NamedChain{Goerli, Sepolia, Ropsten, Rinkeby, Holesky, Hoodi} {
		seed, ok := n.PublicDNSNetworkProtocol()
		require.True(t, ok, "%s", n)
		assert.Equal(t, dnsPrefix+"all."+n.String()+".ethdisco.net", seed)
	}

	_, ok = Optimism.PublicDNSNetworkProtocol()
	assert.False(t, ok)
	_, ok = Morden.PublicDNSNetworkProtocol()
	assert.False(t, ok)
}

func TestWrappedNativeToken(t *testing.T) {
	addr, ok := Mainnet.WrappedNativeToken()
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), addr)

	addr, ok = Optimism.WrappedNativeToken()
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0x4200000000000000000000000000000000000006"), addr)

	// The MemeCore networks share one wrapped-token contract.
	for _, n := range []NamedChain{MemeCore, Formicarium, Insectarium} {
		addr, ok := n.WrappedNativeToken()
		require.True(t, ok, "%s", n)
		assert.Equal(t, common.HexToAddress("0x653e645e3d81a72e71328Bc01A04002945E3ef7A"), addr)
	}

	_, ok = Sepolia.WrappedNativeToken()
	assert.False(t, ok)
}

func TestGroupPredicates(t *testing.T) {
	assert.True(t, Mainnet.IsEthereum())
	assert.True(t, Sepolia.IsEthereum())
	assert.False(t, Optimism.IsEthereum())

	assert.True(t, Optimism.IsOptimism())
	assert.True(t, Base.IsOptimism())
	assert.True(t, World.IsOptimism())
	assert.False(t, Arbitrum.IsOptimism())

	assert.True(t, Arbitrum.IsArbitrum())
	assert.True(t, ArbitrumNova.IsArbitrum())
	assert.False(t, Base.IsArbitrum())

	assert.True(t, Polygon.IsPolygon())
	assert.True(t, PolygonAmoy.IsPolygon())
	assert.False(t, Mainnet.IsPolygon())

	assert.True(t, Gnosis.IsGnosis())
	assert.True(t, Chiado.IsGnosis())
	assert.False(t, Mainnet.IsGnosis())

	assert.True(t, ZkSync.IsElastic())
	assert.True(t, Abstract.IsElastic())
	assert.False(t, Mainnet.IsElastic())
}
