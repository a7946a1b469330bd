package chains

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromID_PromotesKnownIDs(t *testing.T) {
	tests := []struct {
		id    uint64
		named NamedChain
	}{
		{1, Mainnet},
		{10, Optimism},
		{56, BinanceSmartChain},
		{100, Gnosis},
		{137, Polygon},
		{8453, Base},
		{42161, Arbitrum},
		{11155111, Sepolia},
	}

	for _, tt := range tests {
		t.Run(tt.named.String(), func(t *testing.T) {
			c := FromID(tt.id)
			assert.True(t, c.IsNamed())
			n, ok := c.Named()
			assert.True(t, ok)
			assert.Equal(t, tt.named, n)
			assert.Equal(t, tt.id, c.ID())
			assert.Equal(t, FromNamed(tt.named), c)
		})
	}
}

func TestFromID_UnknownID(t *testing.T) {
	c := FromID(999999999999)
	assert.Equal(t, uint64(999999999999), c.ID())
	assert.False(t, c.IsNamed())
	_, ok := c.Named()
	assert.False(t, ok)
	assert.Equal(t, "999999999999", c.String())
}

func TestFromID_ZeroIsNotMainnet(t *testing.T) {
	c := FromID(0)
	assert.Equal(t, uint64(0), c.ID())
	assert.False(t, c.IsNamed())
	assert.Equal(t, "0", c.String())
	assert.NotEqual(t, FromNamed(Mainnet), c)
}

func TestChain_ZeroValueIsMainnet(t *testing.T) {
	var c Chain
	assert.Equal(t, FromNamed(Mainnet), c)
	assert.Equal(t, FromID(1), c)
	assert.Equal(t, uint64(1), c.ID())
	assert.Equal(t, "mainnet", c.String())
	assert.True(t, c.IsNamed())
}

func TestFromNamed_UndeclaredValue(t *testing.T) {
	// NamedChain is just a uint64, so arbitrary values can be cast into it.
	// They must normalize to the numeric representation.
	c := FromNamed(NamedChain(424242))
	assert.Equal(t, FromID(424242), c)
	assert.Equal(t, uint64(424242), c.ID())
	assert.False(t, c.IsNamed())
	assert.Equal(t, "424242", c.String())

	c = FromNamed(NamedChain(0))
	assert.Equal(t, FromID(0), c)
	assert.Equal(t, uint64(0), c.ID())
	assert.NotEqual(t, FromNamed(Mainnet), c)
}

func TestChain_Comparable(t *testing.T) {
	// Promotion makes == and map keying agree with chain ID equality.
	seen := map[Chain]string{}
	seen[FromID(10)] = "by id"
	seen[FromNamed(Optimism)] = "by name"
	assert.Len(t, seen, 1)
	assert.Equal(t, "by name", seen[FromID(10)])
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Chain
	}{
		{"mainnet", FromNamed(Mainnet)},
		{"ethlive", FromNamed(Mainnet)},
		{"xdai", FromNamed(Gnosis)},
		{"gnosis", FromNamed(Gnosis)},
		{"gnosis-chain", FromNamed(Gnosis)},
		{"bsc", FromNamed(BinanceSmartChain)},
		{"binance-smart-chain", FromNamed(BinanceSmartChain)},
		{"arbitrum-one", FromNamed(Arbitrum)},
		{"anvil", FromNamed(AnvilHardhat)},
		{"hardhat", FromNamed(AnvilHardhat)},
		{"optimism-sepolia", FromNamed(OptimismSepolia)},
		{"1", FromNamed(Mainnet)},
		{"10", FromNamed(Optimism)},
		{"999999999999", FromID(999999999999)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "bogus-chain", "Mainnet", "MAINNET", "-1", "0x1", "mainnet "} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidChainIdentifier))
		})
	}
}

func TestChain_StringRoundTrip(t *testing.T) {
	for _, n := range All() {
		c := FromNamed(n)
		parsed, err := Parse(c.String())
		require.NoError(t, err, "canonical name %q must parse back", c.String())
		assert.Equal(t, c, parsed)
	}
}

func TestChain_JSON(t *testing.T) {
	out, err := json.Marshal(FromNamed(Base))
	require.NoError(t, err)
	assert.Equal(t, `"base"`, string(out))

	out, err = json.Marshal(FromID(999999999999))
	require.NoError(t, err)
	assert.Equal(t, `"999999999999"`, string(out))

	tests := []struct {
		input string
		want  Chain
	}{
		{`"mainnet"`, FromNamed(Mainnet)},
		{`"ethlive"`, FromNamed(Mainnet)},
		{`"optimism_sepolia"`, FromNamed(OptimismSepolia)},
		{`"arbitrum_one"`, FromNamed(Arbitrum)},
		{`"8453"`, FromNamed(Base)},
		{`"999999999999"`, FromID(999999999999)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var c Chain
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.want, c)
		})
	}

	var c Chain
	err = json.Unmarshal([]byte(`"bogus-chain"`), &c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidChainIdentifier))
}

func TestChain_RLP(t *testing.T) {
	for _, c := range []Chain{FromNamed(Mainnet), FromNamed(Optimism), FromID(999999999999), FromID(0)} {
		enc, err := rlp.EncodeToBytes(c)
		require.NoError(t, err)

		// The wire form is exactly the RLP of the numeric chain ID.
		raw, err := rlp.EncodeToBytes(c.ID())
		require.NoError(t, err)
		assert.Equal(t, raw, enc)

		var dec Chain
		require.NoError(t, rlp.DecodeBytes(enc, &dec))
		assert.Equal(t, c, dec)
	}
}

func TestChain_Cmp(t *testing.T) {
	assert.Equal(t, -1, FromNamed(Mainnet).Cmp(FromNamed(Optimism)))
	assert.Equal(t, 1, FromNamed(Optimism).Cmp(FromNamed(Mainnet)))
	assert.Equal(t, 0, FromID(10).Cmp(FromNamed(Optimism)))
}
