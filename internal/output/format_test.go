package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainDetail_JSONShape(t *testing.T) {
	detail := ChainDetail{
		Name:               "mainnet",
		ChainID:            1,
		Known:              true,
		SupportsShanghai:   true,
		AverageBlocktimeMs: 12000,
		Currency:           "ETH",
		ExplorerAPI:        "https://api.etherscan.io/v2/api?chainid=1",
		Explorer:           "https://etherscan.io",
		EtherscanKeyEnv:    "ETHERSCAN_API_KEY",
	}

	jsonStr, err := FormatJSON(detail)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"chainId": 1`)
	assert.Contains(t, jsonStr, `"averageBlocktimeMs": 12000`)
	assert.Contains(t, jsonStr, `"etherscanKeyEnv": "ETHERSCAN_API_KEY"`)
	// Registry-only fields stay out of catalog lookups.
	assert.NotContains(t, jsonStr, "rpcUrl")
	assert.NotContains(t, jsonStr, "displayName")
}

func TestChainDetail_UnknownChain(t *testing.T) {
	detail := ChainDetail{
		Name:    "999999999999",
		ChainID: 999999999999,
		Known:   false,
	}

	jsonStr, err := FormatJSON(detail)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"known": false`)
	assert.NotContains(t, jsonStr, "currency")
}
