package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorerHost(t *testing.T) {
	tests := []struct {
		browser string
		host    string
	}{
		{"https://etherscan.io", "etherscan.io"},
		{"https://optimistic.etherscan.io", "optimistic.etherscan.io"},
		{"https://blockscout.com/rsk/mainnet", "blockscout.com"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.browser, func(t *testing.T) {
			assert.Equal(t, tt.host, explorerHost(tt.browser))
		})
	}
}
