package output

import (
	"fmt"
	"os"
)

// ChainDetail contains the full metadata of one chain for display.
type ChainDetail struct {
	Name               string `json:"name"`
	ChainID            uint64 `json:"chainId"`
	Known              bool   `json:"known"`
	IsTestnet          bool   `json:"isTestnet"`
	Legacy             bool   `json:"legacy"`
	SupportsShanghai   bool   `json:"supportsShanghai"`
	AverageBlocktimeMs int64  `json:"averageBlocktimeMs,omitempty"`
	Currency           string `json:"currency,omitempty"`
	ExplorerAPI        string `json:"explorerApi,omitempty"`
	Explorer           string `json:"explorer,omitempty"`
	EtherscanKeyEnv    string `json:"etherscanKeyEnv,omitempty"`
	WrappedNativeToken string `json:"wrappedNativeToken,omitempty"`
	DNSDiscovery       string `json:"dnsDiscovery,omitempty"`

	// Filled from a registry definition, when one matches.
	DisplayName string `json:"displayName,omitempty"`
	RPCURL      string `json:"rpcUrl,omitempty"`
}

// ChainRow is one line of the list output.
type ChainRow struct {
	Name      string `json:"name"`
	ChainID   uint64 `json:"chainId"`
	Currency  string `json:"currency,omitempty"`
	Explorer  string `json:"explorer,omitempty"`
	IsTestnet bool   `json:"isTestnet"`
}

// PrintChainDetail outputs one chain's metadata in human-readable format.
func PrintChainDetail(d *ChainDetail) {
	fmt.Printf("%s (chain ID %d)\n", d.Name, d.ChainID)
	fmt.Println()

	if !d.Known {
		fmt.Println("  Not in the catalog; identity only.")
	}
	if d.DisplayName != "" {
		fmt.Printf("  Name:      %s\n", d.DisplayName)
	}
	if d.RPCURL != "" {
		fmt.Printf("  RPC:       %s\n", d.RPCURL)
	}
	if d.Known {
		fmt.Printf("  Testnet:   %v\n", d.IsTestnet)
		if d.Currency != "" {
			fmt.Printf("  Currency:  %s\n", d.Currency)
		}
		if d.AverageBlocktimeMs > 0 {
			fmt.Printf("  Blocktime: %dms\n", d.AverageBlocktimeMs)
		}
		if d.Legacy {
			fmt.Println("  Fees:      legacy (no EIP-1559)")
		}
		if d.Explorer != "" {
			fmt.Printf("  Explorer:  %s\n", d.Explorer)
		}
		if d.WrappedNativeToken != "" {
			fmt.Printf("  Wrapped:   %s\n", d.WrappedNativeToken)
		}
		if d.DNSDiscovery != "" {
			fmt.Printf("  DNS:       %s\n", d.DNSDiscovery)
		}
	}
}

// PrintChainList outputs chain rows as aligned columns.
func PrintChainList(rows []ChainRow) {
	for _, r := range rows {
		testnet := ""
		if r.IsTestnet {
			testnet = "  (testnet)"
		}
		currency := r.Currency
		if currency == "" {
			currency = "-"
		}
		explorer := r.Explorer
		if explorer == "" {
			explorer = "-"
		}
		fmt.Printf("  %-28s %-12d %-6s %s%s\n", r.Name, r.ChainID, currency, explorer, testnet)
	}
}

// PrintError outputs an error message to stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
