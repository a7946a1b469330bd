package commands

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/evmkit/go-chains"
	"github.com/evmkit/go-chains/internal/output"
)

var (
	listTestnets bool
	listMainnets bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known chains",
	Long: `List every chain in the catalog with its chain ID, native currency,
and block explorer host.

Examples:
  chains list
  chains list --testnets
  chains list --mainnets --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listTestnets, "testnets", false, "Only show testnets")
	listCmd.Flags().BoolVar(&listMainnets, "mainnets", false, "Only show mainnets")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listTestnets && listMainnets {
		return fmt.Errorf("--testnets and --mainnets are mutually exclusive")
	}

	var rows []output.ChainRow
	for _, n := range chains.All() {
		testnet := n.IsTestnet()
		if listTestnets && !testnet {
			continue
		}
		if listMainnets && testnet {
			continue
		}

		row := output.ChainRow{
			Name:      n.String(),
			ChainID:   n.ID(),
			IsTestnet: testnet,
		}
		if symbol, ok := n.NativeCurrencySymbol(); ok {
			row.Currency = symbol
		}
		if _, browser, ok := n.EtherscanURLs(); ok {
			row.Explorer = explorerHost(browser)
		}
		rows = append(rows, row)
	}

	if GetJSONOutput() {
		return printJSON(rows)
	}

	// Keep piped output clean: rows only, no header.
	if output.IsTTY() {
		fmt.Printf("Known Chains (%d)\n\n", len(rows))
	}
	output.PrintChainList(rows)
	if output.IsTTY() {
		fmt.Println()
	}
	return nil
}

// explorerHost reduces a browser URL to its host for compact listing.
func explorerHost(browser string) string {
	u, err := url.Parse(browser)
	if err != nil || u.Host == "" {
		return browser
	}
	return u.Host
}
