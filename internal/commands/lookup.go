package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evmkit/go-chains"
	"github.com/evmkit/go-chains/internal/output"
	"github.com/evmkit/go-chains/registry"
)

var lookupChainsFile string

var lookupCmd = &cobra.Command{
	Use:   "lookup <name-or-id>",
	Short: "Resolve a chain and show its metadata",
	Long: `Resolve a chain by canonical name, alias, or decimal chain ID and print
its metadata.

Custom networks can be resolved through a YAML definitions file:

  chains lookup my-devnet --chains-file ./chains.yaml

Examples:
  chains lookup optimism
  chains lookup arbitrum-one
  chains lookup 8453 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupChainsFile, "chains-file", "", "YAML file with extra chain definitions")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	reg := registry.New(nil)
	if lookupChainsFile != "" {
		if err := reg.LoadInto(lookupChainsFile); err != nil {
			return err
		}
	}

	chain, err := resolveChain(args[0], reg)
	if err != nil {
		return err
	}

	detail := buildChainDetail(chain, reg)
	if GetJSONOutput() {
		return printJSON(detail)
	}
	output.PrintChainDetail(detail)
	return nil
}

// resolveChain resolves the argument against the catalog first, then against
// registry definition names so file-defined networks work by display name.
func resolveChain(arg string, reg *registry.Registry) (chains.Chain, error) {
	chain, err := chains.Parse(arg)
	if err == nil {
		return chain, nil
	}
	for _, def := range reg.List() {
		if def.Name == arg {
			return def.Chain, nil
		}
	}
	return chains.Chain{}, fmt.Errorf("unknown chain %q", arg)
}

func buildChainDetail(chain chains.Chain, reg *registry.Registry) *output.ChainDetail {
	d := &output.ChainDetail{
		Name:    chain.String(),
		ChainID: chain.ID(),
	}

	if def, ok := reg.Get(chain.ID()); ok {
		d.DisplayName = def.Name
		d.RPCURL = def.RPCURL
		if def.Explorer != "" {
			d.Explorer = def.Explorer
		}
	}

	n, ok := chain.Named()
	if !ok {
		return d
	}

	d.Known = true
	d.IsTestnet = n.IsTestnet()
	d.Legacy = n.IsLegacy()
	d.SupportsShanghai = n.SupportsShanghai()
	if blocktime, ok := n.AverageBlocktime(); ok {
		d.AverageBlocktimeMs = blocktime.Milliseconds()
	}
	if symbol, ok := n.NativeCurrencySymbol(); ok {
		d.Currency = symbol
	}
	if api, browser, ok := n.EtherscanURLs(); ok {
		d.ExplorerAPI = api
		d.Explorer = browser
	}
	if keyEnv, ok := n.EtherscanAPIKeyName(); ok {
		d.EtherscanKeyEnv = keyEnv
	}
	if wrapped, ok := n.WrappedNativeToken(); ok {
		d.WrappedNativeToken = wrapped.Hex()
	}
	if seed, ok := n.PublicDNSNetworkProtocol(); ok {
		d.DNSDiscovery = seed
	}
	return d
}
