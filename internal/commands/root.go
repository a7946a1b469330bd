// Package commands implements the CLI commands using Cobra.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evmkit/go-chains/internal/output"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Global flags
var (
	verbose    bool
	jsonOutput bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "chains",
	Short: "CLI for the EIP-155 chain catalog",
	Long: `chains is a command-line tool for looking up EIP-155 blockchain networks:
their canonical names, chain IDs, currencies, explorers, and other static
metadata.

Commands:
  lookup   Resolve a chain by name, alias, or ID and show its metadata
  list     List all known chains
  version  Show version information

Examples:
  # Resolve by name or alias
  chains lookup optimism
  chains lookup xdai

  # Resolve by chain ID
  chains lookup 42161

  # List only testnets as JSON
  chains list --testnets --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			output.PrintJSONError(err, 1)
		} else {
			output.PrintError(err)
		}
		os.Exit(1)
	}
}

// printJSON writes v as JSON: indented on a terminal, compact when piped.
func printJSON(v interface{}) error {
	if output.IsTTY() {
		return output.PrintJSON(v)
	}
	return output.PrintJSONCompact(v)
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}

// GetVerbose returns the verbose flag value.
func GetVerbose() bool {
	return verbose
}

// GetJSONOutput returns the json output flag value.
func GetJSONOutput() bool {
	return jsonOutput
}
