// chains is a CLI tool for looking up EIP-155 blockchain networks.
//
// It resolves chains by canonical name, alias, or decimal chain ID and
// prints their static metadata: currency, explorer URLs, block time, fee
// market support, and more.
//
// Usage:
//
//	chains lookup <name-or-id>     Resolve a chain and show its metadata
//	chains list                    List all known chains
//	chains version                 Show version info
//
// For more information, visit: https://github.com/evmkit/go-chains
package main

import "github.com/evmkit/go-chains/internal/commands"

func main() {
	commands.Execute()
}
