// Package registry holds runtime chain definitions: curated connection and
// display details for networks an application actually talks to, keyed by
// chain ID. Unlike the static catalog in the root package, the registry is
// mutable and can be extended with private or not-yet-cataloged networks.
package registry

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/evmkit/go-chains"
)

// Definition describes one network known to the registry.
type Definition struct {
	Chain    chains.Chain
	Name     string
	RPCURL   string
	Explorer string
}

// Registry is a concurrency-safe map of chain definitions.
type Registry struct {
	mu     sync.RWMutex
	defs   map[uint64]Definition
	logger *logrus.Logger
}

// New returns a registry seeded with Ethereum mainnet and Sepolia. A nil
// logger disables logging.
func New(logger *logrus.Logger) *Registry {
	r := &Registry{
		defs:   make(map[uint64]Definition),
		logger: logger,
	}
	r.Add(Definition{
		Chain:    chains.FromNamed(chains.Mainnet),
		Name:     "Ethereum Mainnet",
		RPCURL:   "https://eth.llamarpc.com",
		Explorer: "https://etherscan.io",
	})
	r.Add(Definition{
		Chain:    chains.FromNamed(chains.Sepolia),
		Name:     "Ethereum Sepolia",
		RPCURL:   "https://ethereum-sepolia-rpc.publicnode.com",
		Explorer: "https://sepolia.etherscan.io",
	})
	return r
}

// Add inserts or replaces the definition for its chain ID.
func (r *Registry) Add(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs[def.Chain.ID()] = def
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{
			"chainID": def.Chain.ID(),
			"name":    def.Name,
		}).Debug("registered chain definition")
	}
}

// Get returns the definition for a chain ID.
func (r *Registry) Get(id uint64) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[id]
	return def, ok
}

// Remove deletes and returns the definition for a chain ID.
func (r *Registry) Remove(id uint64) (Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := r.defs[id]
	if !ok {
		return Definition{}, false
	}
	delete(r.defs, id)
	if r.logger != nil {
		r.logger.WithField("chainID", id).Debug("removed chain definition")
	}
	return def, true
}

// List returns all definitions in ascending chain ID order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Chain.ID() < out[j].Chain.ID()
	})
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Merge adds every definition, replacing existing entries with the same
// chain ID.
func (r *Registry) Merge(defs []Definition) {
	for _, def := range defs {
		r.Add(def)
	}
}
