package registry

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/evmkit/go-chains"
)

// definitionFile is the on-disk layout of a chain definitions file:
//
//	chains:
//	  - chain: my-devnet-name-or-id
//	    name: My Devnet
//	    rpc_url: http://localhost:8545
//	    explorer: http://localhost:4000
//
// The chain field accepts anything chains.Parse accepts, so both names and
// decimal chain IDs work.
type definitionFile struct {
	Chains []Definition `yaml:"chains"`
}

// UnmarshalYAML decodes a definition entry, resolving the chain field
// through chains.Parse.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Chain    string `yaml:"chain"`
		Name     string `yaml:"name"`
		RPCURL   string `yaml:"rpc_url"`
		Explorer string `yaml:"explorer"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	chain, err := chains.Parse(raw.Chain)
	if err != nil {
		return err
	}
	*d = Definition{
		Chain:    chain,
		Name:     raw.Name,
		RPCURL:   raw.RPCURL,
		Explorer: raw.Explorer,
	}
	return nil
}

// LoadFile reads chain definitions from a YAML file.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read chain definitions")
	}

	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parse chain definitions %s", path)
	}

	for _, def := range file.Chains {
		if def.Name == "" {
			return nil, errors.Errorf("chain definition %s in %s has no name", def.Chain, path)
		}
	}
	return file.Chains, nil
}

// LoadInto reads a definitions file and merges it into the registry.
func (r *Registry) LoadInto(path string) error {
	defs, err := LoadFile(path)
	if err != nil {
		return err
	}
	r.Merge(defs)
	return nil
}
