// Package chains is a canonical identity and metadata catalog for EIP-155
// blockchain networks.
//
// A Chain is either a well-known named chain or a raw numeric chain ID.
// Constructing a Chain from a number that belongs to a named chain always
// yields the named representation, so two chains are interchangeable exactly
// when their chain IDs match. Static per-chain facts (block time, explorer
// URLs, currency symbol, ...) are exposed as total functions on NamedChain;
// see metadata.go.
package chains

import (
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// Chain identifies an EIP-155 chain, either by a NamedChain variant or by a
// raw numeric ID for networks the catalog does not know.
//
// Chain is an immutable value type: it is comparable with ==, usable as a
// map key, and two Chains are equal exactly when their chain IDs are equal.
// The zero value is the Ethereum mainnet chain.
type Chain struct {
	// id holds the chain ID, except that Mainnet is stored as 0 so the zero
	// value of Chain is Mainnet. Accessors remap through chainID.
	id uint64
	// numeric is set when id did not resolve to a named chain at
	// construction time.
	numeric bool
}

// chainID returns the actual chain ID behind the internal encoding.
func (c Chain) chainID() uint64 {
	if !c.numeric && c.id == 0 {
		return uint64(Mainnet)
	}
	return c.id
}

// FromID returns the chain with the given ID. If the ID belongs to a named
// chain the result is that named chain; any other value is carried through
// as a numeric chain. Never fails.
func FromID(id uint64) Chain {
	if n, ok := namedFromID(id); ok {
		return FromNamed(n)
	}
	return Chain{id: id, numeric: true}
}

// FromNamed returns the chain for a named variant. A value that is not a
// declared variant is carried as a numeric chain, so chain ID equality holds
// against FromID regardless of how the value was obtained.
func FromNamed(n NamedChain) Chain {
	if !n.IsValid() {
		return FromID(uint64(n))
	}
	if n == Mainnet {
		return Chain{}
	}
	return Chain{id: uint64(n)}
}

// Parse resolves text to a chain. It accepts, in order: a canonical chain
// name, a declared alias (both case-sensitive), or a base-10 chain ID.
// Anything else fails with ErrInvalidChainIdentifier.
func Parse(s string) (Chain, error) {
	if n, err := ParseNamed(s); err == nil {
		return FromNamed(n), nil
	}
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		return FromID(id), nil
	}
	return Chain{}, errors.Wrapf(ErrInvalidChainIdentifier, "%q", s)
}

// ID returns the chain ID.
func (c Chain) ID() uint64 {
	return c.chainID()
}

// Named returns the named chain variant, if the chain ID belongs to one.
// The lookup is by ID, so it holds even for values that were carried as
// numeric.
func (c Chain) Named() (NamedChain, bool) {
	return namedFromID(c.chainID())
}

// IsNamed reports whether the chain ID belongs to a named chain.
func (c Chain) IsNamed() bool {
	_, ok := c.Named()
	return ok
}

// String returns the canonical name for named chains and the decimal chain
// ID for everything else.
func (c Chain) String() string {
	if n, ok := c.Named(); ok {
		return n.String()
	}
	return strconv.FormatUint(c.chainID(), 10)
}

// Cmp orders chains by chain ID.
func (c Chain) Cmp(other Chain) int {
	a, b := c.chainID(), other.chainID()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MarshalText encodes the canonical display string: the chain name for named
// chains, decimal digits otherwise.
func (c Chain) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts everything Parse accepts, plus snake_case spellings
// of names and aliases (underscores fold to hyphens). Decoding accepts a
// superset of what encoding produces; output is always canonical.
func (c *Chain) UnmarshalText(text []byte) error {
	parsed, err := Parse(strings.ReplaceAll(string(text), "_", "-"))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// EncodeRLP writes the chain ID as an RLP unsigned integer. The numeric ID
// alone is the wire representation; names never travel on the wire.
func (c Chain) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, c.chainID())
}

// DecodeRLP reads an RLP unsigned integer and resolves it through FromID.
func (c *Chain) DecodeRLP(s *rlp.Stream) error {
	id, err := s.Uint64()
	if err != nil {
		return err
	}
	*c = FromID(id)
	return nil
}
