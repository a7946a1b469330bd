package chains

import "github.com/pkg/errors"

// ErrInvalidChainIdentifier is returned when text matches neither a known
// chain name or alias nor a base-10 chain ID. It is the only failure mode in
// this package; missing metadata is reported with comma-ok returns instead.
var ErrInvalidChainIdentifier = errors.New("invalid chain identifier")
