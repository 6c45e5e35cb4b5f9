package vaccine

import (
	"errors"
	"fmt"
)

// Sentinel errors for vaccination selection.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("vaccine: graph is nil")

	// ErrBadCount is returned when k is negative or exceeds |V|.
	ErrBadCount = errors.New("vaccine: selection count out of range")

	// ErrUnknownStrategy is returned for a strategy outside the fixed set.
	ErrUnknownStrategy = errors.New("vaccine: unknown strategy")
)

// Strategy names one of the supported selection strategies.
type Strategy string

// Supported strategies.
const (
	// Batch ranks once on the full graph and takes the top k.
	Batch Strategy = "batch"

	// Recursive removes one vertex at a time, recomputing centrality on
	// the reduced graph after every removal.
	Recursive Strategy = "recursive"
)

// ParseStrategy maps a configuration string onto a Strategy.
// Returns ErrUnknownStrategy for anything outside the fixed set.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case Batch, Recursive:
		return Strategy(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return string(s) }
