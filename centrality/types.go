package centrality

import (
	"errors"
	"fmt"
)

// Sentinel errors for centrality computation.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrUnknownMeasure is returned for a measure outside the fixed set.
	ErrUnknownMeasure = errors.New("centrality: unknown measure")
)

// Measure names one of the supported centrality algorithms.
// The set is closed: only the constants below are valid.
type Measure string

// Supported measures.
const (
	Degree      Measure = "degree"
	Closeness   Measure = "closeness"
	Betweenness Measure = "betweenness"
	Eigenvector Measure = "eigenvector"
	Spread      Measure = "spread"
)

// Measures lists every supported measure in stable order.
func Measures() []Measure {
	return []Measure{Degree, Closeness, Betweenness, Eigenvector, Spread}
}

// ParseMeasure maps a configuration string onto a Measure.
// Returns ErrUnknownMeasure for anything outside the fixed set.
func ParseMeasure(name string) (Measure, error) {
	switch Measure(name) {
	case Degree, Closeness, Betweenness, Eigenvector, Spread:
		return Measure(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMeasure, name)
	}
}

// String implements fmt.Stringer.
func (m Measure) String() string { return string(m) }
