// Package coupling defines the Graph type, sentinel errors, and
// shortest-path options for physical qubit connectivity.
package coupling

import (
	"errors"
	"math/rand"
)

// Sentinel errors for coupling graph operations.
var (
	// ErrNegativeQubit indicates a negative physical qubit ID was supplied.
	ErrNegativeQubit = errors.New("coupling: physical qubit ID must be non-negative")

	// ErrQubitNotFound indicates an operation referenced a qubit absent from the graph.
	ErrQubitNotFound = errors.New("coupling: physical qubit not found")

	// ErrSelfCoupling indicates an edge from a qubit to itself was requested.
	ErrSelfCoupling = errors.New("coupling: self-coupling not allowed")

	// ErrNoPath indicates the requested qubits lie in disconnected components.
	ErrNoPath = errors.New("coupling: no path between physical qubits")
)

// Graph is the physical qubit connectivity map.
//
// qubits holds the node set; adj[q] holds the set of qubits directly
// coupled to q. Both are populated during construction and never
// mutated by query methods.
type Graph struct {
	qubits map[int]struct{}
	adj    map[int]map[int]struct{}
}

// PathOptions holds parameters for ShortestPath.
type PathOptions struct {
	// TieBreak, if non-nil, permutes same-depth neighbor exploration
	// order so that equally short paths are chosen reproducibly for a
	// fixed seed. Nil means canonical ascending-ID order.
	TieBreak *rand.Rand
}

// PathOption configures ShortestPath via functional arguments.
type PathOption func(*PathOptions)

// WithTieBreak selects among equally short paths using rng.
// The caller owns rng; pass a generator built from an explicit seed
// (rand.New(rand.NewSource(seed))) to keep routing reproducible.
func WithTieBreak(rng *rand.Rand) PathOption {
	return func(o *PathOptions) {
		if rng != nil {
			o.TieBreak = rng
		}
	}
}
