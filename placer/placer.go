// Package placer implements the layout-assignment pass.
package placer

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/coupling"
	"github.com/katalvlaran/qpath/layout"
)

// ErrEmptyGraph indicates placement was attempted on a graph with no qubits.
var ErrEmptyGraph = errors.New("placer: coupling graph has no qubits")

// Placer assigns an initial layout for a circuit on a coupling graph.
type Placer interface {
	// Place returns a layout of length c.NQubits() whose targets all
	// exist in g. The returned layout is owned by the caller.
	Place(c *circuit.Circuit, g *coupling.Graph) (layout.Layout, error)

	// Name identifies the pass in TranspilationContext records.
	Name() string
}

// custom validates a fixed user mapping; no search.
type custom struct {
	mapping map[int]int
}

// Custom returns a Placer for an explicit logical→physical mapping.
// Place reports malformed mappings via layout.MappingError: missing or
// extraneous logical keys, duplicated or unknown physical targets,
// each naming the offending qubits.
func Custom(mapping map[int]int) Placer {
	return &custom{mapping: mapping}
}

func (p *custom) Place(c *circuit.Circuit, g *coupling.Graph) (layout.Layout, error) {
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}

	return layout.FromMap(p.mapping, c.NQubits(), g)
}

func (p *custom) Name() string { return "custom" }

// trivial places logical qubit i on the i-th smallest physical ID.
type trivial struct{}

// Trivial returns the default identity-like Placer.
func Trivial() Placer { return trivial{} }

func (trivial) Place(c *circuit.Circuit, g *coupling.Graph) (layout.Layout, error) {
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}

	return layout.Trivial(c.NQubits(), g)
}

func (trivial) Name() string { return "trivial" }

// random places qubits by a seeded shuffle of the physical IDs.
type random struct {
	seed int64
}

// Random returns a Placer whose assignment is fully determined by seed.
func Random(seed int64) Placer { return &random{seed: seed} }

func (p *random) Place(c *circuit.Circuit, g *coupling.Graph) (layout.Layout, error) {
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}
	rng := rand.New(rand.NewSource(p.seed))

	return layout.Shuffled(c.NQubits(), g, rng)
}

func (p *random) Name() string { return "random" }
