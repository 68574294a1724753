package router

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/coupling"
	"github.com/katalvlaran/qpath/layout"
)

// Route rewrites c so every two-qubit gate acts on qubits directly
// coupled in g, inserting SWAP gates as needed.
//
// Preconditions and validation (in order):
//  1. c must be non-nil (ErrNilCircuit).
//  2. g must be non-nil (ErrNilGraph) and have ≥1 qubit (ErrEmptyGraph).
//  3. Options must parse (ErrBadFactor).
//  4. A supplied initial layout must have length c.NQubits()
//     (ErrLayoutSize) and satisfy the layout invariants against g.
//
// Failure modes during the walk:
//   - coupling.ErrNoPath when a two-qubit gate's physical qubits lie in
//     disconnected components;
//   - ErrSwapBudget when the running swap count exceeds
//     floor(MaxSwapsFactor × c.Len()).
//
// On success the Result holds the rewritten circuit, the final layout,
// and the swap count. The input circuit and any supplied layout are
// never mutated.
//
// Complexity: O(G × (V + E)) worst case for G gates — one BFS per
// non-adjacent two-qubit gate.
func Route(c *circuit.Circuit, g *coupling.Graph, opts ...Option) (*Result, error) {
	// 1) Validate inputs.
	if c == nil {
		return nil, ErrNilCircuit
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}

	// 2) Build and validate options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Establish the working layout.
	var working layout.Layout
	if o.Initial != nil {
		if len(o.Initial) != c.NQubits() {
			return nil, fmt.Errorf("%w: layout has %d entries, circuit has %d qubits",
				ErrLayoutSize, len(o.Initial), c.NQubits())
		}
		if err := o.Initial.Validate(c.NQubits(), g); err != nil {
			return nil, err
		}
		working = o.Initial.Clone()
	} else {
		placed, err := o.Placer.Place(c, g)
		if err != nil {
			return nil, err
		}
		working = placed
	}

	// 4) Prepare tie-breaking and the swap budget.
	var pathOpts []coupling.PathOption
	if o.UseSeed {
		rng := rand.New(rand.NewSource(o.Seed))
		pathOpts = append(pathOpts, coupling.WithTieBreak(rng))
	}
	budget := int(math.Floor(o.MaxSwapsFactor * float64(c.Len())))

	// 5) Output circuit padded to the full physical index range so
	// downstream consumers see a consistent qubit count.
	out, err := circuit.NewCircuit(g.MaxQubit() + 1)
	if err != nil {
		return nil, err
	}

	w := &walker{graph: g, layout: working, out: out, budget: budget, pathOpts: pathOpts}
	for _, gate := range c.Gates() {
		if err = w.route(gate); err != nil {
			return nil, err
		}
	}

	return &Result{Circuit: out, Final: w.layout, SwapCount: w.swaps}, nil
}

// walker carries the mutable routing state through the gate walk.
type walker struct {
	graph    *coupling.Graph
	layout   layout.Layout
	out      *circuit.Circuit
	budget   int
	swaps    int
	pathOpts []coupling.PathOption
}

// route emits one input gate, preceded by any SWAPs it needs.
func (w *walker) route(gate circuit.Gate) error {
	switch gate.Kind() {
	case circuit.KindSingle, circuit.KindBarrier:
		// Translation only; the layout is untouched.
		return w.out.Add(gate.Remap(w.layout.Physical))

	case circuit.KindTwo, circuit.KindSwap:
		q := gate.Qubits()
		a, b := w.layout.Physical(q[0]), w.layout.Physical(q[1])
		if !w.graph.Adjacent(a, b) {
			if err := w.bringAdjacent(a, b); err != nil {
				return err
			}
		}

		return w.out.Add(gate.Remap(w.layout.Physical))

	default:
		// circuit.New makes this unreachable; keep the exhaustive switch honest.
		return fmt.Errorf("%w: kind %v", circuit.ErrUnsupportedGate, gate.Kind())
	}
}

// bringAdjacent inserts one SWAP per surplus edge of a shortest path
// from a to b, walking the occupant of a next to b. The layout is
// updated after every inserted SWAP.
func (w *walker) bringAdjacent(a, b int) error {
	path, err := w.graph.ShortestPath(a, b, w.pathOpts...)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	// A path a=p0,p1,...,pk=b needs k-1 SWAPs: after swapping along
	// p0..p(k-1), the occupant of a sits adjacent to b.
	for i := 0; i+2 < len(path); i++ {
		w.swaps++
		if w.swaps > w.budget {
			return fmt.Errorf("%w: %d swaps over budget %d", ErrSwapBudget, w.swaps, w.budget)
		}
		if err = w.out.Add(circuit.Swap(path[i], path[i+1])); err != nil {
			return err
		}
		if err = w.layout.SwapPhysical(path[i], path[i+1]); err != nil {
			return err
		}
	}

	return nil
}
