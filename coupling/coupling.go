package coupling

import (
	"fmt"
	"sort"
)

// New creates an empty coupling Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		qubits: make(map[int]struct{}),
		adj:    make(map[int]map[int]struct{}),
	}
}

// AddQubit registers the physical qubit id in the graph.
// Adding an existing qubit is a no-op.
// Returns ErrNegativeQubit for id < 0.
// Complexity: O(1)
func (g *Graph) AddQubit(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeQubit, id)
	}
	if _, ok := g.qubits[id]; ok {
		return nil
	}
	g.qubits[id] = struct{}{}
	g.adj[id] = make(map[int]struct{})

	return nil
}

// Connect adds an undirected coupling between qubits a and b.
// Both endpoints must already exist (ErrQubitNotFound); a == b is
// rejected (ErrSelfCoupling). Re-connecting an existing pair is a no-op.
// Complexity: O(1)
func (g *Graph) Connect(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: qubit %d", ErrSelfCoupling, a)
	}
	if _, ok := g.qubits[a]; !ok {
		return fmt.Errorf("%w: %d", ErrQubitNotFound, a)
	}
	if _, ok := g.qubits[b]; !ok {
		return fmt.Errorf("%w: %d", ErrQubitNotFound, b)
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}

	return nil
}

// Has reports whether the physical qubit id exists in the graph.
// Complexity: O(1)
func (g *Graph) Has(id int) bool {
	_, ok := g.qubits[id]
	return ok
}

// Adjacent reports whether qubits a and b are directly coupled.
// Unknown qubits are simply not adjacent to anything.
// Complexity: O(1)
func (g *Graph) Adjacent(a, b int) bool {
	nbrs, ok := g.adj[a]
	if !ok {
		return false
	}
	_, ok = nbrs[b]

	return ok
}

// Neighbors returns the IDs directly coupled to id, sorted ascending.
// Returns ErrQubitNotFound for an unknown qubit.
// Complexity: O(d log d) for degree d
func (g *Graph) Neighbors(id int) ([]int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrQubitNotFound, id)
	}
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)

	return out, nil
}

// Qubits returns all physical qubit IDs, sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Qubits() []int {
	out := make([]int, 0, len(g.qubits))
	for q := range g.qubits {
		out = append(out, q)
	}
	sort.Ints(out)

	return out
}

// QubitCount returns the number of physical qubits in the graph.
func (g *Graph) QubitCount() int {
	return len(g.qubits)
}

// EdgeCount returns the number of undirected couplings.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	// every undirected edge is stored twice
	return total / 2
}

// MaxQubit returns the highest physical qubit ID present, or -1 for an
// empty graph. Downstream consumers use MaxQubit()+1 as the padded
// physical register size.
// Complexity: O(V)
func (g *Graph) MaxQubit() int {
	max := -1
	for q := range g.qubits {
		if q > max {
			max = q
		}
	}

	return max
}
