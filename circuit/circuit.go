package circuit

import "fmt"

// Circuit holds a declared qubit count and an ordered gate sequence.
type Circuit struct {
	nqubits int
	gates   []Gate
}

// NewCircuit creates an empty circuit over n qubits.
// Returns ErrBadQubitCount for n < 1.
func NewCircuit(n int) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadQubitCount, n)
	}

	return &Circuit{nqubits: n}, nil
}

// MustNew is NewCircuit for statically known sizes; it panics on a bad
// count. Intended for tests and examples.
func MustNew(n int) *Circuit {
	c, err := NewCircuit(n)
	if err != nil {
		panic(err)
	}

	return c
}

// NQubits returns the declared qubit count.
func (c *Circuit) NQubits() int { return c.nqubits }

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Add appends a gate, rejecting qubit indices outside 0..NQubits-1
// with ErrQubitRange naming the gate and the offending index.
func (c *Circuit) Add(g Gate) error {
	for _, q := range g.Qubits() {
		if q < 0 || q >= c.nqubits {
			return fmt.Errorf("%w: %s references qubit %d of %d", ErrQubitRange, g, q, c.nqubits)
		}
	}
	c.gates = append(c.gates, g)

	return nil
}

// Gates returns a copy of the gate sequence in circuit order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Gate returns the i-th gate.
func (c *Circuit) Gate(i int) Gate { return c.gates[i] }

// Equal reports whether two circuits have the same qubit count and the
// same gate sequence, gate by gate.
func (c *Circuit) Equal(other *Circuit) bool {
	if other == nil || c.nqubits != other.nqubits || len(c.gates) != len(other.gates) {
		return false
	}
	for i := range c.gates {
		if c.gates[i] != other.gates[i] {
			return false
		}
	}

	return true
}

// Depth returns the number of qubit-disjoint layers: each gate lands in
// layer 1 + max(layer of earlier gates sharing a qubit).
// Complexity: O(G) for G gates.
func (c *Circuit) Depth() int {
	last := make(map[int]int, c.nqubits) // qubit → deepest layer touching it (1-based)
	depth := 0
	for _, g := range c.gates {
		layer := 0
		for _, q := range g.Qubits() {
			if last[q] > layer {
				layer = last[q]
			}
		}
		layer++
		for _, q := range g.Qubits() {
			last[q] = layer
		}
		if layer > depth {
			depth = layer
		}
	}

	return depth
}
