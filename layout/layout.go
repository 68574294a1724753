package layout

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/qpath/coupling"
)

// FromMap validates a user-supplied logical→physical mapping against
// the circuit size and coupling graph, and returns the resulting
// Layout.
//
// Validation order (first failure wins, each reported as a
// *MappingError naming the offenders):
//  1. keys outside 0..nqubits-1         → ErrExtraLogical
//  2. logical qubits without a key      → ErrMissingLogical
//  3. duplicated physical targets       → ErrDuplicatePhysical
//  4. targets absent from the graph     → ErrUnknownPhysical
//
// Complexity: O(nqubits log nqubits)
func FromMap(m map[int]int, nqubits int, g *coupling.Graph) (Layout, error) {
	if nqubits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadQubitCount, nqubits)
	}
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}

	var extra []int
	for k := range m {
		if k < 0 || k >= nqubits {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Ints(extra)
		return nil, &MappingError{Sentinel: ErrExtraLogical, Qubits: extra}
	}

	var missing []int
	for l := 0; l < nqubits; l++ {
		if _, ok := m[l]; !ok {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return nil, &MappingError{Sentinel: ErrMissingLogical, Qubits: missing}
	}

	seen := make(map[int]bool, nqubits)
	var dup []int
	for l := 0; l < nqubits; l++ {
		p := m[l]
		if seen[p] {
			dup = append(dup, p)
		}
		seen[p] = true
	}
	if len(dup) > 0 {
		sort.Ints(dup)
		return nil, &MappingError{Sentinel: ErrDuplicatePhysical, Qubits: dup}
	}

	var unknown []int
	for l := 0; l < nqubits; l++ {
		if !g.Has(m[l]) {
			unknown = append(unknown, m[l])
		}
	}
	if len(unknown) > 0 {
		sort.Ints(unknown)
		return nil, &MappingError{Sentinel: ErrUnknownPhysical, Qubits: unknown}
	}

	l := make(Layout, nqubits)
	for i := 0; i < nqubits; i++ {
		l[i] = m[i]
	}

	return l, nil
}

// Trivial assigns logical qubit i to the i-th smallest physical ID.
// Returns ErrTooFewPhysical when the graph is smaller than the circuit.
func Trivial(nqubits int, g *coupling.Graph) (Layout, error) {
	if nqubits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadQubitCount, nqubits)
	}
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}
	ids := g.Qubits()
	if len(ids) < nqubits {
		return nil, fmt.Errorf("%w: need %d, graph has %d", ErrTooFewPhysical, nqubits, len(ids))
	}

	return Layout(ids[:nqubits:nqubits]), nil
}

// Shuffled assigns logical qubits to a seeded random injective subset
// of the physical IDs. The permutation is fully determined by rng's
// state, keeping seeded placement reproducible.
func Shuffled(nqubits int, g *coupling.Graph, rng *rand.Rand) (Layout, error) {
	if nqubits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadQubitCount, nqubits)
	}
	if g.QubitCount() == 0 {
		return nil, ErrEmptyGraph
	}
	ids := g.Qubits()
	if len(ids) < nqubits {
		return nil, fmt.Errorf("%w: need %d, graph has %d", ErrTooFewPhysical, nqubits, len(ids))
	}
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	return Layout(ids[:nqubits:nqubits]), nil
}

// Physical returns the physical qubit assigned to logical qubit l.
func (l Layout) Physical(logical int) int { return l[logical] }

// Logical returns the logical qubit occupying physical qubit p, and
// whether any does.
// Complexity: O(nqubits)
func (l Layout) Logical(physical int) (int, bool) {
	for i, p := range l {
		if p == physical {
			return i, true
		}
	}

	return 0, false
}

// SwapPhysical exchanges the logical occupants of physical qubits a
// and b, the layout update corresponding to one inserted SWAP gate.
// A swap with an unoccupied qubit moves the occupant into the empty
// slot — routing paths may pass through physical qubits no logical
// qubit lives on. Swapping two unoccupied qubits is ErrNotInLayout.
func (l Layout) SwapPhysical(a, b int) error {
	la, aok := l.Logical(a)
	lb, bok := l.Logical(b)
	switch {
	case aok && bok:
		l[la], l[lb] = l[lb], l[la]
	case aok:
		l[la] = b
	case bok:
		l[lb] = a
	default:
		return fmt.Errorf("%w: %d and %d", ErrNotInLayout, a, b)
	}

	return nil
}

// Clone returns an independent copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)

	return out
}

// Validate checks the three layout invariants against nqubits and g:
// full coverage, injectivity, and existence of every physical target.
func (l Layout) Validate(nqubits int, g *coupling.Graph) error {
	if len(l) != nqubits {
		return fmt.Errorf("%w: layout has %d entries, circuit has %d qubits", ErrBadQubitCount, len(l), nqubits)
	}
	seen := make(map[int]bool, len(l))
	var dup, unknown []int
	for _, p := range l {
		if seen[p] {
			dup = append(dup, p)
		}
		seen[p] = true
		if !g.Has(p) {
			unknown = append(unknown, p)
		}
	}
	if len(dup) > 0 {
		sort.Ints(dup)
		return &MappingError{Sentinel: ErrDuplicatePhysical, Qubits: dup}
	}
	if len(unknown) > 0 {
		sort.Ints(unknown)
		return &MappingError{Sentinel: ErrUnknownPhysical, Qubits: unknown}
	}

	return nil
}
