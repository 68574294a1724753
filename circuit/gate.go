package circuit

import (
	"fmt"
	"strings"
)

// Gate is an immutable gate instance: a kind, a name, and an ordered
// qubit tuple. The zero value is not a valid gate; use the
// constructors.
type Gate struct {
	kind   Kind
	name   string
	qubits [2]int
	arity  int
}

// Single builds a one-qubit gate named name acting on q.
func Single(name string, q int) Gate {
	return Gate{kind: KindSingle, name: strings.ToLower(name), qubits: [2]int{q, -1}, arity: 1}
}

// Two builds a two-qubit gate named name acting on the ordered pair (a, b).
func Two(name string, a, b int) Gate {
	return Gate{kind: KindTwo, name: strings.ToLower(name), qubits: [2]int{a, b}, arity: 2}
}

// Swap builds a SWAP gate on the ordered pair (a, b).
func Swap(a, b int) Gate {
	return Gate{kind: KindSwap, name: SwapName, qubits: [2]int{a, b}, arity: 2}
}

// Barrier builds a zero-duration barrier marker on q.
func Barrier(q int) Gate {
	return Gate{kind: KindBarrier, name: BarrierName, qubits: [2]int{q, -1}, arity: 1}
}

// New builds a gate from a name and its qubit tuple, selecting the kind
// from the arity. "swap" and "barrier" names map to their dedicated
// kinds. Arity 0 or >2 yields ErrUnsupportedGate naming the gate, the
// boundary at which unsupported operations are rejected.
func New(name string, qubits ...int) (Gate, error) {
	if name == "" {
		return Gate{}, ErrEmptyName
	}
	lower := strings.ToLower(name)
	switch len(qubits) {
	case 1:
		if lower == BarrierName {
			return Barrier(qubits[0]), nil
		}
		return Single(lower, qubits[0]), nil
	case 2:
		if qubits[0] == qubits[1] {
			return Gate{}, fmt.Errorf("%w: %q on qubit %d", ErrSelfTarget, lower, qubits[0])
		}
		if lower == SwapName {
			return Swap(qubits[0], qubits[1]), nil
		}
		return Two(lower, qubits[0], qubits[1]), nil
	default:
		return Gate{}, fmt.Errorf("%w: %q acts on %d qubits", ErrUnsupportedGate, lower, len(qubits))
	}
}

// Kind returns the gate's variant.
func (g Gate) Kind() Kind { return g.kind }

// Name returns the gate's lower-case name.
func (g Gate) Name() string { return g.name }

// Arity returns the number of qubits the gate acts on (1 or 2).
func (g Gate) Arity() int { return g.arity }

// Qubits returns the gate's qubit tuple as a fresh slice.
func (g Gate) Qubits() []int {
	out := make([]int, g.arity)
	copy(out, g.qubits[:g.arity])

	return out
}

// OnQubit reports whether the gate acts on q.
func (g Gate) OnQubit(q int) bool {
	for i := 0; i < g.arity; i++ {
		if g.qubits[i] == q {
			return true
		}
	}

	return false
}

// Remap returns a copy of the gate with each qubit index rewritten by
// fn. The receiver is untouched; routing uses this to translate
// logical qubits to physical ones.
func (g Gate) Remap(fn func(int) int) Gate {
	out := g
	for i := 0; i < g.arity; i++ {
		out.qubits[i] = fn(g.qubits[i])
	}

	return out
}

// String renders the gate as "name(q0)" or "name(q0,q1)".
func (g Gate) String() string {
	if g.arity == 1 {
		return fmt.Sprintf("%s(%d)", g.name, g.qubits[0])
	}

	return fmt.Sprintf("%s(%d,%d)", g.name, g.qubits[0], g.qubits[1])
}
