// Package circuit defines the Gate and Circuit types and their
// sentinel errors.
package circuit

import "errors"

// Sentinel errors for circuit construction.
var (
	// ErrBadQubitCount indicates a circuit was declared with fewer than one qubit.
	ErrBadQubitCount = errors.New("circuit: qubit count must be at least 1")

	// ErrUnsupportedGate indicates a gate with qubit arity 0 or >2.
	ErrUnsupportedGate = errors.New("circuit: unsupported gate arity")

	// ErrEmptyName indicates a gate with no name.
	ErrEmptyName = errors.New("circuit: gate name is empty")

	// ErrSelfTarget indicates a two-qubit gate whose qubits coincide.
	ErrSelfTarget = errors.New("circuit: two-qubit gate targets the same qubit twice")

	// ErrQubitRange indicates a gate referencing a qubit outside the circuit.
	ErrQubitRange = errors.New("circuit: gate qubit outside declared range")
)

// Kind is the closed set of gate variants the transpiler understands.
type Kind int

const (
	// KindSingle is a one-qubit operation.
	KindSingle Kind = iota

	// KindTwo is a two-qubit operation.
	KindTwo

	// KindSwap is a SWAP of two qubits; routing inserts these.
	KindSwap

	// KindBarrier is a zero-duration scheduling marker on one qubit.
	KindBarrier
)

// String returns the kind's lower-case label.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindTwo:
		return "two"
	case KindSwap:
		return "swap"
	case KindBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// SwapName is the fixed gate name of routing-inserted SWAPs, used as
// the duration-table key for them.
const SwapName = "swap"

// BarrierName is the fixed gate name of barriers.
const BarrierName = "barrier"
