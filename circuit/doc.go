// Package circuit models gate-level quantum circuits as consumed by
// the placement, routing, and scheduling passes.
//
// A Gate is an immutable value of a closed kind set: single-qubit,
// two-qubit, SWAP, or barrier. Gates carry an ordered qubit tuple and
// a lower-case name used for duration lookups downstream. Any gate
// with qubit arity other than 1 or 2 is rejected at construction with
// ErrUnsupportedGate, so the passes never see one; routing and
// scheduling switch exhaustively over Kind rather than inspecting
// runtime types.
//
// A Circuit is a declared qubit count plus an ordered gate list. The
// qubit indices a gate references are logical before routing and
// physical after; the container itself does not distinguish the two.
// Gates are never mutated once added — routing emits new Gate values.
package circuit
