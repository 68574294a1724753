// Package layout represents the bijective assignment of logical qubits
// (dense indices 0..nqubits-1) to physical qubits (sparse IDs drawn
// from a coupling graph's node set).
//
// A Layout is a plain fixed-size int slice: index = logical qubit,
// value = assigned physical qubit. It is owned by exactly one pass at
// a time — created by placement, mutated in place by routing each time
// a SWAP is inserted, then frozen as the final layout. Keeping it a
// value-like slice rather than a shared object is what keeps that
// single-writer hand-off honest.
//
// Invariants (checked by Validate and by FromMap):
//
//  1. every logical qubit 0..nqubits-1 has exactly one assignment;
//  2. the assignment is injective;
//  3. every assigned physical qubit exists in the coupling graph.
//
// FromMap validates user-supplied mappings and reports each failure
// class as a MappingError naming the specific offending qubits, so a
// caller can tell a missing logical key from a duplicated physical
// target without parsing message text.
package layout
