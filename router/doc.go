// Package router makes an arbitrary circuit physically executable on a
// coupling graph by inserting SWAP gates.
//
// Overview:
//
//   - Gates are processed in original circuit order while a working
//     Layout tracks where each logical qubit currently lives.
//   - Single-qubit gates and barriers are re-emitted on their mapped
//     physical qubit; the layout never changes for them.
//   - A two-qubit gate whose mapped qubits are not directly coupled
//     triggers a BFS shortest path between the two physical qubits;
//     one SWAP per surplus edge walks the first qubit next to the
//     second, updating the layout after every SWAP, and then the gate
//     is emitted on the now-adjacent pair.
//   - The strategy is locally greedy: each gate is routed along one
//     minimum-hop path with no global swap minimization.
//
// Swap budget:
//
//	Total inserted SWAPs are capped at floor(MaxSwapsFactor × circuit
//	length). Exceeding the cap fails with ErrSwapBudget — a hard stop,
//	never a silent truncation. A factor of 0.0 means no swaps are
//	permitted at all.
//
// Determinism:
//
//	With no seed, shortest paths follow canonical ascending-ID
//	neighbor order. WithSeed enables seeded tie-breaking among equally
//	short paths; either way a fixed (circuit, graph, initial layout,
//	seed) quadruple reproduces the output circuit, swap count, and
//	final layout bit for bit. No global random state is consulted.
//
// Gate arities other than 1 and 2 cannot reach the router: the circuit
// package rejects them at construction (circuit.ErrUnsupportedGate).
package router
