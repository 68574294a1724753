// Package coupling provides an immutable-after-build representation of
// physical qubit connectivity: which hardware qubits exist, and which
// pairs are directly coupled.
//
// Overview:
//
//   - Physical qubit identifiers are non-negative integers and may be
//     sparse or non-contiguous (hardware with removed or disabled qubits).
//   - Storage is an adjacency map (set of neighbor IDs per qubit), not a
//     pointer-linked structure, so sparse node sets cost nothing extra.
//   - Edges are undirected and unweighted; shortest-path queries use
//     breadth-first search.
//
// A Graph is built once per hardware configuration and treated as
// read-only thereafter. Because no method mutates the graph after the
// build phase, a single Graph may be shared across concurrent
// transpilation runs without synchronization.
//
// Determinism:
//
//   - Neighbors returns IDs sorted ascending.
//   - ShortestPath explores neighbors in ascending order, yielding a
//     canonical path; WithTieBreak substitutes a seeded permutation so
//     equally short paths are chosen reproducibly per seed.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeQubit: a negative ID was offered to AddQubit or Connect.
//   - ErrQubitNotFound: an operation referenced a qubit not in the graph.
//   - ErrSelfCoupling:  an edge from a qubit to itself was requested.
//   - ErrNoPath:        the two qubits lie in disconnected components.
package coupling
