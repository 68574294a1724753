// SPDX-License-Identifier: MIT
// Package: qpath/topology
//
// Package topology provides deterministic constructors for common
// hardware coupling layouts: Line, Ring, Star, and Grid.
//
// Contract (shared by all constructors):
//   - Parameters are validated early (ErrTooFewQubits); no partial graphs.
//   - Qubits are added in ascending ID order; edges are emitted in a
//     stable, documented order, so two calls with equal parameters
//     build identical graphs.
//   - Grid uses row-major IDs: qubit r*cols + c for cell (r, c), with
//     4-neighborhood couplings (right and bottom per cell).
//
// These builders exist for tests, examples, and the CLI; production
// callers with a real device description should build the coupling
// graph from that description instead.
package topology
