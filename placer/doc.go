// Package placer establishes the initial logical→physical layout fed
// into routing.
//
// Three strategies are provided:
//
//   - Custom: a user-supplied mapping, validated in full (coverage,
//     injectivity, existence) before any routing happens — no search.
//   - Trivial: logical qubit i on the i-th smallest physical ID.
//   - Random: a seeded random injective assignment, the search-seeded
//     starting point for callers that retry routing with alternative
//     layouts.
//
// Each strategy implements the Placer interface so the pipeline can
// record the pass output under the strategy's name. Placement never
// mutates the circuit; SWAP-induced layout changes during routing
// persist afterwards (there is no post-gate restoration), so the final
// layout differs from the placed one exactly by the accumulated swaps.
package placer
