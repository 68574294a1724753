// Package transpile wires placement, routing, and scheduling into a
// single synchronous pipeline and records per-pass diagnostics.
//
// A Pipeline run is single-threaded: each pass runs to completion
// before the next begins, the working layout is handed from pass to
// pass with single-writer ownership, and a failed pass yields no
// usable circuit or layout — errors surface immediately and nothing is
// retried here. Retry policy (an alternative initial layout, say)
// belongs to the caller. Independent runs may share one coupling graph
// concurrently since no pass mutates it.
//
// The Context is a passive, append-only record threaded through the
// passes: circuit snapshots keyed by pass name, a metrics map
// (swap_count, makespan), and the final layout. It is the read-only
// diagnostics surface for calling code and test harnesses; no file or
// wire format is defined here.
package transpile
