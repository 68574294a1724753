// Package schedule converts a physically valid, unscheduled circuit
// into a list of operations with integer start/end timestamps.
//
// The gate sequence is first partitioned into ordered layers: all
// gates in a layer touch disjoint qubits, and a gate in layer k
// depends only on earlier-layer gates sharing a qubit with it. Each
// gate's layer is one past the deepest prior layer touching any of its
// qubits, so layering is O(G) over the gate list.
//
// Two policies assign times to the layered gates:
//
//   - ASAP ("as soon as possible", the default): an operation starts at
//     the maximum of its qubits' last end times and the previous
//     layer's maximum end time, plus the configured inter-operation
//     delay; it ends start + duration.
//   - ALAP ("as late as possible"): the same layers are walked back to
//     front from the ASAP makespan, each operation ending at the
//     minimum of its qubits' next start times and the following
//     layer's earliest start, minus the delay; it starts end -
//     duration. Each operation lands as late as its successors permit,
//     and the ALAP finish time equals the ASAP finish time for the
//     same circuit.
//
// Durations come from an external table keyed by gate name. Barriers
// are structural: they take zero time without a table entry but still
// update qubit occupancy. Any other gate missing from the table is a
// fatal ErrUnknownDuration.
package schedule
