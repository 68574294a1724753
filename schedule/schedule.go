package schedule

import "github.com/katalvlaran/qpath/circuit"

// Schedule assigns start/end timestamps to every gate of c using the
// duration table d and the configured policy.
//
// The returned operations are in original circuit order regardless of
// policy, and for every qubit the intervals of operations touching it
// are non-overlapping and ordered consistently with that order.
//
// Errors: ErrNilCircuit, ErrBadDelay, ErrUnknownDuration (a
// non-structural gate missing from d), ErrNegativeDuration.
//
// Complexity: O(G) time for G gates beyond the duration lookups.
func Schedule(c *circuit.Circuit, d Durations, opts ...Option) ([]Op, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	gates := c.Gates()
	if o.Policy == ALAP {
		return alap(gates, d, o.Delay)
	}

	return asap(gates, d, o.Delay)
}

// assignLayers groups gate indices into qubit-disjoint layers: a gate
// lands one past the deepest prior layer touching any of its qubits.
// Gate order within a layer follows circuit order.
func assignLayers(gates []circuit.Gate) [][]int {
	depth := make(map[int]int) // qubit → next free layer
	var layers [][]int
	for i, g := range gates {
		layer := 0
		for _, q := range g.Qubits() {
			if depth[q] > layer {
				layer = depth[q]
			}
		}
		for _, q := range g.Qubits() {
			depth[q] = layer + 1
		}
		if layer == len(layers) {
			layers = append(layers, nil)
		}
		layers[layer] = append(layers[layer], i)
	}

	return layers
}

// asap schedules layer by layer: each operation starts at the maximum
// of its qubits' last end times and the previous layer's maximum end
// time, plus the inter-operation delay; zero-duration operations end
// at their start but still claim their qubits.
func asap(gates []circuit.Gate, d Durations, delay int) ([]Op, error) {
	ops := make([]Op, len(gates))
	lastEnd := make(map[int]int)
	prevLayerMax := 0

	for k, idxs := range assignLayers(gates) {
		layerMax := prevLayerMax
		for _, i := range idxs {
			g := gates[i]
			dur, err := d.Of(g)
			if err != nil {
				return nil, err
			}
			start := prevLayerMax
			for _, q := range g.Qubits() {
				if lastEnd[q] > start {
					start = lastEnd[q]
				}
			}
			if k > 0 {
				// the fixed gap applies between an operation and its predecessors
				start += delay
			}
			end := start + dur
			ops[i] = Op{Gate: g, Start: start, End: end}
			for _, q := range g.Qubits() {
				lastEnd[q] = end
			}
			if end > layerMax {
				layerMax = end
			}
		}
		prevLayerMax = layerMax
	}

	return ops, nil
}

// alap mirrors the ASAP recurrence over the same forward layer
// decomposition: layers are walked back to front from the forward ASAP
// makespan, each operation ending at the minimum of its qubits' next
// start times and the following layer's earliest start, minus the
// inter-operation delay. Every operation lands no earlier than its
// ASAP slot, so per-qubit intervals stay disjoint and ordered with the
// circuit, and the finish time equals the ASAP makespan — never
// earlier.
func alap(gates []circuit.Gate, d Durations, delay int) ([]Op, error) {
	forward, err := asap(gates, d, delay)
	if err != nil {
		return nil, err
	}
	horizon := Makespan(forward)

	layers := assignLayers(gates)
	ops := make([]Op, len(gates))
	nextStart := make(map[int]int)
	nextLayerMin := horizon

	for k := len(layers) - 1; k >= 0; k-- {
		layerMin := nextLayerMin
		for _, i := range layers[k] {
			g := gates[i]
			dur, err := d.Of(g)
			if err != nil {
				return nil, err
			}
			end := nextLayerMin
			for _, q := range g.Qubits() {
				if ns, ok := nextStart[q]; ok && ns < end {
					end = ns
				}
			}
			if k < len(layers)-1 {
				// mirror of the ASAP delay: the gap sits between an
				// operation and its successors
				end -= delay
			}
			start := end - dur
			ops[i] = Op{Gate: g, Start: start, End: end}
			for _, q := range g.Qubits() {
				nextStart[q] = start
			}
			if start < layerMin {
				layerMin = start
			}
		}
		nextLayerMin = layerMin
	}

	return ops, nil
}

// Makespan returns the latest end time across ops, or 0 for an empty
// schedule.
func Makespan(ops []Op) int {
	max := 0
	for _, op := range ops {
		if op.End > max {
			max = op.End
		}
	}

	return max
}
