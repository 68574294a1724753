package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/coupling"
	"github.com/katalvlaran/qpath/layout"
	"github.com/katalvlaran/qpath/placer"
	"github.com/katalvlaran/qpath/router"
	"github.com/katalvlaran/qpath/topology"
)

// buildCircuit assembles a circuit from pre-validated gates.
func buildCircuit(t *testing.T, n int, gates ...circuit.Gate) *circuit.Circuit {
	t.Helper()
	c := circuit.MustNew(n)
	for _, g := range gates {
		require.NoError(t, c.Add(g))
	}

	return c
}

func TestRoute_Errors(t *testing.T) {
	line, err := topology.Line(2)
	require.NoError(t, err)
	c := buildCircuit(t, 2, circuit.Two("cz", 0, 1))

	_, err = router.Route(nil, line)
	assert.ErrorIs(t, err, router.ErrNilCircuit)

	_, err = router.Route(c, nil)
	assert.ErrorIs(t, err, router.ErrNilGraph)

	_, err = router.Route(c, coupling.New())
	assert.ErrorIs(t, err, router.ErrEmptyGraph)

	_, err = router.Route(c, line, router.WithMaxSwapsFactor(-1))
	assert.ErrorIs(t, err, router.ErrBadFactor)

	_, err = router.Route(c, line, router.WithInitialLayout(layout.Layout{0}))
	assert.ErrorIs(t, err, router.ErrLayoutSize)

	_, err = router.Route(c, line, router.WithInitialLayout(layout.Layout{0, 0}))
	assert.ErrorIs(t, err, layout.ErrDuplicatePhysical)
}

func TestRoute_AdjacentCircuitUnchanged(t *testing.T) {
	// every two-qubit gate already adjacent under the trivial layout:
	// routing must insert nothing and only translate.
	line, err := topology.Line(2)
	require.NoError(t, err)
	c := buildCircuit(t, 2,
		circuit.Single("h", 0),
		circuit.Two("cz", 0, 1),
		circuit.Single("x", 1),
	)

	res, err := router.Route(c, line)
	require.NoError(t, err)
	assert.Zero(t, res.SwapCount)
	assert.True(t, c.Equal(res.Circuit), "routed circuit must match the translated original")
	assert.Equal(t, layout.Layout{0, 1}, res.Final)
}

func TestRoute_SingleSwapOnLine(t *testing.T) {
	// 3-qubit line, end-to-end gate: exactly one SWAP, and the final
	// layout differs from the initial one only in the swapped pair.
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 3, circuit.Two("cz", 0, 2))

	res, err := router.Route(c, line)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SwapCount)

	gates := res.Circuit.Gates()
	require.Len(t, gates, 2)
	assert.Equal(t, circuit.Swap(0, 1), gates[0])
	assert.Equal(t, circuit.Two("cz", 1, 2), gates[1])
	assert.Equal(t, layout.Layout{1, 0, 2}, res.Final)
}

func TestRoute_CustomInitialLayout(t *testing.T) {
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 2,
		circuit.Single("h", 0),
		circuit.Two("cz", 0, 1),
	)

	// logical 0 on physical 2, logical 1 on physical 0: one SWAP moves
	// the occupant of 2 into the free middle qubit.
	res, err := router.Route(c, line,
		router.WithInitialLayout(layout.Layout{2, 0}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SwapCount)

	gates := res.Circuit.Gates()
	require.Len(t, gates, 3)
	assert.Equal(t, circuit.Single("h", 2), gates[0])
	assert.Equal(t, circuit.Swap(2, 1), gates[1])
	assert.Equal(t, circuit.Two("cz", 1, 0), gates[2])
	assert.Equal(t, layout.Layout{1, 0}, res.Final)
}

func TestRoute_PadsToPhysicalRange(t *testing.T) {
	line, err := topology.Line(5)
	require.NoError(t, err)
	c := buildCircuit(t, 2, circuit.Two("cz", 0, 1))

	res, err := router.Route(c, line)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Circuit.NQubits(),
		"output must cover the full physical index range")
}

func TestRoute_AllTwoQubitGatesAdjacent(t *testing.T) {
	// routing property on a grid: every two-qubit gate of the output
	// touches coupled qubits, and the final layout stays a bijection.
	grid, err := topology.Grid(3, 3)
	require.NoError(t, err)
	c := buildCircuit(t, 9,
		circuit.Two("cz", 0, 8),
		circuit.Two("cz", 2, 6),
		circuit.Single("h", 4),
		circuit.Two("iswap", 1, 7),
		circuit.Two("cz", 3, 5),
	)

	res, err := router.Route(c, grid)
	require.NoError(t, err)

	for _, g := range res.Circuit.Gates() {
		if g.Arity() != 2 {
			continue
		}
		q := g.Qubits()
		assert.True(t, grid.Adjacent(q[0], q[1]), "gate %s not adjacent", g)
	}
	assert.NoError(t, res.Final.Validate(9, grid))

	// gate conservation: original gates + inserted SWAPs, nothing else
	assert.Equal(t, c.Len()+res.SwapCount, res.Circuit.Len())
}

func TestRoute_SwapBudgetZero(t *testing.T) {
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 3, circuit.Two("cz", 0, 2))

	_, err = router.Route(c, line, router.WithMaxSwapsFactor(0.0))
	assert.ErrorIs(t, err, router.ErrSwapBudget,
		"factor 0.0 must hard-fail, not truncate")
}

func TestRoute_SwapBudgetTight(t *testing.T) {
	// budget of exactly one swap: a single long-range gate fits
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 3, circuit.Two("cz", 0, 2))

	res, err := router.Route(c, line, router.WithMaxSwapsFactor(1.0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SwapCount)
}

func TestRoute_NoPath(t *testing.T) {
	g := coupling.New()
	for _, q := range []int{0, 1, 2, 3} {
		require.NoError(t, g.AddQubit(q))
	}
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(2, 3))
	c := buildCircuit(t, 4, circuit.Two("cz", 0, 2))

	_, err := router.Route(c, g)
	assert.ErrorIs(t, err, coupling.ErrNoPath)
}

func TestRoute_DeterministicForSeed(t *testing.T) {
	// Ring(4) has two equally short paths for an antipodal gate; a
	// fixed seed must reproduce circuit, swap count, and final layout.
	ring, err := topology.Ring(4)
	require.NoError(t, err)
	c := buildCircuit(t, 4,
		circuit.Two("cz", 0, 2),
		circuit.Two("cz", 1, 3),
	)

	const seed = 99
	first, err := router.Route(c, ring, router.WithSeed(seed))
	require.NoError(t, err)
	second, err := router.Route(c, ring, router.WithSeed(seed))
	require.NoError(t, err)

	assert.True(t, first.Circuit.Equal(second.Circuit))
	assert.Equal(t, first.Final, second.Final)
	assert.Equal(t, first.SwapCount, second.SwapCount)
}

func TestRoute_SwapGateInInput(t *testing.T) {
	// user-authored SWAPs are routed like any two-qubit gate
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 3, circuit.Swap(0, 2))

	res, err := router.Route(c, line)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SwapCount, "inserted SWAPs only, not the original")
	assert.Equal(t, c.Len()+1, res.Circuit.Len())
}

func TestRoute_WithPlacer(t *testing.T) {
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 3, circuit.Two("cz", 0, 2))

	res, err := router.Route(c, line,
		router.WithPlacer(placer.Custom(map[int]int{0: 0, 1: 2, 2: 1})))
	require.NoError(t, err)
	assert.Zero(t, res.SwapCount, "placement already makes the gate adjacent")
}

func TestRoute_InputNotMutated(t *testing.T) {
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := buildCircuit(t, 3, circuit.Two("cz", 0, 2))
	initial := layout.Layout{0, 1, 2}

	_, err = router.Route(c, line, router.WithInitialLayout(initial))
	require.NoError(t, err)
	assert.Equal(t, layout.Layout{0, 1, 2}, initial, "supplied layout must not be mutated")
	assert.Equal(t, circuit.Two("cz", 0, 2), c.Gate(0), "input gates must not be mutated")
}
