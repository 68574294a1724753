package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/layout"
	"github.com/katalvlaran/qpath/placer"
	"github.com/katalvlaran/qpath/router"
	"github.com/katalvlaran/qpath/schedule"
	"github.com/katalvlaran/qpath/topology"
	"github.com/katalvlaran/qpath/transpile"
)

func testDurations() schedule.Durations {
	return schedule.Durations{"h": 40, "cz": 80, "swap": 240}
}

func TestContext_AppendOnly(t *testing.T) {
	ctx := transpile.NewContext()
	assert.NotEmpty(t, ctx.RunID)

	a := circuit.MustNew(1)
	b := circuit.MustNew(2)
	ctx.Record("placement", a)
	ctx.Record("routing", b)

	assert.Equal(t, []string{"placement", "routing"}, ctx.Passes())
	assert.Same(t, a, ctx.Snapshot("placement"))
	assert.Same(t, b, ctx.Snapshot("routing"))
	assert.Nil(t, ctx.Snapshot("scheduling"))

	ctx.RecordMetric("swap_count", 3)
	v, ok := ctx.Metric("swap_count")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = ctx.Metric("missing")
	assert.False(t, ok)
}

func TestContext_DistinctRunIDs(t *testing.T) {
	assert.NotEqual(t, transpile.NewContext().RunID, transpile.NewContext().RunID)
}

func TestPipeline_EndToEnd(t *testing.T) {
	// 3-qubit line, end-to-end gate: one SWAP then the gate, scheduled
	// back to back.
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := circuit.MustNew(3)
	require.NoError(t, c.Add(circuit.Two("cz", 0, 2)))

	p := transpile.NewPipeline(
		transpile.WithPlacer(placer.Custom(map[int]int{0: 0, 1: 1, 2: 2})),
		transpile.WithDurations(testDurations()),
	)
	res, err := p.Run(c, line)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SwapCount)
	assert.Equal(t, layout.Layout{1, 0, 2}, res.Final)

	require.Len(t, res.Schedule, 2)
	assert.Equal(t, circuit.Swap(0, 1), res.Schedule[0].Gate)
	assert.Equal(t, 0, res.Schedule[0].Start)
	assert.Equal(t, 240, res.Schedule[0].End)
	assert.Equal(t, circuit.Two("cz", 1, 2), res.Schedule[1].Gate)
	assert.Equal(t, 240, res.Schedule[1].Start)
	assert.Equal(t, 320, res.Schedule[1].End)

	// diagnostics surface
	assert.Equal(t, []string{"custom", "routing", "scheduling"}, res.Context.Passes())
	swaps, ok := res.Context.Metric(transpile.MetricSwapCount)
	assert.True(t, ok)
	assert.Equal(t, 1.0, swaps)
	makespan, ok := res.Context.Metric(transpile.MetricMakespan)
	assert.True(t, ok)
	assert.Equal(t, 320.0, makespan)
	assert.Equal(t, res.Final, res.Context.FinalLayout)
}

func TestPipeline_PlacementSnapshotUsesPhysicalQubits(t *testing.T) {
	// the placement record is the circuit as the layout places it, not
	// the logical input
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := circuit.MustNew(3)
	require.NoError(t, c.Add(circuit.Single("h", 0)))
	require.NoError(t, c.Add(circuit.Two("cz", 0, 1)))

	p := transpile.NewPipeline(
		transpile.WithPlacer(placer.Custom(map[int]int{0: 2, 1: 1, 2: 0})),
		transpile.WithDurations(testDurations()),
	)
	res, err := p.Run(c, line)
	require.NoError(t, err)

	want := circuit.MustNew(3)
	require.NoError(t, want.Add(circuit.Single("h", 2)))
	require.NoError(t, want.Add(circuit.Two("cz", 2, 1)))
	snap := res.Context.Snapshot("custom")
	require.NotNil(t, snap)
	assert.True(t, want.Equal(snap), "placement snapshot %v", snap.Gates())
	assert.NotSame(t, c, snap)
}

func TestPipeline_NoDurations(t *testing.T) {
	line, err := topology.Line(2)
	require.NoError(t, err)

	_, err = transpile.NewPipeline().Run(circuit.MustNew(2), line)
	assert.ErrorIs(t, err, transpile.ErrNilDurations)
}

func TestPipeline_PlacementFailureAborts(t *testing.T) {
	line, err := topology.Line(2)
	require.NoError(t, err)
	c := circuit.MustNew(2)

	p := transpile.NewPipeline(
		transpile.WithPlacer(placer.Custom(map[int]int{0: 0, 1: 0})),
		transpile.WithDurations(testDurations()),
	)
	res, err := p.Run(c, line)
	assert.Nil(t, res, "a failed pass yields no partial result")
	assert.ErrorIs(t, err, layout.ErrDuplicatePhysical)
}

func TestPipeline_RoutingFailurePropagates(t *testing.T) {
	line, err := topology.Line(3)
	require.NoError(t, err)
	c := circuit.MustNew(3)
	require.NoError(t, c.Add(circuit.Two("cz", 0, 2)))

	p := transpile.NewPipeline(
		transpile.WithDurations(testDurations()),
		transpile.WithRouterOptions(router.WithMaxSwapsFactor(0.0)),
	)
	res, err := p.Run(c, line)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, router.ErrSwapBudget)
}

func TestPipeline_SchedulingFailurePropagates(t *testing.T) {
	line, err := topology.Line(2)
	require.NoError(t, err)
	c := circuit.MustNew(2)
	require.NoError(t, c.Add(circuit.Single("mystery", 0)))

	p := transpile.NewPipeline(transpile.WithDurations(testDurations()))
	res, err := p.Run(c, line)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, schedule.ErrUnknownDuration)
}

func TestPipeline_ALAPPolicy(t *testing.T) {
	line, err := topology.Line(2)
	require.NoError(t, err)
	c := circuit.MustNew(2)
	require.NoError(t, c.Add(circuit.Single("h", 0)))
	require.NoError(t, c.Add(circuit.Two("cz", 0, 1)))

	p := transpile.NewPipeline(
		transpile.WithDurations(testDurations()),
		transpile.WithScheduleOptions(schedule.WithPolicy(schedule.ALAP)),
		transpile.WithLogger(zap.NewNop()),
	)
	res, err := p.Run(c, line)
	require.NoError(t, err)
	assert.Equal(t, 120, schedule.Makespan(res.Schedule))
}
