package transpile

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/coupling"
	"github.com/katalvlaran/qpath/layout"
	"github.com/katalvlaran/qpath/placer"
	"github.com/katalvlaran/qpath/router"
	"github.com/katalvlaran/qpath/schedule"
)

// Metric keys recorded by Pipeline.Run.
const (
	MetricSwapCount = "swap_count"
	MetricMakespan  = "makespan"
)

// ErrNilDurations indicates a pipeline was run without a duration table.
var ErrNilDurations = errors.New("transpile: no duration table configured")

// Pipeline runs placement → routing → scheduling over one circuit.
type Pipeline struct {
	placer     placer.Placer
	routerOpts []router.Option
	durations  schedule.Durations
	schedOpts  []schedule.Option
	log        *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPlacer selects the layout-assignment strategy (default Trivial).
func WithPlacer(p placer.Placer) Option {
	return func(pl *Pipeline) {
		if p != nil {
			pl.placer = p
		}
	}
}

// WithRouterOptions forwards options to the routing pass.
func WithRouterOptions(opts ...router.Option) Option {
	return func(pl *Pipeline) { pl.routerOpts = append(pl.routerOpts, opts...) }
}

// WithDurations supplies the duration table for the timing pass.
func WithDurations(d schedule.Durations) Option {
	return func(pl *Pipeline) { pl.durations = d }
}

// WithScheduleOptions forwards options to the timing pass.
func WithScheduleOptions(opts ...schedule.Option) Option {
	return func(pl *Pipeline) { pl.schedOpts = append(pl.schedOpts, opts...) }
}

// WithLogger attaches a structured logger; the default is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(pl *Pipeline) {
		if l != nil {
			pl.log = l
		}
	}
}

// NewPipeline builds a pipeline with the given options.
func NewPipeline(opts ...Option) *Pipeline {
	pl := &Pipeline{
		placer: placer.Trivial(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(pl)
	}

	return pl
}

// Result is the pipeline's sole output artifact: the scheduled
// operation list for the downstream pulse-generation stage, plus the
// read-only diagnostics.
type Result struct {
	Schedule  []schedule.Op
	Final     layout.Layout
	SwapCount int
	Context   *Context
}

// applyLayout rewrites every gate of c onto the physical qubits the
// layout assigns, producing the placement pass's output snapshot.
// Two-qubit gates may still sit on non-adjacent qubits here; routing
// resolves that.
func applyLayout(c *circuit.Circuit, l layout.Layout, nphys int) (*circuit.Circuit, error) {
	out, err := circuit.NewCircuit(nphys)
	if err != nil {
		return nil, err
	}
	for _, g := range c.Gates() {
		if err := out.Add(g.Remap(l.Physical)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Run transpiles c against g. Passes execute synchronously in order;
// the first failing pass aborts the run with its error and no partial
// result.
func (pl *Pipeline) Run(c *circuit.Circuit, g *coupling.Graph) (*Result, error) {
	if pl.durations == nil {
		return nil, ErrNilDurations
	}
	ctx := NewContext()
	log := pl.log.With(zap.String("run_id", ctx.RunID))

	initial, err := pl.placer.Place(c, g)
	if err != nil {
		return nil, err
	}
	placed, err := applyLayout(c, initial, g.MaxQubit()+1)
	if err != nil {
		return nil, err
	}
	ctx.Record(pl.placer.Name(), placed)
	log.Debug("placement complete",
		zap.String("placer", pl.placer.Name()),
		zap.Ints("layout", []int(initial)))

	opts := append([]router.Option{router.WithInitialLayout(initial)}, pl.routerOpts...)
	routed, err := router.Route(c, g, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Record("routing", routed.Circuit)
	ctx.FinalLayout = routed.Final
	ctx.RecordMetric(MetricSwapCount, float64(routed.SwapCount))
	log.Debug("routing complete",
		zap.Int("swap_count", routed.SwapCount),
		zap.Ints("final_layout", []int(routed.Final)))

	ops, err := schedule.Schedule(routed.Circuit, pl.durations, pl.schedOpts...)
	if err != nil {
		return nil, err
	}
	ctx.Record("scheduling", routed.Circuit)
	makespan := schedule.Makespan(ops)
	ctx.RecordMetric(MetricMakespan, float64(makespan))
	log.Debug("scheduling complete",
		zap.Int("operations", len(ops)),
		zap.Int("makespan", makespan))

	return &Result{
		Schedule:  ops,
		Final:     routed.Final,
		SwapCount: routed.SwapCount,
		Context:   ctx,
	}, nil
}
