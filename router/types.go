// Package router defines routing options, sentinel errors, and the
// Result type.
package router

import (
	"errors"

	"github.com/katalvlaran/qpath/circuit"
	"github.com/katalvlaran/qpath/layout"
	"github.com/katalvlaran/qpath/placer"
)

// DefaultMaxSwapsFactor caps inserted SWAPs at five per circuit gate
// unless the caller overrides it.
const DefaultMaxSwapsFactor = 5.0

// Sentinel errors for routing.
var (
	// ErrNilCircuit is returned if a nil circuit pointer is passed.
	ErrNilCircuit = errors.New("router: circuit is nil")

	// ErrNilGraph is returned if a nil coupling graph pointer is passed.
	ErrNilGraph = errors.New("router: coupling graph is nil")

	// ErrEmptyGraph indicates the coupling graph has no qubits.
	ErrEmptyGraph = errors.New("router: coupling graph has no qubits")

	// ErrLayoutSize indicates the supplied initial layout length does not
	// match the circuit's qubit count.
	ErrLayoutSize = errors.New("router: initial layout length mismatch")

	// ErrBadFactor indicates a negative swap budget factor.
	ErrBadFactor = errors.New("router: max swaps factor must be non-negative")

	// ErrSwapBudget indicates routing needed more SWAPs than the budget allows.
	ErrSwapBudget = errors.New("router: swap budget exceeded")
)

// Options configures a routing run.
type Options struct {
	// Initial, if non-nil, is the starting layout; its length must equal
	// the circuit's qubit count. Nil means Placer assigns one.
	Initial layout.Layout

	// Placer assigns the starting layout when Initial is nil.
	// Defaults to placer.Trivial().
	Placer placer.Placer

	// Seed drives tie-breaking among equally short paths when UseSeed
	// is set; otherwise paths follow canonical ascending-ID order.
	Seed    int64
	UseSeed bool

	// MaxSwapsFactor scales the swap budget: floor(factor × circuit
	// length) total SWAPs. 0.0 forbids swaps entirely.
	MaxSwapsFactor float64

	// internal error recorded during option parsing
	err error
}

// Option configures routing via functional arguments.
type Option func(*Options)

// DefaultOptions returns routing defaults: trivial placement, no
// seeded tie-breaking, DefaultMaxSwapsFactor.
func DefaultOptions() Options {
	return Options{
		Placer:         placer.Trivial(),
		MaxSwapsFactor: DefaultMaxSwapsFactor,
	}
}

// WithInitialLayout supplies a fixed starting layout. The router takes
// a private copy, so the caller's slice is not mutated.
func WithInitialLayout(l layout.Layout) Option {
	return func(o *Options) {
		if l != nil {
			o.Initial = l.Clone()
		}
	}
}

// WithPlacer selects the placement strategy used when no initial
// layout is supplied.
func WithPlacer(p placer.Placer) Option {
	return func(o *Options) {
		if p != nil {
			o.Placer = p
		}
	}
}

// WithSeed enables seeded tie-breaking among equally short paths.
// Routing stays reproducible for a fixed seed value.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.UseSeed = true
	}
}

// WithMaxSwapsFactor overrides the swap budget factor.
// factor must be ≥ 0; 0.0 means no swaps permitted.
func WithMaxSwapsFactor(factor float64) Option {
	return func(o *Options) {
		if factor < 0 {
			o.err = ErrBadFactor
			return
		}
		o.MaxSwapsFactor = factor
	}
}

// Result carries the routed circuit, the final layout, and the number
// of SWAPs inserted.
type Result struct {
	// Circuit is the physically valid circuit: original gates
	// re-expressed on physical qubits, interleaved with inserted SWAPs,
	// sized to the full physical register (MaxQubit+1).
	Circuit *circuit.Circuit

	// Final is the layout after all SWAP updates.
	Final layout.Layout

	// SwapCount is the number of inserted SWAP gates.
	SwapCount int
}
