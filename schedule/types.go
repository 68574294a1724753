// Package schedule defines scheduling policies, options, sentinel
// errors, and the scheduled-operation type.
package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qpath/circuit"
)

// Sentinel errors for scheduling.
var (
	// ErrNilCircuit is returned if a nil circuit pointer is passed.
	ErrNilCircuit = errors.New("schedule: circuit is nil")

	// ErrUnknownDuration indicates a gate with no duration entry and no
	// structural meaning at scheduling time.
	ErrUnknownDuration = errors.New("schedule: unsupported operation for timing")

	// ErrNegativeDuration indicates a duration table entry below zero.
	ErrNegativeDuration = errors.New("schedule: durations must be non-negative")

	// ErrBadDelay indicates a negative inter-operation delay.
	ErrBadDelay = errors.New("schedule: delay must be non-negative")

	// ErrBadPolicy indicates an unrecognized policy name.
	ErrBadPolicy = errors.New("schedule: unknown scheduling policy")
)

// Policy selects how layered operations are assigned start times.
type Policy int

const (
	// ASAP starts every operation at the earliest conflict-free time.
	ASAP Policy = iota

	// ALAP pushes every operation as late as its successors permit.
	ALAP
)

// String returns the policy's lower-case label.
func (p Policy) String() string {
	if p == ALAP {
		return "alap"
	}

	return "asap"
}

// ParsePolicy maps "asap"/"alap" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "asap":
		return ASAP, nil
	case "alap":
		return ALAP, nil
	default:
		return ASAP, fmt.Errorf("%w: %q", ErrBadPolicy, s)
	}
}

// Op is a gate annotated with its scheduled time window. Start and End
// are in the scheduler's integer time unit; the qubits the operation
// occupies during [Start, End) are the gate's own.
type Op struct {
	Gate  circuit.Gate
	Start int
	End   int
}

// Options configures a scheduling run.
type Options struct {
	// Policy selects ASAP (default) or ALAP timing.
	Policy Policy

	// Delay is the fixed gap inserted before every operation with a
	// predecessor, in scheduler time units. Default 0.
	Delay int

	// internal error recorded during option parsing
	err error
}

// Option configures scheduling via functional arguments.
type Option func(*Options)

// DefaultOptions returns scheduling defaults: ASAP policy, zero delay.
func DefaultOptions() Options {
	return Options{Policy: ASAP}
}

// WithPolicy selects the scheduling policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithDelay sets the fixed delay between dependent operations.
// d must be ≥ 0; negative values surface as ErrBadDelay.
func WithDelay(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadDelay, d)
			return
		}
		o.Delay = d
	}
}
