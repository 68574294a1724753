// Package layout defines the Layout type, its sentinel errors, and the
// structured MappingError used for custom-mapping validation failures.
package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout operations.
var (
	// ErrEmptyGraph indicates the coupling graph has no qubits.
	ErrEmptyGraph = errors.New("layout: coupling graph has no qubits")

	// ErrBadQubitCount indicates nqubits < 1.
	ErrBadQubitCount = errors.New("layout: qubit count must be at least 1")

	// ErrTooFewPhysical indicates the graph has fewer qubits than the circuit needs.
	ErrTooFewPhysical = errors.New("layout: not enough physical qubits")

	// ErrMissingLogical indicates a custom mapping omits logical qubits.
	ErrMissingLogical = errors.New("layout: mapping is missing logical qubits")

	// ErrExtraLogical indicates a custom mapping has keys outside 0..nqubits-1.
	ErrExtraLogical = errors.New("layout: mapping has extraneous logical keys")

	// ErrDuplicatePhysical indicates two logical qubits share a physical target.
	ErrDuplicatePhysical = errors.New("layout: duplicated physical targets")

	// ErrUnknownPhysical indicates a physical target absent from the coupling graph.
	ErrUnknownPhysical = errors.New("layout: physical targets not in coupling graph")

	// ErrNotInLayout indicates SwapPhysical was given two qubits neither
	// of which any logical qubit occupies.
	ErrNotInLayout = errors.New("layout: physical qubits not assigned to any logical qubit")
)

// Layout maps logical qubit index → physical qubit ID.
type Layout []int

// MappingError reports one validation failure class of a custom
// logical→physical mapping, carrying the offending qubit indices
// sorted ascending. It wraps the matching sentinel, so callers can
// branch with errors.Is and still read Qubits programmatically.
type MappingError struct {
	// Sentinel is one of ErrMissingLogical, ErrExtraLogical,
	// ErrDuplicatePhysical, ErrUnknownPhysical.
	Sentinel error

	// Qubits are the offending indices: logical for the first two
	// classes, physical for the last two.
	Qubits []int
}

// Error renders the sentinel text with the offending indices.
func (e *MappingError) Error() string {
	return fmt.Sprintf("%v: %v", e.Sentinel, e.Qubits)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *MappingError) Unwrap() error { return e.Sentinel }
