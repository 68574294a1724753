// SPDX-License-Identifier: MIT
// Package: qpath/topology
//
// topology.go — Line, Ring, Star, and Grid coupling constructors.
package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qpath/coupling"
)

// ErrTooFewQubits indicates a size parameter below the constructor's minimum.
var ErrTooFewQubits = errors.New("topology: parameter too small")

// Constructor minima.
const (
	minLineQubits = 2
	minRingQubits = 3
	minStarQubits = 2
	minGridDim    = 1
)

// Line builds a 1D chain 0–1–…–(n-1). Requires n ≥ 2.
// Complexity: O(n)
func Line(n int) (*coupling.Graph, error) {
	if n < minLineQubits {
		return nil, fmt.Errorf("Line: n=%d < min=%d: %w", n, minLineQubits, ErrTooFewQubits)
	}
	g := coupling.New()
	for i := 0; i < n; i++ {
		if err := g.AddQubit(i); err != nil {
			return nil, fmt.Errorf("Line: AddQubit(%d): %w", i, err)
		}
	}
	for i := 1; i < n; i++ {
		if err := g.Connect(i-1, i); err != nil {
			return nil, fmt.Errorf("Line: Connect(%d,%d): %w", i-1, i, err)
		}
	}

	return g, nil
}

// Ring builds a cycle 0–1–…–(n-1)–0. Requires n ≥ 3.
// Complexity: O(n)
func Ring(n int) (*coupling.Graph, error) {
	if n < minRingQubits {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingQubits, ErrTooFewQubits)
	}
	g, err := Line(n)
	if err != nil {
		return nil, err
	}
	if err = g.Connect(n-1, 0); err != nil {
		return nil, fmt.Errorf("Ring: Connect(%d,%d): %w", n-1, 0, err)
	}

	return g, nil
}

// Star builds a hub-and-spoke layout: qubit 0 coupled to 1..n-1.
// Requires n ≥ 2.
// Complexity: O(n)
func Star(n int) (*coupling.Graph, error) {
	if n < minStarQubits {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarQubits, ErrTooFewQubits)
	}
	g := coupling.New()
	for i := 0; i < n; i++ {
		if err := g.AddQubit(i); err != nil {
			return nil, fmt.Errorf("Star: AddQubit(%d): %w", i, err)
		}
	}
	for i := 1; i < n; i++ {
		if err := g.Connect(0, i); err != nil {
			return nil, fmt.Errorf("Star: Connect(0,%d): %w", i, err)
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice with 4-neighborhood couplings.
// Qubit IDs are row-major: r*cols + c. Requires rows ≥ 1 and cols ≥ 1.
// Edge emission order: for each cell, right then bottom neighbor.
// Complexity: O(rows × cols)
func Grid(rows, cols int) (*coupling.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewQubits)
	}
	g := coupling.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddQubit(r*cols + c); err != nil {
				return nil, fmt.Errorf("Grid: AddQubit(%d): %w", r*cols+c, err)
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				if err := g.Connect(id, id+1); err != nil {
					return nil, fmt.Errorf("Grid: Connect(%d,%d): %w", id, id+1, err)
				}
			}
			if r+1 < rows {
				if err := g.Connect(id, id+cols); err != nil {
					return nil, fmt.Errorf("Grid: Connect(%d,%d): %w", id, id+cols, err)
				}
			}
		}
	}

	return g, nil
}
