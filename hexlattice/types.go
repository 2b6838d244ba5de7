// SPDX-License-Identifier: MIT

// Package hexlattice defines options and sentinel errors for the
// face-center resolver.
package hexlattice

import (
	"errors"

	"github.com/andthum/transfer-Li/simbox"
)

// Sentinel errors for lattice validation and face derivation.
var (
	// ErrEmpty indicates an empty vertex set.
	ErrEmpty = errors.New("hexlattice: vertex set must be non-empty")
	// ErrSide indicates a non-positive hexagon side length.
	ErrSide = errors.New("hexlattice: side length must be positive")
	// ErrTol indicates a non-positive tolerance.
	ErrTol = errors.New("hexlattice: tolerance must be positive")
	// ErrAxis indicates a flat-axis selector other than AxisX or AxisY.
	ErrAxis = errors.New("hexlattice: flat axis must be AxisX or AxisY")
	// ErrNotFlat indicates vertices that do not lie in one plane parallel to xy.
	ErrNotFlat = errors.New("hexlattice: lattice must lie flat in the xy plane")
	// ErrNotPeriodic indicates a box that the lattice cannot tile periodically.
	ErrNotPeriodic = errors.New("hexlattice: lattice does not continue across the periodic boundary")
	// ErrFaceCount indicates a derived face count other than half the vertex
	// count. This is an internal-consistency violation, never a soft warning.
	ErrFaceCount = errors.New("hexlattice: face count is not half the vertex count")
)

// Axis selects the in-plane box axis that the hexagon edges are
// parallel to.
type Axis int

const (
	// AxisX aligns the hexagon edges with the box x axis.
	AxisX Axis = iota
	// AxisY aligns the hexagon edges with the box y axis.
	AxisY
)

// String returns "x" or "y" for the two valid selectors.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "invalid"
}

// Options configures lattice validation and face derivation.
type Options struct {
	// Side is the hexagon side length r0 in Ångström. The lattice
	// constant relates to it by a = √3·r0.
	Side float64
	// Flat is the box axis parallel to the hexagon edges.
	Flat Axis
	// Box is the periodic cell the lattice tiles.
	Box simbox.Box
	// Tol is the absolute tolerance for every float comparison: plane
	// flatness, box divisibility, and the rounding precision of the
	// coincidence test (decimals = ceil(-log10(Tol))).
	Tol float64
}

// DefaultOptions returns Options for a lattice with the given side
// length inside box: Flat = AxisX, Tol = 1e-3.
func DefaultOptions(side float64, box simbox.Box) Options {
	return Options{
		Side: side,
		Flat: AxisX,
		Box:  box,
		Tol:  1e-3,
	}
}
