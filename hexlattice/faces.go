// SPDX-License-Identifier: MIT

package hexlattice

import (
	"fmt"
	"math"
	"sort"

	"github.com/andthum/transfer-Li/simbox"
)

// Check validates that verts form a hexagonal lattice usable by Faces:
// the vertices must lie flat in one plane parallel to xy, and the box
// must be commensurate with the lattice repeat in both in-plane
// directions (a multiple of 3·Side along the flat axis and of √3·Side
// along the other axis, each within Tol of the nearest multiple).
//
// Returns ErrEmpty, ErrSide, ErrTol, ErrAxis, ErrNotFlat or
// ErrNotPeriodic, each wrapped with the offending quantity.
//
// Complexity: O(n) over the vertex count.
func Check(verts []simbox.Vec, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if len(verts) == 0 {
		return ErrEmpty
	}

	wrapped := opts.Box.WrapAll(verts)
	z0 := wrapped[0][simbox.Z]
	for i, v := range wrapped {
		if math.Abs(v[simbox.Z]-z0) > opts.Tol {
			return fmt.Errorf("%w: vertex %d has z = %g, first vertex has z = %g (tol %g)",
				ErrNotFlat, i, v[simbox.Z], z0, opts.Tol)
		}
	}

	flat, cross := opts.Flat.planeIndices()
	lengths := opts.Box.Lengths()
	if !commensurate(lengths[flat], 3*opts.Side, opts.Tol) {
		return fmt.Errorf("%w: box length %g along %s is not a multiple of 3·side = %g (tol %g)",
			ErrNotPeriodic, lengths[flat], opts.Flat, 3*opts.Side, opts.Tol)
	}
	crossRepeat := math.Sqrt(3) * opts.Side
	if !commensurate(lengths[cross], crossRepeat, opts.Tol) {
		return fmt.Errorf("%w: box length %g along %s is not a multiple of √3·side = %g (tol %g)",
			ErrNotPeriodic, lengths[cross], otherAxis(opts.Flat), crossRepeat, opts.Tol)
	}

	return nil
}

// Faces derives the hexagon face centers from the lattice vertices.
//
// Every vertex is wrapped into the primary cell, translated by +Side
// along the flat axis and re-wrapped. A translated position is a face
// center exactly when its flat-axis coordinate does not occur among the
// vertex flat-axis coordinates; both sides of that comparison are
// rounded to ceil(-log10(Tol)) decimals first, so periodic wrap
// artifacts cannot break the coincidence test.
//
// The returned positions carry the rounded coordinates, lie inside the
// primary cell, and are sorted ascending by (x, y, z). Their count is
// exactly len(verts)/2; any other outcome aborts with ErrFaceCount.
//
// Complexity: O(n log n) for the final sort; O(n) otherwise.
func Faces(verts []simbox.Vec, opts Options) ([]simbox.Vec, error) {
	if err := Check(verts, opts); err != nil {
		return nil, err
	}

	flat, _ := opts.Flat.planeIndices()
	decimals := int(math.Ceil(-math.Log10(opts.Tol)))

	wrapped := opts.Box.WrapAll(verts)
	vertexComb := make(map[float64]struct{}, len(wrapped))
	for _, v := range wrapped {
		vertexComb[roundTo(v[flat], decimals)] = struct{}{}
	}

	faces := make([]simbox.Vec, 0, len(wrapped)/2)
	for _, v := range wrapped {
		v[flat] += opts.Side
		f := opts.Box.Wrap(v)
		for i := simbox.X; i <= simbox.Z; i++ {
			f[i] = roundTo(f[i], decimals)
		}
		if _, onVertex := vertexComb[f[flat]]; onVertex {
			continue
		}
		faces = append(faces, f)
	}

	if 2*len(faces) != len(wrapped) {
		return nil, fmt.Errorf("%w: got %d faces from %d vertices",
			ErrFaceCount, len(faces), len(wrapped))
	}

	sort.Slice(faces, func(i, j int) bool {
		a, b := faces[i], faces[j]
		if a[simbox.X] != b[simbox.X] {
			return a[simbox.X] < b[simbox.X]
		}
		if a[simbox.Y] != b[simbox.Y] {
			return a[simbox.Y] < b[simbox.Y]
		}
		return a[simbox.Z] < b[simbox.Z]
	})

	return faces, nil
}

// validateOptions rejects malformed Options before any geometry runs.
func validateOptions(opts Options) error {
	if opts.Side <= 0 || math.IsNaN(opts.Side) {
		return fmt.Errorf("%w: got %g", ErrSide, opts.Side)
	}
	if opts.Tol <= 0 || math.IsNaN(opts.Tol) {
		return fmt.Errorf("%w: got %g", ErrTol, opts.Tol)
	}
	if opts.Flat != AxisX && opts.Flat != AxisY {
		return fmt.Errorf("%w: got %d", ErrAxis, int(opts.Flat))
	}
	return nil
}

// planeIndices maps the flat-axis selector to the coordinate indices
// (flat, other in-plane axis). Callers validate the selector first.
func (a Axis) planeIndices() (flat, cross int) {
	if a == AxisY {
		return simbox.Y, simbox.X
	}
	return simbox.X, simbox.Y
}

// otherAxis returns the in-plane axis orthogonal to a.
func otherAxis(a Axis) Axis {
	if a == AxisY {
		return AxisX
	}
	return AxisY
}

// commensurate reports whether l is an integer multiple of unit within
// tol, measured as the distance to the nearest multiple. Measuring both
// sides matters: a box a hair under a multiple is as commensurate as
// one a hair over.
func commensurate(l, unit, tol float64) bool {
	m := math.Mod(l, unit)
	if m > unit/2 {
		m = unit - m
	}
	return m <= tol
}

// roundTo rounds x to the given number of decimals, half to even.
func roundTo(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*scale) / scale
}
