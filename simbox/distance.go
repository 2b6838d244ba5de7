// SPDX-License-Identifier: MIT

package simbox

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix fills dst with the minimum-image distances between
// every position in a (rows) and every position in b (columns), so that
// dst.At(i, j) == box.Distance(a[i], b[j]).
//
// If dst is nil a new |a|×|b| matrix is allocated; otherwise dst must
// already have that shape (mat.ErrShape panic, matching gonum
// conventions). Both position sets must be non-empty; gonum panics with
// mat.ErrZeroLength on empty input, so callers guard the empty case.
//
// This is the one performance-sensitive operation of the module: the
// matrix is written in a single row-major pass over the dense backing
// array, with a branch-free per-axis fast path for orthorhombic cells.
//
// Complexity: O(|a|·|b|) time, O(|a|·|b|) memory for the result.
func DistanceMatrix(dst *mat.Dense, a, b []Vec, box Box) *mat.Dense {
	if dst == nil {
		dst = mat.NewDense(len(a), len(b), nil)
	} else if r, c := dst.Dims(); r != len(a) || c != len(b) {
		panic(mat.ErrShape)
	}

	raw := dst.RawMatrix()
	if box.ortho {
		lx, ly, lz := box.dims[0], box.dims[1], box.dims[2]
		for i := range a {
			row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
			for j := range b {
				dx := b[j][X] - a[i][X]
				dy := b[j][Y] - a[i][Y]
				dz := b[j][Z] - a[i][Z]
				dx -= lx * math.Round(dx/lx)
				dy -= ly * math.Round(dy/ly)
				dz -= lz * math.Round(dz/lz)
				row[j] = math.Sqrt(dx*dx + dy*dy + dz*dz)
			}
		}
		return dst
	}

	for i := range a {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j := range b {
			row[j] = box.minImageTriclinic(b[j].Sub(a[i])).Norm()
		}
	}
	return dst
}
