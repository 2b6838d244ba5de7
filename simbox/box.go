// SPDX-License-Identifier: MIT

package simbox

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for box construction.
var (
	// ErrBoxLength indicates a zero or negative box side length.
	ErrBoxLength = errors.New("simbox: box side lengths must be positive")
	// ErrBoxAngle indicates a box angle outside the open interval (0°, 180°).
	ErrBoxAngle = errors.New("simbox: box angles must lie strictly between 0 and 180 degrees")
	// ErrBoxSingular indicates an angle combination that degenerates the cell matrix.
	ErrBoxSingular = errors.New("simbox: box angles produce a degenerate cell")
)

// Box is a periodic unit cell. The zero value is not usable; construct
// with New or NewOrtho. A Box is immutable and safe to copy.
//
// Internally the cell is stored as the upper-triangular cell matrix
//
//	| ax bx cx |
//	|  0 by cy |
//	|  0  0 cz |
//
// whose columns are the cell vectors a, b, c. Orthorhombic cells
// (all angles exactly 90°) take fast per-axis paths in Wrap and
// MinImage; the triclinic paths are correct for any valid cell.
type Box struct {
	dims  [6]float64 // lx, ly, lz, alpha, beta, gamma
	ax    float64
	bx    float64
	by    float64
	cx    float64
	cy    float64
	cz    float64
	ortho bool
}

// New builds a Box from side lengths in Ångström and angles in degrees,
// following the (lx, ly, lz, alpha, beta, gamma) dimension convention:
// alpha is the angle between b and c, beta between a and c, gamma
// between a and b.
//
// Returns ErrBoxLength, ErrBoxAngle or ErrBoxSingular (wrapped with the
// offending value) on invalid input.
func New(lx, ly, lz, alpha, beta, gamma float64) (Box, error) {
	for _, l := range [3]float64{lx, ly, lz} {
		if l <= 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return Box{}, fmt.Errorf("%w: got length %g", ErrBoxLength, l)
		}
	}
	for _, a := range [3]float64{alpha, beta, gamma} {
		if a <= 0 || a >= 180 || math.IsNaN(a) {
			return Box{}, fmt.Errorf("%w: got angle %g", ErrBoxAngle, a)
		}
	}

	b := Box{dims: [6]float64{lx, ly, lz, alpha, beta, gamma}}
	if alpha == 90 && beta == 90 && gamma == 90 {
		b.ax, b.by, b.cz = lx, ly, lz
		b.ortho = true
		return b, nil
	}

	// General triclinic cell matrix (a along x, b in the xy plane).
	cosA := math.Cos(alpha * math.Pi / 180)
	cosB := math.Cos(beta * math.Pi / 180)
	cosG := math.Cos(gamma * math.Pi / 180)
	sinG := math.Sin(gamma * math.Pi / 180)

	b.ax = lx
	b.bx = ly * cosG
	b.by = ly * sinG
	b.cx = lz * cosB
	b.cy = lz * (cosA - cosB*cosG) / sinG
	czSq := lz*lz - b.cx*b.cx - b.cy*b.cy
	if czSq <= 0 {
		return Box{}, fmt.Errorf("%w: alpha=%g beta=%g gamma=%g", ErrBoxSingular, alpha, beta, gamma)
	}
	b.cz = math.Sqrt(czSq)

	return b, nil
}

// NewOrtho builds an orthorhombic Box (all angles 90°).
func NewOrtho(lx, ly, lz float64) (Box, error) {
	return New(lx, ly, lz, 90, 90, 90)
}

// Ortho reports whether the cell is orthorhombic.
func (b Box) Ortho() bool { return b.ortho }

// Lengths returns the three side lengths (lx, ly, lz).
func (b Box) Lengths() Vec { return Vec{b.dims[0], b.dims[1], b.dims[2]} }

// Dimensions returns the six construction scalars
// (lx, ly, lz, alpha, beta, gamma).
func (b Box) Dimensions() [6]float64 { return b.dims }

// CellVectors returns the three cell vectors a, b, c in Ångström.
// For an orthorhombic cell they are the scaled coordinate axes.
func (b Box) CellVectors() (v1, v2, v3 Vec) {
	return Vec{b.ax, 0, 0}, Vec{b.bx, b.by, 0}, Vec{b.cx, b.cy, b.cz}
}

// Wrap translates p into the primary cell [0, L) along every cell
// vector. Wrapping an already-wrapped position is a no-op.
func (b Box) Wrap(p Vec) Vec {
	if b.ortho {
		for i := X; i <= Z; i++ {
			p[i] = wrapLen(p[i], b.dims[i])
		}
		return p
	}

	s := b.toFractional(p)
	for i := X; i <= Z; i++ {
		s[i] = wrapLen(s[i], 1)
	}
	return b.fromFractional(s)
}

// WrapAll returns a fresh slice with every position wrapped into the
// primary cell; the input is left untouched.
func (b Box) WrapAll(ps []Vec) []Vec {
	out := make([]Vec, len(ps))
	for i, p := range ps {
		out[i] = b.Wrap(p)
	}
	return out
}

// MinImage returns the shortest displacement from a to b among all
// periodic images (minimum-image convention).
func (b Box) MinImage(p, q Vec) Vec {
	d := q.Sub(p)
	if b.ortho {
		for i := X; i <= Z; i++ {
			d[i] -= b.dims[i] * math.Round(d[i]/b.dims[i])
		}
		return d
	}
	return b.minImageTriclinic(d)
}

// Distance returns the minimum-image distance between p and q.
func (b Box) Distance(p, q Vec) float64 {
	return b.MinImage(p, q).Norm()
}

// minImageTriclinic recentres d by fractional rounding, then scans the
// 27 neighboring images for the true minimum. The scan order is fixed,
// and a strictly shorter candidate is required to replace the current
// best, so the result is deterministic.
func (b Box) minImageTriclinic(d Vec) Vec {
	s := b.toFractional(d)
	for i := X; i <= Z; i++ {
		s[i] -= math.Round(s[i])
	}
	d = b.fromFractional(s)

	best := d
	bestSq := d.Dot(d)
	for i := -1.0; i <= 1; i++ {
		for j := -1.0; j <= 1; j++ {
			for k := -1.0; k <= 1; k++ {
				cand := Vec{
					d[X] + i*b.ax + j*b.bx + k*b.cx,
					d[Y] + j*b.by + k*b.cy,
					d[Z] + k*b.cz,
				}
				if sq := cand.Dot(cand); sq < bestSq {
					best, bestSq = cand, sq
				}
			}
		}
	}
	return best
}

// toFractional solves h·s = p for the upper-triangular cell matrix h.
func (b Box) toFractional(p Vec) Vec {
	var s Vec
	s[Z] = p[Z] / b.cz
	s[Y] = (p[Y] - b.cy*s[Z]) / b.by
	s[X] = (p[X] - b.bx*s[Y] - b.cx*s[Z]) / b.ax
	return s
}

// fromFractional computes p = h·s.
func (b Box) fromFractional(s Vec) Vec {
	return Vec{
		b.ax*s[X] + b.bx*s[Y] + b.cx*s[Z],
		b.by*s[Y] + b.cy*s[Z],
		b.cz * s[Z],
	}
}

// wrapLen maps x into [0, l) and guards against the float artifact
// where a tiny negative input lands exactly on l after the shift.
func wrapLen(x, l float64) float64 {
	x -= l * math.Floor(x/l)
	if x >= l {
		x -= l
	}
	if x < 0 {
		x += l
	}
	return x
}
