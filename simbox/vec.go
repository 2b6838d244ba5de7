// SPDX-License-Identifier: MIT

package simbox

import "math"

// Coordinate indices into a Vec.
const (
	X = 0
	Y = 1
	Z = 2
)

// Vec is a 3D position or displacement in Ångström.
type Vec [3]float64

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[X] + w[X], v[Y] + w[Y], v[Z] + w[Z]}
}

// Sub returns v − w (no periodic correction; see Box.MinImage).
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[X] - w[X], v[Y] - w[Y], v[Z] - w[Z]}
}

// Scale returns v scaled by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v[X] * k, v[Y] * k, v[Z] * k}
}

// Dot returns the dot product v·w.
func (v Vec) Dot(w Vec) float64 {
	return v[X]*w[X] + v[Y]*w[Y] + v[Z]*w[Z]
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}
