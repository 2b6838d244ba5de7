// SPDX-License-Identifier: MIT

// Package insertion defines options, result types and sentinel errors
// for the insertion-site selector.
package insertion

import (
	"errors"
	"fmt"

	"github.com/andthum/transfer-Li/simbox"
)

// Sentinel errors for candidate scoring.
var (
	// ErrNoCandidates indicates an empty face-center set.
	ErrNoCandidates = errors.New("insertion: candidate set must be non-empty")
	// ErrThresholds indicates thresholds violating 0 < RMin < RMax.
	ErrThresholds = errors.New("insertion: thresholds must satisfy 0 < rMin < rMax")
	// ErrNoSuitable indicates that no valid insertion site exists for the
	// given thresholds. Both failure variants below wrap it.
	ErrNoSuitable = errors.New("insertion: no suitable insertion site")
	// ErrNoContacts is the ErrNoSuitable variant where no neighbor lies
	// within RMax of any candidate; the corrective action is a larger RMax.
	ErrNoContacts = fmt.Errorf("%w: no neighbors within rMax of any candidate", ErrNoSuitable)
	// ErrAllTooClose is the ErrNoSuitable variant where every candidate has
	// a neighbor within RMin; the corrective action is a smaller RMin.
	ErrAllTooClose = fmt.Errorf("%w: every candidate has a neighbor within rMin", ErrNoSuitable)
)

// Options configures Select.
type Options struct {
	// RMin disqualifies a candidate when any neighbor sits at or below
	// this distance (Ångström).
	RMin float64
	// RMax is the cutoff within which neighbors are counted (Ångström).
	// Must exceed RMin.
	RMax float64
	// ZOffset shifts every face center along the surface normal (the z
	// axis) before scoring, placing candidates off the surface plane.
	ZOffset float64
}

// Site is one suitable candidate, annotated for diagnostic reporting.
type Site struct {
	// Index is the candidate's position in the input face-center set.
	Index int
	// Pos is the shifted candidate position.
	Pos simbox.Vec
	// Neighbors is the number of neighbors within RMax.
	Neighbors int
	// NearestDist is the distance to the nearest neighbor within RMax,
	// +Inf when the candidate has no neighbor inside the cutoff.
	NearestDist float64
	// Best marks the selected site.
	Best bool
}

// Result is the outcome of one Select call, read-only afterwards.
type Result struct {
	// Best is the selected insertion position.
	Best simbox.Vec
	// BestIndex is its index in the input face-center set.
	BestIndex int
	// NeighborCount is the number of neighbors of the best site within RMax.
	NeighborCount int
	// ZPos is the shared normal coordinate of all candidates after the
	// ZOffset shift (the surface is flat, so there is exactly one).
	ZPos float64
	// Suitable lists every suitable candidate ascending by Index, the
	// best one flagged.
	Suitable []Site
}
