// SPDX-License-Identifier: MIT

package insertion

import (
	"fmt"
	"math"

	"github.com/andthum/transfer-Li/simbox"

	"gonum.org/v1/gonum/mat"
)

// Select ranks the face centers as insertion sites against the neighbor
// positions and returns the best site plus the full suitable-candidate
// list. Distances respect box under the minimum-image convention.
//
// The ranking follows a strict order:
//
//  1. Shift every face center by opts.ZOffset along z.
//  2. Compute the candidate×neighbor minimum-image distance matrix in
//     one batched pass.
//  3. Fail with ErrNoContacts when no pair is within RMax.
//  4. Disqualify candidates with any neighbor within RMin; fail with
//     ErrAllTooClose when none survive.
//  5. The suitable set holds the non-disqualified candidates whose
//     neighbor count equals the minimum over all non-disqualified
//     candidates; fail with ErrNoSuitable if it comes out empty.
//  6. The suitable candidate with the largest nearest-neighbor distance
//     wins; an exact tie keeps the earlier candidate.
//
// A suitable candidate with no neighbor inside RMax at all gets
// NearestDist = +Inf, which makes it win over any contacted candidate.
//
// Complexity: O(|faces|·|neighbors|) time and memory.
func Select(faces, neighbors []simbox.Vec, box simbox.Box, opts Options) (Result, error) {
	if len(faces) == 0 {
		return Result{}, ErrNoCandidates
	}
	if opts.RMin <= 0 || opts.RMax <= opts.RMin {
		return Result{}, fmt.Errorf("%w: rMin = %g, rMax = %g", ErrThresholds, opts.RMin, opts.RMax)
	}

	cands := make([]simbox.Vec, len(faces))
	for i, f := range faces {
		f[simbox.Z] += opts.ZOffset
		cands[i] = f
	}
	zPos := cands[0][simbox.Z]

	if len(neighbors) == 0 {
		return Result{}, fmt.Errorf("%w (rMax = %g)", ErrNoContacts, opts.RMax)
	}

	dists := simbox.DistanceMatrix(nil, cands, neighbors, box)

	counts, tooClose, nearest := contactScan(dists, opts)

	anyContact := false
	for _, c := range counts {
		if c > 0 {
			anyContact = true
			break
		}
	}
	if !anyContact {
		return Result{}, fmt.Errorf("%w (rMax = %g)", ErrNoContacts, opts.RMax)
	}

	minCount := math.MaxInt
	for i, c := range counts {
		if !tooClose[i] && c < minCount {
			minCount = c
		}
	}
	if minCount == math.MaxInt {
		return Result{}, fmt.Errorf("%w (rMin = %g)", ErrAllTooClose, opts.RMin)
	}

	suitable := make([]Site, 0, len(cands))
	for i, c := range counts {
		if tooClose[i] || c != minCount {
			continue
		}
		suitable = append(suitable, Site{
			Index:       i,
			Pos:         cands[i],
			Neighbors:   c,
			NearestDist: nearest[i],
		})
	}
	if len(suitable) == 0 {
		// Unreachable by construction of minCount; checked anyway so a
		// logic defect aborts loudly instead of selecting garbage.
		return Result{}, fmt.Errorf("%w: suitable set is empty", ErrNoSuitable)
	}

	best := 0
	for i := 1; i < len(suitable); i++ {
		if suitable[i].NearestDist > suitable[best].NearestDist {
			best = i
		}
	}
	suitable[best].Best = true

	return Result{
		Best:          suitable[best].Pos,
		BestIndex:     suitable[best].Index,
		NeighborCount: suitable[best].Neighbors,
		ZPos:          zPos,
		Suitable:      suitable,
	}, nil
}

// contactScan reduces the distance matrix row by row into the three
// per-candidate quantities the ranking needs: the neighbor count within
// RMax, the too-close flag (any contact within RMin), and the nearest
// contacted-neighbor distance (+Inf without contacts). One pass over
// the dense backing array; no row is visited twice.
func contactScan(dists *mat.Dense, opts Options) (counts []int, tooClose []bool, nearest []float64) {
	raw := dists.RawMatrix()
	counts = make([]int, raw.Rows)
	tooClose = make([]bool, raw.Rows)
	nearest = make([]float64, raw.Rows)

	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		minDist := math.Inf(1)
		n := 0
		for _, d := range row {
			if d > opts.RMax {
				continue
			}
			n++
			if d <= opts.RMin {
				tooClose[i] = true
			}
			if d < minDist {
				minDist = d
			}
		}
		counts[i] = n
		nearest[i] = minDist
	}
	return counts, tooClose, nearest
}
