// Package insertion scores candidate insertion sites above a lattice
// surface and selects the best one.
//
// What:
//
//   - Select shifts every face center off the surface by a fixed normal
//     offset, computes the periodic distance matrix between the shifted
//     candidates and a neighbor-position set, and ranks the candidates
//     by a neighbor-count/clearance rule:
//
//     1. A candidate with any neighbor within RMin is disqualified.
//     2. Among the rest, candidates with the fewest neighbors within
//     RMax form the suitable set.
//     3. The suitable candidate whose nearest neighbor is furthest away
//     wins; exact ties go to the lowest candidate index.
//
// Why:
//
//   - The winning position keeps the inserted particle as clear of the
//     surrounding medium as the surface geometry allows, using only two
//     interaction distances as input.
//
// Determinism:
//
//	A pure, stateless, single-pass computation: the result is a
//	function of the inputs alone, candidates are visited in input
//	order, and every tie-break is by first occurrence.
//
// Complexity:
//
//	O(|candidates|·|neighbors|) time and memory, dominated by the
//	distance matrix.
//
// Errors:
//
//   - ErrNoCandidates, ErrThresholds: malformed input.
//   - ErrNoContacts: no neighbor lies within RMax of any candidate
//     (enlarge RMax).
//   - ErrAllTooClose: every candidate has a neighbor within RMin
//     (shrink RMin).
//   - ErrNoSuitable: the suitable set is empty; both failure variants
//     above wrap it, so errors.Is(err, ErrNoSuitable) catches every
//     no-site outcome.
package insertion
