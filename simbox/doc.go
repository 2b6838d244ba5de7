// Package simbox models a periodic simulation cell and the distance
// geometry that goes with it.
//
// What:
//
//   - Vec is a 3D coordinate in Ångström.
//   - Box is a periodic unit cell built from the six scalars
//     (lx, ly, lz, alpha, beta, gamma), orthorhombic or triclinic.
//   - Wrap / WrapAll translate positions into the primary cell.
//   - MinImage / Distance compute displacements and distances under the
//     minimum-image convention.
//   - DistanceMatrix fills a gonum mat.Dense with all pairwise
//     minimum-image distances between two position sets in one pass.
//
// Why:
//
//   - Every geometric decision downstream (lattice validation, face
//     derivation, insertion-site scoring) must respect periodic
//     boundary conditions; this package is the single place where the
//     wrap and minimum-image rules live.
//
// Complexity:
//
//   - Wrap, MinImage, Distance: O(1) per position (orthorhombic) or
//     O(27) image candidates (triclinic).
//   - DistanceMatrix: O(|A|·|B|), written row-major into the dense
//     backing array.
//
// Errors:
//
//   - ErrBoxLength: a box side length is zero or negative.
//   - ErrBoxAngle: a box angle lies outside (0°, 180°).
//   - ErrBoxSingular: the angles produce a degenerate cell matrix.
package simbox
