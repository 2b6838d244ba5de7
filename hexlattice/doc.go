// Package hexlattice derives the hexagon face centers of a periodic
// honeycomb lattice from its vertex positions.
//
// What:
//
//   - Check validates that a vertex set forms a flat hexagonal lattice
//     that tiles periodically across the box in both in-plane
//     directions.
//   - Faces converts the vertex set into the face-center set: every
//     vertex is translated by one side length along the flat axis and
//     re-wrapped; translations that land on the vertex comb are
//     discarded, the rest are the hexagon centers.
//
// Why:
//
//   - The face centers of a honeycomb electrode surface are the
//     candidate insertion sites for ion transfer; deriving them from
//     vertex coordinates avoids carrying a separate lattice
//     description.
//
// Geometry:
//
//	A honeycomb with side r0 and edges parallel to the flat axis
//	repeats every 3·r0 along that axis and every √3·r0 along the other
//	in-plane axis. Shifting a vertex by +r0 along the flat axis lands
//	either on another vertex or on a hexagon center, and the two cases
//	are distinguished by the flat-axis coordinate alone: the vertex
//	comb and the center comb never share a coordinate.
//
// Determinism:
//
//	Coordinates are rounded to ceil(-log10(tol)) decimals before the
//	set-membership test, so wrap artifacts cannot split a coincident
//	pair. The returned face centers carry the rounded coordinates and
//	are sorted ascending by (x, y, z).
//
// Errors:
//
//   - ErrEmpty: the vertex set is empty.
//   - ErrSide, ErrTol: non-positive side length or tolerance.
//   - ErrAxis: the flat axis is neither AxisX nor AxisY.
//   - ErrNotFlat: a vertex leaves the lattice plane by more than tol.
//   - ErrNotPeriodic: a box length is not a multiple of the lattice
//     repeat within tol.
//   - ErrFaceCount: the derived face count is not half the vertex
//     count; an internal-consistency failure that always aborts.
package hexlattice
