// Package transferli relocates ions in a simulated electrochemical
// cell: it finds the geometrically best insertion site on the positive
// electrode's hexagonal lattice and moves each transferable ion there.
//
// 🚀 What is transfer-Li?
//
//	A post-processing toolkit for molecular-dynamics snapshots:
//		• simbox      — periodic cell: wrap, minimum image, distance matrix
//		• hexlattice  — hexagon face centers from lattice vertices
//		• insertion   — neighbor-count/clearance site ranking
//		• gro         — .gro structure I/O + predicate atom selection
//		• density     — density-profile bin tables
//		• fileio      — backup-on-overwrite, gzip-transparent streams
//		• report      — the run's diagnostic text report
//		• render      — top-view PNG of the selection
//		• transfer    — run parameters, file naming, orchestration
//
// ✨ Design principles
//
//   - Deterministic — stable sort orders, documented tie-breaks,
//     tolerance-parameterized float comparison
//   - Pure core — the geometry packages are stateless functions of
//     their inputs; all I/O sits at the edges
//   - Fail loud — invalid lattices, impossible thresholds and internal
//     invariant violations abort the run before partial output
//
// The cmd/transferli binary wires the packages into the one-shot batch
// workflow: density profile → structure → face centers → best site →
// report + per-ion snapshots.
package transferli
