// Package gro reads and writes GROMACS .gro structure files and offers
// predicate-based atom selection.
//
// What:
//
//   - Read / ReadFile parse a .gro file into a Structure: title, atoms
//     (residue id/name, atom name, serial, position, velocity) and the
//     periodic box.
//   - Structure.Write / WriteFile serialize it back in the fixed-column
//     .gro layout, velocities included when the source carried them.
//   - Select filters atoms with composable predicates (by atom name, by
//     residue-name prefix, by coordinate range).
//
// Units:
//
//	.gro files store nanometers and nm/ps. This package converts to
//	Ångström and Å/ps on read and back on write, so every other package
//	in the module works in Ångström throughout.
//
// The fixed-column layout (positions %8.3f, velocities %8.4f) is the
// one GROMACS itself writes; lines that do not fit it fail with
// ErrFormat and the offending line number.
package gro
