// Package report renders the transfer run's diagnostic report.
//
// What:
//
// One text file per run, comment-annotated: input file names, selection
// expressions, lattice and force-field constants, the transferable-ion
// table, and the suitable-insertion-site table with the chosen site
// marked. Distances are stored in Ångström module-wide and printed in
// nm, matching the structure-file unit.
//
// The exact column layout is a formatting concern of this package
// alone; nothing downstream parses the report.
package report
