// Package transfer orchestrates one ion-transfer run: it derives file
// names from the run parameters, reads the density profile and the
// structure snapshot, resolves the electrode's hexagon face centers,
// selects the best insertion site, and writes the report plus one
// relocated-ion snapshot per transferable ion.
//
// The geometry lives in hexlattice and insertion; this package only
// wires inputs to outputs. Any error aborts the run before partial
// output is written (snapshot fan-out is the one concurrent step, and
// it runs strictly after the report).
package transfer
