// Package render draws a top-view diagnostic image of one insertion-site
// selection: lattice vertices, hexagon face centers, the suitable sites
// and the chosen site, all projected onto the lattice plane.
//
// The image is purely diagnostic; the analysis never depends on it.
package render
