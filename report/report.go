package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/andthum/transfer-Li/fileio"
	"github.com/andthum/transfer-Li/gro"
	"github.com/andthum/transfer-Li/insertion"
)

// nmToA converts the module's Ångström values to the report's nm.
const nmToA = 10.0

// Report collects everything the run report shows. All distances are
// in Ångström; Write converts to nm on output.
type Report struct {
	// Tool is the program name printed in the creation header.
	Tool string
	// Created is the report creation time.
	Created time.Time

	// Input file names and the bin-table columns that were read.
	StructureFile string
	TopologyFile  string
	BinFile       string
	BinColumns    [2]int

	// Selection expressions, rendered verbatim.
	Selection   string
	Surface     string
	Electrolyte string

	// Lattice properties of the electrode surface.
	R0       float64
	FlatAxis string

	// Force-field derivation.
	SigmaLi  float64
	SigmaC   float64
	SigmaLiC float64
	REq      float64

	// Particle-layer bound and selector thresholds.
	ZLayerMin float64
	ZShift    float64
	RMin      float64
	RMax      float64

	// Ions is the transferable-ion list in structure-file order.
	Ions []gro.Atom
	// Result is the site-selection outcome.
	Result insertion.Result
}

// WriteFile backs up any existing file at path, then writes the report,
// gzip-compressing when the name ends in .gz.
func WriteFile(path string, rep *Report) error {
	if _, err := fileio.Backup(path); err != nil {
		return err
	}
	w, err := fileio.Create(path)
	if err != nil {
		return err
	}
	if err := Write(w, rep); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Write renders the report. The layout is stable: header and constants
// as # comments, then the ion table, then the suitable-site table with
// the insertion point marked on its row.
func Write(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Created by %s on %s\n", rep.Tool, rep.Created.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(bw, "#\n")
	fmt.Fprintf(bw, "# Structure file:     %s\n", rep.StructureFile)
	fmt.Fprintf(bw, "# Topology file:      %s\n", rep.TopologyFile)
	fmt.Fprintf(bw, "# Bin file:           %s\n", rep.BinFile)
	fmt.Fprintf(bw, "# Bin file columns:   (%d, %d)\n", rep.BinColumns[0], rep.BinColumns[1])
	fmt.Fprintf(bw, "# Selection:          '%s'\n", rep.Selection)
	fmt.Fprintf(bw, "# Positive electrode: '%s'\n", rep.Surface)
	fmt.Fprintf(bw, "# Electrolyte:        '%s'\n", rep.Electrolyte)
	fmt.Fprintf(bw, "#\n")
	fmt.Fprintf(bw, "# Lattice properties of the positive electrode:\n")
	fmt.Fprintf(bw, "# r0:         %.9f nm\n", rep.R0/nmToA)
	fmt.Fprintf(bw, "# flatside:   %s\n", rep.FlatAxis)
	fmt.Fprintf(bw, "#\n")
	fmt.Fprintf(bw, "# Force field parameters:\n")
	fmt.Fprintf(bw, "# sigma_Li:   %.9f nm\n", rep.SigmaLi/nmToA)
	fmt.Fprintf(bw, "# sigma_C:    %.9f nm\n", rep.SigmaC/nmToA)
	fmt.Fprintf(bw, "# sigma_Li_C: %.9f nm\n", rep.SigmaLiC/nmToA)
	fmt.Fprintf(bw, "# r_eq:       %.9f nm\n", rep.REq/nmToA)
	fmt.Fprintf(bw, "#\n")

	writeIonTable(bw, rep)
	fmt.Fprintf(bw, "\n\n")
	writeSiteTable(bw, rep)

	return bw.Flush()
}

// writeIonTable lists the transferable ions in .gro column convention
// (positions in nm, velocities in nm/ps).
func writeIonTable(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "# Lithium ions in the first layer at the negative electrode.\n")
	fmt.Fprintf(w, "# z_layer_min: %.9f nm\n", rep.ZLayerMin/nmToA)
	fmt.Fprintf(w, "# Output in .gro file format, positions in nm, velocities in nm/ps\n")
	fmt.Fprintf(w, "# Number of lithium ions: %d\n", len(rep.Ions))
	fmt.Fprintf(w, "# %-8s %-9s\n", "Residue", "Atom")
	fmt.Fprintf(w, "#%4s%5s%5s%5s%8s%8s%8s%8s%8s%8s\n",
		"num", "name", "name", "num", "x", "y", "z", "v_x", "v_y", "v_z")
	for _, a := range rep.Ions {
		fmt.Fprintf(w, "%5d%-5s%5s%5d", a.ResID, a.ResName, a.Name, a.Serial)
		for k := 0; k < 3; k++ {
			fmt.Fprintf(w, "%8.3f", a.Pos[k]/nmToA)
		}
		for k := 0; k < 3; k++ {
			fmt.Fprintf(w, "%8.4f", a.Vel[k]/nmToA)
		}
		fmt.Fprintln(w)
	}
}

// writeSiteTable lists every suitable insertion site; the best row gets
// the insertion-point marker.
func writeSiteTable(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "# Suitable insertion points, i.e. hexagon center(s) with\n")
	fmt.Fprintf(w, "# the fewest number of neighbors within r_max and no\n")
	fmt.Fprintf(w, "# neighbors within r_min.\n")
	fmt.Fprintf(w, "# Number of Neighbors:  %d\n", rep.Result.NeighborCount)
	fmt.Fprintf(w, "# z_pos:   %.9f nm\n", rep.Result.ZPos/nmToA)
	fmt.Fprintf(w, "# z_shift: %.9f nm\n", rep.ZShift/nmToA)
	fmt.Fprintf(w, "# r_min:   %.9f nm\n", rep.RMin/nmToA)
	fmt.Fprintf(w, "# r_max:   %.9f nm\n", rep.RMax/nmToA)
	fmt.Fprintf(w, "#%7s%8s%8s   %6s %17s\n", "x / nm", "y / nm", "z / nm", "hex_ix", "nearest_atom / nm")
	for _, s := range rep.Result.Suitable {
		for k := 0; k < 3; k++ {
			fmt.Fprintf(w, "%8.3f", s.Pos[k]/nmToA)
		}
		fmt.Fprintf(w, "   %6d", s.Index)
		if math.IsInf(s.NearestDist, 1) {
			fmt.Fprintf(w, " %17s", "inf")
		} else {
			fmt.Fprintf(w, " %17.9f", s.NearestDist/nmToA)
		}
		if s.Best {
			fmt.Fprintf(w, "  # Insertion point (hexagon center with the furthest nearest-neighbor atom)")
		}
		fmt.Fprintln(w)
	}
}
