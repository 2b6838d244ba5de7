package gro

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andthum/transfer-Li/fileio"
)

// WriteFile serializes the structure to path, gzip-compressing when the
// name ends in .gz. Existing files are not backed up here; callers that
// need backup-on-overwrite do it explicitly.
func (s *Structure) WriteFile(path string) error {
	w, err := fileio.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Write serializes the structure in the fixed-column .gro layout,
// converting positions back to nm and velocities to nm/ps. Residue and
// atom numbers wrap at 100000 the way GROMACS wraps them.
func (s *Structure) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, s.Title)
	fmt.Fprintf(bw, "%5d\n", len(s.Atoms))

	for i := range s.Atoms {
		a := &s.Atoms[i]
		fmt.Fprintf(bw, "%5d%-5s%5s%5d",
			a.ResID%100000, a.ResName, a.Name, a.Serial%100000)
		for k := 0; k < 3; k++ {
			fmt.Fprintf(bw, "%8.3f", a.Pos[k]/nmToA)
		}
		if s.HasVelocities {
			for k := 0; k < 3; k++ {
				fmt.Fprintf(bw, "%8.4f", a.Vel[k]/nmToA)
			}
		}
		fmt.Fprintln(bw)
	}

	if err := writeBox(bw, s); err != nil {
		return err
	}
	return bw.Flush()
}

// writeBox emits the final box line: three fields for an orthorhombic
// cell, nine (GROMACS vector order) for a triclinic one.
func writeBox(w io.Writer, s *Structure) error {
	d := s.Box.Dimensions()
	if s.Box.Ortho() {
		_, err := fmt.Fprintf(w, "%10.5f%10.5f%10.5f\n",
			d[0]/nmToA, d[1]/nmToA, d[2]/nmToA)
		return err
	}

	v1, v2, v3 := s.Box.CellVectors()
	_, err := fmt.Fprintf(w, "%10.5f%10.5f%10.5f%10.5f%10.5f%10.5f%10.5f%10.5f%10.5f\n",
		v1[0]/nmToA, v2[1]/nmToA, v3[2]/nmToA,
		v1[1]/nmToA, v1[2]/nmToA,
		v2[0]/nmToA, v2[2]/nmToA,
		v3[0]/nmToA, v3[1]/nmToA)
	return err
}
