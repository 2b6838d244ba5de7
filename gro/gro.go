package gro

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/andthum/transfer-Li/fileio"
	"github.com/andthum/transfer-Li/simbox"
)

// ErrFormat indicates a file that does not follow the .gro layout.
var ErrFormat = errors.New("gro: malformed .gro file")

// nmToA converts nanometers (file units) to Ångström (module units).
const nmToA = 10.0

// Atom is one atom record. Positions are in Ångström, velocities in
// Å/ps (converted from the file's nm and nm/ps).
type Atom struct {
	ResID   int
	ResName string
	Name    string
	Serial  int
	Pos     simbox.Vec
	Vel     simbox.Vec
}

// Structure is the full content of a .gro file.
type Structure struct {
	Title string
	Atoms []Atom
	Box   simbox.Box
	// HasVelocities records whether the source file carried velocity
	// columns; Write emits them only when it did.
	HasVelocities bool
}

// Clone returns a deep copy. Snapshot writing mutates one atom per
// output file, so every snapshot starts from its own copy.
func (s *Structure) Clone() *Structure {
	c := *s
	c.Atoms = make([]Atom, len(s.Atoms))
	copy(c.Atoms, s.Atoms)
	return &c
}

// ReadFile reads a .gro structure from path, transparently
// decompressing a trailing .gz.
func ReadFile(path string) (*Structure, error) {
	r, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses a .gro structure: title line, atom count, fixed-column
// atom records, box line. Velocity columns are detected from the first
// atom record and required on every record after that.
func Read(r io.Reader) (*Structure, error) {
	sc := bufio.NewScanner(r)

	title, err := scanLine(sc, 1)
	if err != nil {
		return nil, err
	}

	countLine, err := scanLine(sc, 2)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line 2: bad atom count %q", ErrFormat, strings.TrimSpace(countLine))
	}

	s := &Structure{
		Title: title,
		Atoms: make([]Atom, n),
	}
	for i := 0; i < n; i++ {
		lineNo := i + 3
		line, err := scanLine(sc, lineNo)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			s.HasVelocities = len(strings.TrimRight(line, " \r\n")) >= velLineLen
		}
		if err := parseAtom(line, s.HasVelocities, &s.Atoms[i], i); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	boxLine, err := scanLine(sc, n+3)
	if err != nil {
		return nil, err
	}
	box, err := parseBox(boxLine)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n+3, err)
	}
	s.Box = box

	return s, nil
}

// Column layout of one atom record:
//
//	[0:5)   residue number   %5d
//	[5:10)  residue name     %-5s
//	[10:15) atom name        %5s
//	[15:20) atom number      %5d
//	[20:44) position         3 × %8.3f   (nm)
//	[44:68) velocity         3 × %8.4f   (nm/ps, optional)
const (
	fieldWidth = 8
	posStart   = 20
	posLineLen = posStart + 3*fieldWidth
	velLineLen = posStart + 6*fieldWidth
)

func parseAtom(line string, withVel bool, a *Atom, index int) error {
	need := posLineLen
	if withVel {
		need = velLineLen
	}
	if len(line) < need {
		return fmt.Errorf("%w: atom record shorter than %d columns", ErrFormat, need)
	}

	resID, err := strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return fmt.Errorf("%w: bad residue number %q", ErrFormat, strings.TrimSpace(line[0:5]))
	}
	a.ResID = resID
	a.ResName = strings.TrimSpace(line[5:10])
	a.Name = strings.TrimSpace(line[10:15])

	serial := strings.TrimSpace(line[15:20])
	if strings.Trim(serial, "*") == "" {
		// Writers overflow the 5-column serial with stars; renumber.
		a.Serial = index + 1
	} else {
		a.Serial, err = strconv.Atoi(serial)
		if err != nil {
			return fmt.Errorf("%w: bad atom number %q", ErrFormat, serial)
		}
	}

	for k := 0; k < 3; k++ {
		v, err := parseField(line, posStart+k*fieldWidth)
		if err != nil {
			return err
		}
		a.Pos[k] = v * nmToA
	}
	if withVel {
		for k := 0; k < 3; k++ {
			v, err := parseField(line, posStart+(3+k)*fieldWidth)
			if err != nil {
				return err
			}
			a.Vel[k] = v * nmToA
		}
	}
	return nil
}

func parseField(line string, start int) (float64, error) {
	field := strings.TrimSpace(line[start : start+fieldWidth])
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad coordinate %q", ErrFormat, field)
	}
	return v, nil
}

// parseBox converts the final .gro line into a Box. Three fields give
// an orthorhombic cell; nine give the triclinic cell vectors in the
// GROMACS order v1x v2y v3z v1y v1z v2x v2z v3x v3y.
func parseBox(line string) (simbox.Box, error) {
	fields := strings.Fields(line)
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return simbox.Box{}, fmt.Errorf("%w: bad box field %q", ErrFormat, f)
		}
		vals[i] = v * nmToA
	}

	switch len(vals) {
	case 3:
		box, err := simbox.NewOrtho(vals[0], vals[1], vals[2])
		if err != nil {
			return simbox.Box{}, fmt.Errorf("gro: box line: %w", err)
		}
		return box, nil
	case 9:
		v1 := simbox.Vec{vals[0], vals[3], vals[4]}
		v2 := simbox.Vec{vals[5], vals[1], vals[6]}
		v3 := simbox.Vec{vals[7], vals[8], vals[2]}
		box, err := simbox.New(
			v1.Norm(), v2.Norm(), v3.Norm(),
			vecAngle(v2, v3), vecAngle(v1, v3), vecAngle(v1, v2),
		)
		if err != nil {
			return simbox.Box{}, fmt.Errorf("gro: box line: %w", err)
		}
		return box, nil
	}
	return simbox.Box{}, fmt.Errorf("%w: box line needs 3 or 9 fields, got %d", ErrFormat, len(vals))
}

// vecAngle returns the angle between two cell vectors in degrees.
func vecAngle(a, b simbox.Vec) float64 {
	return math.Acos(a.Dot(b)/(a.Norm()*b.Norm())) * 180 / math.Pi
}

func scanLine(sc *bufio.Scanner, lineNo int) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("gro: line %d: %w", lineNo, err)
		}
		return "", fmt.Errorf("%w: unexpected end of file at line %d", ErrFormat, lineNo)
	}
	return sc.Text(), nil
}
