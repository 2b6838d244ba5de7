package density

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andthum/transfer-Li/fileio"
)

// Sentinel errors for profile parsing.
var (
	// ErrColumn indicates a data row without one of the requested columns.
	ErrColumn = errors.New("density: row is missing a requested column")
	// ErrNoData indicates a table without any data row.
	ErrNoData = errors.New("density: profile contains no data rows")
	// ErrNoPositive indicates that no bin has a positive value column.
	ErrNoPositive = errors.New("density: no bin with a positive value")
)

// Profile holds two columns of a bin table: the bin positions and the
// value attached to each bin, row order preserved.
type Profile struct {
	Bins   []float64
	Values []float64
}

// ReadFile reads a profile from path, transparently decompressing a
// trailing .gz.
func ReadFile(path string, binCol, valCol int) (*Profile, error) {
	r, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	p, err := ReadProfile(r, binCol, valCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadProfile parses a whitespace-separated numeric table, skipping
// blank lines and lines starting with #, and keeps the zero-based
// columns binCol and valCol of every data row.
func ReadProfile(r io.Reader, binCol, valCol int) (*Profile, error) {
	need := binCol
	if valCol > need {
		need = valCol
	}

	p := &Profile{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) <= need {
			return nil, fmt.Errorf("%w: line %d has %d columns, need column %d",
				ErrColumn, lineNo, len(fields), need)
		}
		bin, err := strconv.ParseFloat(fields[binCol], 64)
		if err != nil {
			return nil, fmt.Errorf("density: line %d: bad bin value %q", lineNo, fields[binCol])
		}
		val, err := strconv.ParseFloat(fields[valCol], 64)
		if err != nil {
			return nil, fmt.Errorf("density: line %d: bad value %q", lineNo, fields[valCol])
		}
		p.Bins = append(p.Bins, bin)
		p.Values = append(p.Values, val)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("density: %w", err)
	}
	if len(p.Bins) == 0 {
		return nil, ErrNoData
	}
	return p, nil
}

// LastPositive returns the bin position of the last row whose value is
// strictly positive.
func (p *Profile) LastPositive() (float64, error) {
	for i := len(p.Values) - 1; i >= 0; i-- {
		if p.Values[i] > 0 {
			return p.Bins[i], nil
		}
	}
	return 0, ErrNoPositive
}
