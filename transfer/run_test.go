package transfer_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andthum/transfer-Li/fileio"
	"github.com/andthum/transfer-Li/gro"
	"github.com/andthum/transfer-Li/simbox"
	"github.com/andthum/transfer-Li/transfer"
)

// discard drops all run logging.
func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })
}

// writeFixtures lays a complete run into the current directory: a
// structure with a 16-atom graphene sheet at z = 30 Å, two
// transferable Li ions above the layer bound, one solvent atom near
// the candidate plane, and the matching density profile.
func writeFixtures(t *testing.T, p transfer.Params) {
	t.Helper()

	box, err := simbox.NewOrtho(8.52, 4.919, 40)
	require.NoError(t, err)

	s := &gro.Structure{
		Title:         "transfer run fixture",
		Box:           box,
		HasVelocities: true,
	}

	// Honeycomb sheet: 2×2 rectangular cells of 4 atoms, C-C bond
	// 1.42 Å, hexagon edges along x.
	const h = 1.23
	cell := [][2]float64{{0, 0}, {1.42, 0}, {2.13, h}, {3.55, h}}
	serial := 1
	for _, dy := range []float64{0, 2 * h} {
		for _, dx := range []float64{0, 4.26} {
			for _, c := range cell {
				s.Atoms = append(s.Atoms, gro.Atom{
					ResID: 1, ResName: "gra1", Name: "AB1", Serial: serial,
					Pos: simbox.Vec{c[0] + dx, c[1] + dy, 30},
				})
				serial++
			}
		}
	}

	// Transferable ions above the layer bound (z > 35).
	for i, pos := range []simbox.Vec{{1.0, 1.0, 36}, {5.0, 2.5, 37}} {
		s.Atoms = append(s.Atoms, gro.Atom{
			ResID: 2 + i, ResName: "LI", Name: "Li", Serial: serial,
			Pos: pos, Vel: simbox.Vec{1.2, -0.58, 0.43},
		})
		serial++
	}

	// One solvent atom near the candidate plane; far enough from every
	// candidate to disqualify nothing.
	s.Atoms = append(s.Atoms, gro.Atom{
		ResID: 4, ResName: "SOL", Name: "OW", Serial: serial,
		Pos: simbox.Vec{2.84, 0, 35.3},
	})

	require.NoError(t, s.WriteFile(p.StructureFile()))

	w, err := fileio.Create(p.BinFile())
	require.NoError(t, err)
	_, err = io.WriteString(w, `# edge  n  d1  d2  d3  etrd_dist
30.0  5  0  0  0  3.0
32.5  4  0  0  0  2.0
35.0  3  0  0  0  1.0
36.0  0  0  0  0  0.0
`)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

// TestRun_EndToEnd executes a whole transfer in a temporary directory
// and inspects every artifact.
func TestRun_EndToEnd(t *testing.T) {
	chdir(t, t.TempDir())

	p := transfer.DefaultParams()
	p.System = "testsys"
	p.T0 = 100
	p.PlotFile = "selection.png"
	writeFixtures(t, p)

	sum, err := transfer.Run(context.Background(), discard(), p)
	require.NoError(t, err)

	d, err := p.Derived()
	require.NoError(t, err)

	assert.InDelta(t, 35.0, sum.ZLayerMin, 1e-12)
	require.Len(t, sum.Ions, 2, "both ions sit above the layer bound")
	assert.Equal(t, "Li", sum.Ions[0].Name)

	// The best site sits one z-shift above the lattice plane.
	assert.InDelta(t, 30+d.ZShift, sum.Result.Best[simbox.Z], 1e-9)
	assert.InDelta(t, 30+d.ZShift, sum.Result.ZPos, 1e-9)
	assert.NotEmpty(t, sum.Result.Suitable)

	// Report written, gzip-packed, with the insertion marker.
	r, err := fileio.Open(sum.ReportFile)
	require.NoError(t, err)
	rep, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Contains(t, string(rep), "# Insertion point")
	assert.Contains(t, string(rep), "# Number of lithium ions: 2")

	// Diagnostic plot written.
	if _, err := os.Stat(p.PlotFile); err != nil {
		t.Errorf("plot file missing: %v", err)
	}

	// One snapshot per ion, each with exactly that ion relocated and
	// its velocity zeroed.
	require.Len(t, sum.SnapshotFiles, 2)
	ionIndices := []int{16, 17}
	for k, path := range sum.SnapshotFiles {
		require.True(t, strings.HasPrefix(path, p.SnapshotDir(ionIndices[k]+1)),
			"snapshot %q must live in its ion directory", path)

		snap, err := gro.ReadFile(path)
		require.NoError(t, err)
		require.Len(t, snap.Atoms, 19)

		moved := snap.Atoms[ionIndices[k]]
		for c := 0; c < 3; c++ {
			// Snapshot coordinates are quantized to 0.001 nm.
			assert.InDelta(t, sum.Result.Best[c], moved.Pos[c], 0.006,
				"snapshot %d, coordinate %d", k, c)
		}
		assert.Equal(t, simbox.Vec{}, moved.Vel, "moved ion keeps no velocity")

		// The other ion is untouched.
		other := ionIndices[1-k]
		assert.NotEqual(t, simbox.Vec{}, snap.Atoms[other].Vel)
	}
}

// TestRun_BacksUpReport reruns onto an existing report and expects the
// first one preserved under .bak.
func TestRun_BacksUpReport(t *testing.T) {
	chdir(t, t.TempDir())

	p := transfer.DefaultParams()
	p.System = "testsys"
	p.T0 = 100
	writeFixtures(t, p)

	_, err := transfer.Run(context.Background(), discard(), p)
	require.NoError(t, err)
	_, err = transfer.Run(context.Background(), discard(), p)
	require.NoError(t, err)

	if _, err := os.Stat(p.ReportFile() + ".bak"); err != nil {
		t.Errorf("first report not backed up: %v", err)
	}
}

// TestRun_MissingInput fails before writing anything.
func TestRun_MissingInput(t *testing.T) {
	chdir(t, t.TempDir())

	p := transfer.DefaultParams()
	p.System = "testsys"
	p.T0 = 100

	_, err := transfer.Run(context.Background(), discard(), p)
	require.Error(t, err)

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed run must not leave partial output")
}

// TestRun_InvalidParams rejects an incomplete configuration up front.
func TestRun_InvalidParams(t *testing.T) {
	_, err := transfer.Run(context.Background(), discard(), transfer.Params{})
	assert.ErrorIs(t, err, transfer.ErrParam)
}
