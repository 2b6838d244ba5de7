package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andthum/transfer-Li/density"
	"github.com/andthum/transfer-Li/fileio"
	"github.com/andthum/transfer-Li/gro"
	"github.com/andthum/transfer-Li/hexlattice"
	"github.com/andthum/transfer-Li/insertion"
	"github.com/andthum/transfer-Li/render"
	"github.com/andthum/transfer-Li/report"
	"github.com/andthum/transfer-Li/simbox"
)

// Bin-table columns of the density profile: bin edge and distance to
// the electrode surface.
const (
	binColEdge = 0
	binColDist = 5
)

// ErrNoIons indicates that no transferable ion matched the selection.
var ErrNoIons = fmt.Errorf("%w: no transferable ions found", ErrParam)

// Summary is what one completed run produced.
type Summary struct {
	// ZLayerMin is the lower edge of the first ion layer at the
	// negative electrode (Ångström).
	ZLayerMin float64
	// Ions lists the transferred ions in structure-file order.
	Ions []gro.Atom
	// Result is the insertion-site selection outcome.
	Result insertion.Result
	// ReportFile and SnapshotFiles name everything that was written.
	ReportFile    string
	SnapshotFiles []string
}

// Run executes one transfer end to end. The geometry stages are
// sequential; only the independent per-ion snapshot writes fan out, and
// they start strictly after the report is on disk, so a failed run
// never leaves a report describing snapshots that do not exist.
func Run(ctx context.Context, log *slog.Logger, p Params) (*Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d, err := p.Derived()
	if err != nil {
		return nil, err
	}
	log.Debug("derived force-field quantities",
		"sigma_li_c", d.SigmaLiC, "r_eq", d.REq, "r_cut", d.RCut, "z_shift", d.ZShift)

	// Lower edge of the first ion layer at the negative electrode.
	prof, err := density.ReadFile(p.BinFile(), binColEdge, binColDist)
	if err != nil {
		return nil, err
	}
	zLayerMin, err := prof.LastPositive()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.BinFile(), err)
	}
	log.Debug("read density profile", "file", p.BinFile(), "z_layer_min", zLayerMin)

	s, err := gro.ReadFile(p.StructureFile())
	if err != nil {
		return nil, err
	}
	log.Debug("read structure", "file", p.StructureFile(), "atoms", len(s.Atoms))

	// Transferable ions sit above the last populated layer at the
	// negative electrode.
	ionIdx := s.Select(gro.And(gro.ByName(p.IonName), gro.ZAbove(zLayerMin)))
	if len(ionIdx) == 0 {
		return nil, fmt.Errorf("%w (name %s, z > %g)", ErrNoIons, p.IonName, zLayerMin)
	}

	surfIdx := s.Select(gro.ByName(p.SurfaceName))
	faces, err := hexlattice.Faces(s.Positions(surfIdx), hexlattice.Options{
		Side: p.R0,
		Flat: p.FlatAxis(),
		Box:  s.Box,
		Tol:  p.Tol,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("resolved lattice faces", "surface_atoms", len(surfIdx), "faces", len(faces))

	// Electrolyte atoms within reach of the shifted candidates.
	zPos := faces[0][simbox.Z] + d.ZShift
	elytFilter := gro.And(
		gro.Not(gro.ByResPrefix(p.ElectrodeResPrefix)),
		gro.ZBetween(zPos-d.RCut, zPos+d.RCut),
	)
	elytIdx := s.Select(elytFilter)

	res, err := insertion.Select(faces, s.Positions(elytIdx), s.Box, insertion.Options{
		RMin:    p.SigmaLi,
		RMax:    d.RCut,
		ZOffset: d.ZShift,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("selected insertion site",
		"best", res.Best, "candidate", res.BestIndex,
		"neighbors", res.NeighborCount, "suitable", len(res.Suitable))

	ions := make([]gro.Atom, len(ionIdx))
	for i, j := range ionIdx {
		ions[i] = s.Atoms[j]
	}

	rep := &report.Report{
		Tool:          "transfer-Li",
		Created:       time.Now(),
		StructureFile: p.StructureFile(),
		TopologyFile:  p.TopologyFile(),
		BinFile:       p.BinFile(),
		BinColumns:    [2]int{binColEdge, binColDist},
		Selection:     fmt.Sprintf("name %s and prop z > %g", p.IonName, zLayerMin),
		Surface:       fmt.Sprintf("name %s", p.SurfaceName),
		Electrolyte: fmt.Sprintf("not resname %s* and prop z >= %g and prop z <= %g",
			p.ElectrodeResPrefix, zPos-d.RCut, zPos+d.RCut),
		R0:        p.R0,
		FlatAxis:  p.Flat,
		SigmaLi:   p.SigmaLi,
		SigmaC:    p.SigmaC,
		SigmaLiC:  d.SigmaLiC,
		REq:       d.REq,
		ZLayerMin: zLayerMin,
		ZShift:    d.ZShift,
		RMin:      p.SigmaLi,
		RMax:      d.RCut,
		Ions:      ions,
		Result:    res,
	}
	if err := report.WriteFile(p.ReportFile(), rep); err != nil {
		return nil, err
	}
	log.Info("wrote report", "file", p.ReportFile())

	if p.PlotFile != "" {
		plot := render.Plot{
			Box:      s.Box,
			Vertices: s.Positions(surfIdx),
			Faces:    faces,
			Suitable: res.Suitable,
		}
		if err := render.PNG(p.PlotFile, plot); err != nil {
			return nil, err
		}
		log.Info("wrote diagnostic plot", "file", p.PlotFile)
	}

	snapshots, err := writeSnapshots(ctx, log, p, s, ionIdx, res.Best)
	if err != nil {
		return nil, err
	}

	return &Summary{
		ZLayerMin:     zLayerMin,
		Ions:          ions,
		Result:        res,
		ReportFile:    p.ReportFile(),
		SnapshotFiles: snapshots,
	}, nil
}

// writeSnapshots writes one structure per transferable ion with that
// ion moved to the insertion site and its velocity zeroed. The writes
// are independent, so they fan out; each works on its own deep copy.
func writeSnapshots(ctx context.Context, log *slog.Logger, p Params,
	s *gro.Structure, ionIdx []int, site simbox.Vec) ([]string, error) {

	files := make([]string, len(ionIdx))
	g, ctx := errgroup.WithContext(ctx)
	for i, j := range ionIdx {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			serial := j + 1
			snap := s.Clone()
			snap.Atoms[j].Pos = site
			snap.Atoms[j].Vel = simbox.Vec{}

			if err := os.MkdirAll(p.SnapshotDir(serial), 0o755); err != nil {
				return fmt.Errorf("transfer: %w", err)
			}
			path := p.SnapshotFile(serial)
			if _, err := fileio.Backup(path); err != nil {
				return err
			}
			if err := snap.WriteFile(path); err != nil {
				return err
			}
			log.Info("wrote snapshot", "file", path)
			files[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
