package transfer

import (
	"fmt"
	"path/filepath"
)

// File-name derivation, matching the production naming scheme so the
// tool drops into existing simulation directories unchanged.

// StructureFile is the .gro snapshot the run reads:
// <settings>_out_<system>_<t0>ns.gro.
func (p Params) StructureFile() string {
	return fmt.Sprintf("%s_out_%s_%dns.gro", p.Settings, p.System, p.T0)
}

// TopologyFile is the run-topology name recorded in the report:
// <settings>_<system>.tpr.
func (p Params) TopologyFile() string {
	return fmt.Sprintf("%s_%s.tpr", p.Settings, p.System)
}

// BinFile is the ion density profile along z:
// <settings>_<system>_density-z_number_Li_binsA.txt.gz.
func (p Params) BinFile() string {
	return fmt.Sprintf("%s_%s_density-z_number_%s_binsA.txt.gz", p.Settings, p.System, p.IonName)
}

// ReportFile is the run report:
// <settings>_<system>_transfer_Li.txt.gz.
func (p Params) ReportFile() string {
	return fmt.Sprintf("%s_%s_transfer_%s.txt.gz", p.Settings, p.System, p.IonName)
}

// SnapshotDir is the per-ion output directory Li<serial>_transferred.
func (p Params) SnapshotDir(serial int) string {
	return fmt.Sprintf("%s%d_transferred", p.IonName, serial)
}

// SnapshotFile is the relocated-ion structure inside SnapshotDir:
// <settings>_out_<system>_Li<serial>_transferred.gro.
func (p Params) SnapshotFile(serial int) string {
	dir := p.SnapshotDir(serial)
	return filepath.Join(dir, fmt.Sprintf("%s_out_%s_%s.gro", p.Settings, p.System, dir))
}
