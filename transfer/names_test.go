package transfer_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andthum/transfer-Li/transfer"
)

// TestFileNames pins the production naming scheme.
func TestFileNames(t *testing.T) {
	p := transfer.DefaultParams()
	p.System = "lintf2_g1_20-1_gra_q1_sc80"
	p.T0 = 100

	assert.Equal(t,
		"pr_nvt423_nh_out_lintf2_g1_20-1_gra_q1_sc80_100ns.gro",
		p.StructureFile())
	assert.Equal(t,
		"pr_nvt423_nh_lintf2_g1_20-1_gra_q1_sc80.tpr",
		p.TopologyFile())
	assert.Equal(t,
		"pr_nvt423_nh_lintf2_g1_20-1_gra_q1_sc80_density-z_number_Li_binsA.txt.gz",
		p.BinFile())
	assert.Equal(t,
		"pr_nvt423_nh_lintf2_g1_20-1_gra_q1_sc80_transfer_Li.txt.gz",
		p.ReportFile())

	assert.Equal(t, "Li7_transferred", p.SnapshotDir(7))
	assert.Equal(t,
		filepath.Join("Li7_transferred",
			"pr_nvt423_nh_out_lintf2_g1_20-1_gra_q1_sc80_Li7_transferred.gro"),
		p.SnapshotFile(7))
}
