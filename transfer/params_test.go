package transfer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andthum/transfer-Li/hexlattice"
	"github.com/andthum/transfer-Li/transfer"
)

// validParams fills the fields DefaultParams leaves for the caller.
func validParams() transfer.Params {
	p := transfer.DefaultParams()
	p.System = "lintf2_g1_20-1_gra_q1_sc80"
	p.T0 = 100
	return p
}

// TestDefaultParams pins the production constants.
func TestDefaultParams(t *testing.T) {
	p := transfer.DefaultParams()
	assert.Equal(t, "pr_nvt423_nh", p.Settings)
	assert.Equal(t, 1.42, p.R0)
	assert.Equal(t, "x", p.Flat)
	assert.Equal(t, 1e-3, p.Tol)
	assert.Equal(t, 2.12645, p.SigmaLi)
	assert.Equal(t, 3.55, p.SigmaC)
	assert.Equal(t, "Li", p.IonName)
	assert.Equal(t, "AB1", p.SurfaceName)
	assert.Equal(t, "gra", p.ElectrodeResPrefix)
}

// TestDerived checks the combined force-field quantities against the
// Good-Hope / Lennard-Jones arithmetic.
func TestDerived(t *testing.T) {
	d, err := validParams().Derived()
	require.NoError(t, err)

	assert.InDelta(t, 2.74753, d.SigmaLiC, 1e-4, "sigma_LiC = sqrt(sigma_Li*sigma_C)")
	assert.InDelta(t, 3.08399, d.REq, 1e-4, "r_eq = 2^(1/6)*sigma_LiC")
	assert.InDelta(t, 5.21044, d.RCut, 1e-4, "r_cut = r_eq + sigma_Li")
	assert.InDelta(t, 2.73763, d.ZShift, 1e-4, "z_shift = sqrt(r_eq^2 - r0^2)")
}

// TestDerived_Geometry rejects a side length the equilibrium distance
// cannot clear.
func TestDerived_Geometry(t *testing.T) {
	p := validParams()
	p.R0 = 10
	_, err := p.Derived()
	assert.ErrorIs(t, err, transfer.ErrGeometry)
}

// TestValidate_Errors walks the parameter checks.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*transfer.Params)
	}{
		{"NoSystem", func(p *transfer.Params) { p.System = "" }},
		{"NoSettings", func(p *transfer.Params) { p.Settings = "" }},
		{"NegativeT0", func(p *transfer.Params) { p.T0 = -1 }},
		{"BadR0", func(p *transfer.Params) { p.R0 = 0 }},
		{"BadFlat", func(p *transfer.Params) { p.Flat = "z" }},
		{"BadTol", func(p *transfer.Params) { p.Tol = -1 }},
		{"BadSigma", func(p *transfer.Params) { p.SigmaLi = 0 }},
		{"NoIonName", func(p *transfer.Params) { p.IonName = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mod(&p)
			assert.ErrorIs(t, p.Validate(), transfer.ErrParam)
		})
	}

	assert.NoError(t, validParams().Validate())
}

// TestFlatAxis maps the textual selector.
func TestFlatAxis(t *testing.T) {
	p := validParams()
	assert.Equal(t, hexlattice.AxisX, p.FlatAxis())
	p.Flat = "y"
	assert.Equal(t, hexlattice.AxisY, p.FlatAxis())
}

// TestLoadParams merges a partial YAML file over the defaults.
func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	yaml := "system: mysys\nt0: 250\nsigma_li: 2.0\nplot_file: selection.png\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	p, err := transfer.LoadParams(path)
	require.NoError(t, err)

	assert.Equal(t, "mysys", p.System)
	assert.Equal(t, 250, p.T0)
	assert.Equal(t, 2.0, p.SigmaLi)
	assert.Equal(t, "selection.png", p.PlotFile)
	// Untouched fields keep their defaults.
	assert.Equal(t, "pr_nvt423_nh", p.Settings)
	assert.Equal(t, 1.42, p.R0)
	assert.Equal(t, "AB1", p.SurfaceName)
}

// TestLoadParams_Errors surfaces missing files and bad YAML.
func TestLoadParams_Errors(t *testing.T) {
	_, err := transfer.LoadParams(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system: [unclosed"), 0o644))
	_, err = transfer.LoadParams(path)
	assert.Error(t, err)
}
