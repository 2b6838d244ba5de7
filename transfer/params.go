package transfer

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andthum/transfer-Li/hexlattice"
)

// Sentinel errors for parameter validation.
var (
	// ErrParam indicates a missing or out-of-range run parameter.
	ErrParam = errors.New("transfer: invalid run parameter")
	// ErrGeometry indicates force-field constants that give no real
	// surface offset (r_eq must exceed the hexagon side length).
	ErrGeometry = errors.New("transfer: equilibrium distance does not clear the hexagon side")
)

// Params holds every knob of one transfer run. Distances are in
// Ångström. The zero value is not usable; start from DefaultParams and
// overwrite, or load a YAML file over the defaults with LoadParams.
type Params struct {
	// System is the simulated system name, e.g. lintf2_g1_20-1_gra_q1_sc80.
	System string `yaml:"system"`
	// Settings is the simulation-settings tag used in file names.
	Settings string `yaml:"settings"`
	// T0 is the snapshot time in ns, used in the structure file name.
	T0 int `yaml:"t0"`

	// R0 is the hexagon side length of the electrode lattice (the C-C
	// bond length for graphene).
	R0 float64 `yaml:"r0"`
	// Flat names the box axis parallel to the hexagon edges, "x" or "y".
	Flat string `yaml:"flat"`
	// Tol is the tolerance for all lattice float comparisons.
	Tol float64 `yaml:"tol"`

	// SigmaLi and SigmaC are the Lennard-Jones sizes of the ion and the
	// lattice atom.
	SigmaLi float64 `yaml:"sigma_li"`
	SigmaC  float64 `yaml:"sigma_c"`

	// IonName selects the transferable ions by atom name.
	IonName string `yaml:"ion_name"`
	// SurfaceName selects the atoms of the electrode surface lattice.
	SurfaceName string `yaml:"surface_name"`
	// ElectrodeResPrefix excludes electrode residues from the
	// electrolyte ("gra" excludes gra1, gra2, ...).
	ElectrodeResPrefix string `yaml:"electrode_res_prefix"`

	// PlotFile, when non-empty, is the path of a top-view diagnostic
	// PNG of the selection.
	PlotFile string `yaml:"plot_file"`
}

// DefaultParams returns the parameters of the production setup:
// graphene electrode (r0 = 1.42 Å, edges along x), OPLS-AA
// Lennard-Jones sizes for Li and graphene carbon, and the original
// selection names.
func DefaultParams() Params {
	return Params{
		Settings:           "pr_nvt423_nh",
		R0:                 1.42,
		Flat:               "x",
		Tol:                1e-3,
		SigmaLi:            2.12645,
		SigmaC:             3.55,
		IonName:            "Li",
		SurfaceName:        "AB1",
		ElectrodeResPrefix: "gra",
	}
}

// LoadParams reads a YAML file over DefaultParams, so a parameter file
// only lists what differs from the defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("transfer: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Params{}, fmt.Errorf("transfer: %s: %w", path, err)
	}
	return p, nil
}

// Validate checks every parameter the run depends on.
func (p Params) Validate() error {
	if p.System == "" {
		return fmt.Errorf("%w: system must be set", ErrParam)
	}
	if p.Settings == "" {
		return fmt.Errorf("%w: settings must be set", ErrParam)
	}
	if p.T0 < 0 {
		return fmt.Errorf("%w: t0 = %d ns", ErrParam, p.T0)
	}
	if p.R0 <= 0 || math.IsNaN(p.R0) {
		return fmt.Errorf("%w: r0 = %g", ErrParam, p.R0)
	}
	if p.Flat != "x" && p.Flat != "y" {
		return fmt.Errorf("%w: flat must be \"x\" or \"y\", got %q", ErrParam, p.Flat)
	}
	if p.Tol <= 0 || math.IsNaN(p.Tol) {
		return fmt.Errorf("%w: tol = %g", ErrParam, p.Tol)
	}
	if p.SigmaLi <= 0 || p.SigmaC <= 0 {
		return fmt.Errorf("%w: sigma_li = %g, sigma_c = %g", ErrParam, p.SigmaLi, p.SigmaC)
	}
	if p.IonName == "" || p.SurfaceName == "" {
		return fmt.Errorf("%w: ion_name and surface_name must be set", ErrParam)
	}
	if _, err := p.Derived(); err != nil {
		return err
	}
	return nil
}

// FlatAxis maps the textual axis selector to the lattice axis type.
// Validate has already rejected anything but "x" and "y".
func (p Params) FlatAxis() hexlattice.Axis {
	if p.Flat == "y" {
		return hexlattice.AxisY
	}
	return hexlattice.AxisX
}

// Derived holds the quantities computed from the force-field constants.
// All are in Ångström.
type Derived struct {
	// SigmaLiC is the combined Lennard-Jones size √(σLi·σC)
	// (Good-Hope combining rule).
	SigmaLiC float64
	// REq is the Lennard-Jones equilibrium distance 2^(1/6)·σLiC.
	REq float64
	// RCut is the neighbor-search cutoff REq + σLi.
	RCut float64
	// ZShift is the surface offset √(REq² − R0²): placing the ion this
	// far above a hexagon center puts it at REq from the six lattice
	// atoms around the face.
	ZShift float64
}

// Derived computes the combined force-field quantities. ErrGeometry is
// returned when REq ≤ R0, which would make the surface offset
// imaginary.
func (p Params) Derived() (Derived, error) {
	d := Derived{SigmaLiC: math.Sqrt(p.SigmaLi * p.SigmaC)}
	d.REq = math.Exp2(1.0/6.0) * d.SigmaLiC
	d.RCut = d.REq + p.SigmaLi
	if d.REq <= p.R0 {
		return Derived{}, fmt.Errorf("%w: r_eq = %g, r0 = %g", ErrGeometry, d.REq, p.R0)
	}
	d.ZShift = math.Sqrt(d.REq*d.REq - p.R0*p.R0)
	return d, nil
}
