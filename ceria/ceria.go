// Package ceria generates atomic models of cerium dioxide: bulk unit
// cells and surface slabs with an optional water adsorbate, ready for
// export to electronic-structure input formats.
package ceria

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"slabgen/atoms"
	"slabgen/build"
)

// DefaultCellParam is the computed lattice parameter of cubic ceria in
// angstroms (experiment: 5.4124)
const DefaultCellParam = 5.429832

// Values for Options.Water. Anything other than WaterAssociative leaves
// the slab bare; dissociated water is not implemented.
const (
	WaterAssociative = "a"
	WaterNone        = "n"
)

const (
	// tolerance absorbing atoms placed right on the cell boundary
	wrapTol = 0.05
	// height of the water oxygen above the topmost surface atom
	waterHeight = 2.0
	// lateral offset from the anchor atom, landing the oxygen near a
	// surface cerium without a general site search
	waterOffsetX = 0.6
	waterOffsetY = -0.3
)

// water orientation, chosen so the dipole points toward the surface;
// applied about z, x, then y
const (
	waterRotZ = 80.0
	waterRotX = -60.0
	waterRotY = 50.0
)

// Primitive generates the 2-atom primitive fluorite cell of CeO2 at
// lattice parameter cellparam, with the cerium moved to the body center
func Primitive(cellparam float64) (*atoms.Atoms, error) {
	ceo2, err := build.Bulk("CeO2", "fluorite", cellparam)
	if err != nil {
		return nil, err
	}
	scaled, err := ceo2.ScaledPositions()
	if err != nil {
		return nil, err
	}
	// the prototype puts Ce on the corner; the canonical origin choice
	// for cutting the (111) facet has it at the body center
	scaled[0] = r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	if err := ceo2.SetScaledPositions(scaled); err != nil {
		return nil, err
	}
	return ceo2, nil
}

// Crystallographic generates the 12-atom conventional (cubic) cell of
// CeO2 at lattice parameter cellparam: cerium on the fcc sites, oxygen
// on the eight tetrahedral sites
func Crystallographic(cellparam float64) (*atoms.Atoms, error) {
	if cellparam <= 0 {
		return nil, build.ErrLatticeParam
	}
	symbols := []string{
		"Ce", "Ce", "Ce", "Ce",
		"O", "O", "O", "O", "O", "O", "O", "O",
	}
	scaled := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: 0.5, Y: 0, Z: 0.5},
		{X: 0, Y: 0.5, Z: 0.5},
		{X: 0.25, Y: 0.25, Z: 0.25},
		{X: 0.25, Y: 0.25, Z: 0.75},
		{X: 0.25, Y: 0.75, Z: 0.25},
		{X: 0.75, Y: 0.25, Z: 0.25},
		{X: 0.25, Y: 0.75, Z: 0.75},
		{X: 0.75, Y: 0.25, Z: 0.75},
		{X: 0.75, Y: 0.75, Z: 0.25},
		{X: 0.75, Y: 0.75, Z: 0.75},
	}
	cell := mat.NewDense(3, 3, []float64{
		cellparam, 0, 0,
		0, cellparam, 0,
		0, 0, cellparam,
	})
	return atoms.NewScaled(symbols, scaled, cell, [3]bool{true, true, true})
}

// Orthogonalize111 transforms a ceria (111) slab from its tetragonal
// cell to an orthogonal one by zeroing the off-diagonal lattice
// component and wrapping the atoms that fall outside the box back in.
// The slab is mutated in place and returned for chaining. Atoms
// displaced by more than one lattice length are not handled.
func Orthogonalize111(slab *atoms.Atoms) *atoms.Atoms {
	cell := slab.Cell()
	cell.Set(1, 0, 0)
	// positions are kept, so atoms near the upper boundary can now sit
	// outside the box
	slab.SetCell(cell, false)
	for i := 0; i < slab.Len(); i++ {
		p := slab.Position(i)
		if d := cell.At(0, 0); p.X >= d-wrapTol {
			p.X -= d
		}
		if d := cell.At(1, 1); p.Y >= d-wrapTol {
			p.Y -= d
		}
		if d := cell.At(2, 2); p.Z >= d-wrapTol {
			p.Z -= d
		}
		slab.SetPosition(i, p)
	}
	return slab
}

// Options collects the slab parameters. DefaultOptions returns the
// standard set; zero values are not meaningful.
type Options struct {
	CellParam   float64 // lattice parameter in angstroms
	Vacuum      float64 // vacuum padding on each side of the slab
	Layers      int     // formula-unit layers to cut
	Repetitions [3]int  // supercell tiling counts
	Indices     [3]int  // Miller indices of the exposed facet
	// Water selects the adsorbed water species; only WaterAssociative
	// places a molecule, every other value yields a bare slab
	Water string
}

// DefaultOptions returns the slab parameters for the standard four-layer
// ceria (111) cell with associatively adsorbed water
func DefaultOptions() Options {
	return Options{
		CellParam:   DefaultCellParam,
		Vacuum:      10,
		Layers:      4,
		Repetitions: [3]int{1, 1, 1},
		Indices:     [3]int{1, 1, 1},
		Water:       WaterAssociative,
	}
}

// Slab generates a ceria slab exposing the requested facet, tiled into a
// supercell, optionally with a water molecule on top, atoms sorted by
// species. The primitive cell only exposes the correct termination for
// the (111) facet; every other facet is cut from the conventional cell.
func Slab(o Options) (*atoms.Atoms, error) {
	var (
		bulk *atoms.Atoms
		err  error
	)
	if o.Indices == [3]int{1, 1, 1} {
		bulk, err = Primitive(o.CellParam)
	} else {
		bulk, err = Crystallographic(o.CellParam)
	}
	if err != nil {
		return nil, err
	}
	slab, err := build.Surface(bulk, o.Indices, o.Layers, o.Vacuum)
	if err != nil {
		return nil, err
	}
	slab, err = slab.Repeat(o.Repetitions)
	if err != nil {
		return nil, err
	}
	if o.Water == WaterAssociative {
		water, err := build.Molecule("H2O")
		if err != nil {
			return nil, err
		}
		water.Rotate(waterRotZ, atoms.ZAxis)
		water.Rotate(waterRotX, atoms.XAxis)
		water.Rotate(waterRotY, atoms.YAxis)
		anchor := slab.Position(slab.Len() - 3)
		build.AddAdsorbate(slab, water, waterHeight,
			[2]float64{anchor.X + waterOffsetX, anchor.Y + waterOffsetY})
	}
	return build.Sort(slab), nil
}
