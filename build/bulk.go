// Package build provides the structure-building primitives: bulk crystal
// prototypes, Miller-index surface cuts, named molecules, adsorbate
// placement, and atom ordering.
package build

import (
	"errors"
	"fmt"
	"regexp"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"slabgen/atoms"
)

// Errors used throughout
var (
	ErrLatticeParam = errors.New("lattice parameter must be positive")
	ErrZeroIndices  = errors.New("all Miller indices are zero")
	ErrBadLayers    = errors.New("layer count must be positive")
	ErrNoMolecule   = errors.New("unknown molecule name")
)

// prototype describes a named crystal structure: the lattice vectors in
// units of the lattice parameter and the fractional coordinates of the
// basis sites, one chemical species per site
type prototype struct {
	lattice [3][3]float64
	sites   []r3.Vec
}

var fccLattice = [3][3]float64{
	{0, 0.5, 0.5},
	{0.5, 0, 0.5},
	{0.5, 0.5, 0},
}

var cubicLattice = [3][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

var prototypes = map[string]prototype{
	"fcc": {
		lattice: fccLattice,
		sites:   []r3.Vec{{}},
	},
	"bcc": {
		lattice: [3][3]float64{
			{-0.5, 0.5, 0.5},
			{0.5, -0.5, 0.5},
			{0.5, 0.5, -0.5},
		},
		sites: []r3.Vec{{}},
	},
	"rocksalt": {
		lattice: fccLattice,
		sites:   []r3.Vec{{}, {X: 0.5, Y: 0.5, Z: 0.5}},
	},
	"cesiumchloride": {
		lattice: cubicLattice,
		sites:   []r3.Vec{{}, {X: 0.5, Y: 0.5, Z: 0.5}},
	},
	// cation on the fcc lattice, anion on the near tetrahedral site
	"fluorite": {
		lattice: fccLattice,
		sites:   []r3.Vec{{}, {X: 0.25, Y: 0.25, Z: 0.25}},
	},
}

var elemRe = regexp.MustCompile(`([A-Z][a-z]?)(\d*)`)

// parseFormula extracts the element symbols from a chemical formula like
// CeO2, in order of appearance. Counts are carried by the prototype
// sites, not the formula.
func parseFormula(formula string) (elements []string) {
	for _, m := range elemRe.FindAllStringSubmatch(formula, -1) {
		elements = append(elements, m[1])
	}
	return
}

// Bulk constructs the unit cell of a named crystal prototype at lattice
// parameter a, with the elements of formula assigned to the prototype
// sites in order. Periodic boundaries are enabled on all axes.
func Bulk(formula, structure string, a float64) (*atoms.Atoms, error) {
	if a <= 0 {
		return nil, ErrLatticeParam
	}
	proto, ok := prototypes[structure]
	if !ok {
		return nil, fmt.Errorf("Bulk: unknown prototype %q", structure)
	}
	elements := parseFormula(formula)
	if len(elements) != len(proto.sites) {
		return nil, fmt.Errorf("Bulk: formula %q has %d elements, prototype %q needs %d",
			formula, len(elements), structure, len(proto.sites))
	}
	cell := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cell.Set(i, j, a*proto.lattice[i][j])
		}
	}
	return atoms.NewScaled(elements, proto.sites, cell, [3]bool{true, true, true})
}
