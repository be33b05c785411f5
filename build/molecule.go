package build

import (
	"gonum.org/v1/gonum/spatial/r3"

	"slabgen/atoms"
)

// gas-phase reference geometries, coordinates in angstroms
var molecules = map[string]struct {
	symbols   []string
	positions []r3.Vec
}{
	"H2O": {
		symbols: []string{"O", "H", "H"},
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0.119262},
			{X: 0, Y: 0.763239, Z: -0.477047},
			{X: 0, Y: -0.763239, Z: -0.477047},
		},
	},
	"OH": {
		symbols: []string{"O", "H"},
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0.108786},
			{X: 0, Y: 0, Z: -0.870284},
		},
	},
	"H2": {
		symbols: []string{"H", "H"},
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0.368583},
			{X: 0, Y: 0, Z: -0.368583},
		},
	},
}

// Molecule returns an isolated copy of a named molecule with a zero cell
// and no periodicity
func Molecule(name string) (*atoms.Atoms, error) {
	m, ok := molecules[name]
	if !ok {
		return nil, ErrNoMolecule
	}
	return atoms.New(m.symbols, m.positions, nil, [3]bool{})
}
