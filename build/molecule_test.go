package build

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestMolecule(t *testing.T) {
	water, err := Molecule("H2O")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"O", "H", "H"}
	if got := water.Symbols(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	// O-H bond length of the reference geometry
	oh := r3.Norm(r3.Sub(water.Position(1), water.Position(0)))
	if !scalar.EqualWithinAbs(oh, 0.96857, 1e-4) {
		t.Errorf("got O-H %v, wanted 0.96857\n", oh)
	}
	if pbc := water.PBC(); pbc != [3]bool{} {
		t.Errorf("got pbc %v, wanted none\n", pbc)
	}
}

func TestMoleculeCopies(t *testing.T) {
	a, _ := Molecule("H2O")
	b, _ := Molecule("H2O")
	a.SetPosition(0, r3.Vec{X: 99})
	if got := b.Position(0).X; got == 99 {
		t.Error("molecules share the table geometry\n")
	}
}

func TestMoleculeUnknown(t *testing.T) {
	if _, err := Molecule("CH3OH"); err != ErrNoMolecule {
		t.Errorf("got %v, wanted %v\n", err, ErrNoMolecule)
	}
}
