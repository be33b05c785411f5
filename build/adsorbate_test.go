package build

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"slabgen/atoms"
)

func TestAddAdsorbate(t *testing.T) {
	slab, err := atoms.New(
		[]string{"Ce", "O"},
		[]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 3}},
		mat.NewDense(3, 3, []float64{6, 0, 0, 0, 6, 0, 0, 0, 20}),
		[3]bool{true, true, false},
	)
	if err != nil {
		t.Fatal(err)
	}
	oh, err := Molecule("OH")
	if err != nil {
		t.Fatal(err)
	}
	AddAdsorbate(slab, oh, 2, [2]float64{1.5, -0.5})
	if slab.Len() != 4 {
		t.Errorf("got %d atoms, wanted 4\n", slab.Len())
	}
	// first adsorbate atom at the given lateral position, 2 above the
	// topmost slab atom (z = 3)
	want := r3.Vec{X: 1.5, Y: -0.5, Z: 5}
	if got := slab.Position(2); !vecNear(got, want, eps) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	// the rest of the molecule keeps its internal geometry
	want = r3.Vec{X: 1.5, Y: -0.5, Z: 5 - 0.97907}
	if got := slab.Position(3); !vecNear(got, want, 1e-10) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	// source molecule untouched
	if got := oh.Position(0); !vecNear(got, r3.Vec{Z: 0.108786}, eps) {
		t.Errorf("adsorbate mutated: got %v\n", got)
	}
}

func TestSort(t *testing.T) {
	a, err := atoms.New(
		[]string{"O", "Ce", "H", "Ce"},
		[]r3.Vec{{X: 1}, {X: 2}, {X: 3}, {X: 4}},
		nil, [3]bool{},
	)
	if err != nil {
		t.Fatal(err)
	}
	got := Sort(a)
	wantSym := []string{"Ce", "Ce", "H", "O"}
	if sym := got.Symbols(); !reflect.DeepEqual(sym, wantSym) {
		t.Errorf("got %v, wanted %v\n", sym, wantSym)
	}
	// stable: the two Ce keep their relative order
	wantX := []float64{2, 4, 3, 1}
	for i, want := range wantX {
		if x := got.Position(i).X; x != want {
			t.Errorf("atom %d: got x %v, wanted %v\n", i, x, want)
		}
	}
	// input untouched
	if a.Symbol(0) != "O" {
		t.Errorf("Sort mutated its input\n")
	}
}
