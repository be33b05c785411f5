package build

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-12

func vecNear(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestParseFormula(t *testing.T) {
	tests := []struct {
		formula string
		want    []string
	}{
		{"CeO2", []string{"Ce", "O"}},
		{"NaCl", []string{"Na", "Cl"}},
		{"Cu", []string{"Cu"}},
		{"H2O", []string{"H", "O"}},
	}
	for _, test := range tests {
		got := parseFormula(test.formula)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestBulkFluorite(t *testing.T) {
	a, err := Bulk("CeO2", "fluorite", 5.0)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Errorf("got %d atoms, wanted 2\n", a.Len())
	}
	want := []string{"Ce", "O"}
	if got := a.Symbols(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	cell := a.Cell()
	wantCell := [3][3]float64{
		{0, 2.5, 2.5},
		{2.5, 0, 2.5},
		{2.5, 2.5, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := cell.At(i, j); !scalar.EqualWithinAbs(got, wantCell[i][j], eps) {
				t.Errorf("cell[%d][%d]: got %v, wanted %v\n", i, j, got, wantCell[i][j])
			}
		}
	}
	if !vecNear(a.Position(0), r3.Vec{}, eps) {
		t.Errorf("got %v, wanted the origin\n", a.Position(0))
	}
	// anion at a/4 (1,1,1)
	if want := (r3.Vec{X: 1.25, Y: 1.25, Z: 1.25}); !vecNear(a.Position(1), want, eps) {
		t.Errorf("got %v, wanted %v\n", a.Position(1), want)
	}
	if pbc := a.PBC(); pbc != [3]bool{true, true, true} {
		t.Errorf("got pbc %v, wanted all true\n", pbc)
	}
}

func TestBulkErrors(t *testing.T) {
	if _, err := Bulk("CeO2", "fluorite", 0); err != ErrLatticeParam {
		t.Errorf("got %v, wanted %v\n", err, ErrLatticeParam)
	}
	if _, err := Bulk("CeO2", "fluorite", -1); err != ErrLatticeParam {
		t.Errorf("got %v, wanted %v\n", err, ErrLatticeParam)
	}
	if _, err := Bulk("CeO2", "perovskite", 5); err == nil {
		t.Error("wanted an error for an unknown prototype\n")
	}
	if _, err := Bulk("Ce", "fluorite", 5); err == nil {
		t.Error("wanted an error for a formula/site mismatch\n")
	}
}

func TestBulkRocksalt(t *testing.T) {
	a, err := Bulk("NaCl", "rocksalt", 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Errorf("got %d atoms, wanted 2\n", a.Len())
	}
	// anion at the octahedral site a/2 (1,1,1)
	if want := (r3.Vec{X: 2, Y: 2, Z: 2}); !vecNear(a.Position(1), want, eps) {
		t.Errorf("got %v, wanted %v\n", a.Position(1), want)
	}
}
