// Package atoms holds an in-memory representation of a periodic atomic
// structure: an ordered list of atoms with chemical symbols and Cartesian
// positions, a 3x3 lattice matrix whose rows are the lattice vectors, and
// per-axis periodic boundary flags. Positions are in angstroms.
package atoms

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cartesian axes for rigid-body rotations
var (
	XAxis = r3.Vec{X: 1}
	YAxis = r3.Vec{Y: 1}
	ZAxis = r3.Vec{Z: 1}
)

// Errors used throughout
var (
	ErrAtomMismatch = errors.New("symbol and position counts differ")
	ErrBadCell      = errors.New("lattice matrix must be 3x3")
	ErrSingularCell = errors.New("lattice matrix is singular")
	ErrBadRepeat    = errors.New("repeat counts must be positive")
)

// Atoms is an ordered collection of atoms together with its lattice and
// periodicity. The zero cell stands for an isolated (non-periodic)
// structure; fractional coordinates are only defined while the cell is
// invertible.
type Atoms struct {
	symbols   []string
	positions []r3.Vec
	cell      *mat.Dense // rows are lattice vectors
	pbc       [3]bool
}

// New builds a structure from parallel symbol and position slices. The
// inputs are copied; a nil cell means an isolated structure.
func New(symbols []string, positions []r3.Vec, cell *mat.Dense, pbc [3]bool) (*Atoms, error) {
	if len(symbols) != len(positions) {
		return nil, ErrAtomMismatch
	}
	if cell == nil {
		cell = mat.NewDense(3, 3, nil)
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, ErrBadCell
	}
	a := &Atoms{
		symbols:   make([]string, len(symbols)),
		positions: make([]r3.Vec, len(positions)),
		cell:      mat.DenseCopyOf(cell),
		pbc:       pbc,
	}
	copy(a.symbols, symbols)
	copy(a.positions, positions)
	return a, nil
}

// NewScaled is New with the positions given as fractional coordinates of
// the cell
func NewScaled(symbols []string, scaled []r3.Vec, cell *mat.Dense, pbc [3]bool) (*Atoms, error) {
	a, err := New(symbols, make([]r3.Vec, len(scaled)), cell, pbc)
	if err != nil {
		return nil, err
	}
	for i, s := range scaled {
		a.positions[i] = a.fracToCart(s)
	}
	return a, nil
}

// Len returns the number of atoms in a
func (a *Atoms) Len() int { return len(a.positions) }

// Symbol returns the chemical symbol of atom i
func (a *Atoms) Symbol(i int) string { return a.symbols[i] }

// Symbols returns a copy of the chemical symbols in atom order
func (a *Atoms) Symbols() []string {
	ret := make([]string, len(a.symbols))
	copy(ret, a.symbols)
	return ret
}

// Position returns the Cartesian position of atom i
func (a *Atoms) Position(i int) r3.Vec { return a.positions[i] }

// SetPosition sets the Cartesian position of atom i
func (a *Atoms) SetPosition(i int, p r3.Vec) { a.positions[i] = p }

// Positions returns a copy of the Cartesian positions in atom order
func (a *Atoms) Positions() []r3.Vec {
	ret := make([]r3.Vec, len(a.positions))
	copy(ret, a.positions)
	return ret
}

// SetPositions replaces all Cartesian positions
func (a *Atoms) SetPositions(pos []r3.Vec) error {
	if len(pos) != len(a.positions) {
		return ErrAtomMismatch
	}
	copy(a.positions, pos)
	return nil
}

// Cell returns a copy of the lattice matrix
func (a *Atoms) Cell() *mat.Dense { return mat.DenseCopyOf(a.cell) }

// PBC returns the periodic boundary flags
func (a *Atoms) PBC() [3]bool { return a.pbc }

// SetPBC sets the periodic boundary flags
func (a *Atoms) SetPBC(pbc [3]bool) { a.pbc = pbc }

// LatticeVector returns row i of the lattice matrix as a vector
func (a *Atoms) LatticeVector(i int) r3.Vec {
	return r3.Vec{X: a.cell.At(i, 0), Y: a.cell.At(i, 1), Z: a.cell.At(i, 2)}
}

func (a *Atoms) fracToCart(s r3.Vec) r3.Vec {
	return r3.Add(
		r3.Scale(s.X, a.LatticeVector(0)),
		r3.Add(
			r3.Scale(s.Y, a.LatticeVector(1)),
			r3.Scale(s.Z, a.LatticeVector(2)),
		),
	)
}

// ScaledPositions returns the fractional coordinates of all atoms with
// respect to the current cell. The coordinates are only meaningful
// alongside the cell they were computed against.
func (a *Atoms) ScaledPositions() ([]r3.Vec, error) {
	var inv mat.Dense
	if err := inv.Inverse(a.cell); err != nil {
		return nil, ErrSingularCell
	}
	ret := make([]r3.Vec, len(a.positions))
	for i, p := range a.positions {
		// row vector times inverse: frac = pos . cell^-1
		ret[i] = r3.Vec{
			X: p.X*inv.At(0, 0) + p.Y*inv.At(1, 0) + p.Z*inv.At(2, 0),
			Y: p.X*inv.At(0, 1) + p.Y*inv.At(1, 1) + p.Z*inv.At(2, 1),
			Z: p.X*inv.At(0, 2) + p.Y*inv.At(1, 2) + p.Z*inv.At(2, 2),
		}
	}
	return ret, nil
}

// SetScaledPositions replaces all positions, given as fractional
// coordinates of the current cell
func (a *Atoms) SetScaledPositions(scaled []r3.Vec) error {
	if len(scaled) != len(a.positions) {
		return ErrAtomMismatch
	}
	for i, s := range scaled {
		a.positions[i] = a.fracToCart(s)
	}
	return nil
}

// SetCell replaces the lattice matrix. With scaleAtoms the fractional
// coordinates are held fixed so the Cartesian positions move with the
// cell; otherwise the positions are untouched.
func (a *Atoms) SetCell(cell *mat.Dense, scaleAtoms bool) error {
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return ErrBadCell
	}
	if scaleAtoms {
		scaled, err := a.ScaledPositions()
		if err != nil {
			return err
		}
		a.cell = mat.DenseCopyOf(cell)
		return a.SetScaledPositions(scaled)
	}
	a.cell = mat.DenseCopyOf(cell)
	return nil
}

// Translate displaces every atom by delta
func (a *Atoms) Translate(delta r3.Vec) {
	for i := range a.positions {
		a.positions[i] = r3.Add(a.positions[i], delta)
	}
}

// Rotate rotates all positions by angle degrees about axis through the
// origin, following the right-hand rule
func (a *Atoms) Rotate(angle float64, axis r3.Vec) {
	rot := r3.NewRotation(angle*math.Pi/180, axis)
	for i := range a.positions {
		a.positions[i] = rot.Rotate(a.positions[i])
	}
}

// Extend appends the atoms of other to a, keeping a's cell and
// periodicity
func (a *Atoms) Extend(other *Atoms) {
	a.symbols = append(a.symbols, other.symbols...)
	a.positions = append(a.positions, other.positions...)
}

// Copy returns a deep copy of a
func (a *Atoms) Copy() *Atoms {
	ret := &Atoms{
		symbols:   make([]string, len(a.symbols)),
		positions: make([]r3.Vec, len(a.positions)),
		cell:      mat.DenseCopyOf(a.cell),
		pbc:       a.pbc,
	}
	copy(ret.symbols, a.symbols)
	copy(ret.positions, a.positions)
	return ret
}

// Repeat tiles a into an n[0] x n[1] x n[2] supercell. The atoms are
// copied block by block, the first lattice direction varying slowest and
// the third fastest, with each block a full copy of a in the original
// atom order.
func (a *Atoms) Repeat(n [3]int) (*Atoms, error) {
	if n[0] < 1 || n[1] < 1 || n[2] < 1 {
		return nil, ErrBadRepeat
	}
	total := n[0] * n[1] * n[2]
	ret := &Atoms{
		symbols:   make([]string, 0, total*a.Len()),
		positions: make([]r3.Vec, 0, total*a.Len()),
		cell:      mat.NewDense(3, 3, nil),
		pbc:       a.pbc,
	}
	for m0 := 0; m0 < n[0]; m0++ {
		for m1 := 0; m1 < n[1]; m1++ {
			for m2 := 0; m2 < n[2]; m2++ {
				off := r3.Add(
					r3.Scale(float64(m0), a.LatticeVector(0)),
					r3.Add(
						r3.Scale(float64(m1), a.LatticeVector(1)),
						r3.Scale(float64(m2), a.LatticeVector(2)),
					),
				)
				ret.symbols = append(ret.symbols, a.symbols...)
				for _, p := range a.positions {
					ret.positions = append(ret.positions, r3.Add(p, off))
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret.cell.Set(i, j, float64(n[i])*a.cell.At(i, j))
		}
	}
	return ret, nil
}

// Center resizes the cell along one axis to the atomic extent plus
// vacuum padding on each side and moves the atoms to the middle. The
// lattice vector along axis must be orthogonal to the other two; if it
// is zero the Cartesian direction of axis is used.
func (a *Atoms) Center(vacuum float64, axis int) error {
	if axis < 0 || axis > 2 {
		return fmt.Errorf("Center: invalid axis %d", axis)
	}
	u := a.LatticeVector(axis)
	if r3.Norm(u) == 0 {
		switch axis {
		case 0:
			u = XAxis
		case 1:
			u = YAxis
		default:
			u = ZAxis
		}
	} else {
		u = r3.Unit(u)
	}
	var min, max float64
	for i, p := range a.positions {
		d := r3.Dot(p, u)
		if i == 0 || d < min {
			min = d
		}
		if i == 0 || d > max {
			max = d
		}
	}
	length := max - min + 2*vacuum
	cell := mat.DenseCopyOf(a.cell)
	cell.Set(axis, 0, length*u.X)
	cell.Set(axis, 1, length*u.Y)
	cell.Set(axis, 2, length*u.Z)
	a.cell = cell
	a.Translate(r3.Scale(vacuum-min, u))
	return nil
}

// Formula builds a chemical formula from the symbol counts, elements
// sorted alphabetically
func (a *Atoms) Formula() string {
	counts := make(map[string]int)
	for _, s := range a.symbols {
		counts[s]++
	}
	toSort := make([]string, 0, len(counts))
	for k := range counts {
		toSort = append(toSort, k)
	}
	sort.Strings(toSort)
	var name strings.Builder
	for _, k := range toSort {
		name.WriteString(k)
		if counts[k] > 1 {
			fmt.Fprintf(&name, "%d", counts[k])
		}
	}
	return name.String()
}
