package build

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"slabgen/atoms"
)

// tolerance for snapping fractional coordinates and for the in-plane
// basis optimization
const surfTol = 1e-10

// floorDiv is integer division rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv, always taking the sign of b
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// extGCD returns Bezout coefficients x, y with x*a + y*b = gcd(a, b);
// for negative inputs the combination can come out as -gcd(a, b). The
// basis construction only needs the linear relation, not the sign.
func extGCD(a, b int) (int, int) {
	if b == 0 {
		return 1, 0
	}
	if floorMod(a, b) == 0 {
		return 0, 1
	}
	x, y := extGCD(b, floorMod(a, b))
	return y, x - y*floorDiv(a, b)
}

// surfaceBasis builds a unimodular integer basis for the cell of lattice
// whose first two vectors span the (h k l) plane
func surfaceBasis(lattice *atoms.Atoms, h, k, l int) (c1, c2, c3 [3]int) {
	h0, k0, l0 := h == 0, k == 0, l == 0
	if h0 && k0 || h0 && l0 || k0 && l0 {
		// two indices zero: the cut is along a lattice plane and the
		// basis is a permutation of the identity
		switch {
		case !h0:
			c1, c2, c3 = [3]int{0, 1, 0}, [3]int{0, 0, 1}, [3]int{1, 0, 0}
		case !k0:
			c1, c2, c3 = [3]int{0, 0, 1}, [3]int{1, 0, 0}, [3]int{0, 1, 0}
		default:
			c1, c2, c3 = [3]int{1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, 1}
		}
		return
	}
	p, q := extGCD(k, l)
	a1 := lattice.LatticeVector(0)
	a2 := lattice.LatticeVector(1)
	a3 := lattice.LatticeVector(2)
	// dot products of the candidate in-plane vectors; dot(c1,c2) is
	// k1 + i*k2 over integer i, minimized below
	ka1ha2 := r3.Sub(r3.Scale(float64(k), a1), r3.Scale(float64(h), a2))
	la1ha3 := r3.Sub(r3.Scale(float64(l), a1), r3.Scale(float64(h), a3))
	la2ka3 := r3.Sub(r3.Scale(float64(l), a2), r3.Scale(float64(k), a3))
	k1 := r3.Dot(r3.Add(r3.Scale(float64(p), ka1ha2), r3.Scale(float64(q), la1ha3)), la2ka3)
	k2 := r3.Dot(r3.Sub(r3.Scale(float64(l), ka1ha2), r3.Scale(float64(k), la1ha3)), la2ka3)
	if math.Abs(k2) > surfTol {
		// round half to even: the fcc (111) cut lands exactly on .5
		// and the tie has to break toward the compact basis
		i := -int(math.RoundToEven(k1 / k2))
		p, q = p+i*l, q-i*k
	}
	a, b := extGCD(p*k+q*l, h)
	g := gcd(l, k)
	c1 = [3]int{p*k + q*l, -p * h, -q * h}
	c2 = [3]int{0, floorDiv(l, g), floorDiv(-k, g)}
	c3 = [3]int{b, a * p, a * q}
	return
}

// Surface cuts a slab exposing the (indices) facet of the given bulk
// lattice, layers repetitions thick, with vacuum padding on each side
// along the surface normal. The returned cell has its first lattice
// vector along x, the second in the xy plane, and the third along z;
// periodic boundaries are enabled in the plane only.
func Surface(lattice *atoms.Atoms, indices [3]int, layers int, vacuum float64) (*atoms.Atoms, error) {
	if indices == [3]int{0, 0, 0} {
		return nil, ErrZeroIndices
	}
	if layers < 1 {
		return nil, ErrBadLayers
	}
	c1, c2, c3 := surfaceBasis(lattice, indices[0], indices[1], indices[2])
	basis := mat.NewDense(3, 3, []float64{
		float64(c1[0]), float64(c1[1]), float64(c1[2]),
		float64(c2[0]), float64(c2[1]), float64(c2[2]),
		float64(c3[0]), float64(c3[1]), float64(c3[2]),
	})
	surf := lattice.Copy()

	// re-express the fractional coordinates in the new basis and wrap
	// them into the cell
	scaled, err := surf.ScaledPositions()
	if err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(basis); err != nil {
		return nil, err
	}
	for i, s := range scaled {
		t := r3.Vec{
			X: s.X*inv.At(0, 0) + s.Y*inv.At(1, 0) + s.Z*inv.At(2, 0),
			Y: s.X*inv.At(0, 1) + s.Y*inv.At(1, 1) + s.Z*inv.At(2, 1),
			Z: s.X*inv.At(0, 2) + s.Y*inv.At(1, 2) + s.Z*inv.At(2, 2),
		}
		scaled[i] = r3.Vec{
			X: t.X - math.Floor(t.X+surfTol),
			Y: t.Y - math.Floor(t.Y+surfTol),
			Z: t.Z - math.Floor(t.Z+surfTol),
		}
	}
	var newCell mat.Dense
	newCell.Mul(basis, surf.Cell())
	if err := surf.SetCell(&newCell, false); err != nil {
		return nil, err
	}
	if err := surf.SetScaledPositions(scaled); err != nil {
		return nil, err
	}

	surf, err = surf.Repeat([3]int{1, 1, layers})
	if err != nil {
		return nil, err
	}

	// replace the third vector by its component along the surface
	// normal, then rotate the cell to the standard orientation
	a1 := surf.LatticeVector(0)
	a2 := surf.LatticeVector(1)
	a3 := surf.LatticeVector(2)
	n := r3.Cross(a1, a2)
	a3 = r3.Scale(r3.Dot(a3, n)/r3.Norm2(n), n)
	cell := mat.NewDense(3, 3, []float64{
		a1.X, a1.Y, a1.Z,
		a2.X, a2.Y, a2.Z,
		a3.X, a3.Y, a3.Z,
	})
	if err := surf.SetCell(cell, false); err != nil {
		return nil, err
	}
	na1 := r3.Norm(a1)
	x2 := r3.Dot(a1, a2) / na1
	std := mat.NewDense(3, 3, []float64{
		na1, 0, 0,
		x2, math.Sqrt(r3.Norm2(a2) - x2*x2), 0,
		0, 0, r3.Norm(a3),
	})
	if err := surf.SetCell(std, true); err != nil {
		return nil, err
	}
	surf.SetPBC([3]bool{true, true, false})

	// wrap the in-plane coordinates into the cell
	scaled, err = surf.ScaledPositions()
	if err != nil {
		return nil, err
	}
	for i, s := range scaled {
		scaled[i] = r3.Vec{X: mod1(s.X), Y: mod1(s.Y), Z: s.Z}
	}
	if err := surf.SetScaledPositions(scaled); err != nil {
		return nil, err
	}

	if err := surf.Center(vacuum, 2); err != nil {
		return nil, err
	}
	return surf, nil
}

// mod1 wraps x into [0, 1)
func mod1(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}
	return m
}
