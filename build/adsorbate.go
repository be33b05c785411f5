package build

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"slabgen/atoms"
)

// AddAdsorbate places a copy of adsorbate on slab so that its first atom
// sits at the lateral position (x, y) and height above the topmost slab
// atom. The slab is mutated in place.
func AddAdsorbate(slab, adsorbate *atoms.Atoms, height float64, position [2]float64) {
	var top float64
	for i := 0; i < slab.Len(); i++ {
		if z := slab.Position(i).Z; i == 0 || z > top {
			top = z
		}
	}
	ads := adsorbate.Copy()
	anchor := ads.Position(0)
	ads.Translate(r3.Sub(
		r3.Vec{X: position[0], Y: position[1], Z: top + height},
		anchor,
	))
	slab.Extend(ads)
}

// Sort returns a copy of a with the atoms ordered by chemical symbol,
// atoms of the same species keeping their relative order
func Sort(a *atoms.Atoms) *atoms.Atoms {
	order := make([]int, a.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return a.Symbol(order[i]) < a.Symbol(order[j])
	})
	symbols := make([]string, a.Len())
	positions := make([]r3.Vec, a.Len())
	for i, o := range order {
		symbols[i] = a.Symbol(o)
		positions[i] = a.Position(o)
	}
	ret, err := atoms.New(symbols, positions, a.Cell(), a.PBC())
	if err != nil {
		// lengths match by construction
		panic(err)
	}
	return ret
}
