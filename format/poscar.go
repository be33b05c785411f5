// Package format writes atomic structures in simulation-software input
// formats.
package format

import (
	"fmt"
	"io"
	"strings"

	"slabgen/atoms"
)

// WritePOSCAR writes a in the VASP 5 POSCAR format with Cartesian
// coordinates. Consecutive runs of equal symbols become one species
// group, so the structure should be sorted first. An empty comment is
// replaced by the chemical formula.
func WritePOSCAR(w io.Writer, a *atoms.Atoms, comment string) error {
	if comment == "" {
		comment = a.Formula()
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n", comment)
	fmt.Fprintf(&buf, "%4.1f\n", 1.0)
	cell := a.Cell()
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&buf, " %20.16f %20.16f %20.16f\n",
			cell.At(i, 0), cell.At(i, 1), cell.At(i, 2))
	}
	names, counts := speciesRuns(a)
	for _, n := range names {
		fmt.Fprintf(&buf, " %4s", n)
	}
	fmt.Fprint(&buf, "\n")
	for _, c := range counts {
		fmt.Fprintf(&buf, " %4d", c)
	}
	fmt.Fprint(&buf, "\nCartesian\n")
	for i := 0; i < a.Len(); i++ {
		p := a.Position(i)
		fmt.Fprintf(&buf, " %20.16f %20.16f %20.16f\n", p.X, p.Y, p.Z)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// speciesRuns collapses consecutive equal symbols into name/count pairs
func speciesRuns(a *atoms.Atoms) (names []string, counts []int) {
	for i := 0; i < a.Len(); i++ {
		s := a.Symbol(i)
		if n := len(names); n > 0 && names[n-1] == s {
			counts[n-1]++
			continue
		}
		names = append(names, s)
		counts = append(counts, 1)
	}
	return
}
