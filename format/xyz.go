package format

import (
	"fmt"
	"io"
	"strings"

	"slabgen/atoms"
)

// WriteXYZ writes a in the plain XYZ format. An empty comment is
// replaced by the chemical formula.
func WriteXYZ(w io.Writer, a *atoms.Atoms, comment string) error {
	if comment == "" {
		comment = a.Formula()
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d\n%s\n", a.Len(), comment)
	for i := 0; i < a.Len(); i++ {
		p := a.Position(i)
		fmt.Fprintf(&buf, "%-2s %14.8f %14.8f %14.8f\n",
			a.Symbol(i), p.X, p.Y, p.Z)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
