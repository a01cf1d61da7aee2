package modelio

import (
	"fmt"
	"io"

	"github.com/banshee-data/amazer/internal/valuation"
)

// WriteAtoms writes the valuation artifact: one key per atom name, in
// v.Names order, each holding one boolean per simplex.
func WriteAtoms(w io.Writer, v *valuation.Valuation) error {
	if len(v.Matrix) != len(v.Names) {
		return fmt.Errorf("%w: atoms: %d rows for %d names", ErrOutput, len(v.Matrix), len(v.Names))
	}

	jw := newJSONWriter(w)
	jw.raw("{")
	for i, name := range v.Names {
		if i > 0 {
			jw.raw(",")
		}
		jw.raw("\n")
		jw.quoted(quote(name))
		jw.raw(": [")
		for j, b := range v.Matrix[i] {
			if j > 0 {
				jw.raw(",")
			}
			jw.appendBool(b)
			if j%64 == 63 {
				jw.maybeFlush()
			}
		}
		jw.raw("]")
	}
	jw.raw("\n}\n")
	return jw.close("atoms")
}
