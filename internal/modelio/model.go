package modelio

import (
	"fmt"
	"io"

	"github.com/banshee-data/amazer/internal/simplicial"
	"github.com/banshee-data/amazer/internal/valuation"
)

// WriteModel writes the model artifact: the point count, every point
// coordinate, the atom names and every simplex with its id, point indices
// and labels. Simplices appear in position order, one per line.
func WriteModel(w io.Writer, c *simplicial.Complex, v *valuation.Valuation) error {
	if len(v.Labels) != len(c.Simplices) {
		return fmt.Errorf("%w: model: %d label sets for %d simplices", ErrOutput, len(v.Labels), len(c.Simplices))
	}

	names := quoteAll(v.Names)
	quoted := make(map[string][]byte, len(names))
	for i, n := range v.Names {
		quoted[n] = names[i]
	}

	jw := newJSONWriter(w)
	jw.raw("{\n\"numberOfPoints\": ")
	jw.appendInt(len(c.Points))
	jw.raw(",\n\"coordinatesOfPoints\": [")
	for i, p := range c.Points {
		if i > 0 {
			jw.raw(",")
		}
		jw.raw("\n")
		jw.vec(p)
	}
	jw.raw("\n],\n\"atomNames\": [")
	for i, q := range names {
		if i > 0 {
			jw.raw(", ")
		}
		jw.quoted(q)
	}
	jw.raw("],\n\"simplexes\": [")
	for i, s := range c.Simplices {
		if i > 0 {
			jw.raw(",")
		}
		jw.raw("\n{\"id\": \"s")
		jw.appendInt(s.ID)
		jw.raw("\", \"points\": [")
		for j, p := range s.Points {
			if j > 0 {
				jw.raw(",")
			}
			jw.appendInt(p)
		}
		jw.raw("], \"atoms\": [")
		for j, label := range v.Labels[i] {
			if j > 0 {
				jw.raw(",")
			}
			q, ok := quoted[label]
			if !ok {
				q = quote(label)
			}
			jw.quoted(q)
		}
		jw.raw("]}")
	}
	jw.raw("\n]\n}\n")
	return jw.close("model")
}
