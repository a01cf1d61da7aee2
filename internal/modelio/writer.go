// Package modelio writes the model and atom-valuation artifacts.
//
// Both writers stream their output in simplex order; nothing is buffered
// beyond a single simplex or matrix row.
package modelio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrOutput wraps every failure to write an artifact.
var ErrOutput = errors.New("output write failed")

// jsonWriter appends JSON tokens to a scratch buffer and writes it out in
// chunks. The first write error sticks; later calls are no-ops.
type jsonWriter struct {
	w   io.Writer
	buf []byte
	err error
}

const flushThreshold = 32 * 1024

func newJSONWriter(w io.Writer) *jsonWriter {
	return &jsonWriter{w: w, buf: make([]byte, 0, flushThreshold+1024)}
}

func (jw *jsonWriter) raw(s string) {
	jw.buf = append(jw.buf, s...)
	jw.maybeFlush()
}

func (jw *jsonWriter) appendInt(v int) {
	jw.buf = strconv.AppendInt(jw.buf, int64(v), 10)
}

func (jw *jsonWriter) appendFloat(v float64) {
	jw.buf = strconv.AppendFloat(jw.buf, v, 'f', -1, 64)
}

func (jw *jsonWriter) appendBool(v bool) {
	jw.buf = strconv.AppendBool(jw.buf, v)
}

// quoted appends a string literal already encoded by quote.
func (jw *jsonWriter) quoted(q []byte) {
	jw.buf = append(jw.buf, q...)
}

func (jw *jsonWriter) vec(p r3.Vec) {
	jw.buf = append(jw.buf, '[')
	jw.appendFloat(p.X)
	jw.buf = append(jw.buf, ',')
	jw.appendFloat(p.Y)
	jw.buf = append(jw.buf, ',')
	jw.appendFloat(p.Z)
	jw.buf = append(jw.buf, ']')
}

func (jw *jsonWriter) maybeFlush() {
	if len(jw.buf) >= flushThreshold {
		jw.flush()
	}
}

func (jw *jsonWriter) flush() {
	if jw.err == nil && len(jw.buf) > 0 {
		_, jw.err = jw.w.Write(jw.buf)
	}
	jw.buf = jw.buf[:0]
}

// close flushes what is left and reports the first error, wrapped in
// ErrOutput.
func (jw *jsonWriter) close(artifact string) error {
	jw.flush()
	if jw.err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutput, artifact, jw.err)
	}
	return nil
}

// quote returns the JSON encoding of s.
func quote(s string) []byte {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal cannot fail on a string.
		panic(err)
	}
	return b
}

func quoteAll(names []string) [][]byte {
	out := make([][]byte, len(names))
	for i, n := range names {
		out[i] = quote(n)
	}
	return out
}
