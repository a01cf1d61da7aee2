package fsutil

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
)

// streamBufferSize is the bufio buffer used for artifact output.
const streamBufferSize = 64 * 1024

// WriteStream creates name on fsys and hands a buffered writer to fn. The
// buffer is flushed and the file closed on every path; when fn, the flush or
// the close fails the partially written file is removed so no truncated
// artifact is left behind.
func WriteStream(fsys FileSystem, name string, fn func(w *bufio.Writer) error) (err error) {
	if dir := filepath.Dir(name); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := fsys.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	defer func() {
		if err != nil {
			if rmErr := fsys.Remove(name); rmErr != nil {
				err = errors.Join(err, fmt.Errorf("remove partial %s: %w", name, rmErr))
			}
		}
	}()

	w := bufio.NewWriterSize(f, streamBufferSize)
	if err = fn(w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
