// Package mmfile loads container files into memory for a single parse. On
// Unix the file is memory-mapped read-only; elsewhere it is read in full.
package mmfile

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned when a file exceeds the caller's size limit.
var ErrTooLarge = errors.New("mmfile: file exceeds size limit")

// Region is a loaded file. Its bytes are valid until Close.
type Region struct {
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the file contents. The slice must not be retained past Close.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the file size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Close releases the region. Calling it more than once is a no-op.
func (r *Region) Close() error {
	data := r.data
	r.data = nil
	if data == nil || r.unmap == nil {
		return nil
	}
	return r.unmap(data)
}

// checkLimit rejects sizes above limit; a limit of zero or less disables it.
func checkLimit(path string, size, limit int64) error {
	if limit > 0 && size > limit {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooLarge, path, size, limit)
	}
	return nil
}
