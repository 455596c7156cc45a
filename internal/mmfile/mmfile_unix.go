//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map opens path and maps it read-only. The size is checked against limit on
// the opened descriptor, so a file swapped in after a stat cannot slip past.
func Map(path string, limit int64) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if err := checkLimit(path, size, limit); err != nil {
		return nil, err
	}
	if size == 0 {
		// mmap rejects zero-length mappings
		return &Region{}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("%w: %s is %d bytes, more than the address space", ErrTooLarge, path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	return &Region{data: data, unmap: munmap}, nil
}

func munmap(b []byte) error {
	if err := unix.Munmap(b); err != nil && !errors.Is(err, unix.EINVAL) {
		return fmt.Errorf("mmfile: munmap: %w", err)
	}
	return nil
}
