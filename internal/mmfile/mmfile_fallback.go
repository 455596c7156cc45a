//go:build !unix

package mmfile

import (
	"io"
	"os"
)

// Map reads the whole file; this platform has no mmap support here.
func Map(path string, limit int64) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if err := checkLimit(path, info.Size(), limit); err != nil {
		return nil, err
	}
	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return &Region{data: data}, nil
}
