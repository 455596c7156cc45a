package png

import (
	"fmt"

	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/internal/writer"
)

// DefaultMaxFileSize is the file size limit Open applies when
// OpenOptions.MaxFileSize is zero.
const DefaultMaxFileSize = 256 << 20

// OpenOptions controls how Open loads a file.
type OpenOptions struct {
	// MaxFileSize guards against loading absurdly large files.
	// Zero selects DefaultMaxFileSize; a negative value disables the check.
	MaxFileSize int64
}

// Sink receives an encoded document.
type Sink interface {
	WriteDocument(buf []byte) error
}

// Open loads and parses the file at path. The file is mapped only for the
// duration of the parse; the returned document does not reference it.
func Open(path string, opts OpenOptions) (*Document, error) {
	limit := opts.MaxFileSize
	if limit == 0 {
		limit = DefaultMaxFileSize
	}

	r, err := mmfile.Map(path, limit)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = r.Close() }()

	d, err := Parse(r.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Save encodes d and hands the bytes to s.
func (d *Document) Save(s Sink) error {
	return s.WriteDocument(d.Bytes())
}

// WriteFile encodes d and atomically replaces the file at path.
func WriteFile(path string, d *Document) error {
	if err := d.Save(&writer.FileWriter{Path: path}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
