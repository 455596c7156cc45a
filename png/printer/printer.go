// Package printer renders documents and chunks for humans and scripts.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/pngkit/png"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces before each chunk line (text format only).
	// Default: 2
	IndentSize int

	// MaxDataBytes is the payload size from which data is replaced by a byte
	// count. Set to 0 to always print the payload.
	// Default: png.DisplayThreshold (64)
	MaxDataBytes int

	// ShowCRC includes each chunk's CRC.
	// Default: false
	ShowCRC bool

	// ShowFlags includes the four type code properties.
	// Default: false
	ShowFlags bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		IndentSize:   DefaultIndentSize,
		MaxDataBytes: png.DisplayThreshold,
	}
}

// Printer handles formatted output of documents.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	d, _ := png.Open("image.png", png.OpenOptions{})
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintDocument(d)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintDocument prints the signature and every chunk in order.
func (p *Printer) PrintDocument(d *png.Document) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printDocumentJSON(d)
	case FormatText:
		return p.printDocumentText(d)
	default:
		return p.printDocumentText(d)
	}
}

// PrintChunk prints a single chunk.
func (p *Printer) PrintChunk(c png.Chunk) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printChunkJSON(c)
	case FormatText:
		return p.printChunkText(c, 0)
	default:
		return p.printChunkText(c, 0)
	}
}

// PrintChunkByType prints the first chunk of type typ.
func (p *Printer) PrintChunkByType(d *png.Document, typ string) error {
	c, err := d.ChunkByType(typ)
	if err != nil {
		return fmt.Errorf("find chunk %q: %w", typ, err)
	}
	return p.PrintChunk(*c)
}

// flagNames lists the set flags of t in byte order.
func flagNames(t png.TypeCode) []string {
	names := make([]string, 0, 4)
	if t.IsCritical() {
		names = append(names, "critical")
	} else {
		names = append(names, "ancillary")
	}
	if t.IsPublic() {
		names = append(names, "public")
	} else {
		names = append(names, "private")
	}
	if !t.IsReservedBitValid() {
		names = append(names, "reserved-bit-invalid")
	}
	if t.IsSafeToCopy() {
		names = append(names, "safe-to-copy")
	} else {
		names = append(names, "unsafe-to-copy")
	}
	return names
}
