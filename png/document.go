package png

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/pngkit/internal/buf"
	"github.com/joshuapare/pngkit/internal/format"
)

// Signature is the fixed eight-byte header of every document.
var Signature = format.Signature

// Document is a parsed container: the signature followed by chunks in file
// order. The zero value is an empty document ready to use.
//
// A Document is not safe for concurrent mutation. Pointers returned by
// ChunkByType point into the document and are invalidated by AppendChunk and
// RemoveChunk.
type Document struct {
	chunks []Chunk
}

// New returns an empty document holding only the signature.
func New() *Document {
	return &Document{}
}

// NewWithChunks returns a document holding chunks in the given order.
func NewWithChunks(chunks ...Chunk) *Document {
	return &Document{chunks: slices.Clone(chunks)}
}

// Parse decodes a whole container. Decoding is all-or-nothing: on error no
// document is returned.
//
// Chunk-level failures keep their kind and gain the chunk index and offset.
// Bytes after the last complete frame that cannot form another one yield
// ErrTrailingData wrapping the frame-level cause, so both kinds match under
// errors.Is.
func Parse(b []byte) (*Document, error) {
	if err := format.CheckSignature(b); err != nil {
		return nil, &Error{Kind: KindSignatureMismatch, Msg: "bad container signature", Err: err}
	}

	d := New()
	off := format.SignatureSize
	for idx := 0; off < len(b); idx++ {
		prefix, ok := format.ReadFramePrefix(b, off)
		if !ok {
			return nil, trailingData(idx, off, &Error{
				Kind: KindFrameTooShort,
				Msg:  fmt.Sprintf("%d bytes left, need at least %d", len(b)-off, format.FramePrefixSize),
			})
		}
		size, ok := format.FrameSize(prefix.Length)
		if !ok || !buf.Has(b, off, size) {
			return nil, trailingData(idx, off, &Error{
				Kind: KindLengthMismatch,
				Msg: fmt.Sprintf("declared %d data bytes, %d bytes remain after the prefix",
					prefix.Length, len(b)-off-format.FramePrefixSize),
			})
		}
		c, err := ParseChunk(b[off : off+size])
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset 0x%x: %w", idx, off, err)
		}
		d.chunks = append(d.chunks, c)
		off += size
	}
	return d, nil
}

func trailingData(idx, off int, cause error) error {
	return &Error{
		Kind: KindTrailingData,
		Msg:  fmt.Sprintf("chunk %d at offset 0x%x: trailing data", idx, off),
		Err:  cause,
	}
}

// Header returns the signature the document is encoded with.
func (d *Document) Header() [format.SignatureSize]byte { return Signature }

// Len returns the number of chunks.
func (d *Document) Len() int { return len(d.chunks) }

// Chunks returns the chunks in document order. The returned slice is a copy;
// changing it does not change the document.
func (d *Document) Chunks() []Chunk { return slices.Clone(d.chunks) }

// Size returns the number of bytes Bytes produces.
func (d *Document) Size() int {
	n := format.SignatureSize
	for _, c := range d.chunks {
		n += c.FrameSize()
	}
	return n
}

// Bytes encodes the document: the signature followed by every chunk frame.
func (d *Document) Bytes() []byte {
	out := make([]byte, 0, d.Size())
	out = append(out, Signature[:]...)
	for _, c := range d.chunks {
		out = c.AppendTo(out)
	}
	return out
}

// AppendChunk adds c after the last chunk. Type codes need not be unique.
func (d *Document) AppendChunk(c Chunk) {
	d.chunks = append(d.chunks, c)
}

// ChunkByType returns the first chunk whose type code reads typ. A typ that is
// not a well-formed type code matches nothing; validate it with ParseTypeCode
// to tell the two cases apart.
func (d *Document) ChunkByType(typ string) (*Chunk, error) {
	i := d.indexOf(typ)
	if i < 0 {
		return nil, notFound(typ)
	}
	return &d.chunks[i], nil
}

// RemoveChunk removes the first chunk whose type code reads typ and returns
// it. The order of the remaining chunks is unchanged.
func (d *Document) RemoveChunk(typ string) (Chunk, error) {
	i := d.indexOf(typ)
	if i < 0 {
		return Chunk{}, notFound(typ)
	}
	removed := d.chunks[i]
	d.chunks = slices.Delete(d.chunks, i, i+1)
	return removed, nil
}

// ChunksByType returns every chunk whose type code reads typ, in order.
func (d *Document) ChunksByType(typ string) []Chunk {
	var out []Chunk
	for _, c := range d.chunks {
		if c.typ.String() == typ {
			out = append(out, c)
		}
	}
	return out
}

func (d *Document) indexOf(typ string) int {
	return slices.IndexFunc(d.chunks, func(c Chunk) bool {
		return c.typ.String() == typ
	})
}

func notFound(typ string) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("type code %q not found", typ)}
}

// Equal reports whether both documents hold equal chunks in the same order.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return slices.EqualFunc(d.chunks, other.chunks, Chunk.Equal)
}

// Validate checks every chunk's reserved bit, which decoding tolerates. It
// returns nil when all chunks are valid, otherwise one ErrReservedBit per
// offending chunk joined together.
func (d *Document) Validate() error {
	var errs []error
	for i, c := range d.chunks {
		if !c.typ.IsValid() {
			errs = append(errs, &Error{
				Kind: KindReservedBit,
				Msg:  fmt.Sprintf("chunk %d (%s): reserved bit set", i, c.typ),
			})
		}
	}
	return errors.Join(errs...)
}

func (d *Document) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Document{signature: % x, chunks: %d}", Signature[:], len(d.chunks))
	for i, c := range d.chunks {
		fmt.Fprintf(&sb, "\n  [%d] %s", i, c)
	}
	return sb.String()
}
