package png

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/pngkit/internal/buf"
	"github.com/joshuapare/pngkit/internal/format"
)

// DisplayThreshold is the payload size from which DataString prints a byte
// count instead of the payload.
const DisplayThreshold = 64

// Chunk is a type code paired with an opaque payload. A Chunk is immutable
// once built; its CRC is derived on demand.
type Chunk struct {
	typ  TypeCode
	data []byte
}

// NewChunk builds a chunk from t and a copy of data.
//
// Payloads longer than 2^32-1 bytes cannot be framed; Length and Bytes are
// undefined for them.
func NewChunk(t TypeCode, data []byte) Chunk {
	var owned []byte
	if len(data) > 0 {
		owned = bytes.Clone(data)
	}
	return Chunk{typ: t, data: owned}
}

// ParseChunk decodes exactly one chunk frame. b must hold the whole frame and
// nothing else. b is never modified and the returned chunk does not alias it.
func ParseChunk(b []byte) (Chunk, error) {
	prefix, ok := format.ReadFramePrefix(b, 0)
	if !ok {
		return Chunk{}, &Error{
			Kind: KindFrameTooShort,
			Msg:  fmt.Sprintf("chunk frame too short: %d bytes, need at least %d", len(b), format.FramePrefixSize),
		}
	}
	size, ok := format.FrameSize(prefix.Length)
	if !ok || size != len(b) {
		return Chunk{}, &Error{
			Kind: KindLengthMismatch,
			Msg:  fmt.Sprintf("chunk length mismatch: declared %d data bytes, frame holds %d", prefix.Length, len(b)-format.FrameOverhead),
		}
	}
	t, err := TypeCodeFromBytes(prefix.Type)
	if err != nil {
		return Chunk{}, err
	}
	data := b[format.FrameDataOffset : format.FrameDataOffset+int(prefix.Length)]
	stored := buf.U32BE(b[len(b)-format.CRCFieldSize:])
	if computed := format.ChecksumTypeData(prefix.Type, data); computed != stored {
		return Chunk{}, &Error{
			Kind: KindChecksumMismatch,
			Msg:  fmt.Sprintf("chunk %s checksum mismatch: stored 0x%08x, computed 0x%08x", t, stored, computed),
		}
	}
	return NewChunk(t, data), nil
}

func (c Chunk) Type() TypeCode { return c.typ }

// Data returns the payload. The slice is shared with the chunk and must not
// be modified.
func (c Chunk) Data() []byte { return c.data }

// Length returns the payload size as stored in the frame's length field.
func (c Chunk) Length() uint32 { return uint32(len(c.data)) }

// CRC computes the CRC-32/IEEE over the type code and payload.
func (c Chunk) CRC() uint32 {
	return format.ChecksumTypeData(c.typ, c.data)
}

// FrameSize returns the number of bytes Bytes produces.
func (c Chunk) FrameSize() int { return format.FrameOverhead + len(c.data) }

// Bytes encodes the chunk as a frame: length, type, payload, CRC.
func (c Chunk) Bytes() []byte {
	return c.AppendTo(make([]byte, 0, c.FrameSize()))
}

// AppendTo appends the encoded frame to dst and returns the extended slice.
func (c Chunk) AppendTo(dst []byte) []byte {
	return format.AppendFrame(dst, c.typ, c.data)
}

// Fingerprint is a 64-bit xxHash of the type code and payload. Unlike CRC it
// is meant for indexing chunks, not for detecting corruption.
func (c Chunk) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.Write(c.typ[:])
	_, _ = d.Write(c.data)
	return d.Sum64()
}

// Equal reports whether both chunks have the same type code and payload.
func (c Chunk) Equal(other Chunk) bool {
	return c.typ == other.typ && bytes.Equal(c.data, other.data)
}

// DataString renders the payload for display: text with invalid UTF-8
// replaced by U+FFFD when it is shorter than DisplayThreshold, otherwise a
// byte count.
func (c Chunk) DataString() string {
	return dataString(c.data, DisplayThreshold)
}

func (c Chunk) String() string {
	return fmt.Sprintf("Chunk{type: %s, data: '%s', len: %d}", c.typ, c.DataString(), c.Length())
}

// DataStringLimit is DataString with a caller-chosen threshold. A limit of 0
// or less always renders the payload.
func (c Chunk) DataStringLimit(limit int) string {
	return dataString(c.data, limit)
}

func dataString(data []byte, limit int) string {
	if limit > 0 && len(data) >= limit {
		return fmt.Sprintf("[.. %d bytes ..]", len(data))
	}
	// invalid sequences become U+FFFD; the decoder never fails
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(data)
	return string(decoded)
}
