// Package png reads, edits, and writes PNG-style chunk containers.
//
// # Overview
//
// A container is an eight-byte signature followed by chunks. Each chunk is
// framed on the wire as:
//
//	u32 length (big-endian) | 4-byte type code | length bytes of data | u32 CRC (big-endian)
//
// The CRC is CRC-32/IEEE over the type code and data; the length field is not
// covered. There is no chunk count, so a container ends where its last frame
// ends and decoding must consume the buffer exactly.
//
// # Key Types
//
//   - TypeCode: four ASCII letters whose cases carry the critical, public,
//     reserved and safe-to-copy flags
//   - Chunk: an immutable type code + payload pair
//   - Document: the signature plus chunks in file order
//
// # Round-trip
//
// Parse and Document.Bytes are inverses for every buffer Parse accepts:
//
//	d, err := png.Parse(data)
//	if err != nil {
//	    return err
//	}
//	bytes.Equal(d.Bytes(), data) // true
//
// # Editing
//
//	d.AppendChunk(png.NewChunk(png.MustParseTypeCode("ruSt"), []byte("hello")))
//	c, err := d.ChunkByType("ruSt")
//	removed, err := d.RemoveChunk("ruSt")
//
// Lookups match the first chunk in file order. Pointers returned by
// ChunkByType are invalidated by the next AppendChunk or RemoveChunk.
//
// # Errors
//
// Malformed input is always a returned *Error, never a panic. Branch on the
// sentinels with errors.Is or on the kind with KindOf:
//
//	if errors.Is(err, png.ErrChecksumMismatch) {
//	    // corrupted chunk
//	}
//
// The package performs no logging and holds no global mutable state.
package png
