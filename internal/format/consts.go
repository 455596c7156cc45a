// Package format houses the low-level layout of the PNG chunk container: the
// file signature, the offsets inside a chunk frame, and the checksum that
// seals each frame. It knows nothing about typed chunks; the png package
// builds those on top of the helpers here.
package format

// Signature is the eight-byte magic at the start of every container.
// Layout:
//
//	0x00  0x89            high bit set, rejects 7-bit transports
//	0x01  'P' 'N' 'G'
//	0x04  '\r' '\n'       DOS line ending
//	0x06  0x1A            DOS end-of-file
//	0x07  '\n'            Unix line ending
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

const (
	// SignatureSize is the size of the leading signature in bytes.
	SignatureSize = 8

	// Chunk frame layout (all integers big-endian):
	//
	//	Offset  Size  Field
	//	0x00    4     data length L
	//	0x04    4     type code
	//	0x08    L     data
	//	0x08+L  4     CRC-32/IEEE over type code and data
	LengthFieldSize   = 4
	TypeFieldSize     = 4
	CRCFieldSize      = 4
	FrameLengthOffset = 0x00
	FrameTypeOffset   = 0x04
	FrameDataOffset   = 0x08

	// FramePrefixSize is the number of bytes needed to learn a frame's length and type.
	FramePrefixSize = LengthFieldSize + TypeFieldSize

	// FrameOverhead is the size of a frame carrying no data.
	FrameOverhead = FramePrefixSize + CRCFieldSize

	// CaseBit is the ASCII bit that separates lowercase from uppercase letters.
	// Each type code byte carries one property flag in it.
	CaseBit = 0x20
)
