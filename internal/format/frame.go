package format

import (
	"bytes"
	"fmt"
	"math"

	"github.com/joshuapare/pngkit/internal/buf"
)

// FramePrefix is the fixed leading part of a chunk frame.
type FramePrefix struct {
	Length uint32
	Type   [TypeFieldSize]byte
}

// ReadFramePrefix decodes the length and type fields of the frame starting at
// off. It reports false when fewer than FramePrefixSize bytes remain.
func ReadFramePrefix(b []byte, off int) (FramePrefix, bool) {
	head, ok := buf.Slice(b, off, FramePrefixSize)
	if !ok {
		return FramePrefix{}, false
	}
	var p FramePrefix
	p.Length = buf.U32BE(head[FrameLengthOffset:])
	copy(p.Type[:], head[FrameTypeOffset:FrameTypeOffset+TypeFieldSize])
	return p, true
}

// FrameSize returns the total on-wire size of a frame carrying length bytes
// of data. It reports false when the size does not fit in an int.
func FrameSize(length uint32) (int, bool) {
	if uint64(length) > uint64(math.MaxInt-FrameOverhead) {
		return 0, false
	}
	return FrameOverhead + int(length), true
}

// AppendFrame appends a complete frame for typ and data to dst. The caller
// guarantees len(data) fits in 32 bits.
func AppendFrame(dst []byte, typ [TypeFieldSize]byte, data []byte) []byte {
	dst = buf.AppendU32BE(dst, uint32(len(data)))
	dst = append(dst, typ[:]...)
	dst = append(dst, data...)
	return buf.AppendU32BE(dst, ChecksumTypeData(typ, data))
}

// CheckSignature validates the leading signature of b.
func CheckSignature(b []byte) error {
	if len(b) < SignatureSize {
		return fmt.Errorf("signature: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], Signature[:]) {
		return fmt.Errorf("signature: %w", ErrSignatureMismatch)
	}
	return nil
}
