package format

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendFrameLayout(t *testing.T) {
	typ := [TypeFieldSize]byte{'R', 'u', 'S', 't'}
	frame := AppendFrame(nil, typ, []byte("hi"))

	require.Len(t, frame, FrameOverhead+2)
	require.Equal(t, []byte{0, 0, 0, 2}, frame[FrameLengthOffset:FrameTypeOffset])
	require.Equal(t, []byte("RuSt"), frame[FrameTypeOffset:FrameDataOffset])
	require.Equal(t, []byte("hi"), frame[FrameDataOffset:FrameDataOffset+2])

	sum := ChecksumTypeData(typ, []byte("hi"))
	tail := frame[len(frame)-CRCFieldSize:]
	require.Equal(t, sum, uint32(tail[0])<<24|uint32(tail[1])<<16|uint32(tail[2])<<8|uint32(tail[3]))
}

func TestAppendFrameKeepsPrefix(t *testing.T) {
	dst := []byte{0xAA, 0xBB}
	frame := AppendFrame(dst, [TypeFieldSize]byte{'I', 'E', 'N', 'D'}, nil)
	require.Equal(t, []byte{0xAA, 0xBB, 0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}, frame)
}

func TestReadFramePrefix(t *testing.T) {
	frame := AppendFrame([]byte("junk"), [TypeFieldSize]byte{'a', 'B', 'c', 'D'}, []byte("payload"))

	p, ok := ReadFramePrefix(frame, 4)
	require.True(t, ok)
	require.Equal(t, uint32(7), p.Length)
	require.Equal(t, [TypeFieldSize]byte{'a', 'B', 'c', 'D'}, p.Type)

	_, ok = ReadFramePrefix(frame, len(frame)-FramePrefixSize+1)
	require.False(t, ok)
	_, ok = ReadFramePrefix(frame, -1)
	require.False(t, ok)
}

func TestFrameSize(t *testing.T) {
	n, ok := FrameSize(0)
	require.True(t, ok)
	require.Equal(t, FrameOverhead, n)

	n, ok = FrameSize(42)
	require.True(t, ok)
	require.Equal(t, 54, n)

	if math.MaxInt > math.MaxUint32 {
		n, ok = FrameSize(math.MaxUint32)
		require.True(t, ok)
		require.Equal(t, FrameOverhead+math.MaxUint32, n)
	}
}

func TestCheckSignature(t *testing.T) {
	require.NoError(t, CheckSignature(Signature[:]))
	require.NoError(t, CheckSignature(append(Signature[:], 1, 2, 3)))

	err := CheckSignature(Signature[:7])
	require.True(t, errors.Is(err, ErrTruncated))

	bad := Signature
	bad[1] = 'p'
	err = CheckSignature(bad[:])
	require.True(t, errors.Is(err, ErrSignatureMismatch))
}

func TestTypeLetters(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		want := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		require.Equal(t, want, IsTypeLetter(b), "byte 0x%02x", b)
	}
	require.True(t, IsUpper('R'))
	require.False(t, IsUpper('u'))
}
