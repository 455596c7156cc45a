package png

import (
	"fmt"

	"github.com/joshuapare/pngkit/internal/format"
)

// TypeCode is the four-letter tag that identifies what a chunk carries.
//
// The case of each letter is a property flag: uppercase sets it, lowercase
// clears it.
//
//	Byte  Uppercase means
//	0     critical (decoders must understand it)
//	1     public (registered type)
//	2     reserved bit valid (must be uppercase in conforming files)
//	3     unsafe to copy when the critical chunks change
//
// TypeCode is a comparable value; == is byte-wise and case-sensitive.
type TypeCode [format.TypeFieldSize]byte

// TypeCodeFromBytes builds a TypeCode from raw bytes. Every byte must be an
// ASCII letter; any flag combination is accepted.
func TypeCodeFromBytes(b [format.TypeFieldSize]byte) (TypeCode, error) {
	for i, c := range b {
		if !format.IsTypeLetter(c) {
			return TypeCode{}, &Error{
				Kind: KindInvalidTypeCode,
				Msg:  fmt.Sprintf("invalid type code %q: byte %d (0x%02x) is not an ASCII letter", b[:], i, c),
			}
		}
	}
	return TypeCode(b), nil
}

// ParseTypeCode parses the textual form of a type code, e.g. "IHDR".
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) != format.TypeFieldSize {
		return TypeCode{}, &Error{
			Kind: KindInvalidTypeCode,
			Msg:  fmt.Sprintf("invalid type code %q: want %d bytes, got %d", s, format.TypeFieldSize, len(s)),
		}
	}
	var b [format.TypeFieldSize]byte
	copy(b[:], s)
	return TypeCodeFromBytes(b)
}

// MustParseTypeCode is like ParseTypeCode but panics on error. It is meant for
// package-level constants and tests, never for input data.
func MustParseTypeCode(s string) TypeCode {
	t, err := ParseTypeCode(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Bytes returns the raw type code bytes.
func (t TypeCode) Bytes() [format.TypeFieldSize]byte { return t }

func (t TypeCode) IsCritical() bool { return format.IsUpper(t[0]) }

func (t TypeCode) IsPublic() bool { return format.IsUpper(t[1]) }

func (t TypeCode) IsReservedBitValid() bool { return format.IsUpper(t[2]) }

// IsSafeToCopy reports whether editors that do not understand the chunk may
// keep it after modifying critical chunks (lowercase fourth letter).
func (t TypeCode) IsSafeToCopy() bool { return !format.IsUpper(t[3]) }

// IsValid reports whether the reserved bit is valid. It is not enforced when
// decoding; see Document.Validate.
func (t TypeCode) IsValid() bool { return t.IsReservedBitValid() }

func (t TypeCode) String() string { return string(t[:]) }

// Well-known critical chunk types.
var (
	TypeIHDR = MustParseTypeCode("IHDR")
	TypeIDAT = MustParseTypeCode("IDAT")
	TypeIEND = MustParseTypeCode("IEND")
)
