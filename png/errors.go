package png

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	KindInvalidTypeCode   ErrKind = iota // type code is not four ASCII letters
	KindFrameTooShort                    // fewer than 8 bytes where a length+type prefix is required
	KindLengthMismatch                   // declared length disagrees with the frame size
	KindChecksumMismatch                 // stored CRC disagrees with the recomputed one
	KindSignatureMismatch                // buffer does not start with Signature
	KindTrailingData                     // bytes left over, or last frame runs past the end
	KindNotFound                         // no chunk matches a lookup
	KindReservedBit                      // type code has its reserved bit set (validation only)
)

func (k ErrKind) String() string {
	switch k {
	case KindInvalidTypeCode:
		return "invalid type code"
	case KindFrameTooShort:
		return "frame too short"
	case KindLengthMismatch:
		return "length mismatch"
	case KindChecksumMismatch:
		return "checksum mismatch"
	case KindSignatureMismatch:
		return "signature mismatch"
	case KindTrailingData:
		return "trailing data"
	case KindNotFound:
		return "type code not found"
	case KindReservedBit:
		return "reserved bit set"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
//
// Two *Error values match under errors.Is when their kinds are equal, so a
// detailed error such as "chunk 3 at offset 0x40: checksum mismatch" still
// satisfies errors.Is(err, ErrChecksumMismatch).
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels returned (directly or wrapped) by this package.
var (
	// ErrInvalidTypeCode indicates a type code that is not exactly four ASCII letters.
	ErrInvalidTypeCode = &Error{Kind: KindInvalidTypeCode, Msg: "invalid type code"}
	// ErrFrameTooShort indicates fewer than 8 bytes where a frame prefix was expected.
	ErrFrameTooShort = &Error{Kind: KindFrameTooShort, Msg: "chunk frame too short"}
	// ErrLengthMismatch indicates the declared data length disagrees with the frame size.
	ErrLengthMismatch = &Error{Kind: KindLengthMismatch, Msg: "chunk length mismatch"}
	// ErrChecksumMismatch indicates the stored CRC does not match the type and data.
	ErrChecksumMismatch = &Error{Kind: KindChecksumMismatch, Msg: "chunk checksum mismatch"}
	// ErrSignatureMismatch indicates the buffer lacks the container signature.
	ErrSignatureMismatch = &Error{Kind: KindSignatureMismatch, Msg: "signature mismatch"}
	// ErrTrailingData indicates bytes that do not form a complete final frame.
	ErrTrailingData = &Error{Kind: KindTrailingData, Msg: "trailing data after last chunk"}
	// ErrTypeCodeNotFound indicates no chunk carries the requested type code.
	ErrTypeCodeNotFound = &Error{Kind: KindNotFound, Msg: "type code not found"}
	// ErrReservedBit indicates a chunk whose type code has an invalid reserved bit.
	ErrReservedBit = &Error{Kind: KindReservedBit, Msg: "reserved bit set"}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
