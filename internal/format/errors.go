package format

import "errors"

var (
	// ErrSignatureMismatch indicates the buffer does not begin with Signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
)
