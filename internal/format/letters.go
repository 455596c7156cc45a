package format

// IsTypeLetter reports whether c may appear in a type code ('A'-'Z' or 'a'-'z').
func IsTypeLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// IsUpper reports whether the case bit of a type code letter is clear.
// The result is meaningless for bytes that fail IsTypeLetter.
func IsUpper(c byte) bool {
	return c&CaseBit == 0
}
