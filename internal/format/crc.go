package format

import "hash/crc32"

// ChecksumTypeData computes the CRC-32/IEEE of typ followed by data without
// concatenating them.
func ChecksumTypeData(typ [TypeFieldSize]byte, data []byte) uint32 {
	sum := crc32.ChecksumIEEE(typ[:])
	return crc32.Update(sum, crc32.IEEETable, data)
}
