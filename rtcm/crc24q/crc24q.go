// Package crc24q wraps github.com/goblimey/go-crc24q's CRC-24Q
// implementation (polynomial 0x1864CFB, seed 0, no reflection, no
// final XOR) for RTCM frame checksums, the same dependency rtcm.go
// already uses directly.
package crc24q

import crc24q "github.com/goblimey/go-crc24q/crc24q"

// Checksum computes the 24-bit CRC-24Q of data.
func Checksum(data []byte) uint32 {
	return crc24q.Hash(data)
}

// Bytes returns the three big-endian bytes of a 24-bit CRC value.
func Bytes(crc uint32) [3]byte {
	return [3]byte{crc24q.HiByte(crc), crc24q.MiByte(crc), crc24q.LoByte(crc)}
}

// Verify reports whether data's CRC-24Q matches want.
func Verify(data []byte, want uint32) bool {
	return Checksum(data) == want
}
