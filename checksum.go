package crtf

import "hash/crc32"

// Checksum returns the CRC the CRC header field is defined over: CRC-32
// (IEEE polynomial) of payload without the initial and final inversion.
// The decoder never compares it with the stored value; it is exposed for
// inspection tools.
func Checksum(payload []byte) uint32 {
	// crc32.Update inverts on entry and exit; cancel both.
	return ^crc32.Update(^uint32(0), crc32.IEEETable, payload)
}
