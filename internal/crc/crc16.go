// Package crc implements the FIT CRC-16: a nibble-at-a-time table checksum
// defined by the FIT SDK reference. Every FIT file stores this checksum,
// little-endian, in the two bytes after the record payload; 14-byte headers
// may additionally store it over the first 12 header bytes.
package crc

// crcTable is the 16-entry nibble lookup table from the FIT SDK.
var crcTable = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400,
	0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401,
	0x5000, 0x9C01, 0x8801, 0x4400,
}

// Update feeds one byte into the running checksum, low nibble first.
func Update(crc uint16, b byte) uint16 {
	// low nibble
	tmp := crcTable[crc&0x0F]
	crc = (crc >> 4) & 0x0FFF
	crc = crc ^ tmp ^ crcTable[b&0x0F]

	// high nibble
	tmp = crcTable[crc&0x0F]
	crc = (crc >> 4) & 0x0FFF
	crc = crc ^ tmp ^ crcTable[(b>>4)&0x0F]

	return crc
}

// Checksum computes the FIT CRC-16 over data.
func Checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = Update(crc, b)
	}

	return crc
}
