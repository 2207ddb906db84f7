package decode

import (
	"encoding/binary"

	"github.com/pacerline/fitwire/internal/crc"
)

// fileBuilder assembles well-formed FIT byte streams for tests: a 14-byte
// header with a valid header CRC, the appended records, and the trailing
// file CRC.
type fileBuilder struct {
	records []byte
}

// fieldDef is (field definition number, size, base type tag).
type fieldDef [3]byte

// definition appends a definition message.
func (b *fileBuilder) definition(local uint8, global uint16, fields ...fieldDef) *fileBuilder {
	return b.definitionDev(local, global, fields, nil)
}

// definitionDev appends a definition message with developer field slots,
// each (field number, size, developer data index).
func (b *fileBuilder) definitionDev(local uint8, global uint16, fields []fieldDef, devFields []fieldDef) *fileBuilder {
	header := 0x40 | local&0x0F
	if devFields != nil {
		header |= 0x20
	}
	b.records = append(b.records, header, 0x00, 0x00) // reserved, little-endian
	b.records = binary.LittleEndian.AppendUint16(b.records, global)
	b.records = append(b.records, byte(len(fields)))
	for _, f := range fields {
		b.records = append(b.records, f[0], f[1], f[2])
	}
	if devFields != nil {
		b.records = append(b.records, byte(len(devFields)))
		for _, f := range devFields {
			b.records = append(b.records, f[0], f[1], f[2])
		}
	}

	return b
}

// definitionBE appends a big-endian definition message.
func (b *fileBuilder) definitionBE(local uint8, global uint16, fields ...fieldDef) *fileBuilder {
	b.records = append(b.records, 0x40|local&0x0F, 0x00, 0x01)
	b.records = binary.BigEndian.AppendUint16(b.records, global)
	b.records = append(b.records, byte(len(fields)))
	for _, f := range fields {
		b.records = append(b.records, f[0], f[1], f[2])
	}

	return b
}

// data appends a data message with the given payload, which must match
// the field layout of the definition at local.
func (b *fileBuilder) data(local uint8, payload ...byte) *fileBuilder {
	b.records = append(b.records, local&0x0F)
	b.records = append(b.records, payload...)

	return b
}

// compressedData appends a compressed-timestamp data message.
func (b *fileBuilder) compressedData(local, timeOffset uint8, payload ...byte) *fileBuilder {
	b.records = append(b.records, 0x80|(local&0x03)<<5|timeOffset&0x1F)
	b.records = append(b.records, payload...)

	return b
}

// bytes finalizes one FIT file.
func (b *fileBuilder) bytes() []byte {
	out := []byte{14, 0x10}
	out = binary.LittleEndian.AppendUint16(out, 2120)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(b.records)))
	out = append(out, ".FIT"...)
	out = binary.LittleEndian.AppendUint16(out, crc.Checksum(out[:12]))
	out = append(out, b.records...)
	out = binary.LittleEndian.AppendUint16(out, crc.Checksum(out))

	return out
}

func u16le(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

func u32le(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func u16be(v uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, v)
}

func u32be(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// fileIDActivity builds a single-file stream whose sole record is a
// file_id with type=activity, manufacturer=garmin, product=edge500 and
// time_created at the given FIT epoch seconds.
func fileIDActivity(timeCreated uint32) []byte {
	b := &fileBuilder{}
	b.definition(0, 0,
		fieldDef{0, 1, 0x00}, // type: enum
		fieldDef{1, 2, 0x84}, // manufacturer: uint16
		fieldDef{2, 2, 0x84}, // product: uint16
		fieldDef{4, 4, 0x86}, // time_created: uint32
	)
	b.data(0, concat(
		[]byte{4},
		u16le(1),
		u16le(1036),
		u32le(timeCreated),
	)...)

	return b.bytes()
}
