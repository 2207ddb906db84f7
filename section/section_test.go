package section

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pacerline/fitwire/endian"
	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/value"
	"github.com/pacerline/fitwire/wire"
)

func headerBytes(size uint8, dataSize uint32, marker string) []byte {
	b := []byte{size, 0x10}
	b = binary.LittleEndian.AppendUint16(b, 2120)
	b = binary.LittleEndian.AppendUint32(b, dataSize)
	b = append(b, marker...)
	if size == HeaderSizeStandard {
		b = binary.LittleEndian.AppendUint16(b, 0)
	}

	return b
}

func TestIsFit(t *testing.T) {
	t.Run("Valid 14-byte header", func(t *testing.T) {
		data := append(headerBytes(14, 0, ".FIT"), 0x00, 0x00)
		require.True(t, IsFit(data))
	})

	t.Run("Valid 12-byte header", func(t *testing.T) {
		data := append(headerBytes(12, 0, ".FIT"), 0x00, 0x00)
		require.True(t, IsFit(data))
	})

	t.Run("Rejects bad size byte", func(t *testing.T) {
		data := append(headerBytes(14, 0, ".FIT"), 0x00, 0x00)
		data[0] = 13
		require.False(t, IsFit(data))
	})

	t.Run("Rejects missing marker", func(t *testing.T) {
		data := append(headerBytes(14, 0, "XFIT"), 0x00, 0x00)
		require.False(t, IsFit(data))
	})

	t.Run("Rejects truncated input", func(t *testing.T) {
		require.False(t, IsFit(nil))
		require.False(t, IsFit(headerBytes(14, 0, ".FIT")[:13]))
	})
}

func TestReadFileHeader(t *testing.T) {
	t.Run("Standard header", func(t *testing.T) {
		r := wire.NewByteReader(headerBytes(14, 128, ".FIT"))
		h, err := ReadFileHeader(r)
		require.NoError(t, err)
		require.Equal(t, uint8(14), h.Size)
		require.Equal(t, uint8(0x10), h.ProtocolVersion)
		require.Equal(t, uint16(2120), h.ProfileVersion)
		require.Equal(t, uint32(128), h.DataSize)
		require.Equal(t, ".FIT", h.DataType)
		require.Equal(t, 14, r.Offset())
	})

	t.Run("Legacy header has no CRC", func(t *testing.T) {
		r := wire.NewByteReader(headerBytes(12, 64, ".FIT"))
		h, err := ReadFileHeader(r)
		require.NoError(t, err)
		require.Equal(t, uint8(12), h.Size)
		require.Equal(t, uint16(0), h.CRC)
		require.Equal(t, 12, r.Offset())
	})

	t.Run("Bad marker fails", func(t *testing.T) {
		r := wire.NewByteReader(headerBytes(14, 64, "JUNK"))
		_, err := ReadFileHeader(r)
		require.ErrorIs(t, err, errs.ErrInvalidFitFile)
	})
}

func TestParseMessageHeader(t *testing.T) {
	t.Run("Data message", func(t *testing.T) {
		h := ParseMessageHeader(0x03)
		require.Equal(t, MessageData, h.Type)
		require.Equal(t, uint8(3), h.LocalMessageNumber)
		require.False(t, h.Compressed)
		require.False(t, h.ContainsDeveloperData)
	})

	t.Run("Definition message", func(t *testing.T) {
		h := ParseMessageHeader(0x45)
		require.Equal(t, MessageDefinition, h.Type)
		require.Equal(t, uint8(5), h.LocalMessageNumber)
		require.False(t, h.ContainsDeveloperData)
	})

	t.Run("Definition with developer data", func(t *testing.T) {
		h := ParseMessageHeader(0x60)
		require.Equal(t, MessageDefinition, h.Type)
		require.True(t, h.ContainsDeveloperData)
	})

	t.Run("Compressed timestamp", func(t *testing.T) {
		// local 2, offset 9
		h := ParseMessageHeader(0x80 | 2<<5 | 9)
		require.Equal(t, MessageData, h.Type)
		require.True(t, h.Compressed)
		require.Equal(t, uint8(2), h.LocalMessageNumber)
		require.Equal(t, uint8(9), h.TimeOffset)
	})
}

func TestReadDefinitionMessage(t *testing.T) {
	t.Run("Little endian file_id layout", func(t *testing.T) {
		body := []byte{
			0x00,       // reserved
			0x00,       // little-endian
			0x00, 0x00, // global message number 0
			0x02,             // two fields
			0x00, 0x01, 0x00, // type, 1 byte, enum
			0x04, 0x04, 0x86, // time_created, 4 bytes, uint32
		}
		def, err := ReadDefinitionMessage(wire.NewByteReader(body), ParseMessageHeader(0x40))
		require.NoError(t, err)
		require.Equal(t, endian.LittleEndian, def.Architecture)
		require.Equal(t, uint16(0), def.GlobalMessageNumber)
		require.Len(t, def.FieldDefinitions, 2)
		require.Equal(t, value.BaseEnum, def.FieldDefinitions[0].BaseType)
		require.Equal(t, uint8(4), def.FieldDefinitions[1].Number)
		require.Equal(t, value.BaseUInt32, def.FieldDefinitions[1].BaseType)
		require.Empty(t, def.DeveloperFieldDefinitions)
	})

	t.Run("Big endian global number", func(t *testing.T) {
		body := []byte{
			0x00,
			0x01,       // big-endian
			0x00, 0x14, // global message number 20
			0x00, // no fields
		}
		def, err := ReadDefinitionMessage(wire.NewByteReader(body), ParseMessageHeader(0x40))
		require.NoError(t, err)
		require.Equal(t, endian.BigEndian, def.Architecture)
		require.Equal(t, uint16(20), def.GlobalMessageNumber)
	})

	t.Run("Developer field definitions", func(t *testing.T) {
		body := []byte{
			0x00, 0x00,
			0x14, 0x00, // record
			0x01,
			0x03, 0x01, 0x02, // heart_rate, 1 byte, uint8
			0x01,             // one developer field
			0x00, 0x04, 0x00, // field 0, 4 bytes, index 0
		}
		def, err := ReadDefinitionMessage(wire.NewByteReader(body), ParseMessageHeader(0x60))
		require.NoError(t, err)
		require.Len(t, def.DeveloperFieldDefinitions, 1)
		require.Equal(t, uint8(4), def.DeveloperFieldDefinitions[0].Size)
		require.Equal(t, uint8(0), def.DeveloperFieldDefinitions[0].DeveloperDataIndex)
	})

	t.Run("Unknown base type tag fails", func(t *testing.T) {
		body := []byte{
			0x00, 0x00,
			0x00, 0x00,
			0x01,
			0x00, 0x01, 0x42, // bogus base type tag
		}
		_, err := ReadDefinitionMessage(wire.NewByteReader(body), ParseMessageHeader(0x40))
		require.ErrorIs(t, err, errs.ErrBaseTypeMismatch)
	})

	t.Run("Truncated body fails", func(t *testing.T) {
		body := []byte{0x00, 0x00, 0x14}
		_, err := ReadDefinitionMessage(wire.NewByteReader(body), ParseMessageHeader(0x40))
		require.Error(t, err)
	})
}
