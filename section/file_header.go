package section

import (
	"github.com/pacerline/fitwire/endian"
	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/wire"
)

const (
	// HeaderSizeLegacy is the 12-byte header without a header CRC.
	HeaderSizeLegacy = 12
	// HeaderSizeStandard is the 14-byte header carrying a header CRC.
	HeaderSizeStandard = 14
	// CRCSize is the trailing file CRC width in bytes.
	CRCSize = 2
	// DataTypeMarker is the ASCII tag at header offset 8.
	DataTypeMarker = ".FIT"
)

// FileHeader is the fixed preamble of one FIT file within the stream.
type FileHeader struct {
	// DataType holds the bytes at offset 8..12; ".FIT" for a valid file.
	DataType string
	// Size is the header size in bytes, 12 or 14.
	Size uint8
	// ProtocolVersion encodes the protocol major/minor version.
	ProtocolVersion uint8
	// ProfileVersion encodes the profile catalogue version.
	ProfileVersion uint16
	// DataSize is the record payload length in bytes, excluding header and
	// trailing CRC.
	DataSize uint32
	// CRC is the header CRC over the first 12 bytes. Present iff Size is
	// 14; a stored zero means "not computed" and is not checked.
	CRC uint16
}

// IsFit reports whether data structurally looks like a FIT file: a valid
// header size byte, enough bytes for header plus trailing CRC, and the
// ".FIT" marker at offset 8.
func IsFit(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	size := int(data[0])
	if size != HeaderSizeLegacy && size != HeaderSizeStandard {
		return false
	}
	if len(data) < size+CRCSize {
		return false
	}

	return string(data[8:12]) == DataTypeMarker
}

// ReadFileHeader consumes a file header from r. The header is always
// little-endian regardless of any definition message architecture.
func ReadFileHeader(r *wire.ByteReader) (FileHeader, error) {
	engine := endian.GetLittleEndianEngine()

	var h FileHeader
	var err error
	if h.Size, err = r.ReadUint8(); err != nil {
		return h, err
	}
	if h.Size != HeaderSizeLegacy && h.Size != HeaderSizeStandard {
		return h, errs.ErrInvalidFitFile
	}
	if h.ProtocolVersion, err = r.ReadUint8(); err != nil {
		return h, err
	}
	if h.ProfileVersion, err = r.ReadUint16(engine); err != nil {
		return h, err
	}
	if h.DataSize, err = r.ReadUint32(engine); err != nil {
		return h, err
	}
	marker, err := r.ReadBytes(4)
	if err != nil {
		return h, err
	}
	h.DataType = string(marker)
	if h.DataType != DataTypeMarker {
		return h, errs.ErrInvalidFitFile
	}
	if h.Size == HeaderSizeStandard {
		if h.CRC, err = r.ReadUint16(engine); err != nil {
			return h, err
		}
	}

	return h, nil
}
