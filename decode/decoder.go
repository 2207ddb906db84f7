// Package decode implements the FIT decoding session: file framing with
// CRC verification, the definition/data message stream, per-field binary
// extraction, and the profile-driven semantic expansion layer.
package decode

import (
	"fmt"

	"github.com/pacerline/fitwire/compress"
	"github.com/pacerline/fitwire/endian"
	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/internal/accum"
	"github.com/pacerline/fitwire/internal/crc"
	"github.com/pacerline/fitwire/internal/hash"
	"github.com/pacerline/fitwire/internal/options"
	"github.com/pacerline/fitwire/profile"
	"github.com/pacerline/fitwire/section"
	"github.com/pacerline/fitwire/value"
	"github.com/pacerline/fitwire/wire"
)

// Decoder decodes one FIT byte stream, possibly holding multiple chained
// files. It borrows the input slice for its lifetime.
//
// The Decoder is not safe for concurrent use and not reusable: after
// Decode returns, create a new Decoder for further work. Any number of
// Decoder instances may run in parallel on different byte slices; the
// profile catalogue they share is read-only.
type Decoder struct {
	reader *wire.ByteReader
	result *Result

	// defs is the local definition table. It is retained across chained
	// files, matching device behavior of appending files that rely on
	// earlier definitions.
	defs    map[uint8]*section.DefinitionMessage
	acc     *accum.Accumulator
	devData map[uint8]*DeveloperDataDefinition

	fingerprint uint64

	// timestampRef is the running timestamp (FIT epoch seconds) consumed
	// by compressed-timestamp reconstruction.
	timestampRef    uint32
	hasTimestampRef bool

	expandSubFields  bool
	expandComponents bool
	applyScaleOffset bool
	convertTypes     bool
	autoDecompress   bool
}

// fieldEntry is one extracted field of a data message, in wire order.
type fieldEntry struct {
	value value.Value
	num   uint8
}

// devFieldEntry is one extracted developer field of a data message.
type devFieldEntry struct {
	value     value.Value
	num       uint8
	dataIndex uint8
}

// dataMessage is a fully extracted, not yet semantically expanded data
// message.
type dataMessage struct {
	fields          []fieldEntry
	developerFields []devFieldEntry
	globalMesgNum   uint16
	timeOffset      uint8
	compressed      bool
}

func (m *dataMessage) fieldByNum(num uint8) (value.Value, bool) {
	for _, f := range m.fields {
		if f.num == num {
			return f.value, true
		}
	}

	return value.Value{}, false
}

// NewDecoder creates a decoder over data. When auto-decompression is on
// (the default) and data carries a known compression frame magic, the
// input is inflated before framing.
func NewDecoder(data []byte, opts ...Option) (*Decoder, error) {
	d := &Decoder{
		defs:             make(map[uint8]*section.DefinitionMessage),
		acc:              accum.New(),
		devData:          make(map[uint8]*DeveloperDataDefinition),
		fingerprint:      hash.Fingerprint(data),
		expandSubFields:  true,
		expandComponents: true,
		applyScaleOffset: true,
		convertTypes:     true,
		autoDecompress:   true,
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	if d.autoDecompress {
		inflated, err := compress.Unwrap(data)
		if err != nil {
			return nil, err
		}
		data = inflated
	}
	d.reader = wire.NewByteReader(data)

	return d, nil
}

// IsFit reports whether data structurally looks like a FIT file.
func IsFit(data []byte) bool {
	return section.IsFit(data)
}

// CheckIntegrity verifies the framing of every chained file in the input:
// header size bounds, the optional header CRC, and the trailing file CRC.
// It does not decode records.
func (d *Decoder) CheckIntegrity() error {
	data, err := d.reader.Slice(0, d.reader.Len())
	if err != nil {
		return err
	}

	offset := 0
	for offset < len(data) {
		rest := data[offset:]
		if !section.IsFit(rest) {
			return errs.ErrInvalidFitFile
		}
		r := wire.NewByteReader(rest)
		header, err := section.ReadFileHeader(r)
		if err != nil {
			return err
		}
		total := int(header.Size) + int(header.DataSize)
		if len(rest) < total+section.CRCSize {
			return errs.ErrInvalidFitFile
		}
		if header.Size == section.HeaderSizeStandard && header.CRC != 0 {
			if header.CRC != crc.Checksum(rest[:12]) {
				return fmt.Errorf("%w: header CRC mismatch at offset %d", errs.ErrInvalidCRC, offset)
			}
		}
		engine := endian.GetLittleEndianEngine()
		stored := engine.Uint16(rest[total : total+section.CRCSize])
		if stored != crc.Checksum(rest[:total]) {
			return fmt.Errorf("%w: file CRC mismatch at offset %d", errs.ErrInvalidCRC, offset)
		}
		offset += total + section.CRCSize
	}

	return nil
}

// Decode drives the full stream: every chained file's header, records and
// trailing CRC. It returns the decoded result, or a fatal error for
// framing, CRC and header failures. Non-fatal field-level errors are
// accumulated on the result.
func (d *Decoder) Decode() (*Result, error) {
	d.reader.Reset()
	d.result = newResult()
	d.result.Fingerprint = d.fingerprint
	d.result.DeveloperData = d.devData

	for !d.reader.IsEnd() {
		if err := d.decodeFile(); err != nil {
			return nil, err
		}
	}

	return d.result, nil
}

// decodeFile decodes one FIT file starting at the current cursor.
func (d *Decoder) decodeFile() error {
	start := d.reader.Offset()
	rest, err := d.reader.Slice(start, d.reader.Len())
	if err != nil {
		return err
	}
	if !section.IsFit(rest) {
		return errs.ErrInvalidFitFile
	}

	header, err := section.ReadFileHeader(d.reader)
	if err != nil {
		return err
	}
	end := start + int(header.Size) + int(header.DataSize)

	for d.reader.Offset() < end {
		if err := d.decodeRecord(); err != nil {
			return err
		}
	}

	stored, err := d.reader.ReadUint16(endian.GetLittleEndianEngine())
	if err != nil {
		return err
	}
	scope, err := d.reader.Slice(start, end)
	if err != nil {
		return err
	}
	if stored != crc.Checksum(scope) {
		return fmt.Errorf("%w: file CRC mismatch at offset %d", errs.ErrInvalidCRC, start)
	}

	return nil
}

// decodeRecord reads one message header and dispatches on its type.
func (d *Decoder) decodeRecord() error {
	headerByte, err := d.reader.ReadUint8()
	if err != nil {
		return err
	}
	hdr := section.ParseMessageHeader(headerByte)

	if hdr.Type == section.MessageDefinition {
		def, err := section.ReadDefinitionMessage(d.reader, hdr)
		if err != nil {
			return err
		}
		d.defs[def.LocalMessageNumber] = def

		return nil
	}

	msg, err := d.readDataMessage(hdr)
	if err != nil {
		return err
	}

	return d.decodeMessage(msg)
}

// readDataMessage extracts the raw field values of a data message using
// the definition stored for its local message number.
func (d *Decoder) readDataMessage(hdr section.MessageHeader) (*dataMessage, error) {
	def, ok := d.defs[hdr.LocalMessageNumber]
	if !ok {
		return nil, fmt.Errorf("%w: local message number %d",
			errs.ErrLocalDefinitionNotFound, hdr.LocalMessageNumber)
	}

	msg := &dataMessage{
		globalMesgNum: def.GlobalMessageNumber,
		timeOffset:    hdr.TimeOffset,
		compressed:    hdr.Compressed,
		fields:        make([]fieldEntry, 0, len(def.FieldDefinitions)),
	}
	msgMap, hasProfile := messageFields(def.GlobalMessageNumber)

	for _, fd := range def.FieldDefinitions {
		isArray := false
		if hasProfile {
			if fld, ok := msgMap[fd.Number]; ok {
				isArray = fld.Array != profile.ArrayNone
			}
		}
		val, err := d.readFieldValue(int(fd.Size), fd.BaseType, def.Architecture, isArray)
		if err != nil {
			return nil, err
		}
		if val.Kind() == value.KindInvalid {
			// size mismatch, already recorded; bytes were consumed
			continue
		}
		if !val.IsValid() {
			d.recordError(errs.DecodeError{
				Kind: errs.KindInvalidFieldValue,
				Message: fmt.Sprintf("invalid value for message %d field %d: %s",
					def.GlobalMessageNumber, fd.Number, val),
			})

			continue
		}
		msg.fields = append(msg.fields, fieldEntry{num: fd.Number, value: val})
	}

	for _, dd := range def.DeveloperFieldDefinitions {
		raw, err := d.reader.ReadBytes(int(dd.Size))
		if err != nil {
			return nil, err
		}
		msg.developerFields = append(msg.developerFields, devFieldEntry{
			num:       dd.Number,
			dataIndex: dd.DeveloperDataIndex,
			value:     bytesValue(raw),
		})
	}

	return msg, nil
}

// messageFields resolves the profile field table for a global message
// number; ok is false when the number or its message is uncatalogued.
func messageFields(global uint16) (profile.MessageMap, bool) {
	name, ok := profile.MessageName(global)
	if !ok {
		return nil, false
	}

	return profile.MessageByName(name)
}

// readFieldValue extracts one field of the given wire size and base type.
// A single wire element stays scalar unless the profile declares the field
// as an array, in which case it wraps into a one-element Array. A size
// that is not a multiple of the base type size consumes the bytes, records
// a non-fatal SizeMismatch and returns the zero Value.
func (d *Decoder) readFieldValue(size int, baseType value.BaseType, arch endian.Architecture, isArray bool) (value.Value, error) {
	if size%baseType.Size() != 0 {
		if _, err := d.reader.ReadBytes(size); err != nil {
			return value.Value{}, err
		}
		d.recordError(errs.DecodeError{
			Kind: errs.KindSizeMismatch,
			Message: fmt.Sprintf("field size %d is not a multiple of base type %s size %d",
				size, baseType, baseType.Size()),
		})

		return value.Value{}, nil
	}

	if baseType == value.BaseString {
		// A string field's array budget is byte capacity; the whole slot
		// reads as one element regardless of the profile's array flag.
		s, err := d.reader.ReadString(size)
		if err != nil {
			return value.Value{}, err
		}

		return value.Str(s), nil
	}

	engine := arch.Engine()
	count := size / baseType.Size()
	vals := make([]value.Value, 0, count)
	for i := 0; i < count; i++ {
		v, err := d.readScalar(baseType, engine)
		if err != nil {
			return value.Value{}, err
		}
		vals = append(vals, v)
	}
	if len(vals) == 1 && !isArray {
		return vals[0], nil
	}

	return value.Array(vals...), nil
}

func (d *Decoder) readScalar(baseType value.BaseType, engine endian.EndianEngine) (value.Value, error) {
	switch baseType {
	case value.BaseEnum:
		v, err := d.reader.ReadUint8()
		return value.Enum(v), err
	case value.BaseSInt8:
		v, err := d.reader.ReadInt8()
		return value.SInt8(v), err
	case value.BaseUInt8:
		v, err := d.reader.ReadUint8()
		return value.UInt8(v), err
	case value.BaseUInt8z:
		v, err := d.reader.ReadUint8()
		return value.UInt8z(v), err
	case value.BaseByte:
		v, err := d.reader.ReadUint8()
		return value.Byte(v), err
	case value.BaseSInt16:
		v, err := d.reader.ReadInt16(engine)
		return value.SInt16(v), err
	case value.BaseUInt16:
		v, err := d.reader.ReadUint16(engine)
		return value.UInt16(v), err
	case value.BaseUInt16z:
		v, err := d.reader.ReadUint16(engine)
		return value.UInt16z(v), err
	case value.BaseSInt32:
		v, err := d.reader.ReadInt32(engine)
		return value.SInt32(v), err
	case value.BaseUInt32:
		v, err := d.reader.ReadUint32(engine)
		return value.UInt32(v), err
	case value.BaseUInt32z:
		v, err := d.reader.ReadUint32(engine)
		return value.UInt32z(v), err
	case value.BaseFloat32:
		v, err := d.reader.ReadFloat32(engine)
		return value.Float32(v), err
	case value.BaseFloat64:
		v, err := d.reader.ReadFloat64(engine)
		return value.Float64(v), err
	case value.BaseSInt64:
		v, err := d.reader.ReadInt64(engine)
		return value.SInt64(v), err
	case value.BaseUInt64:
		v, err := d.reader.ReadUint64(engine)
		return value.UInt64(v), err
	case value.BaseUInt64z:
		v, err := d.reader.ReadUint64(engine)
		return value.UInt64z(v), err
	default:
		return value.Value{}, fmt.Errorf("%w: unsupported base type %s", errs.ErrBaseTypeMismatch, baseType)
	}
}

// bytesValue wraps raw developer field bytes as a Byte scalar or array.
func bytesValue(raw []byte) value.Value {
	if len(raw) == 1 {
		return value.Byte(raw[0])
	}
	vals := make([]value.Value, len(raw))
	for i, b := range raw {
		vals[i] = value.Byte(b)
	}

	return value.Array(vals...)
}

func (d *Decoder) recordError(e errs.DecodeError) {
	d.result.Errors = append(d.result.Errors, e)
}
