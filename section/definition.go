package section

import (
	"fmt"

	"github.com/pacerline/fitwire/endian"
	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/value"
	"github.com/pacerline/fitwire/wire"
)

// FieldDefinition describes one field slot of a definition message.
type FieldDefinition struct {
	// Number is the field definition number within the global message.
	Number uint8
	// Size is the field width in bytes; a multiple of the base type size
	// for array fields.
	Size uint8
	// BaseType is the wire type of each element.
	BaseType value.BaseType
}

// DeveloperFieldDefinition describes one developer field slot. Its wire
// bytes are typed later, via the field_description registered for
// (DeveloperDataIndex, Number).
type DeveloperFieldDefinition struct {
	// Number is the developer field number.
	Number uint8
	// Size is the field width in bytes.
	Size uint8
	// DeveloperDataIndex selects the owning developer data definition.
	DeveloperDataIndex uint8
}

// DefinitionMessage declares the layout of subsequent data messages with
// the same local message number. The decoder owns these in its local
// definition table; a new definition at the same local number replaces the
// old one.
type DefinitionMessage struct {
	FieldDefinitions          []FieldDefinition
	DeveloperFieldDefinitions []DeveloperFieldDefinition
	// Architecture is the byte order of every multi-byte field in data
	// messages using this definition, and of GlobalMessageNumber itself.
	Architecture endian.Architecture
	// LocalMessageNumber is the 0..15 tag this definition occupies.
	LocalMessageNumber uint8
	// GlobalMessageNumber names the message kind in the SDK catalogue.
	GlobalMessageNumber uint16
}

// ReadDefinitionMessage consumes a definition message body (everything
// after the record header byte) from r.
func ReadDefinitionMessage(r *wire.ByteReader, hdr MessageHeader) (*DefinitionMessage, error) {
	// reserved byte
	if _, err := r.ReadUint8(); err != nil {
		return nil, err
	}
	archByte, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	arch := endian.Architecture(archByte & 0x01)

	def := &DefinitionMessage{
		Architecture:       arch,
		LocalMessageNumber: hdr.LocalMessageNumber,
	}
	if def.GlobalMessageNumber, err = r.ReadUint16(arch.Engine()); err != nil {
		return nil, err
	}

	nFields, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	def.FieldDefinitions = make([]FieldDefinition, 0, nFields)
	for i := 0; i < int(nFields); i++ {
		triple, err := r.ReadBytes(3)
		if err != nil {
			return nil, err
		}
		baseType, err := value.BaseTypeFromTag(triple[2])
		if err != nil {
			return nil, fmt.Errorf("definition message %d field %d: %w: %v",
				def.GlobalMessageNumber, triple[0], errs.ErrBaseTypeMismatch, err)
		}
		def.FieldDefinitions = append(def.FieldDefinitions, FieldDefinition{
			Number:   triple[0],
			Size:     triple[1],
			BaseType: baseType,
		})
	}

	if hdr.ContainsDeveloperData {
		nDev, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		def.DeveloperFieldDefinitions = make([]DeveloperFieldDefinition, 0, nDev)
		for i := 0; i < int(nDev); i++ {
			triple, err := r.ReadBytes(3)
			if err != nil {
				return nil, err
			}
			def.DeveloperFieldDefinitions = append(def.DeveloperFieldDefinitions, DeveloperFieldDefinition{
				Number:             triple[0],
				Size:               triple[1],
				DeveloperDataIndex: triple[2],
			})
		}
	}

	return def, nil
}
