package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/profile"
	"github.com/pacerline/fitwire/value"
)

// developer_data_id and field_description field definition numbers, per
// the profile catalogue.
const (
	devIDDeveloperID        = 0
	devIDApplicationID      = 1
	devIDManufacturerID     = 2
	devIDDataIndex          = 3
	devIDApplicationVersion = 4

	fieldDescDataIndex   = 0
	fieldDescFieldDefNum = 1
	fieldDescBaseTypeID  = 2
	fieldDescFieldName   = 3
	fieldDescUnits       = 8
)

// registerDeveloperDataID stores a new developer data registry entry from
// a developer_data_id message. The raw wire values go in untransformed;
// only the manufacturer is resolved through the type catalogue.
func (d *Decoder) registerDeveloperDataID(msg *dataMessage) error {
	idx, ok := unsignedField(msg, devIDDataIndex)
	if !ok {
		return fmt.Errorf("%w: developer_data_id missing developer_data_index",
			errs.ErrInvalidDeveloperField)
	}

	def := &DeveloperDataDefinition{
		DeveloperDataIndex: uint8(idx),
		Fields:             make(map[uint8]*DeveloperFieldDescription),
	}
	if v, ok := msg.fieldByNum(devIDDeveloperID); ok {
		def.DeveloperID = v
	}
	if v, ok := msg.fieldByNum(devIDApplicationID); ok {
		def.ApplicationID = v
	}
	if u, ok := unsignedField(msg, devIDManufacturerID); ok {
		if t, found := profile.TypeByName("manufacturer"); found {
			def.ManufacturerName, _ = t.ValueName(u)
		}
	}
	if u, ok := unsignedField(msg, devIDApplicationVersion); ok {
		def.ApplicationVersion = uint32(u)
	}

	// Re-registering an index restarts its field map; descriptors from a
	// previous session segment do not carry over.
	d.devData[def.DeveloperDataIndex] = def

	return nil
}

// registerFieldDescription inserts a field descriptor into the owning
// developer data definition. The four mandatory attributes must all be
// present; bootstrap failures are fatal because every later developer
// field of that index would be undecodable.
func (d *Decoder) registerFieldDescription(msg *dataMessage, msgMap profile.MessageMap) error {
	idx, okIdx := unsignedField(msg, fieldDescDataIndex)
	fieldNum, okNum := unsignedField(msg, fieldDescFieldDefNum)
	baseTypeID, okBase := unsignedField(msg, fieldDescBaseTypeID)
	fieldName, okName := stringField(msg, fieldDescFieldName)
	if !okIdx || !okNum || !okBase || !okName {
		missing := "developer_data_index"
		switch {
		case okIdx && !okNum:
			missing = "field_definition_number"
		case okIdx && okNum && !okBase:
			missing = "fit_base_type_id"
		case okIdx && okNum && okBase:
			missing = "field_name"
		}

		return fmt.Errorf("%w: field_description missing %s", errs.ErrInvalidDeveloperField, missing)
	}

	baseTypeName := ""
	if t, ok := profile.TypeByName("fit_base_type"); ok {
		baseTypeName, _ = t.ValueName(baseTypeID)
	}

	desc := &DeveloperFieldDescription{
		DeveloperDataIndex:    uint8(idx),
		FieldDefinitionNumber: uint8(fieldNum),
		BaseTypeName:          baseTypeName,
		FieldName:             fieldName,
		Attributes:            make(map[string]value.Value, len(msg.fields)),
	}
	if units, ok := stringField(msg, fieldDescUnits); ok {
		desc.Units = units
	}
	for _, entry := range msg.fields {
		if fld, ok := msgMap[entry.num]; ok {
			desc.Attributes[fld.Name] = entry.value
		}
	}

	def, ok := d.devData[desc.DeveloperDataIndex]
	if !ok {
		// Tolerate descriptors arriving before their developer_data_id;
		// some writers emit them out of order.
		def = &DeveloperDataDefinition{
			DeveloperDataIndex: desc.DeveloperDataIndex,
			Fields:             make(map[uint8]*DeveloperFieldDescription),
		}
		d.devData[desc.DeveloperDataIndex] = def
	}
	def.Fields[desc.FieldDefinitionNumber] = desc

	return nil
}

// decodeDeveloperFields types the raw developer field bytes of a data
// message through their registered descriptors and stores them in the
// record under the descriptor's field name.
func (d *Decoder) decodeDeveloperFields(msg *dataMessage, record Record) {
	for _, df := range msg.developerFields {
		def, ok := d.devData[df.dataIndex]
		if !ok {
			d.recordError(errs.DecodeError{
				Kind: errs.KindMissingDeveloperDataDef,
				Message: fmt.Sprintf("message %d references unregistered developer data index %d",
					msg.globalMesgNum, df.dataIndex),
			})

			continue
		}
		desc, ok := def.Fields[df.num]
		if !ok {
			d.recordError(errs.DecodeError{
				Kind: errs.KindMissingDeveloperFieldDesc,
				Message: fmt.Sprintf("developer data index %d has no description for field %d",
					df.dataIndex, df.num),
			})

			continue
		}

		v, err := retypeDeveloperValue(df.value, desc.BaseTypeName)
		if err != nil {
			d.recordError(errs.DeveloperFieldError(msg.globalMesgNum, df.dataIndex, err.Error()))
			continue
		}

		record[desc.FieldName] = FieldValue{Value: v, Units: desc.Units}
	}
}

// retypeDeveloperValue reinterprets raw developer field bytes using the
// descriptor's fit_base_type_id. Unknown base types keep the Byte form; a
// byte count that cannot satisfy the declared type is an error and the
// field is skipped.
func retypeDeveloperValue(raw value.Value, baseTypeName string) (value.Value, error) {
	switch baseTypeName {
	case "uint8":
		if arr, ok := raw.AsArray(); ok {
			out := make([]value.Value, len(arr))
			for i, e := range arr {
				u, _ := e.AsUnsigned()
				out[i] = value.UInt8(uint8(u))
			}

			return value.Array(out...), nil
		}
		if u, ok := raw.AsUnsigned(); ok {
			return value.UInt8(uint8(u)), nil
		}

		return raw, nil
	case "float32":
		bytes, ok := rawBytes(raw)
		if !ok || len(bytes) != 4 {
			return raw, fmt.Errorf("float32 field carries %d byte(s), want 4", len(bytes))
		}

		return value.Float32(math.Float32frombits(binary.LittleEndian.Uint32(bytes))), nil
	default:
		return raw, nil
	}
}

func rawBytes(v value.Value) ([]byte, bool) {
	if arr, ok := v.AsArray(); ok {
		out := make([]byte, len(arr))
		for i, e := range arr {
			u, ok := e.AsUnsigned()
			if !ok {
				return nil, false
			}
			out[i] = byte(u)
		}

		return out, true
	}
	if u, ok := v.AsUnsigned(); ok {
		return []byte{byte(u)}, true
	}

	return nil, false
}

func unsignedField(msg *dataMessage, num uint8) (uint64, bool) {
	v, ok := msg.fieldByNum(num)
	if !ok {
		return 0, false
	}

	return v.AsUnsigned()
}

func stringField(msg *dataMessage, num uint8) (string, bool) {
	v, ok := msg.fieldByNum(num)
	if !ok {
		return "", false
	}

	return v.AsString()
}
