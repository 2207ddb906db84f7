package value

import "fmt"

// BaseType identifies one of the 17 wire-level primitive types of the FIT
// protocol. The numeric value of each constant is the tag byte carried in
// definition messages.
type BaseType uint8

const (
	BaseEnum    BaseType = 0x00
	BaseSInt8   BaseType = 0x01
	BaseUInt8   BaseType = 0x02
	BaseString  BaseType = 0x07
	BaseUInt8z  BaseType = 0x0A
	BaseByte    BaseType = 0x0D
	BaseSInt16  BaseType = 0x83
	BaseUInt16  BaseType = 0x84
	BaseSInt32  BaseType = 0x85
	BaseUInt32  BaseType = 0x86
	BaseFloat32 BaseType = 0x88
	BaseFloat64 BaseType = 0x89
	BaseUInt16z BaseType = 0x8B
	BaseUInt32z BaseType = 0x8C
	BaseSInt64  BaseType = 0x8E
	BaseUInt64  BaseType = 0x8F
	BaseUInt64z BaseType = 0x90
)

// Size returns the wire size of one element in bytes. String reads one byte
// per element; the field size in the definition message determines how many.
func (t BaseType) Size() int {
	switch t {
	case BaseEnum, BaseSInt8, BaseUInt8, BaseString, BaseUInt8z, BaseByte:
		return 1
	case BaseSInt16, BaseUInt16, BaseUInt16z:
		return 2
	case BaseSInt32, BaseUInt32, BaseFloat32, BaseUInt32z:
		return 4
	case BaseFloat64, BaseSInt64, BaseUInt64, BaseUInt64z:
		return 8
	default:
		return 1
	}
}

// Invalid returns the bit pattern that marks a value of this type as
// "not present" on the wire. Signed types use their maximum, unsigned types
// all-ones, z-variants zero.
func (t BaseType) Invalid() uint64 {
	switch t {
	case BaseEnum, BaseUInt8, BaseByte:
		return 0xFF
	case BaseSInt8:
		return 0x7F
	case BaseSInt16:
		return 0x7FFF
	case BaseUInt16:
		return 0xFFFF
	case BaseSInt32:
		return 0x7FFFFFFF
	case BaseUInt32, BaseFloat32:
		return 0xFFFFFFFF
	case BaseFloat64, BaseUInt64:
		return 0xFFFFFFFFFFFFFFFF
	case BaseSInt64:
		return 0x7FFFFFFFFFFFFFFF
	case BaseString, BaseUInt8z, BaseUInt16z, BaseUInt32z, BaseUInt64z:
		return 0
	default:
		return 0xFF
	}
}

// IsNumeric reports whether values of this type participate in arithmetic
// transformations (scale/offset, component extraction). Everything except
// Enum and String is numeric.
func (t BaseType) IsNumeric() bool {
	return t != BaseEnum && t != BaseString
}

// Signed reports whether the type carries a two's-complement value.
func (t BaseType) Signed() bool {
	switch t {
	case BaseSInt8, BaseSInt16, BaseSInt32, BaseSInt64:
		return true
	default:
		return false
	}
}

// BaseTypeFromTag converts a definition-message tag byte into a BaseType.
func BaseTypeFromTag(tag uint8) (BaseType, error) {
	t := BaseType(tag)
	switch t {
	case BaseEnum, BaseSInt8, BaseUInt8, BaseString, BaseUInt8z, BaseByte,
		BaseSInt16, BaseUInt16, BaseSInt32, BaseUInt32, BaseFloat32,
		BaseFloat64, BaseUInt16z, BaseUInt32z, BaseSInt64, BaseUInt64,
		BaseUInt64z:
		return t, nil
	default:
		return 0, fmt.Errorf("unknown base type tag 0x%02X", tag)
	}
}

// BaseTypeFromName converts a profile type-name string (as found in the SDK
// spreadsheet, e.g. "uint8z") into a BaseType.
func BaseTypeFromName(name string) (BaseType, bool) {
	t, ok := baseTypeByName[name]
	return t, ok
}

var baseTypeByName = map[string]BaseType{
	"enum":    BaseEnum,
	"sint8":   BaseSInt8,
	"uint8":   BaseUInt8,
	"sint16":  BaseSInt16,
	"uint16":  BaseUInt16,
	"sint32":  BaseSInt32,
	"uint32":  BaseUInt32,
	"string":  BaseString,
	"float32": BaseFloat32,
	"float64": BaseFloat64,
	"uint8z":  BaseUInt8z,
	"uint16z": BaseUInt16z,
	"uint32z": BaseUInt32z,
	"byte":    BaseByte,
	"sint64":  BaseSInt64,
	"uint64":  BaseUInt64,
	"uint64z": BaseUInt64z,
}

func (t BaseType) String() string {
	switch t {
	case BaseEnum:
		return "enum"
	case BaseSInt8:
		return "sint8"
	case BaseUInt8:
		return "uint8"
	case BaseSInt16:
		return "sint16"
	case BaseUInt16:
		return "uint16"
	case BaseSInt32:
		return "sint32"
	case BaseUInt32:
		return "uint32"
	case BaseString:
		return "string"
	case BaseFloat32:
		return "float32"
	case BaseFloat64:
		return "float64"
	case BaseUInt8z:
		return "uint8z"
	case BaseUInt16z:
		return "uint16z"
	case BaseUInt32z:
		return "uint32z"
	case BaseByte:
		return "byte"
	case BaseSInt64:
		return "sint64"
	case BaseUInt64:
		return "uint64"
	case BaseUInt64z:
		return "uint64z"
	default:
		return fmt.Sprintf("base_type(0x%02X)", uint8(t))
	}
}
