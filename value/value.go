// Package value models the FIT value universe: the 17 wire-level base types
// plus the synthesized DateTime, Bool and Array variants that appear only
// after semantic expansion.
//
// Value is a tagged union, not a class hierarchy. Scalar payloads live in a
// single uint64 (two's complement for signed types, IEEE-754 bits for
// floats), which keeps the hot decode path free of per-value allocations.
// Arithmetic transformations pattern-match on the kind and report an error
// for unsupported variants rather than silently coercing.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the Value union. The first 17 kinds correspond 1:1 to
// the wire base types; DateTime, Bool and Array are synthesized during
// semantic expansion and never appear on the wire.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindEnum
	KindSInt8
	KindUInt8
	KindSInt16
	KindUInt16
	KindSInt32
	KindUInt32
	KindString
	KindFloat32
	KindFloat64
	KindUInt8z
	KindUInt16z
	KindUInt32z
	KindByte
	KindSInt64
	KindUInt64
	KindUInt64z
	KindDateTime
	KindBool
	KindArray
)

// Value is one decoded FIT value. The zero Value has KindInvalid and is not
// valid; it is what accessors return alongside ok=false.
type Value struct {
	arr  []Value
	str  string
	t    time.Time
	num  uint64
	kind Kind
}

// Scalar constructors. Each wraps a native Go scalar in its wire-typed form.

func Enum(v uint8) Value     { return Value{kind: KindEnum, num: uint64(v)} }
func SInt8(v int8) Value     { return Value{kind: KindSInt8, num: uint64(uint8(v))} }
func UInt8(v uint8) Value    { return Value{kind: KindUInt8, num: uint64(v)} }
func SInt16(v int16) Value   { return Value{kind: KindSInt16, num: uint64(uint16(v))} }
func UInt16(v uint16) Value  { return Value{kind: KindUInt16, num: uint64(v)} }
func SInt32(v int32) Value   { return Value{kind: KindSInt32, num: uint64(uint32(v))} }
func UInt32(v uint32) Value  { return Value{kind: KindUInt32, num: uint64(v)} }
func Float32(v float32) Value {
	return Value{kind: KindFloat32, num: uint64(math.Float32bits(v))}
}
func Float64(v float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(v)}
}
func UInt8z(v uint8) Value   { return Value{kind: KindUInt8z, num: uint64(v)} }
func UInt16z(v uint16) Value { return Value{kind: KindUInt16z, num: uint64(v)} }
func UInt32z(v uint32) Value { return Value{kind: KindUInt32z, num: uint64(v)} }
func Byte(v uint8) Value     { return Value{kind: KindByte, num: uint64(v)} }
func SInt64(v int64) Value   { return Value{kind: KindSInt64, num: uint64(v)} }
func UInt64(v uint64) Value  { return Value{kind: KindUInt64, num: v} }
func UInt64z(v uint64) Value { return Value{kind: KindUInt64z, num: v} }

// Str wraps a decoded string value.
func Str(v string) Value { return Value{kind: KindString, str: v} }

// DateTime wraps an absolute instant. It appears only after semantic
// expansion of date_time typed fields and compressed timestamps.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t.UTC()} }

// Bool wraps a boolean.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}

	return Value{kind: KindBool, num: n}
}

// Array wraps an ordered sequence of values. Arrays are homogeneous in base
// type and non-empty when valid.
func Array(vals ...Value) Value { return Value{kind: KindArray, arr: vals} }

// FromUnsigned wraps an unsigned integer in the Value form of the given base
// type. Floats are converted numerically, not reinterpreted bit-wise. It is
// used by component expansion, which extracts raw bit patterns and must
// re-wrap them in the component target's declared wire type.
func FromUnsigned(t BaseType, v uint64) Value {
	switch t {
	case BaseEnum:
		return Enum(uint8(v))
	case BaseSInt8:
		return SInt8(int8(v))
	case BaseUInt8:
		return UInt8(uint8(v))
	case BaseSInt16:
		return SInt16(int16(v))
	case BaseUInt16:
		return UInt16(uint16(v))
	case BaseSInt32:
		return SInt32(int32(v))
	case BaseUInt32:
		return UInt32(uint32(v))
	case BaseFloat32:
		return Float32(float32(v))
	case BaseFloat64:
		return Float64(float64(v))
	case BaseUInt8z:
		return UInt8z(uint8(v))
	case BaseUInt16z:
		return UInt16z(uint16(v))
	case BaseUInt32z:
		return UInt32z(uint32(v))
	case BaseByte:
		return Byte(uint8(v))
	case BaseSInt64:
		return SInt64(int64(v))
	case BaseUInt64:
		return UInt64(v)
	case BaseUInt64z:
		return UInt64z(v)
	default:
		return Value{}
	}
}

// Kind returns the union discriminator.
func (v Value) Kind() Kind { return v.kind }

// BaseType maps the value back onto a wire base type. Synthesized kinds map
// the way they serialize: DateTime as uint32, Bool as byte, Array as its
// first element's base type.
func (v Value) BaseType() BaseType {
	switch v.kind {
	case KindEnum:
		return BaseEnum
	case KindSInt8:
		return BaseSInt8
	case KindUInt8:
		return BaseUInt8
	case KindSInt16:
		return BaseSInt16
	case KindUInt16:
		return BaseUInt16
	case KindSInt32:
		return BaseSInt32
	case KindUInt32, KindDateTime:
		return BaseUInt32
	case KindString:
		return BaseString
	case KindFloat32:
		return BaseFloat32
	case KindFloat64:
		return BaseFloat64
	case KindUInt8z:
		return BaseUInt8z
	case KindUInt16z:
		return BaseUInt16z
	case KindUInt32z:
		return BaseUInt32z
	case KindByte, KindBool:
		return BaseByte
	case KindSInt64:
		return BaseSInt64
	case KindUInt64:
		return BaseUInt64
	case KindUInt64z:
		return BaseUInt64z
	case KindArray:
		if len(v.arr) == 0 {
			return BaseByte
		}

		return v.arr[0].BaseType()
	default:
		return BaseByte
	}
}

// IsValid reports whether the value differs from its base type's invalid
// marker. Floats are valid when finite, strings when free of NUL, arrays
// when non-empty with all elements valid. DateTime and Bool are always
// valid: they only exist post-expansion.
func (v Value) IsValid() bool {
	switch v.kind {
	case KindFloat32:
		f := math.Float32frombits(uint32(v.num))
		return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
	case KindFloat64:
		f := math.Float64frombits(v.num)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case KindString:
		return !strings.ContainsRune(v.str, 0)
	case KindDateTime, KindBool:
		return true
	case KindArray:
		if len(v.arr) == 0 {
			return false
		}
		for _, e := range v.arr {
			if !e.IsValid() {
				return false
			}
		}

		return true
	case KindInvalid:
		return false
	default:
		return v.num != v.BaseType().Invalid()
	}
}

// AsUnsigned returns the value as an unsigned integer. It succeeds for
// unsigned integer kinds and Byte; it is the accessor BitReader and the
// accumulator rely on.
func (v Value) AsUnsigned() (uint64, bool) {
	switch v.kind {
	case KindEnum, KindUInt8, KindUInt16, KindUInt32, KindUInt64,
		KindUInt8z, KindUInt16z, KindUInt32z, KindUInt64z, KindByte, KindBool:
		return v.num, true
	default:
		return 0, false
	}
}

// AsFloat64 promotes any numeric scalar to float64. Enum, String, DateTime
// and Array do not participate.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindUInt8, KindUInt16, KindUInt32, KindUInt8z, KindUInt16z,
		KindUInt32z, KindByte:
		return float64(v.num), true
	case KindUInt64, KindUInt64z:
		return float64(v.num), true
	case KindSInt8:
		return float64(int8(v.num)), true
	case KindSInt16:
		return float64(int16(v.num)), true
	case KindSInt32:
		return float64(int32(v.num)), true
	case KindSInt64:
		return float64(int64(v.num)), true
	case KindFloat32:
		return float64(math.Float32frombits(uint32(v.num))), true
	case KindFloat64:
		return math.Float64frombits(v.num), true
	default:
		return 0, false
	}
}

// AsString returns the string payload of a String value.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// AsTime returns the instant of a DateTime value.
func (v Value) AsTime() (time.Time, bool) {
	if v.kind != KindDateTime {
		return time.Time{}, false
	}

	return v.t, true
}

// AsArray returns the element slice of an Array value. The slice aliases
// the value's storage; callers must not mutate it.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	return v.arr, true
}

// String renders the value for diagnostics and example output.
func (v Value) String() string {
	switch v.kind {
	case KindInvalid:
		return "invalid"
	case KindString:
		return v.str
	case KindDateTime:
		return v.t.Format(time.RFC3339)
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.num))), 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case KindSInt8:
		return strconv.FormatInt(int64(int8(v.num)), 10)
	case KindSInt16:
		return strconv.FormatInt(int64(int16(v.num)), 10)
	case KindSInt32:
		return strconv.FormatInt(int64(int32(v.num)), 10)
	case KindSInt64:
		return strconv.FormatInt(int64(v.num), 10)
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return strconv.FormatUint(v.num, 10)
	}
}

// GoString implements fmt.GoStringer so test failures print the kind tag.
func (v Value) GoString() string {
	return fmt.Sprintf("value.Value{%s: %s}", v.kind, v.String())
}

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindEnum:
		return "Enum"
	case KindSInt8:
		return "SInt8"
	case KindUInt8:
		return "UInt8"
	case KindSInt16:
		return "SInt16"
	case KindUInt16:
		return "UInt16"
	case KindSInt32:
		return "SInt32"
	case KindUInt32:
		return "UInt32"
	case KindString:
		return "String"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindUInt8z:
		return "UInt8z"
	case KindUInt16z:
		return "UInt16z"
	case KindUInt32z:
		return "UInt32z"
	case KindByte:
		return "Byte"
	case KindSInt64:
		return "SInt64"
	case KindUInt64:
		return "UInt64"
	case KindUInt64z:
		return "UInt64z"
	case KindDateTime:
		return "DateTime"
	case KindBool:
		return "Bool"
	case KindArray:
		return "Array"
	default:
		return "Unknown"
	}
}
