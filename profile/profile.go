// Package profile carries the static FIT profile catalogue: named types
// with their numeric/name pairs, and per-message field tables driving
// semantic expansion (scale/offset, units, components, sub-fields,
// accumulation).
//
// The tables in types.go and messages.go are generated from the FIT SDK
// Profile.xlsx and treated as read-only data; this file is the hand-written
// access layer. Regenerating from a newer spreadsheet only grows the
// tables, it never changes their shape.
package profile

import "github.com/pacerline/fitwire/value"

// Array length markers for Field.Array and SubField.Array.
const (
	// ArrayNone marks a scalar field.
	ArrayNone = 0
	// ArrayAny marks a variable-length array ("[N]" in the spreadsheet).
	ArrayAny = -1
)

// Field is one profile entry of a message: the projection from a raw wire
// value onto a semantically named, unit-scaled field.
//
// Components, Scale, Offset, Units, Bits and Accumulate are parallel
// arrays: a field without components uses index 0 for its own scale,
// offset and unit; a field with components carries one entry per
// component target.
type Field struct {
	// Name is the semantic snake_case field name.
	Name string
	// Type is the profile type name: a base type ("uint16"), a named enum
	// type ("manufacturer"), or "date_time".
	Type string
	// Array is ArrayNone for scalars, ArrayAny for variable-length arrays,
	// or the fixed element count.
	Array int
	// Components names the bit-packed expansion targets, in wire order.
	Components []string
	// Scale holds divisors; a raw value is divided by its scale.
	Scale []float64
	// Offset holds subtrahends applied after scaling.
	Offset []float64
	// Units holds unit strings.
	Units []string
	// Bits holds per-component extraction widths.
	Bits []uint
	// Accumulate flags rolling-counter fields and components.
	Accumulate []bool
	// SubFields lists conditional reinterpretations of this field.
	SubFields []SubField
}

// SubField is a profile-declared reinterpretation of a field, active when
// a sibling reference field carries one of the named enum values.
type SubField struct {
	Name       string
	Type       string
	Array      int
	Components []string
	Scale      []float64
	Offset     []float64
	Units      []string
	Bits       []uint
	// RefFieldName and RefFieldValue are parallel: the sub-field activates
	// when any referenced sibling field equals its named enum value.
	RefFieldName  []string
	RefFieldValue []string
}

// MessageMap indexes a message's profile fields by field definition number.
type MessageMap map[uint8]Field

// MessageByName returns the field table for a message name from the
// Mesg-Num catalogue.
func MessageByName(name string) (MessageMap, bool) {
	m, ok := messages[name]
	return m, ok
}

// FieldByName scans a message table for a field with the given semantic
// name and returns its definition number. Component expansion uses it to
// resolve component targets declared by name.
func (m MessageMap) FieldByName(name string) (uint8, Field, bool) {
	for num, f := range m {
		if f.Name == name {
			return num, f, true
		}
	}

	return 0, Field{}, false
}

// TypeDef is one named profile type: its base type and a closed set of
// (name, value) pairs. An empty value set means the type is an opaque
// wrapper over its base type.
type TypeDef struct {
	Name     string
	BaseType value.BaseType
	values   map[uint64]string
	names    map[string]uint64
}

// ValueName maps a numeric value to its profile name.
func (t *TypeDef) ValueName(v uint64) (string, bool) {
	name, ok := t.values[v]
	return name, ok
}

// NamedValue maps a profile name back to its numeric value.
func (t *TypeDef) NamedValue(name string) (uint64, bool) {
	v, ok := t.names[name]
	return v, ok
}

// TypeByName returns the named type definition.
func TypeByName(name string) (*TypeDef, bool) {
	t, ok := types[name]
	return t, ok
}

// MessageName resolves a global message number through the mesg_num type.
func MessageName(globalMessageNumber uint16) (string, bool) {
	t, ok := types["mesg_num"]
	if !ok {
		return "", false
	}

	return t.ValueName(uint64(globalMessageNumber))
}

func init() {
	for name, t := range types {
		t.Name = name
		t.names = make(map[string]uint64, len(t.values))
		for v, n := range t.values {
			t.names[n] = v
		}
	}
}
