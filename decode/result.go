package decode

import (
	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/value"
)

// FieldValue is one emitted field of a record: the projected value, its
// profile unit string, and whether it came from sub-field reinterpretation.
type FieldValue struct {
	Value value.Value
	Units string
	// IsSubField marks values produced by sub-field resolution rather
	// than the field's primary profile entry.
	IsSubField bool
}

// Record is one decoded data message, keyed by semantic field name.
type Record map[string]FieldValue

// Value returns the value stored under name, or the zero (invalid) Value.
func (r Record) Value(name string) value.Value {
	return r[name].Value
}

// Has reports whether the record carries a field with the given name.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// DeveloperFieldDescription is a runtime-registered descriptor for one
// developer field, built from a field_description message.
type DeveloperFieldDescription struct {
	// Attributes holds every attribute of the field_description message,
	// untransformed, keyed by profile field name.
	Attributes map[string]value.Value

	FieldName    string
	BaseTypeName string
	Units        string

	DeveloperDataIndex    uint8
	FieldDefinitionNumber uint8
}

// DeveloperDataDefinition is the runtime registry entry for one developer
// data index, built from a developer_data_id message and populated by
// subsequent field_description messages.
type DeveloperDataDefinition struct {
	// Fields maps field definition numbers to their descriptors.
	Fields map[uint8]*DeveloperFieldDescription

	// ManufacturerName is the manufacturer_id resolved through the
	// manufacturer type catalogue; empty when absent or unknown.
	ManufacturerName string

	DeveloperID        value.Value
	ApplicationID      value.Value
	ApplicationVersion uint32

	DeveloperDataIndex uint8
}

// Result is the outcome of one decode session.
type Result struct {
	// Messages maps message names to decoded records in input order.
	Messages map[string][]Record
	// DeveloperData is the session's developer data registry, keyed by
	// developer data index.
	DeveloperData map[uint8]*DeveloperDataDefinition
	// Errors lists the non-fatal errors encountered; the offending fields
	// were skipped.
	Errors []errs.DecodeError
	// Fingerprint is the xxHash64 of the raw input bytes, before any
	// decompression. Callers can key decode caches by it.
	Fingerprint uint64
}

func newResult() *Result {
	return &Result{
		Messages:      make(map[string][]Record),
		DeveloperData: make(map[uint8]*DeveloperDataDefinition),
	}
}
