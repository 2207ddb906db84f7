package decode

import (
	"fmt"
	"time"

	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/profile"
	"github.com/pacerline/fitwire/value"
	"github.com/pacerline/fitwire/wire"
)

// fitEpochOffset converts FIT UTC seconds (epoch 1989-12-31) to UNIX
// seconds.
const fitEpochOffset = 631065600

// timestampFieldNum is the canonical field definition number of the
// `timestamp` field across all messages.
const timestampFieldNum = 253

// projection is the normalized per-field transformation spec shared by
// fields, sub-fields and component targets.
type projection struct {
	Name       string
	Type       string
	Array      int
	Components []string
	Scale      []float64
	Offset     []float64
	Units      []string
	Bits       []uint
	Accumulate []bool
}

func fieldProjection(f profile.Field) projection {
	return projection{
		Name: f.Name, Type: f.Type, Array: f.Array,
		Components: f.Components, Scale: f.Scale, Offset: f.Offset,
		Units: f.Units, Bits: f.Bits, Accumulate: f.Accumulate,
	}
}

func subFieldProjection(sf profile.SubField) projection {
	return projection{
		Name: sf.Name, Type: sf.Type, Array: sf.Array,
		Components: sf.Components, Scale: sf.Scale, Offset: sf.Offset,
		Units: sf.Units, Bits: sf.Bits,
	}
}

func (p projection) scaleAt(i int) float64 {
	if i < len(p.Scale) {
		return p.Scale[i]
	}

	return 1
}

func (p projection) offsetAt(i int) float64 {
	if i < len(p.Offset) {
		return p.Offset[i]
	}

	return 0
}

func (p projection) unitAt(i int) string {
	if i < len(p.Units) {
		return p.Units[i]
	}

	return ""
}

func (p projection) bitsAt(i int) uint {
	if i < len(p.Bits) {
		return p.Bits[i]
	}

	return 8
}

func (p projection) accumulateAt(i int) bool {
	return i < len(p.Accumulate) && p.Accumulate[i]
}

// decodeMessage runs the semantic expansion layer over one extracted data
// message and appends the resulting record to the output map.
func (d *Decoder) decodeMessage(msg *dataMessage) error {
	name, ok := profile.MessageName(msg.globalMesgNum)
	if !ok {
		return fmt.Errorf("%w: global message number %d",
			errs.ErrGlobalDefinitionNotFound, msg.globalMesgNum)
	}
	msgMap, ok := profile.MessageByName(name)
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrUnknownMessage, name)
	}

	// The running timestamp reference feeds compressed-timestamp
	// reconstruction; any raw timestamp field updates it.
	if raw, ok := msg.fieldByNum(timestampFieldNum); ok {
		if u, ok := raw.AsUnsigned(); ok {
			d.timestampRef = uint32(u)
			d.hasTimestampRef = true
		}
	}

	record := Record{}

	for _, entry := range msg.fields {
		fld, ok := msgMap[entry.num]
		if !ok {
			d.recordError(errs.FieldError(msg.globalMesgNum, entry.num, "no profile entry"))
			continue
		}
		spec := fieldProjection(fld)

		projected, err := d.project(spec, entry.value)
		if err != nil {
			d.recordError(errs.FieldError(msg.globalMesgNum, entry.num, err.Error()))
			continue
		}
		record[spec.Name] = FieldValue{Value: projected, Units: spec.unitAt(0)}

		// Plain accumulating fields seed the rolling counter; fields with
		// components carry per-component accumulate flags instead.
		if len(spec.Components) == 0 && spec.accumulateAt(0) {
			d.seedAccumulator(msg.globalMesgNum, entry.num, entry.value)
		}

		if d.expandSubFields {
			if sf, ok := resolveSubField(msgMap, msg, fld); ok {
				d.expandSubField(record, msgMap, msg, entry, sf)
			}
		}

		if d.expandComponents && len(spec.Components) > 0 {
			d.expandInto(record, msgMap, msg.globalMesgNum, entry.value, spec)
		}
	}

	if msg.compressed {
		d.reconstructTimestamp(record, msg.timeOffset)
	}

	switch name {
	case "developer_data_id":
		if err := d.registerDeveloperDataID(msg); err != nil {
			return err
		}
	case "field_description":
		if err := d.registerFieldDescription(msg, msgMap); err != nil {
			return err
		}
	default:
		d.decodeDeveloperFields(msg, record)
	}

	d.result.Messages[name] = append(d.result.Messages[name], record)

	return nil
}

// project applies the per-field pipeline: scale/offset, type conversion,
// array arity check.
func (d *Decoder) project(spec projection, raw value.Value) (value.Value, error) {
	out := raw

	if d.applyScaleOffset {
		if bt, ok := value.BaseTypeFromName(spec.Type); ok && bt.IsNumeric() {
			scale, offset := spec.scaleAt(0), spec.offsetAt(0)
			if scale != 1 || offset != 0 {
				scaled, err := applyScaleOffset(out, scale, offset)
				if err != nil {
					return raw, err
				}
				out = scaled
			}
		}
	}

	if d.convertTypes {
		if spec.Type == "date_time" {
			converted, ok := toDateTime(out)
			if !ok {
				d.recordError(errs.DecodeError{
					Kind: errs.KindInvalidTimestamp,
					Message: fmt.Sprintf("cannot convert %s value of field %s to a timestamp",
						out.Kind(), spec.Name),
				})
			} else {
				out = converted
			}
		} else if t, ok := profile.TypeByName(spec.Type); ok {
			out = convertType(t, out)
		}
	}

	// Array-declared fields always emit Arrays; a scalar that slipped
	// through (sub-field coercion, single-element wire value) wraps into a
	// one-element Array. Fixed lengths are enforced, ArrayAny accepts all.
	if spec.Array != profile.ArrayNone && out.Kind() != value.KindString {
		arr, ok := out.AsArray()
		if !ok {
			out = value.Array(out)
			arr, _ = out.AsArray()
		}
		if spec.Array > 0 && len(arr) != spec.Array {
			return raw, fmt.Errorf("array length %d does not match declared length %d",
				len(arr), spec.Array)
		}
	}

	return out, nil
}

// applyScaleOffset divides by scale and subtracts offset, promoting to
// Float64; arrays transform element-wise.
func applyScaleOffset(v value.Value, scale, offset float64) (value.Value, error) {
	if arr, ok := v.AsArray(); ok {
		out := make([]value.Value, len(arr))
		for i, e := range arr {
			f, ok := e.AsFloat64()
			if !ok {
				return v, fmt.Errorf("cannot apply scale to %s element", e.Kind())
			}
			out[i] = value.Float64(f/scale - offset)
		}

		return value.Array(out...), nil
	}

	f, ok := v.AsFloat64()
	if !ok {
		return v, fmt.Errorf("cannot apply scale to %s value", v.Kind())
	}

	return value.Float64(f/scale - offset), nil
}

// convertType maps numeric values through a named type's value set. Values
// with no mapping keep their raw form; opaque wrapper types (empty value
// set) pass everything through.
func convertType(t *profile.TypeDef, v value.Value) value.Value {
	if arr, ok := v.AsArray(); ok {
		out := make([]value.Value, len(arr))
		for i, e := range arr {
			out[i] = convertType(t, e)
		}

		return value.Array(out...)
	}
	u, ok := v.AsUnsigned()
	if !ok {
		return v
	}
	name, ok := t.ValueName(u)
	if !ok {
		return v
	}

	return value.Str(name)
}

// toDateTime converts FIT epoch seconds to an absolute instant.
func toDateTime(v value.Value) (value.Value, bool) {
	u, ok := v.AsUnsigned()
	if !ok {
		return v, false
	}

	return value.DateTime(time.Unix(int64(u)+fitEpochOffset, 0)), true
}

// resolveSubField finds the first sub-field whose reference condition
// holds. References naming unknown fields or unknown enum values never
// activate; the parent field is emitted unchanged.
func resolveSubField(msgMap profile.MessageMap, msg *dataMessage, fld profile.Field) (profile.SubField, bool) {
	for _, sf := range fld.SubFields {
		for i := range sf.RefFieldName {
			refNum, refFld, ok := msgMap.FieldByName(sf.RefFieldName[i])
			if !ok {
				continue
			}
			rawRef, ok := msg.fieldByNum(refNum)
			if !ok {
				continue
			}
			u, ok := rawRef.AsUnsigned()
			if !ok {
				continue
			}
			t, ok := profile.TypeByName(refFld.Type)
			if !ok {
				continue
			}
			want, ok := t.NamedValue(sf.RefFieldValue[i])
			if !ok {
				continue
			}
			if u == want {
				return sf, true
			}
		}
	}

	return profile.SubField{}, false
}

// expandSubField re-projects the field's raw value under the activated
// sub-field's name, coercing the base type when it differs, and expands
// the sub-field's components.
func (d *Decoder) expandSubField(record Record, msgMap profile.MessageMap, msg *dataMessage, entry fieldEntry, sf profile.SubField) {
	spec := subFieldProjection(sf)

	coerced, err := coerceValue(entry.value, resolveBaseType(sf.Type))
	if err != nil {
		d.recordError(errs.FieldError(msg.globalMesgNum, entry.num, err.Error()))
		return
	}

	projected, err := d.project(spec, coerced)
	if err != nil {
		d.recordError(errs.FieldError(msg.globalMesgNum, entry.num, err.Error()))
		return
	}
	record[spec.Name] = FieldValue{Value: projected, Units: spec.unitAt(0), IsSubField: true}

	if d.expandComponents && len(spec.Components) > 0 {
		d.expandInto(record, msgMap, msg.globalMesgNum, coerced, spec)
	}
}

// expandInto extracts the spec's bit-packed components from raw and
// submits each through the projection pipeline under its own name.
// Components sharing a name group into an Array in declaration order.
func (d *Decoder) expandInto(record Record, msgMap profile.MessageMap, msgNo uint16, raw value.Value, spec projection) {
	br, err := wire.NewBitReader(raw)
	if err != nil {
		d.recordError(errs.DecodeError{
			Kind: errs.KindDecodeMessageFailed,
			Message: fmt.Sprintf("cannot expand components of message %d field %s: %v",
				msgNo, spec.Name, err),
		})

		return
	}

	var order []string
	grouped := make(map[string][]value.Value)
	units := make(map[string]string)

	for i, compName := range spec.Components {
		bits := spec.bitsAt(i)
		extracted, ok := br.ReadBits(int(bits))
		if !ok {
			break
		}

		destNum, destFld, ok := msgMap.FieldByName(compName)
		if !ok {
			d.recordError(errs.DecodeError{
				Kind: errs.KindDecodeMessageFailed,
				Message: fmt.Sprintf("message %d component target %q not found",
					msgNo, compName),
			})

			continue
		}

		// Accumulating components unify with same-named full-width fields
		// through the target's definition number.
		if spec.accumulateAt(i) {
			extracted = d.acc.Accumulate(msgNo, destNum, extracted, bits)
		}

		cv := value.FromUnsigned(resolveBaseType(destFld.Type), extracted)
		compSpec := projection{
			Name:   compName,
			Type:   destFld.Type,
			Scale:  []float64{spec.scaleAt(i)},
			Offset: []float64{spec.offsetAt(i)},
			Units:  []string{spec.unitAt(i)},
		}
		projected, err := d.project(compSpec, cv)
		if err != nil {
			d.recordError(errs.FieldError(msgNo, destNum, err.Error()))
			continue
		}

		if _, seen := grouped[compName]; !seen {
			order = append(order, compName)
			units[compName] = spec.unitAt(i)
		}
		grouped[compName] = append(grouped[compName], projected)
	}

	for _, n := range order {
		vals := grouped[n]
		v := vals[0]
		if len(vals) > 1 {
			v = value.Array(vals...)
		}
		record[n] = FieldValue{Value: v, Units: units[n]}
	}
}

// reconstructTimestamp rebuilds the full 32-bit timestamp from a
// compressed header's 5-bit offset against the running reference.
func (d *Decoder) reconstructTimestamp(record Record, offset uint8) {
	if !d.hasTimestampRef {
		d.recordError(errs.DecodeError{
			Kind:    errs.KindMissingTimestampRef,
			Message: "compressed timestamp without a prior timestamp reference",
		})

		return
	}

	prev := d.timestampRef
	off := uint32(offset)
	next := prev&^uint32(0x1F) + off
	if off < prev&0x1F {
		next += 0x20
	}
	d.timestampRef = next

	record["timestamp"] = FieldValue{
		Value: value.DateTime(time.Unix(int64(next)+fitEpochOffset, 0)),
		Units: "s",
	}
}

// seedAccumulator registers a full-width counter observation. Array fields
// seed from their most recent element.
func (d *Decoder) seedAccumulator(msgNo uint16, fieldNo uint8, raw value.Value) {
	v := raw
	if arr, ok := raw.AsArray(); ok {
		if len(arr) == 0 {
			return
		}
		v = arr[len(arr)-1]
	}
	if u, ok := v.AsUnsigned(); ok {
		d.acc.Add(msgNo, fieldNo, u)
	}
}

// coerceValue reinterprets v as the target base type, element-wise for
// arrays. Identical base types pass through untouched.
func coerceValue(v value.Value, target value.BaseType) (value.Value, error) {
	if v.BaseType() == target {
		return v, nil
	}
	if arr, ok := v.AsArray(); ok {
		out := make([]value.Value, len(arr))
		for i, e := range arr {
			c, err := coerceValue(e, target)
			if err != nil {
				return v, err
			}
			out[i] = c
		}

		return value.Array(out...), nil
	}
	if u, ok := v.AsUnsigned(); ok {
		return value.FromUnsigned(target, u), nil
	}

	return v, fmt.Errorf("%w: cannot coerce %s to %s", errs.ErrBaseTypeMismatch, v.Kind(), target)
}

// resolveBaseType maps a profile type name to its wire base type: either
// a base type name directly, or a named type's declared base.
func resolveBaseType(typeName string) value.BaseType {
	if bt, ok := value.BaseTypeFromName(typeName); ok {
		return bt
	}
	if t, ok := profile.TypeByName(typeName); ok {
		return t.BaseType
	}

	return value.BaseByte
}
