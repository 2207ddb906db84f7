package decode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/value"
)

func decodeBytes(t *testing.T, data []byte, opts ...Option) *Result {
	t.Helper()
	d, err := NewDecoder(data, opts...)
	require.NoError(t, err)
	result, err := d.Decode()
	require.NoError(t, err)

	return result
}

func TestDecode_MinimalFile(t *testing.T) {
	data := (&fileBuilder{}).bytes()

	require.True(t, IsFit(data))

	d, err := NewDecoder(data)
	require.NoError(t, err)
	require.NoError(t, d.CheckIntegrity())

	result, err := d.Decode()
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Empty(t, result.Messages)
}

func TestDecode_FileID(t *testing.T) {
	result := decodeBytes(t, fileIDActivity(1_000_000_000))
	require.Empty(t, result.Errors)
	require.Len(t, result.Messages["file_id"], 1)

	rec := result.Messages["file_id"][0]
	require.Equal(t, value.Str("activity"), rec.Value("type"))
	require.Equal(t, value.Str("garmin"), rec.Value("manufacturer"))

	created, ok := rec.Value("time_created").AsTime()
	require.True(t, ok)
	require.Equal(t, time.Unix(1_631_065_600, 0).UTC(), created)

	// manufacturer=garmin activates the garmin_product sub-field
	require.Equal(t, value.Str("edge500"), rec.Value("garmin_product"))
	require.True(t, rec["garmin_product"].IsSubField)
	require.Equal(t, value.UInt16(1036), rec.Value("product"))
	require.False(t, rec["product"].IsSubField)
}

func TestDecode_NotAFitFile(t *testing.T) {
	d, err := NewDecoder([]byte{
		0x0E, 0x10, 0xD9, 0x07, 0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0x91, 0x33, 0x00, 0x00,
	})
	require.NoError(t, err)
	_, err = d.Decode()
	require.ErrorIs(t, err, errs.ErrInvalidFitFile)
}

func TestDecode_CorruptCRC(t *testing.T) {
	data := fileIDActivity(1_000_000_000)
	data[len(data)-1] ^= 0xFF

	d, err := NewDecoder(data)
	require.NoError(t, err)
	require.ErrorIs(t, d.CheckIntegrity(), errs.ErrInvalidCRC)

	_, err = d.Decode()
	require.ErrorIs(t, err, errs.ErrInvalidCRC)
}

func TestDecode_MissingLocalDefinition(t *testing.T) {
	b := &fileBuilder{}
	b.data(7, 0x00)
	d, err := NewDecoder(b.bytes())
	require.NoError(t, err)
	_, err = d.Decode()
	require.ErrorIs(t, err, errs.ErrLocalDefinitionNotFound)
}

func TestDecode_UnknownGlobalMessage(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 0xFFEE, fieldDef{0, 1, 0x02})
	b.data(0, 0x01)
	d, err := NewDecoder(b.bytes())
	require.NoError(t, err)
	_, err = d.Decode()
	require.ErrorIs(t, err, errs.ErrGlobalDefinitionNotFound)
}

func TestDecode_ScaleAndOffset(t *testing.T) {
	t.Run("Altitude", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 20, fieldDef{2, 2, 0x84}) // record.altitude
		b.data(0, u16le(2500)...)
		b.data(0, u16le(3135)...)

		result := decodeBytes(t, b.bytes())
		require.Empty(t, result.Errors)
		records := result.Messages["record"]
		require.Len(t, records, 2)
		require.Equal(t, value.Float64(0.0), records[0].Value("altitude"))
		require.Equal(t, value.Float64(127.0), records[1].Value("altitude"))
		require.Equal(t, "m", records[0]["altitude"].Units)
	})

	t.Run("Component expansion mirrors enhanced fields", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 20,
			fieldDef{2, 2, 0x84}, // altitude
			fieldDef{6, 2, 0x84}, // speed
		)
		b.data(0, concat(u16le(3135), u16le(7500))...)

		result := decodeBytes(t, b.bytes())
		require.Empty(t, result.Errors)
		rec := result.Messages["record"][0]
		require.Equal(t, rec.Value("altitude"), rec.Value("enhanced_altitude"))
		require.Equal(t, rec.Value("speed"), rec.Value("enhanced_speed"))
		require.Equal(t, value.Float64(7.5), rec.Value("speed"))
	})

	t.Run("Applies element-wise to arrays", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 20, fieldDef{69, 2, 0x02}) // left_power_phase [N]
		b.data(0, 240, 142)

		result := decodeBytes(t, b.bytes())
		require.Empty(t, result.Errors)
		rec := result.Messages["record"][0]
		arr, ok := rec.Value("left_power_phase").AsArray()
		require.True(t, ok)
		require.Len(t, arr, 2)
		scale := 0.7111111
		require.Equal(t, value.Float64(240/scale), arr[0])
		require.Equal(t, value.Float64(142/scale), arr[1])
	})

	t.Run("Raw values within one ULP of direct computation", func(t *testing.T) {
		raws := []uint16{0, 1, 500, 2500, 3135, 40000, 65000}
		b := &fileBuilder{}
		b.definition(0, 20, fieldDef{2, 2, 0x84})
		for _, r := range raws {
			b.data(0, u16le(r)...)
		}

		result := decodeBytes(t, b.bytes())
		for i, r := range raws {
			got, ok := result.Messages["record"][i].Value("altitude").AsFloat64()
			require.True(t, ok)
			require.InDelta(t, float64(r)/5.0-500.0, got, 1e-9)
		}
	})
}

func TestDecode_CompressedTimestamp(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 20, fieldDef{253, 4, 0x86}) // record.timestamp
	b.data(0, u32le(1000)...)
	b.definition(1, 20, fieldDef{3, 1, 0x02}) // record.heart_rate
	b.compressedData(1, 3, 150)

	result := decodeBytes(t, b.bytes())
	require.Empty(t, result.Errors)
	records := result.Messages["record"]
	require.Len(t, records, 2)

	first, ok := records[0].Value("timestamp").AsTime()
	require.True(t, ok)
	require.Equal(t, int64(1000+631_065_600), first.Unix())

	// reference 1000: low 5 bits are 8, so offset 3 rolls over: 992+3+32
	require.Equal(t, value.UInt8(150), records[1].Value("heart_rate"))
	reconstructed, ok := records[1].Value("timestamp").AsTime()
	require.True(t, ok)
	require.Equal(t, int64(1027+631_065_600), reconstructed.Unix())
}

func TestDecode_CompressedTimestampWithoutReference(t *testing.T) {
	b := &fileBuilder{}
	b.definition(1, 20, fieldDef{3, 1, 0x02})
	b.compressedData(1, 3, 150)

	result := decodeBytes(t, b.bytes())
	require.Len(t, result.Errors, 1)
	require.Equal(t, errs.KindMissingTimestampRef, result.Errors[0].Kind)
	require.False(t, result.Messages["record"][0].Has("timestamp"))
}

func TestDecode_GearChange(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 21,
		fieldDef{0, 1, 0x00}, // event
		fieldDef{1, 1, 0x00}, // event_type
		fieldDef{3, 4, 0x86}, // data
	)
	b.data(0, concat(
		[]byte{42, 3}, // front_gear_change, marker
		u32le(0x03020100),
	)...)

	result := decodeBytes(t, b.bytes())
	require.Empty(t, result.Errors)
	rec := result.Messages["event"][0]

	require.Equal(t, value.Str("front_gear_change"), rec.Value("event"))

	// the original field and the activated sub-field are both preserved
	require.Equal(t, value.UInt32(0x03020100), rec.Value("data"))
	require.Equal(t, value.UInt32(0x03020100), rec.Value("gear_change_data"))
	require.True(t, rec["gear_change_data"].IsSubField)

	// components expand LSB-first in declaration order
	require.Equal(t, value.UInt8z(0), rec.Value("rear_gear_num"))
	require.Equal(t, value.UInt8z(1), rec.Value("rear_gear"))
	require.Equal(t, value.UInt8z(2), rec.Value("front_gear_num"))
	require.Equal(t, value.UInt8z(3), rec.Value("front_gear"))
}

func TestDecode_SubFields(t *testing.T) {
	t.Run("Rider position converts to string", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 21,
			fieldDef{0, 1, 0x00},
			fieldDef{3, 4, 0x86},
		)
		b.data(0, concat([]byte{44}, u32le(1))...) // rider_position_change, standing

		result := decodeBytes(t, b.bytes())
		rec := result.Messages["event"][0]
		require.Equal(t, value.Str("standing"), rec.Value("rider_position"))
		require.True(t, rec["rider_position"].IsSubField)
	})

	t.Run("Only the matching sub-field is emitted", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 21,
			fieldDef{0, 1, 0x00},
			fieldDef{3, 4, 0x86},
		)
		b.data(0, concat([]byte{0}, u32le(7))...) // timer event

		result := decodeBytes(t, b.bytes())
		rec := result.Messages["event"][0]
		require.True(t, rec.Has("timer_trigger")) // event=timer matches timer_trigger
		require.False(t, rec.Has("gear_change_data"))
		require.False(t, rec.Has("rider_position"))
	})

	t.Run("Duration sub-fields scale per declaration", func(t *testing.T) {
		run := func(t *testing.T, data []byte, wantField string, want value.Value) {
			result := decodeBytes(t, data)
			require.Empty(t, result.Errors)
			rec := result.Messages["workout_step"][0]
			require.Equal(t, want, rec.Value(wantField))
			require.True(t, rec[wantField].IsSubField)
		}

		t.Run("little endian", func(t *testing.T) {
			b := &fileBuilder{}
			b.definition(0, 27,
				fieldDef{1, 1, 0x00}, // duration_type
				fieldDef{2, 4, 0x86}, // duration_value
			)
			b.data(0, concat([]byte{0}, u32le(240_000))...) // time
			run(t, b.bytes(), "duration_time", value.Float64(240))
		})

		t.Run("big endian", func(t *testing.T) {
			b := &fileBuilder{}
			b.definitionBE(0, 27,
				fieldDef{1, 1, 0x00},
				fieldDef{2, 4, 0x86},
			)
			b.data(0, concat([]byte{1}, u32be(400_000))...) // distance
			run(t, b.bytes(), "duration_distance", value.Float64(4000))
		})
	})
}

func TestDecode_MonitoringComponents(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 55, fieldDef{24, 1, 0x0D}) // current_activity_type_intensity
	b.data(0, 8|3<<5)                          // sedentary, intensity 3
	b.data(0, 0|0<<5)                          // generic, intensity 0
	b.data(0, 30|6<<5)                         // unknown activity type, intensity 6

	result := decodeBytes(t, b.bytes())
	require.Empty(t, result.Errors)
	monitoring := result.Messages["monitoring"]
	require.Len(t, monitoring, 3)

	require.Equal(t, value.Str("sedentary"), monitoring[0].Value("activity_type"))
	require.Equal(t, value.UInt8(3), monitoring[0].Value("intensity"))

	require.Equal(t, value.Str("generic"), monitoring[1].Value("activity_type"))
	require.Equal(t, value.UInt8(0), monitoring[1].Value("intensity"))

	// no enum name for 30: the raw value passes through
	require.Equal(t, value.Enum(30), monitoring[2].Value("activity_type"))
	require.Equal(t, value.UInt8(6), monitoring[2].Value("intensity"))
}

func TestDecode_HrEventTimestampAccumulation(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 132, fieldDef{9, 4, 0x86}) // event_timestamp
	b.data(0, u32le(1024)...)
	b.definition(1, 132, fieldDef{10, 3, 0x0D}) // event_timestamp_12, two samples
	// samples 1030 (0x406) and 1040 (0x410), 12 bits each, LSB first
	b.data(1, 0x06, 0x04, 0x41)

	result := decodeBytes(t, b.bytes())
	require.Empty(t, result.Errors)
	hr := result.Messages["hr"]
	require.Len(t, hr, 2)

	// event_timestamp is array-declared, so one wire element still emits
	// as a one-element Array
	require.Equal(t, value.Array(value.Float64(1)), hr[0].Value("event_timestamp"))

	arr, ok := hr[1].Value("event_timestamp").AsArray()
	require.True(t, ok)
	require.Len(t, arr, 2)
	require.Equal(t, value.Float64(1030.0/1024.0), arr[0])
	require.Equal(t, value.Float64(1040.0/1024.0), arr[1])
	require.Equal(t, "s", hr[1]["event_timestamp"].Units)
}

func TestDecode_ArrayFields(t *testing.T) {
	t.Run("Single element of an array field wraps", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 132, fieldDef{6, 1, 0x02}) // hr.filtered_bpm [N]
		b.data(0, 72)

		result := decodeBytes(t, b.bytes())
		require.Empty(t, result.Errors)
		arr, ok := result.Messages["hr"][0].Value("filtered_bpm").AsArray()
		require.True(t, ok)
		require.Equal(t, []value.Value{value.UInt8(72)}, arr)
	})

	t.Run("Fixed-length mismatch skips the field", func(t *testing.T) {
		b := &fileBuilder{}
		// compressed_speed_distance declares exactly 3 bytes; supply 2
		b.definition(0, 20,
			fieldDef{8, 2, 0x0D},
			fieldDef{4, 1, 0x02}, // cadence
		)
		b.data(0, 0x01, 0x02, 90)

		result := decodeBytes(t, b.bytes())
		require.Len(t, result.Errors, 1)
		require.Equal(t, errs.KindDecodeFieldFailed, result.Errors[0].Kind)

		rec := result.Messages["record"][0]
		require.False(t, rec.Has("compressed_speed_distance"))
		require.Equal(t, value.UInt8(90), rec.Value("cadence"))
	})

	t.Run("Fixed length accepted when it matches", func(t *testing.T) {
		b := &fileBuilder{}
		b.definition(0, 207,
			fieldDef{3, 1, 0x02},  // developer_data_index
			fieldDef{0, 16, 0x0D}, // developer_id [16]
		)
		payload := append([]byte{0}, devAppID()...)
		b.data(0, payload...)

		result := decodeBytes(t, b.bytes())
		require.Empty(t, result.Errors)
		arr, ok := result.Messages["developer_data_id"][0].Value("developer_id").AsArray()
		require.True(t, ok)
		require.Len(t, arr, 16)
	})
}

func TestDecode_InvalidFieldValueSkipped(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 20,
		fieldDef{3, 1, 0x02}, // heart_rate
		fieldDef{4, 1, 0x02}, // cadence
	)
	b.data(0, 0xFF, 90) // invalid heart rate, valid cadence

	result := decodeBytes(t, b.bytes())
	require.Len(t, result.Errors, 1)
	require.Equal(t, errs.KindInvalidFieldValue, result.Errors[0].Kind)

	rec := result.Messages["record"][0]
	require.False(t, rec.Has("heart_rate"))
	require.Equal(t, value.UInt8(90), rec.Value("cadence"))
}

func TestDecode_SizeMismatchSkipsField(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 20,
		fieldDef{2, 3, 0x84}, // altitude with a 3-byte slot: not a multiple of 2
		fieldDef{4, 1, 0x02}, // cadence
	)
	b.data(0, 0x01, 0x02, 0x03, 90)

	result := decodeBytes(t, b.bytes())
	require.Len(t, result.Errors, 1)
	require.Equal(t, errs.KindSizeMismatch, result.Errors[0].Kind)

	rec := result.Messages["record"][0]
	require.False(t, rec.Has("altitude"))
	require.Equal(t, value.UInt8(90), rec.Value("cadence"))
}

func TestDecode_ChainedFiles(t *testing.T) {
	t.Run("Identical files are idempotent", func(t *testing.T) {
		one := fileIDActivity(1_000_000_000)
		single := decodeBytes(t, one)
		chained := decodeBytes(t, concat(one, one, one))

		require.Empty(t, chained.Errors)
		require.Len(t, chained.Messages["file_id"], 3*len(single.Messages["file_id"]))
	})

	t.Run("Dissimilar files decode in order", func(t *testing.T) {
		first := fileIDActivity(1_000_000_000)

		b := &fileBuilder{}
		b.definition(0, 0,
			fieldDef{0, 1, 0x00},
			fieldDef{1, 2, 0x84},
		)
		b.data(0, concat([]byte{5}, u16le(255))...) // workout, development
		second := b.bytes()

		require.NotEqual(t, len(first), len(second))

		result := decodeBytes(t, concat(first, second))
		require.Empty(t, result.Errors)
		files := result.Messages["file_id"]
		require.Len(t, files, 2)
		require.Equal(t, value.Str("activity"), files[0].Value("type"))
		require.Equal(t, value.Str("workout"), files[1].Value("type"))
	})

	t.Run("Definitions persist across file boundaries", func(t *testing.T) {
		first := fileIDActivity(1_000_000_000)

		// second file reuses the first file's local definition table
		b := &fileBuilder{}
		b.data(0, concat([]byte{4}, u16le(1), u16le(1036), u32le(2_000_000_000))...)
		second := b.bytes()

		result := decodeBytes(t, concat(first, second))
		require.Empty(t, result.Errors)
		require.Len(t, result.Messages["file_id"], 2)
	})
}

func TestDecode_RedefinitionReplacesEntry(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 20, fieldDef{3, 1, 0x02}) // record.heart_rate
	b.data(0, 120)
	b.definition(0, 0, fieldDef{0, 1, 0x00}) // same local, now file_id.type
	b.data(0, 4)

	result := decodeBytes(t, b.bytes())
	require.Empty(t, result.Errors)
	require.Len(t, result.Messages["record"], 1)
	require.Len(t, result.Messages["file_id"], 1)
	require.Equal(t, value.Str("activity"), result.Messages["file_id"][0].Value("type"))
}

func TestDecode_Options(t *testing.T) {
	altitudeFile := func() []byte {
		b := &fileBuilder{}
		b.definition(0, 20, fieldDef{2, 2, 0x84})
		b.data(0, u16le(3135)...)

		return b.bytes()
	}

	t.Run("WithoutScaleAndOffset keeps raw values", func(t *testing.T) {
		result := decodeBytes(t, altitudeFile(), WithoutScaleAndOffset())
		require.Equal(t, value.UInt16(3135), result.Messages["record"][0].Value("altitude"))
	})

	t.Run("WithoutComponentExpansion drops enhanced fields", func(t *testing.T) {
		result := decodeBytes(t, altitudeFile(), WithoutComponentExpansion())
		rec := result.Messages["record"][0]
		require.True(t, rec.Has("altitude"))
		require.False(t, rec.Has("enhanced_altitude"))
	})

	t.Run("WithoutTypeConversion keeps numeric enums", func(t *testing.T) {
		result := decodeBytes(t, fileIDActivity(1_000_000_000), WithoutTypeConversion())
		rec := result.Messages["file_id"][0]
		require.Equal(t, value.Enum(4), rec.Value("type"))
		require.Equal(t, value.UInt32(1_000_000_000), rec.Value("time_created"))
	})

	t.Run("WithoutSubFieldExpansion keeps parent only", func(t *testing.T) {
		result := decodeBytes(t, fileIDActivity(1_000_000_000), WithoutSubFieldExpansion())
		rec := result.Messages["file_id"][0]
		require.True(t, rec.Has("product"))
		require.False(t, rec.Has("garmin_product"))
	})
}

func TestDecode_ValueValidityInvariant(t *testing.T) {
	b := &fileBuilder{}
	b.definition(0, 20,
		fieldDef{2, 2, 0x84},
		fieldDef{3, 1, 0x02},
		fieldDef{4, 1, 0x02},
	)
	b.data(0, concat(u16le(3135), []byte{0xFF, 90})...)
	b.data(0, concat(u16le(0xFFFF), []byte{120, 0xFF})...)

	result := decodeBytes(t, b.bytes())
	for _, records := range result.Messages {
		for _, rec := range records {
			for name, fv := range rec {
				require.True(t, fv.Value.IsValid(), "field %s", name)
			}
		}
	}
}
