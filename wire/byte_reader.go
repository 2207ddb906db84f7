// Package wire provides the low-level readers the decoder is built on: a
// positional ByteReader over the immutable input slice and a BitReader that
// extracts little-endian bit fields from decoded values.
package wire

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pacerline/fitwire/endian"
	"github.com/pacerline/fitwire/errs"
)

// ByteReader wraps an immutable byte slice with an advancing cursor.
//
// All reads are bounds checked and fail with *errs.OutOfBoundsReadError
// instead of panicking; a FIT stream that runs out mid-record is a fatal,
// reportable condition, not a programming error. The reader never copies
// the input: returned slices alias the underlying data.
type ByteReader struct {
	data []byte
	off  int
}

// NewByteReader creates a reader positioned at the start of data. The
// reader borrows data for its lifetime; the caller must not mutate it.
func NewByteReader(data []byte) *ByteReader {
	return &ByteReader{data: data}
}

// Offset returns the current cursor position.
func (r *ByteReader) Offset() int { return r.off }

// Len returns the total input length.
func (r *ByteReader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *ByteReader) Remaining() int { return len(r.data) - r.off }

// Reset rewinds the cursor to the start of the input.
func (r *ByteReader) Reset() { r.off = 0 }

// IsEnd reports whether the cursor is at or past the last byte.
func (r *ByteReader) IsEnd() bool { return r.off >= len(r.data) }

// Slice returns data[from:to] without moving the cursor. It is used to
// evaluate CRC scopes over already-consumed ranges.
func (r *ByteReader) Slice(from, to int) ([]byte, error) {
	if from < 0 || to < from || to > len(r.data) {
		return nil, &errs.OutOfBoundsReadError{Offset: from, Requested: to - from, Remaining: len(r.data) - from}
	}

	return r.data[from:to], nil
}

// ReadBytes consumes and returns the next n bytes.
func (r *ByteReader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, &errs.OutOfBoundsReadError{Offset: r.off, Requested: n, Remaining: r.Remaining()}
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// ReadUint8 consumes one byte.
func (r *ByteReader) ReadUint8() (uint8, error) {
	if r.off >= len(r.data) {
		return 0, &errs.OutOfBoundsReadError{Offset: r.off, Requested: 1, Remaining: 0}
	}
	b := r.data[r.off]
	r.off++

	return b, nil
}

// ReadInt8 consumes one byte as a signed integer.
func (r *ByteReader) ReadInt8() (int8, error) {
	b, err := r.ReadUint8()
	return int8(b), err
}

// ReadUint16 consumes two bytes in the given byte order.
func (r *ByteReader) ReadUint16(engine endian.EndianEngine) (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return engine.Uint16(b), nil
}

// ReadInt16 consumes two bytes as a signed integer.
func (r *ByteReader) ReadInt16(engine endian.EndianEngine) (int16, error) {
	v, err := r.ReadUint16(engine)
	return int16(v), err
}

// ReadUint32 consumes four bytes in the given byte order.
func (r *ByteReader) ReadUint32(engine endian.EndianEngine) (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}

// ReadInt32 consumes four bytes as a signed integer.
func (r *ByteReader) ReadInt32(engine endian.EndianEngine) (int32, error) {
	v, err := r.ReadUint32(engine)
	return int32(v), err
}

// ReadUint64 consumes eight bytes in the given byte order.
func (r *ByteReader) ReadUint64(engine endian.EndianEngine) (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return engine.Uint64(b), nil
}

// ReadInt64 consumes eight bytes as a signed integer.
func (r *ByteReader) ReadInt64(engine endian.EndianEngine) (int64, error) {
	v, err := r.ReadUint64(engine)
	return int64(v), err
}

// ReadFloat32 consumes four bytes as an IEEE-754 single.
func (r *ByteReader) ReadFloat32(engine endian.EndianEngine) (float32, error) {
	v, err := r.ReadUint32(engine)
	return math.Float32frombits(v), err
}

// ReadFloat64 consumes eight bytes as an IEEE-754 double.
func (r *ByteReader) ReadFloat64(engine endian.EndianEngine) (float64, error) {
	v, err := r.ReadUint64(engine)
	return math.Float64frombits(v), err
}

// ReadString consumes n bytes and decodes the prefix before the first NUL
// as UTF-8, lossily: invalid sequences become replacement runes instead of
// failing the field. FIT string fields are fixed-size, NUL-padded regions.
func (r *ByteReader) ReadString(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	if utf8.Valid(b) {
		return string(b), nil
	}

	var sb strings.Builder
	for len(b) > 0 {
		ru, size := utf8.DecodeRune(b)
		sb.WriteRune(ru)
		b = b[size:]
	}

	return sb.String(), nil
}
