package wire

import (
	"github.com/pacerline/fitwire/errs"
	"github.com/pacerline/fitwire/value"
)

// BitReader extracts a little-endian bit stream from a decoded scalar or
// array value. Bits are yielded LSB-first within each element, then the
// reader advances to the next element; the total number of available bits
// is the per-element bit width times the element count.
//
// Component expansion drives it: a profile component list slices one wire
// field into several bit-packed targets in declaration order.
type BitReader struct {
	elems    []uint64
	perBits  int
	consumed int
	total    int
}

// NewBitReader constructs a reader over v, which must be an unsigned
// integer scalar or an array of them. Signed, float and string values do
// not carry bit-packed components; they fail with errs.ErrBaseTypeMismatch.
func NewBitReader(v value.Value) (*BitReader, error) {
	var elems []value.Value
	if arr, ok := v.AsArray(); ok {
		elems = arr
	} else {
		elems = []value.Value{v}
	}
	if len(elems) == 0 {
		return nil, errs.ErrBaseTypeMismatch
	}

	nums := make([]uint64, len(elems))
	for i, e := range elems {
		n, ok := e.AsUnsigned()
		if !ok {
			return nil, errs.ErrBaseTypeMismatch
		}
		nums[i] = n
	}
	perBits := elems[0].BaseType().Size() * 8

	return &BitReader{
		elems:   nums,
		perBits: perBits,
		total:   perBits * len(nums),
	}, nil
}

// Available reports whether at least one unread bit remains.
func (r *BitReader) Available() bool {
	return r.consumed < r.total
}

// Next yields the next bit, LSB-first. ok is false once the stream is
// exhausted.
func (r *BitReader) Next() (bit uint8, ok bool) {
	if !r.Available() {
		return 0, false
	}
	bit = uint8(r.elems[r.consumed/r.perBits] >> (r.consumed % r.perBits) & 0x01)
	r.consumed++

	return bit, true
}

// ReadBits assembles an unsigned n-bit integer LSB-first. ok is false when
// fewer than n bits remain; the reader position is then undefined and the
// caller should stop extracting.
func (r *BitReader) ReadBits(n int) (v uint64, ok bool) {
	for i := 0; i < n; i++ {
		bit, ok := r.Next()
		if !ok {
			return 0, false
		}
		v |= uint64(bit) << i
	}

	return v, true
}
