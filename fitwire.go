// Package fitwire decodes binary files in the Flexible and Interoperable
// Data Transfer (FIT) format, the container for structured time-series
// records emitted by fitness devices.
//
// The decoder takes an immutable byte slice, possibly holding several
// chained FIT files, and produces a map from message name to decoded
// records plus a list of non-fatal field-level errors:
//
//	data, _ := os.ReadFile("Activity.fit")
//	result, err := fitwire.Decode(data)
//	if err != nil {
//	    return err
//	}
//	for _, rec := range result.Messages["record"] {
//	    fmt.Println(rec.Value("altitude"), rec["altitude"].Units)
//	}
//
// Semantic expansion is profile driven: scale/offset application, enum
// name resolution, compressed-timestamp reconstruction, sub-field
// resolution, bit-packed component expansion with accumulation, and
// developer-defined fields all follow the generated profile catalogue in
// the profile package.
//
// Compressed containers (.fit.gz bulk exports, zstd/lz4/s2 frames) are
// inflated transparently; disable with decode.WithAutoDecompress(false).
//
// This package provides convenient top-level wrappers around the decode
// package. For fine-grained control, use the decode package directly.
package fitwire

import (
	"github.com/pacerline/fitwire/decode"
	"github.com/pacerline/fitwire/internal/hash"
)

// IsFit reports whether data structurally looks like a FIT file: a valid
// header size byte, room for the trailing CRC, and the ".FIT" marker.
func IsFit(data []byte) bool {
	return decode.IsFit(data)
}

// CheckIntegrity verifies the framing of every chained file in data:
// header bounds, the optional header CRC, and the trailing file CRC.
func CheckIntegrity(data []byte, opts ...decode.Option) error {
	d, err := decode.NewDecoder(data, opts...)
	if err != nil {
		return err
	}

	return d.CheckIntegrity()
}

// Decode decodes every chained FIT file in data.
func Decode(data []byte, opts ...decode.Option) (*decode.Result, error) {
	d, err := decode.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// Fingerprint computes the xxHash64 content fingerprint of data, the same
// value decode results carry. Use it to key decode caches.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
