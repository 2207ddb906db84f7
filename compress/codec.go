// Package compress handles compressed FIT containers.
//
// Fitness platforms commonly deliver FIT files wrapped in a general-purpose
// compression frame (bulk exports ship as .fit.gz; archival pipelines use
// zstd, lz4 or s2 frames). This package sniffs the frame magic ahead of the
// FIT header and inflates the container before framing begins, so callers
// can hand either plain or compressed bytes to the decoder.
//
// Plain FIT bytes pass through untouched: a FIT header size byte (12 or 14)
// never collides with any supported frame magic.
package compress

import "fmt"

// Type identifies the compression frame wrapped around the input, if any.
type Type uint8

const (
	TypeNone Type = iota
	TypeGzip
	TypeZstd
	TypeS2
	TypeLZ4
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeGzip:
		return "Gzip"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Decompressor inflates one compression frame format.
//
// Implementations return a newly allocated slice owned by the caller and
// never modify the input. They must be safe for concurrent use; the
// built-in implementations pool their scratch buffers, and the pure-Go
// zstd backend also pools its decoders.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

var frameMagics = []struct {
	typ   Type
	magic []byte
}{
	{TypeGzip, []byte{0x1F, 0x8B}},
	{TypeZstd, []byte{0x28, 0xB5, 0x2F, 0xFD}},
	{TypeLZ4, []byte{0x04, 0x22, 0x4D, 0x18}},
	// s2 stream identifier frame ("S2sTwO"), as written by s2.NewWriter
	{TypeS2, []byte{0xFF, 0x06, 0x00, 0x00, 0x53, 0x32, 0x73, 0x54, 0x77, 0x4F}},
	// snappy-compatible stream identifier frame ("sNaPpY"), also read by s2
	{TypeS2, []byte{0xFF, 0x06, 0x00, 0x00, 0x73, 0x4E, 0x61, 0x50, 0x70, 0x59}},
}

// Detect sniffs the compression frame type from the leading magic bytes.
// Unrecognized input is reported as TypeNone and left to the FIT framing
// layer to accept or reject.
func Detect(data []byte) Type {
	for _, fm := range frameMagics {
		if len(data) >= len(fm.magic) && string(data[:len(fm.magic)]) == string(fm.magic) {
			return fm.typ
		}
	}

	return TypeNone
}

var builtinDecompressors = map[Type]Decompressor{
	TypeGzip: GzipDecompressor{},
	TypeZstd: ZstdDecompressor{},
	TypeS2:   S2Decompressor{},
	TypeLZ4:  LZ4Decompressor{},
}

// GetDecompressor retrieves the built-in Decompressor for a frame type.
func GetDecompressor(t Type) (Decompressor, error) {
	if d, ok := builtinDecompressors[t]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

// Unwrap sniffs data and inflates it when a known frame magic is found.
// Plain input is returned as-is, aliasing the caller's slice.
func Unwrap(data []byte) ([]byte, error) {
	t := Detect(data)
	if t == TypeNone {
		return data, nil
	}
	d, err := GetDecompressor(t)
	if err != nil {
		return nil, err
	}
	out, err := d.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s input: %w", t, err)
	}

	return out, nil
}
