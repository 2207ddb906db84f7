//go:build gozstd

package compress

import "github.com/valyala/gozstd"

// Decompress inflates a Zstandard frame through libzstd.
func (ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
