package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/pacerline/fitwire/internal/pool"
)

// LZ4Decompressor inflates lz4 frame streams.
type LZ4Decompressor struct{}

var _ Decompressor = LZ4Decompressor{}

// Decompress inflates an lz4 frame stream.
func (LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	zr := lz4.NewReader(bytes.NewReader(data))

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)

	return out, nil
}
