package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/pacerline/fitwire/internal/pool"
)

// S2Decompressor inflates s2/snappy framed streams.
type S2Decompressor struct{}

var _ Decompressor = S2Decompressor{}

// Decompress inflates an s2 framed stream.
func (S2Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	zr := s2.NewReader(bytes.NewReader(data))

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)

	return out, nil
}
