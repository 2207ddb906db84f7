package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/pacerline/fitwire/internal/pool"
)

// GzipDecompressor inflates gzip members, the framing of .fit.gz bulk
// exports. Multi-member streams are concatenated the way gzip defines.
type GzipDecompressor struct{}

var _ Decompressor = GzipDecompressor{}

// Decompress inflates a gzip stream.
func (GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)

	return out, nil
}
