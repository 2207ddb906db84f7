package compress

// ZstdDecompressor inflates Zstandard frames.
//
// Two backends exist: the default pure-Go klauspost/compress/zstd decoder,
// and a cgo gozstd backend selected by the "gozstd" build tag for
// deployments that already link libzstd.
type ZstdDecompressor struct{}

var _ Decompressor = ZstdDecompressor{}
