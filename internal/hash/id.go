// Package hash provides content fingerprinting for decode inputs.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the raw input bytes. Decode results
// carry it so callers can key caches by content instead of file path.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
