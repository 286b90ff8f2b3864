package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes. It identifies log content
// for deduplication and caching; it is not cryptographic.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
