package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Checksum computes the xxHash64 of a byte range, used by the distribution
// wrapper to detect truncated or corrupted downloads before handing the
// decompressed bytes to index.Open.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
