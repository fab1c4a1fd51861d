//go:build nobuild

// Alternate cgo-backed Zstd path via gozstd. The nobuild tag keeps it out of
// normal builds; zstd_pure.go carries the complementary !nobuild tag and is
// the default, so exactly one of the two files is compiled.
package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses data using libzstd at level 3.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data via libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
