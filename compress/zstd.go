package compress

// ZstdCompressor gives the best compression ratio of the four built-in
// codecs, at the cost of slower compression — a fit for archiving or
// distributing a built LLTZ index where decompression happens rarely.
//
// Its Compress/Decompress methods live in zstd_pure.go (pure-Go
// klauspost/compress/zstd, compiled in every build without the nobuild tag)
// or zstd_cgo.go (gozstd, compiled only with the nobuild tag — see that file).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
