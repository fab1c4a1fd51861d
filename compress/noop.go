package compress

// NoOpCompressor wraps an LLTZ index with no compression at all.
//
// Pick this when the index is already small, or when a reader that cannot
// pull in klauspost/pierrec/gozstd needs to still parse the wrapper format.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged, sharing its backing array. Callers must
// not mutate data afterward if they still hold the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged, sharing its backing array.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
