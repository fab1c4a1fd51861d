package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoidx/lltz/format"
)

// getAllCodecs returns every codec the distribution wrapper can select,
// keyed by the format.CompressionType byte it is registered under.
func getAllCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

func TestGetCodec(t *testing.T) {
	for compType, want := range getAllCodecs() {
		codec, err := GetCodec(compType)
		require.NoError(t, err)
		require.IsType(t, want, codec)
	}

	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestAllCodecsRoundTrip(t *testing.T) {
	gridBlock := make([]byte, 4096)
	for i := range gridBlock {
		gridBlock[i] = byte(i % 7)
	}

	payloads := map[string][]byte{
		"empty":         {},
		"single_byte":   {0x42},
		"string_table":  []byte("America/New_York\x00Europe/London\x00Asia/Tokyo\x00"),
		"repeated_ring": bytes.Repeat([]byte{0x10, 0x20, 0x30, 0x40}, 512),
		"grid_block":    gridBlock,
	}

	for compType, codec := range getAllCodecs() {
		t.Run(compType.String(), func(t *testing.T) {
			for name, data := range payloads {
				t.Run(name, func(t *testing.T) {
					compressed, err := codec.Compress(data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, data, decompressed)
				})
			}
		})
	}
}

func TestNoOpCompressorSharesUnderlyingMemory(t *testing.T) {
	compressor := NewNoOpCompressor()
	data := []byte("hello world")

	compressed, err := compressor.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])
}

func TestLZ4DecompressRejectsCorruptData(t *testing.T) {
	_, err := NewLZ4Compressor().Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestS2DecompressRejectsCorruptData(t *testing.T) {
	_, err := NewS2Compressor().Decompress([]byte("not s2 data at all"))
	require.Error(t, err)
}

func TestAllCodecsImplementCodec(t *testing.T) {
	for _, codec := range getAllCodecs() {
		var _ Codec = codec
	}
}
