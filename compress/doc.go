// Package compress provides compression and decompression codecs for the LLTZ distribution wrapper.
//
// An LLTZ index is static once built: the grid block is dense binary
// structure, and the string table and polygon rings produced by a real
// builder are repetitive enough that general-purpose compression pays for
// itself. This package applies that compression at the whole-payload level,
// independent of anything in the index format itself — an LLTZ Reader never
// imports this package directly; only the lltzfile distribution wrapper
// does.
//
// # Architecture
//
// The package defines three small interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): returns the input unchanged. Use when
//     the payload is already small or when CPU matters more than size.
//   - LZ4 (format.CompressionLZ4): fast compression and very fast
//     decompression; a reasonable default for a wrapper that is decompressed
//     once per process startup.
//   - S2 (format.CompressionS2): a Snappy-family codec balancing ratio and
//     speed, useful when the index ships over a bandwidth-constrained link.
//   - Zstd (format.CompressionZstd): the best compression ratio of the four,
//     at the cost of slower compression; best for cold storage or archival
//     distribution of an index build.
//
// # Selecting a Codec
//
//	codec, err := compress.GetCodec(format.CompressionLZ4)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(indexBytes)
//
// GetCodec looks up a built-in codec by format.CompressionType, the same
// byte the distribution wrapper stores in its header so a reader can select
// the matching decompressor without the caller naming it again.
//
// # Thread Safety
//
// Every built-in codec is safe for concurrent use; none hold per-call
// mutable state beyond what each Compress/Decompress call allocates itself.
package compress
