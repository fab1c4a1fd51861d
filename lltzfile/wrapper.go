package lltzfile

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/geoidx/lltz/compress"
	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/format"
	"github.com/geoidx/lltz/index"
	"github.com/geoidx/lltz/internal/hash"
)

// wrapperMagic is the 4-byte tag at the start of a distribution wrapper:
// ASCII "LLTZW" trimmed to its first 4 bytes.
const wrapperMagic = "LLTZ"

const wrapperHeaderSize = 24

// OpenCompressed reads a distribution-wrapped LLTZ file from path,
// decompresses it fully into memory, verifies its checksum, and returns a
// Reader over the result.
//
// The wrapper format is:
//
//	offset  size   field
//	0       4      magic ("LLTZ")
//	4       1      compression (format.CompressionType)
//	5       3      reserved, must be zero
//	8       8      decompressed length (uint64 LE)
//	16      8      xxHash64 of the decompressed LLTZ bytes
//	24      N      compressed (or raw) LLTZ bytes
//
// OpenCompressed fails with errs.ErrInvalidHeader on a bad magic, and
// errs.ErrCorrupt on an unknown compression byte, a non-zero reserved
// field, or a checksum mismatch.
func OpenCompressed(path string) (*index.Reader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDataFileNotFound, err)
	}

	data, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	return index.Open(data)
}

// OpenAuto opens path as either a plain LLTZ file or a distribution-wrapped
// one, detected by its leading bytes. Callers that don't know which form a
// path holds (e.g. a CLI -file flag) should use this instead of choosing
// between index.Open and OpenCompressed themselves.
func OpenAuto(path string) (*index.Reader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDataFileNotFound, err)
	}

	if len(raw) >= format.MagicSize && string(raw[:format.MagicSize]) == format.Magic {
		return index.Open(raw)
	}

	data, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	return index.Open(data)
}

func unwrap(raw []byte) ([]byte, error) {
	if len(raw) < wrapperHeaderSize || string(raw[:4]) != wrapperMagic {
		return nil, errs.ErrInvalidHeader
	}

	compType := format.CompressionType(raw[4])
	if raw[5] != 0 || raw[6] != 0 || raw[7] != 0 {
		return nil, errs.ErrCorrupt
	}

	decompLen := binary.LittleEndian.Uint64(raw[8:16])
	checksum := binary.LittleEndian.Uint64(raw[16:24])
	payload := raw[wrapperHeaderSize:]

	codec, err := compress.GetCodec(compType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrCorrupt, err)
	}

	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrCorrupt, err)
	}

	if uint64(len(decompressed)) != decompLen {
		return nil, fmt.Errorf("%w: decompressed length mismatch", errs.ErrCorrupt)
	}

	if hash.Checksum(decompressed) != checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", errs.ErrCorrupt)
	}

	return decompressed, nil
}

// WriteWrapper compresses data (a complete LLTZ file) with the codec for
// compType and writes the distribution wrapper to path. It is the
// producing half of OpenCompressed, used by packaging tooling rather than
// the query runtime.
func WriteWrapper(path string, data []byte, compType format.CompressionType) error {
	codec, err := compress.GetCodec(compType)
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return err
	}

	out := make([]byte, wrapperHeaderSize+len(compressed))
	copy(out[:4], wrapperMagic)
	out[4] = byte(compType)

	binary.LittleEndian.PutUint64(out[8:16], uint64(len(data)))
	binary.LittleEndian.PutUint64(out[16:24], hash.Checksum(data))
	copy(out[wrapperHeaderSize:], compressed)

	return os.WriteFile(path, out, 0o644)
}
