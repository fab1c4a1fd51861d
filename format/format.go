// Package format defines the on-disk constants shared by every LLTZ reader
// component: the magic header, the tagged-slot encoding, the coordinate
// scale factor, and the fixed grid dimensions.
//
// Nothing in this package touches I/O; it is pure constants and small
// value types, mirroring how the teacher's own format package separates
// "what a byte means" from "how to read it".
package format

import "fmt"

// Tag is the 2-bit discriminator packed into the top bits of a tagged slot.
type Tag uint8

const (
	// TagEmpty marks a region with no polygon coverage; callers fall back
	// to the synthetic Etc/GMT resolver.
	TagEmpty Tag = 0
	// TagSingle marks a region that maps to exactly one timezone; the
	// payload is a string-table index.
	TagSingle Tag = 1
	// TagPolygon marks a region covered by one or more polygons; the
	// payload is a byte offset (relative to BaseOffset) to a polygon list.
	TagPolygon Tag = 2
	// TagBranch marks a quadtree branch; the payload is a byte offset
	// (relative to BaseOffset) to a 4-slot child block.
	TagBranch Tag = 3
)

func (t Tag) String() string {
	switch t {
	case TagEmpty:
		return "Empty"
	case TagSingle:
		return "Single"
	case TagPolygon:
		return "Polygon"
	case TagBranch:
		return "Branch"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// CompressionType identifies the codec used by the distribution wrapper
// (see the lltzfile package). It never appears inside an LLTZ file itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionZstd CompressionType = 1
	CompressionS2   CompressionType = 2
	CompressionLZ4  CompressionType = 3
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("CompressionType(%d)", uint8(c))
	}
}

const (
	// Magic is the fixed 8-byte header every LLTZ file begins with.
	Magic = "LLTZ1\x00\x00\x00"

	// MagicSize is len(Magic), kept as a named constant since it also
	// doubles as the byte offset of the string-table length field.
	MagicSize = 8

	// Scale is the fixed-point scale factor mapping degrees to the
	// non-negative integer coordinate space: x = round((lon+180)*Scale),
	// y = round((lat+90)*Scale).
	Scale = 1_000_000

	// GridLatCells and GridLonCells are the fixed 1-degree grid
	// dimensions: 180 rows of latitude by 360 columns of longitude.
	GridLatCells = 180
	GridLonCells = 360

	// GridSlotSize is the byte width of one tagged 32-bit grid slot.
	GridSlotSize = 4

	// GridBlockSize is the total byte length of the grid block
	// (180 * 360 * 4 = 259200), positioned immediately after the string
	// table and immediately before BaseOffset.
	GridBlockSize = GridLatCells * GridLonCells * GridSlotSize

	// ChildBlockSize is the byte length of one quadtree child block: four
	// consecutive tagged 32-bit slots in SW, SE, NW, NE order.
	ChildBlockSize = 4 * GridSlotSize

	// TagBits is the width, in bits, of the tag field within a tagged slot.
	TagBits = 2

	// PayloadBits is the width, in bits, of the payload field within a
	// tagged slot; it bounds both the packed-region size and the number
	// of timezone strings a single file can address (2^30).
	PayloadBits = 32 - TagBits

	// MaxPayload is the largest payload a tagged slot can carry.
	MaxPayload = 1<<PayloadBits - 1

	// MaxLat and MaxLon are the inclusive bounds of the public lookup
	// contract's input domain.
	MaxLat = 90.0
	MaxLon = 180.0
)

// DecodeSlot splits a raw tagged 32-bit word into its Tag and payload.
func DecodeSlot(word uint32) (Tag, uint32) {
	return Tag(word >> PayloadBits), word & MaxPayload
}

// EncodeSlot packs a Tag and payload into a single tagged 32-bit word.
// Payload values above MaxPayload are truncated by the caller's
// responsibility to validate against MaxPayload first; EncodeSlot itself
// only masks, it does not error, since it exists for tests and tooling
// rather than the read-only query path.
func EncodeSlot(tag Tag, payload uint32) uint32 {
	return uint32(tag)<<PayloadBits | (payload & MaxPayload)
}
