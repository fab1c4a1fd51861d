package index

import (
	"encoding/binary"

	"github.com/geoidx/lltz/errs"
)

// cursor is a bounds-checked, allocation-free view over a byte range with a
// movable read position. It is the "cursor abstraction that carries
// (bytes, offset) and performs bounds-checked reads" called for in
// spec.md §9 for systems without raw unchecked byte access.
//
// A cursor never copies the underlying bytes; it only ever reads
// little-endian fixed-width integers at or past its current position.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte, pos int) cursor {
	return cursor{data: data, pos: pos}
}

func (c *cursor) require(n int) error {
	if c.pos < 0 || n < 0 || c.pos+n > len(c.data) {
		return errs.ErrTruncated
	}

	return nil
}

func (c *cursor) u8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++

	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos : c.pos+2])
	c.pos += 2

	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4

	return v, nil
}

// skip advances the cursor by n bytes without reading, failing closed if
// that would step outside the byte range.
func (c *cursor) skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// u32At reads a tagged slot at an absolute byte offset without disturbing
// the cursor's own position; used for one-shot slot reads (grid cells,
// quadtree children) where no sequential state is needed.
func u32At(data []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, errs.ErrTruncated
	}

	return binary.LittleEndian.Uint32(data[offset : offset+4]), nil
}
