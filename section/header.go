// Package section parses the fixed, non-payload structure of an LLTZ file:
// the 8-byte magic, the timezone string table, and the byte offsets that
// locate the grid block and the packed quadtree/polygon region.
//
// This package does not itself perform bounds-checked random access into
// the packed region — that is the byte reader's job (see the index
// package) — it only establishes where each fixed section begins and ends.
package section

import (
	"bytes"
	"encoding/binary"

	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/format"
)

// Header describes the parsed fixed-size prefix of an LLTZ file: the
// string table contents and the byte offsets of the sections that follow
// it.
type Header struct {
	// Strings is the zero-based list of timezone identifiers produced by
	// splitting the string table on NUL.
	Strings []string

	// GridOffset is the byte offset of the first grid slot
	// (grid[0][0]'s low byte), immediately after the string table.
	GridOffset int

	// BaseOffset is the byte offset that all tag-2/tag-3 payloads are
	// relative to: GridOffset + GridBlockSize.
	BaseOffset int
}

// ParseHeader validates the 8-byte magic and parses the string table
// described in spec.md §4.1. It does not validate that GridOffset or
// BaseOffset fall within len(data); the caller (index.Open) is expected to
// do that once, up front, since every subsequent read is bounds-checked
// independently.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < format.MagicSize+2 {
		return Header{}, errs.ErrInvalidHeader
	}

	if !bytes.Equal(data[:format.MagicSize], []byte(format.Magic)) {
		return Header{}, errs.ErrInvalidHeader
	}

	l := binary.LittleEndian.Uint16(data[format.MagicSize : format.MagicSize+2])
	tableStart := format.MagicSize + 2
	tableEnd := tableStart + int(l)

	if len(data) < tableEnd {
		return Header{}, errs.ErrTruncated
	}

	strs := splitStringTable(data[tableStart:tableEnd])

	return Header{
		Strings:    strs,
		GridOffset: tableEnd,
		BaseOffset: tableEnd + format.GridBlockSize,
	}, nil
}

// splitStringTable splits a NUL-separated byte range into a list of
// strings, dropping a single trailing empty entry produced by a final NUL
// terminator (every identifier is NUL-terminated per spec.md §4.1, so a
// well-formed table ends in NUL and bytes.Split would otherwise yield one
// spurious empty string at the end).
func splitStringTable(table []byte) []string {
	if len(table) == 0 {
		return nil
	}

	parts := bytes.Split(table, []byte{0})
	if len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = string(p)
	}

	return strs
}

// String resolves a string-table index to its timezone identifier.
func (h Header) String(index uint32) (string, error) {
	if int(index) >= len(h.Strings) {
		return "", errs.ErrStringTableOverrun
	}

	return h.Strings[index], nil
}
