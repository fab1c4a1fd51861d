// Package errs defines the sentinel errors shared across the lltz module.
//
// Every package that can fail returns one of these via errors.Is-compatible
// wrapping rather than defining its own error types. This keeps the failure
// taxonomy small and lets callers branch on error kind instead of on
// formatted messages.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader is returned when the first 8 bytes of an LLTZ file
	// do not match the "LLTZ1\0\0\0" magic. Fatal to the reader: construction
	// fails and no byte-range borrow is retained.
	ErrInvalidHeader = errors.New("lltz: invalid header")

	// ErrOutOfRange is returned when a lookup's lat/lon falls outside
	// [-90, 90] / [-180, 180]. The reader remains usable afterward.
	ErrOutOfRange = errors.New("lltz: coordinate out of range")

	// ErrCorrupt is returned when a read would step outside the provided
	// byte range, or when an on-disk structure fails a sanity check
	// (unbounded quadtree descent, bad tag, checksum mismatch, ...).
	ErrCorrupt = errors.New("lltz: corrupt index data")

	// ErrDataFileNotFound is returned only by the convenience loader when
	// no bundled index file can be located on any search path.
	ErrDataFileNotFound = errors.New("lltz: data file not found")

	// ErrTruncated is a narrower ErrCorrupt case: a read ran past the end
	// of the byte range. It satisfies errors.Is(err, ErrCorrupt).
	ErrTruncated = fmt.Errorf("%w: truncated data", ErrCorrupt)

	// ErrInvalidTag is a narrower ErrCorrupt case: a tagged slot carried a
	// tag value outside {0, 1, 2, 3}, which is unreachable for a
	// conforming 2-bit tag but checked defensively on untrusted input. It
	// satisfies errors.Is(err, ErrCorrupt).
	ErrInvalidTag = fmt.Errorf("%w: invalid slot tag", ErrCorrupt)

	// ErrStringTableOverrun is a narrower ErrCorrupt case: a string-table
	// index resolved outside the parsed identifier list. It satisfies
	// errors.Is(err, ErrCorrupt).
	ErrStringTableOverrun = fmt.Errorf("%w: string table index out of range", ErrCorrupt)
)
