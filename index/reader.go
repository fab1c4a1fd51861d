// Package index implements the LLTZ query runtime: the reader that opens a
// byte range and answers "which timezones cover (lat, lon)" by walking the
// grid, quadtree, and polygon structures described in spec.md.
//
// A Reader is immutable once constructed and safe for concurrent use by
// any number of goroutines: Lookup touches no mutable state and performs
// no I/O beyond reading the byte range it was opened with.
package index

import (
	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/format"
	"github.com/geoidx/lltz/geo"
	"github.com/geoidx/lltz/section"
)

// Reader is an opened LLTZ index. It borrows the byte range passed to
// Open for its entire lifetime; the caller owns the backing memory
// (a loaded file, a memory-mapped region, an embedded asset) and must keep
// it alive and unmodified for as long as the Reader is in use.
type Reader struct {
	data   []byte
	header section.Header
}

// Open validates the 8-byte LLTZ magic and parses the string table and
// section offsets, returning a Reader ready for Lookup calls.
//
// Open fails with errs.ErrInvalidHeader if the magic does not match, and
// with errs.ErrCorrupt if the declared sections do not fit within data
// (a truncated file). No byte-range borrow is retained on failure.
func Open(data []byte) (*Reader, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < h.BaseOffset {
		return nil, errs.ErrCorrupt
	}

	return &Reader{data: data, header: h}, nil
}

// Lookup answers which IANA timezone identifiers cover (lat, lon), per the
// state machine in spec.md §4.7: validate, grid slot, optional quadtree
// descent, optional polygon scan, and finally the fallback resolver if
// nothing else matched. The returned list is never empty.
//
// Lookup fails with errs.ErrOutOfRange if lat is outside [-90, 90] or lon
// is outside [-180, 180]. Any other failure is errs.ErrCorrupt, meaning
// the index data itself is malformed; a conforming, builder-produced file
// never triggers it.
func (r *Reader) Lookup(lat, lon float64) ([]string, error) {
	if err := validate(lat, lon); err != nil {
		return nil, err
	}

	latIdx, lonIdx := geo.GridCell(lat, lon)

	slot, bounds, err := r.gridSlot(latIdx, lonIdx)
	if err != nil {
		return nil, err
	}

	tag, payload := format.DecodeSlot(slot)

	xq, yq := geo.QuantizeLon(lon), geo.QuantizeLat(lat)

	if tag == format.TagBranch {
		tag, payload, bounds, err = r.descend(slot, bounds, xq, yq)
		if err != nil {
			return nil, err
		}
	}

	switch tag {
	case format.TagSingle:
		name, err := r.header.String(payload)
		if err != nil {
			return nil, errs.ErrCorrupt
		}

		return []string{name}, nil

	case format.TagPolygon:
		hits, err := r.polygonScan(r.header.BaseOffset+int(payload), geo.Point{X: bounds.XMin, Y: bounds.YMin}, xq, yq)
		if err != nil {
			return nil, err
		}

		if len(hits) > 0 {
			return hits, nil
		}

	case format.TagEmpty:
		// fall through to the fallback resolver

	default:
		return nil, errs.ErrCorrupt
	}

	return fallback(lat, lon), nil
}

// validate enforces the public input domain from spec.md §4.2: lat in
// [-90, 90], lon in [-180, 180]. NaN fails both comparisons and is
// rejected as out of range.
func validate(lat, lon float64) error {
	if !(lat >= -format.MaxLat && lat <= format.MaxLat) {
		return errs.ErrOutOfRange
	}
	if !(lon >= -format.MaxLon && lon <= format.MaxLon) {
		return errs.ErrOutOfRange
	}

	return nil
}
