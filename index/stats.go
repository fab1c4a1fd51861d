package index

import "github.com/geoidx/lltz/format"

// Stats is a read-only diagnostic snapshot of an opened index, useful for
// operational visibility (dashboards, startup logs) without touching the
// query path. Computing it walks the whole 64 800-cell grid once; it is
// not meant to be called per query.
type Stats struct {
	// StringCount is the number of distinct timezone identifiers in the
	// string table.
	StringCount int

	// EmptyCells, SingleCells, PolygonCells, and BranchCells are the
	// top-level grid-slot counts by tag, before any quadtree descent.
	EmptyCells   int
	SingleCells  int
	PolygonCells int
	BranchCells  int

	// SizeBytes is the total size of the underlying byte range.
	SizeBytes int
}

// Stats computes a Stats snapshot for r. It never returns an error: a
// malformed grid slot is counted under its decoded tag as-is, since Stats
// is a best-effort summary, not a validator.
func (r *Reader) Stats() Stats {
	s := Stats{
		StringCount: len(r.header.Strings),
		SizeBytes:   len(r.data),
	}

	for i := 0; i < format.GridLatCells*format.GridLonCells; i++ {
		offset := r.header.GridOffset + i*format.GridSlotSize

		slot, err := u32At(r.data, offset)
		if err != nil {
			continue
		}

		tag, _ := format.DecodeSlot(slot)
		switch tag {
		case format.TagEmpty:
			s.EmptyCells++
		case format.TagSingle:
			s.SingleCells++
		case format.TagPolygon:
			s.PolygonCells++
		case format.TagBranch:
			s.BranchCells++
		}
	}

	return s
}
