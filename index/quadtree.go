package index

import (
	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/format"
	"github.com/geoidx/lltz/geo"
)

// maxQuadtreeDepth bounds the descent in §4.4. A conforming builder only
// ever subdivides a 1-degree cell (1e6 scaled units wide) down to single
// units, which takes at most ~20 halvings; 64 gives ample headroom while
// still catching the "unbounded tag-3 chain" corruption case called out in
// spec.md §9 as a reader's prerogative to reject.
const maxQuadtreeDepth = 64

// descend walks a tag-3 branch chain starting from an already-read slot,
// per spec.md §4.4. It returns the terminal (non-branch) tag, its payload,
// and the tightened cell bounds the terminal slot applies to.
func (r *Reader) descend(slot uint32, bounds geo.Box, xq, yq int32) (format.Tag, uint32, geo.Box, error) {
	tag, payload := format.DecodeSlot(slot)

	for depth := 0; tag == format.TagBranch; depth++ {
		if depth >= maxQuadtreeDepth {
			return 0, 0, geo.Box{}, errs.ErrCorrupt
		}

		childBlock := r.header.BaseOffset + int(payload)

		xMid := bounds.XMin + (bounds.XMax-bounds.XMin)/2
		yMid := bounds.YMin + (bounds.YMax-bounds.YMin)/2

		north := yq >= yMid
		east := xq >= xMid

		q := 0
		if north {
			q |= 2
		}
		if east {
			q |= 1
		}

		childSlot, err := u32At(r.data, childBlock+q*format.GridSlotSize)
		if err != nil {
			return 0, 0, geo.Box{}, errs.ErrCorrupt
		}

		if north {
			bounds.YMin = yMid
		} else {
			bounds.YMax = yMid
		}
		if east {
			bounds.XMin = xMid
		} else {
			bounds.XMax = xMid
		}

		tag, payload = format.DecodeSlot(childSlot)
	}

	return tag, payload, bounds, nil
}
