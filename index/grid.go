package index

import (
	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/format"
	"github.com/geoidx/lltz/geo"
)

// gridSlot reads the tagged slot for the 1x1 degree cell (latIdx, lonIdx)
// and returns it alongside the cell's bounds in the scaled coordinate
// space, per spec.md §4.3.
func (r *Reader) gridSlot(latIdx, lonIdx int) (uint32, geo.Box, error) {
	offset := r.header.GridOffset + (latIdx*format.GridLonCells+lonIdx)*format.GridSlotSize

	slot, err := u32At(r.data, offset)
	if err != nil {
		return 0, geo.Box{}, errs.ErrCorrupt
	}

	xMin := int32(lonIdx) * format.Scale
	yMin := int32(latIdx) * format.Scale
	bounds := geo.Box{
		XMin: xMin,
		XMax: xMin + format.Scale,
		YMin: yMin,
		YMax: yMin + format.Scale,
	}

	return slot, bounds, nil
}
