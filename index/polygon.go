package index

import (
	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/geo"
)

// polygonScan implements spec.md §4.5: it walks the polygon list at
// offset, testing (xq, yq) — already in the absolute scaled coordinate
// space — against each polygon's rings, and returns the timezone
// identifiers of every polygon that contains the point (inside or
// on-edge). cellOrigin is the (xMin, yMin) of the cell the polygon list's
// coordinates are relative to: the grid cell origin for a tag-2 grid slot,
// or the tightened quadtree bounds' origin for a tag-2 slot reached via
// quadtree descent.
func (r *Reader) polygonScan(offset int, cellOrigin geo.Point, xq, yq int32) ([]string, error) {
	c := newCursor(r.data, offset)

	count, err := c.u8()
	if err != nil {
		return nil, errs.ErrCorrupt
	}

	var hits []string

	for i := 0; i < int(count); i++ {
		tzIndex, err := c.u16()
		if err != nil {
			return nil, errs.ErrCorrupt
		}

		polyCount, err := c.u8()
		if err != nil {
			return nil, errs.ErrCorrupt
		}

		hit := false
		for j := 0; j < int(polyCount); j++ {
			contained, err := r.testPolygon(&c, cellOrigin, xq, yq)
			if err != nil {
				return nil, err
			}
			if contained {
				hit = true
			}
		}

		if hit {
			name, err := r.header.String(uint32(tzIndex))
			if err != nil {
				return nil, errs.ErrCorrupt
			}

			hits = append(hits, name)
		}
	}

	return hits, nil
}

// testPolygon reads one polygon starting at c's current position, leaves c
// positioned just past the polygon (so the caller can move on to the next
// one regardless of whether this one matched), and reports whether
// (xq, yq) is covered by it (inside the outer ring and not inside any
// hole, or exactly on an edge of either).
func (r *Reader) testPolygon(c *cursor, cellOrigin geo.Point, xq, yq int32) (bool, error) {
	size, err := c.u16()
	if err != nil {
		return false, errs.ErrCorrupt
	}
	polyDataStart := c.pos
	next := polyDataStart + int(size)

	ringsCount, err := c.u8()
	if err != nil {
		return false, errs.ErrCorrupt
	}

	xMinRel, err := c.u16()
	if err != nil {
		return false, errs.ErrCorrupt
	}
	xMaxRel, err := c.u16()
	if err != nil {
		return false, errs.ErrCorrupt
	}
	yMinRel, err := c.u16()
	if err != nil {
		return false, errs.ErrCorrupt
	}
	yMaxRel, err := c.u16()
	if err != nil {
		return false, errs.ErrCorrupt
	}

	origin := geo.Point{X: cellOrigin.X + int32(xMinRel), Y: cellOrigin.Y + int32(yMinRel)}
	bbox := geo.Box{
		XMin: origin.X,
		XMax: cellOrigin.X + int32(xMaxRel),
		YMin: origin.Y,
		YMax: cellOrigin.Y + int32(yMaxRel),
	}

	if !bbox.Contains(geo.Point{X: xq, Y: yq}) {
		c.pos = next

		return false, nil
	}

	relPoint := geo.Point{X: xq - origin.X, Y: yq - origin.Y}

	covered := false

ringLoop:
	for ring := 0; ring < int(ringsCount); ring++ {
		n, err := c.u16()
		if err != nil {
			return false, errs.ErrCorrupt
		}

		start := c.pos
		if err := c.skip(int(n) * 4); err != nil {
			return false, errs.ErrCorrupt
		}

		result, err := geo.RingContainsFunc(relPoint, int(n), func(i int) (geo.Point, error) {
			off := start + i*4
			x, err := u16At(r.data, off)
			if err != nil {
				return geo.Point{}, err
			}
			y, err := u16At(r.data, off+2)
			if err != nil {
				return geo.Point{}, err
			}

			return geo.Point{X: int32(x), Y: int32(y)}, nil
		})
		if err != nil {
			return false, errs.ErrCorrupt
		}

		if ring == 0 {
			switch result {
			case geo.Outside:
				c.pos = next

				return false, nil
			case geo.OnEdge:
				// On-edge on the outer ring is a hit regardless of holes.
				covered = true

				break ringLoop
			case geo.Inside:
				covered = true
			}

			continue
		}

		// Hole ring: the first non-outside result decides the outcome and
		// stops further hole checks, per spec.md §4.5.
		switch result {
		case geo.Inside:
			covered = false

			break ringLoop
		case geo.OnEdge:
			covered = true

			break ringLoop
		case geo.Outside:
			// keep checking remaining holes
		}
	}

	c.pos = next

	return covered, nil
}

// u16At reads a little-endian uint16 at an absolute byte offset.
func u16At(data []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, errs.ErrTruncated
	}

	return uint16(data[offset]) | uint16(data[offset+1])<<8, nil
}
