// Package geo implements the integer coordinate arithmetic at the heart of
// an LLTZ lookup: degree-to-scaled-integer quantization and the ray-casting
// point-in-ring test described in spec.md §4.5.
//
// Every function here is pure and allocation-free, matching the hot-path
// constraint on the query runtime: a lookup must not touch the heap beyond
// the result list it returns.
package geo

import (
	"math"

	"github.com/geoidx/lltz/format"
)

// Point is an integer coordinate in the scaled coordinate space described
// in spec.md §3. Depending on context it is either an absolute coordinate
// (x in [0, 360e6], y in [0, 180e6]) or a coordinate relative to some
// polygon or cell origin.
type Point struct {
	X int32
	Y int32
}

// Box is an axis-aligned bounding box in the same coordinate space as the
// Points it bounds.
type Box struct {
	XMin, XMax int32
	YMin, YMax int32
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b Box) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// QuantizeLon maps a longitude in degrees to the scaled integer space:
// x = round((lon + 180) * Scale).
func QuantizeLon(lon float64) int32 {
	return int32(math.Round((lon + 180) * format.Scale))
}

// QuantizeLat maps a latitude in degrees to the scaled integer space:
// y = round((lat + 90) * Scale).
func QuantizeLat(lat float64) int32 {
	return int32(math.Round((lat + 90) * format.Scale))
}

// Quantize maps a (lat, lon) pair in degrees to a scaled Point.
func Quantize(lat, lon float64) Point {
	return Point{X: QuantizeLon(lon), Y: QuantizeLat(lat)}
}

// GridCell computes the clamped (latIdx, lonIdx) grid address for a
// (lat, lon) pair in degrees, per spec.md §3: latIdx = clamp(floor(lat+90),
// 0, 179), lonIdx = clamp(floor(lon+180), 0, 359). lat=90 maps to
// latIdx=179 and lon=180 maps to lonIdx=359.
func GridCell(lat, lon float64) (latIdx, lonIdx int) {
	latIdx = clampInt(int(math.Floor(lat+90)), 0, format.GridLatCells-1)
	lonIdx = clampInt(int(math.Floor(lon+180)), 0, format.GridLonCells-1)

	return latIdx, lonIdx
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Containment is the result of testing a point against a polygon ring.
type Containment int

const (
	Outside Containment = iota
	Inside
	OnEdge
)

// RingContains runs the ray-casting algorithm from spec.md §4.5 against a
// single ring, with the point and ring given in the same relative
// coordinate space. The ring is implicitly closed: a synthetic edge from
// the last point back to the first is included.
//
// On-edge detection uses an exact determinant test (cp == 0, point within
// the edge's bounding interval), so on-edge points are never missed to
// floating-point rounding. The crossing toggle uses the "upper-open"
// strict-inequality convention to avoid double-counting points that lie
// exactly on a vertex's latitude.
//
// All arithmetic is int64: ring coordinates are at most uint16 (65535), so
// the cross product dx*dpy - dy*dpx can reach ~4.3e9 in magnitude, which
// overflows int32 but fits comfortably in int64.
func RingContains(p Point, ring []Point) Containment {
	c, _ := RingContainsFunc(p, len(ring), func(i int) (Point, error) {
		return ring[i], nil
	})

	return c
}

// RingContainsFunc is the allocation-free twin of RingContains: it reads
// ring points lazily via at(i) instead of requiring them materialized into
// a slice first. This is what the index package's on-disk polygon scanner
// uses, since a ring's points live in the byte range being queried and
// copying them into a slice would violate the no-heap-allocation query
// contract in spec.md §5.
//
// at is called with indices 0..n-1 in order, each at most once, except
// index n-1 which is read first (to seed the closing edge) and is not
// re-read when the loop reaches it.
func RingContainsFunc(p Point, n int, at func(i int) (Point, error)) (Containment, error) {
	if n < 3 {
		return Outside, nil
	}

	last, err := at(n - 1)
	if err != nil {
		return Outside, err
	}

	inside := false
	prev := last
	for i := 0; i < n; i++ {
		var curr Point
		if i == n-1 {
			curr = last
		} else {
			curr, err = at(i)
			if err != nil {
				return Outside, err
			}
		}

		dx := int64(curr.X) - int64(prev.X)
		dy := int64(curr.Y) - int64(prev.Y)
		dpx := int64(p.X) - int64(prev.X)
		dpy := int64(p.Y) - int64(prev.Y)
		cp := dx*dpy - dy*dpx

		if cp == 0 && onSegment(p, prev, curr) {
			return OnEdge, nil
		}

		yc, yp, y := int64(curr.Y), int64(prev.Y), int64(p.Y)
		if (yc > y) != (yp > y) && (yc > yp) == (cp > 0) {
			inside = !inside
		}

		prev = curr
	}

	if inside {
		return Inside, nil
	}

	return Outside, nil
}

// onSegment reports whether p lies within the axis-aligned bounding
// interval of the edge (a, b). Combined with the cp == 0 determinant test
// in RingContains, this confirms p lies exactly on the segment rather than
// on the infinite line through it.
func onSegment(p, a, b Point) bool {
	xMin, xMax := a.X, b.X
	if xMin > xMax {
		xMin, xMax = xMax, xMin
	}

	yMin, yMax := a.Y, b.Y
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}

	return p.X >= xMin && p.X <= xMax && p.Y >= yMin && p.Y <= yMax
}
