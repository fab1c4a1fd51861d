package index

import (
	"encoding/binary"

	"github.com/geoidx/lltz/format"
)

// fixtureBuilder assembles a well-formed LLTZ byte range by hand for unit
// tests, without going through a real GeoJSON builder (out of scope per
// spec.md §1). It exists only in _test.go files.
type fixtureBuilder struct {
	strings []string
	grid    [format.GridLatCells * format.GridLonCells]uint32
	packed  []byte
}

func newFixtureBuilder(strings []string) *fixtureBuilder {
	return &fixtureBuilder{strings: strings}
}

func (b *fixtureBuilder) stringIndex(name string) uint16 {
	for i, s := range b.strings {
		if s == name {
			return uint16(i)
		}
	}

	panic("fixtureBuilder: unknown string " + name)
}

func (b *fixtureBuilder) setGrid(latIdx, lonIdx int, tag format.Tag, payload uint32) {
	b.grid[latIdx*format.GridLonCells+lonIdx] = format.EncodeSlot(tag, payload)
}

func (b *fixtureBuilder) setGridSingle(latIdx, lonIdx int, tz string) {
	b.setGrid(latIdx, lonIdx, format.TagSingle, uint32(b.stringIndex(tz)))
}

// appendQuadtreeBlock writes a 16-byte child block (SW, SE, NW, NE) and
// returns its offset relative to base_offset.
func (b *fixtureBuilder) appendQuadtreeBlock(sw, se, nw, ne uint32) uint32 {
	offset := uint32(len(b.packed))
	for _, w := range []uint32{sw, se, nw, ne} {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], w)
		b.packed = append(b.packed, buf[:]...)
	}

	return offset
}

// ring is a list of points relative to a polygon's own origin.
type ring []point

type point struct{ x, y uint16 }

// polygonDef describes one polygon: its bounding box relative to the
// owning cell's origin, and its rings (outer first, then holes), each
// given in coordinates relative to the polygon's own origin
// (xMinRel, yMinRel).
type polygonDef struct {
	xMinRel, xMaxRel, yMinRel, yMaxRel uint16
	rings                              []ring
}

// polygonRecord is one (tz, polygons) entry in a polygon list.
type polygonRecord struct {
	tz       string
	polygons []polygonDef
}

// appendPolygonList writes a full polygon list (count + records) and
// returns its offset relative to base_offset.
func (b *fixtureBuilder) appendPolygonList(records []polygonRecord) uint32 {
	offset := uint32(len(b.packed))

	b.packed = append(b.packed, byte(len(records)))

	for _, rec := range records {
		var tzBuf [2]byte
		binary.LittleEndian.PutUint16(tzBuf[:], b.stringIndex(rec.tz))
		b.packed = append(b.packed, tzBuf[:]...)
		b.packed = append(b.packed, byte(len(rec.polygons)))

		for _, poly := range rec.polygons {
			b.packed = append(b.packed, encodePolygon(poly)...)
		}
	}

	return offset
}

func encodePolygon(poly polygonDef) []byte {
	var body []byte
	body = append(body, byte(len(poly.rings)))
	body = appendU16(body, poly.xMinRel)
	body = appendU16(body, poly.xMaxRel)
	body = appendU16(body, poly.yMinRel)
	body = appendU16(body, poly.yMaxRel)

	for _, r := range poly.rings {
		body = appendU16(body, uint16(len(r)))
		for _, p := range r {
			body = appendU16(body, p.x)
			body = appendU16(body, p.y)
		}
	}

	out := appendU16(nil, uint16(len(body)))
	out = append(out, body...)

	return out
}

func appendU16(b []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)

	return append(b, buf[:]...)
}

// build serializes the fixture into a complete LLTZ byte range.
func (b *fixtureBuilder) build() []byte {
	var stringTable []byte
	for _, s := range b.strings {
		stringTable = append(stringTable, []byte(s)...)
		stringTable = append(stringTable, 0)
	}

	data := []byte(format.Magic)
	data = appendU16(data, uint16(len(stringTable)))
	data = append(data, stringTable...)

	for _, slot := range b.grid {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], slot)
		data = append(data, buf[:]...)
	}

	data = append(data, b.packed...)

	return data
}
