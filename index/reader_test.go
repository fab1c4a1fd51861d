package index

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/format"
)

func TestOpenBadMagic(t *testing.T) {
	data := make([]byte, 16)
	copy(data, "NOTLLTZ1")

	_, err := Open(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidHeader))
}

func TestOpenTruncatedGrid(t *testing.T) {
	b := newFixtureBuilder([]string{"Test/Zone"})
	b.setGridSingle(0, 0, "Test/Zone")
	full := b.build()

	// Chop the buffer off partway through the grid block: ParseHeader only
	// validates the string table, so this must be caught at Open time.
	truncated := full[:len(full)-format.GridBlockSize/2]

	_, err := Open(truncated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrCorrupt))
}

func TestLookupOutOfRange(t *testing.T) {
	b := newFixtureBuilder([]string{"Test/Zone"})
	r, err := Open(b.build())
	require.NoError(t, err)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 90.0001, 0},
		{"lat too low", -90.0001, 0},
		{"lon too high", 0, 180.0001},
		{"lon too low", 0, -180.0001},
		{"NaN lat", math.NaN(), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := r.Lookup(c.lat, c.lon)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrOutOfRange))
		})
	}
}

func TestLookupSingleCell(t *testing.T) {
	b := newFixtureBuilder([]string{"Test/Single"})
	b.setGridSingle(100, 200, "Test/Single")

	r, err := Open(b.build())
	require.NoError(t, err)

	// Cell center: latIdx=100 -> lat in [10, 11), lonIdx=200 -> lon in [20, 21).
	got, err := r.Lookup(10.5, 20.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Test/Single"}, got)
}

func TestLookupQuadtreeDescent(t *testing.T) {
	strs := []string{"Test/SW", "Test/SE", "Test/NW", "Test/NE"}
	b := newFixtureBuilder(strs)

	sw := format.EncodeSlot(format.TagSingle, uint32(b.stringIndex("Test/SW")))
	se := format.EncodeSlot(format.TagSingle, uint32(b.stringIndex("Test/SE")))
	nw := format.EncodeSlot(format.TagSingle, uint32(b.stringIndex("Test/NW")))
	ne := format.EncodeSlot(format.TagSingle, uint32(b.stringIndex("Test/NE")))
	childOffset := b.appendQuadtreeBlock(sw, se, nw, ne)

	// Cell (latIdx=10, lonIdx=20): lat in [-80, -79), lon in [-160, -159).
	b.setGrid(10, 20, format.TagBranch, childOffset)

	r, err := Open(b.build())
	require.NoError(t, err)

	cases := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"southwest", -79.75, -159.75, "Test/SW"},
		{"southeast", -79.75, -159.25, "Test/SE"},
		{"northwest", -79.25, -159.75, "Test/NW"},
		{"northeast", -79.25, -159.25, "Test/NE"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := r.Lookup(c.lat, c.lon)
			require.NoError(t, err)
			assert.Equal(t, []string{c.want}, got)
		})
	}
}

func TestLookupPolygonInside(t *testing.T) {
	b := newFixtureBuilder([]string{"Test/Inside"})

	square := polygonDef{
		xMinRel: 0, xMaxRel: 1000, yMinRel: 0, yMaxRel: 1000,
		rings: []ring{{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}},
	}
	listOffset := b.appendPolygonList([]polygonRecord{{tz: "Test/Inside", polygons: []polygonDef{square}}})

	// Cell (latIdx=11, lonIdx=21): lon in [-159, -158), lat in [-79, -78).
	b.setGrid(11, 21, format.TagPolygon, listOffset)

	r, err := Open(b.build())
	require.NoError(t, err)

	got, err := r.Lookup(-78.9999, -158.9999)
	require.NoError(t, err)
	assert.Equal(t, []string{"Test/Inside"}, got)
}

func TestLookupPolygonOnEdge(t *testing.T) {
	b := newFixtureBuilder([]string{"Test/OnEdge"})

	square := polygonDef{
		xMinRel: 0, xMaxRel: 1000, yMinRel: 0, yMaxRel: 1000,
		rings: []ring{{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}},
	}
	listOffset := b.appendPolygonList([]polygonRecord{{tz: "Test/OnEdge", polygons: []polygonDef{square}}})

	// Cell (latIdx=12, lonIdx=22): lon in [-158, -157), lat in [-78, -77).
	b.setGrid(12, 22, format.TagPolygon, listOffset)

	r, err := Open(b.build())
	require.NoError(t, err)

	// lon=-158.0 lands exactly on the cell's western edge (relative x=0).
	got, err := r.Lookup(-77.9999, -158.0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Test/OnEdge"}, got)
}

func TestLookupPolygonHole(t *testing.T) {
	b := newFixtureBuilder([]string{"Test/Hole"})

	withHole := polygonDef{
		xMinRel: 0, xMaxRel: 2000, yMinRel: 0, yMaxRel: 2000,
		rings: []ring{
			{{0, 0}, {2000, 0}, {2000, 2000}, {0, 2000}},
			{{500, 500}, {1500, 500}, {1500, 1500}, {500, 1500}},
		},
	}
	listOffset := b.appendPolygonList([]polygonRecord{{tz: "Test/Hole", polygons: []polygonDef{withHole}}})

	// Cell (latIdx=13, lonIdx=23): lon in [-157, -156), lat in [-77, -76).
	b.setGrid(13, 23, format.TagPolygon, listOffset)

	r, err := Open(b.build())
	require.NoError(t, err)

	t.Run("outside hole, inside polygon", func(t *testing.T) {
		got, err := r.Lookup(-76.9999, -156.9999)
		require.NoError(t, err)
		assert.Equal(t, []string{"Test/Hole"}, got)
	})

	t.Run("inside hole falls back", func(t *testing.T) {
		got, err := r.Lookup(-76.999, -156.999)
		require.NoError(t, err)
		assert.Equal(t, []string{"Etc/GMT+10"}, got)
	})
}

func TestLookupEmptyFallsBackToGMTOffset(t *testing.T) {
	b := newFixtureBuilder(nil)
	r, err := Open(b.build())
	require.NoError(t, err)

	got, err := r.Lookup(0, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Etc/GMT-3"}, got)
}

func TestLookupResultNeverEmpty(t *testing.T) {
	b := newFixtureBuilder(nil)
	r, err := Open(b.build())
	require.NoError(t, err)

	points := [][2]float64{{0, 0}, {45, 90}, {-45, -90}, {89, 179}, {-89, -179}}
	for _, p := range points {
		got, err := r.Lookup(p[0], p[1])
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	}
}
