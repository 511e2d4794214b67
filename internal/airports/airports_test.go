package airports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fareboard/fareboard/internal/airports"
	"github.com/fareboard/fareboard/internal/booking"
)

func TestRouteDisplayName(t *testing.T) {
	assert.Equal(t, "Auckland → Delhi", airports.RouteDisplayName("AKLDEL"))
	assert.Equal(t, "Sydney → Bangkok", airports.RouteDisplayName("SYDBKK"))

	// Unknown halves and malformed codes pass through.
	assert.Equal(t, "XXXYYY", airports.RouteDisplayName("XXXYYY"))
	assert.Equal(t, "AKLXXX", airports.RouteDisplayName("AKLXXX"))
	assert.Equal(t, "Unknown", airports.RouteDisplayName("Unknown"))
	assert.Equal(t, "", airports.RouteDisplayName(""))
}

func TestNameAndCoords(t *testing.T) {
	name, ok := airports.Name("SIN")
	assert.True(t, ok)
	assert.Equal(t, "Singapore", name)

	_, ok = airports.Name("ZZZ")
	assert.False(t, ok)

	c, ok := airports.Coords("AKL")
	assert.True(t, ok)
	assert.InDelta(t, -37.0, c.Lat, 0.5)

	_, ok = airports.Coords("ZZZ")
	assert.False(t, ok)
}

func TestArcs(t *testing.T) {
	records := []booking.Record{
		{Route: "AKLDEL"},
		{Route: "AKLDEL"},
		{Route: "SYDBKK"},
		{Route: "AKLZZZ"}, // unknown destination: skipped
		{Route: ""},       // no route: skipped
	}

	arcs := airports.Arcs(records)

	require.Len(t, arcs, 2)
	assert.Equal(t, "AKLDEL", arcs[0].Route)
	assert.Equal(t, "Auckland → Delhi", arcs[0].DisplayName)
	assert.Equal(t, 2, arcs[0].Count)
	assert.Equal(t, "SYDBKK", arcs[1].Route)
	assert.Equal(t, 1, arcs[1].Count)
	assert.NotZero(t, arcs[0].Origin.Lon)
	assert.NotZero(t, arcs[0].Destination.Lat)
}

func TestArcs_Empty(t *testing.T) {
	assert.Empty(t, airports.Arcs(nil))
}
