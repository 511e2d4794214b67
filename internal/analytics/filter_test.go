package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fareboard/fareboard/internal/analytics"
	"github.com/fareboard/fareboard/internal/booking"
)

func sampleRecords() []booking.Record {
	return []booking.Record{
		{
			Route: "AKLDEL", TripType: "RoundTrip", NumPassengers: "2", PurchaseLead: "20",
			SalesChannel: "Internet", FlightDay: "Mon", BookingOrigin: "New Zealand",
			WantsExtraBaggage: "1", BookingComplete: "1",
		},
		{
			Route: "AKLDEL", TripType: "RoundTrip", NumPassengers: "1", PurchaseLead: "10",
			SalesChannel: "Mobile", FlightDay: "Sat", BookingOrigin: "New Zealand",
			WantsInFlightMeals: "1", BookingComplete: "0",
		},
		{
			Route: "SYDBKK", TripType: "OneWay", NumPassengers: "3", PurchaseLead: "5",
			SalesChannel: "Internet", FlightDay: "Wed", BookingOrigin: "Australia",
			WantsExtraBaggage: "1", WantsPreferredSeat: "1", WantsInFlightMeals: "1",
			BookingComplete: "1",
		},
	}
}

func TestFilter_ZeroSelection(t *testing.T) {
	records := sampleRecords()
	assert.Equal(t, records, analytics.Filter(records, analytics.Selection{}))
}

func TestFilter_ByRoute(t *testing.T) {
	filtered := analytics.Filter(sampleRecords(), analytics.Selection{Route: "AKLDEL"})
	assert.Len(t, filtered, 2)
	for _, rec := range filtered {
		assert.Equal(t, "AKLDEL", rec.Route)
	}
}

func TestFilter_ByRouteAndTripType(t *testing.T) {
	records := sampleRecords()

	filtered := analytics.Filter(records, analytics.Selection{Route: "SYDBKK", TripType: "OneWay"})
	assert.Len(t, filtered, 1)

	filtered = analytics.Filter(records, analytics.Selection{Route: "SYDBKK", TripType: "RoundTrip"})
	assert.Empty(t, filtered)
}

func TestFilter_PreservesOrder(t *testing.T) {
	records := []booking.Record{
		{Route: "A", TripType: "x", NumPassengers: "1"},
		{Route: "B", TripType: "x", NumPassengers: "2"},
		{Route: "A", TripType: "x", NumPassengers: "3"},
	}

	filtered := analytics.Filter(records, analytics.Selection{Route: "A"})
	assert.Equal(t, "1", filtered[0].NumPassengers)
	assert.Equal(t, "3", filtered[1].NumPassengers)
}

func TestFilter_EmptyFacetValuesOnlyMatchUnconstrained(t *testing.T) {
	records := []booking.Record{{Route: "", TripType: ""}}

	assert.Len(t, analytics.Filter(records, analytics.Selection{}), 1)
	assert.Empty(t, analytics.Filter(records, analytics.Selection{Route: "Unknown"}))
}

func TestFacets(t *testing.T) {
	records := []booking.Record{
		{Route: "SYDBKK", TripType: "OneWay"},
		{Route: "AKLDEL", TripType: "RoundTrip"},
		{Route: "AKLDEL", TripType: "RoundTrip"},
		{Route: "", TripType: ""},
	}

	facets := analytics.Facets(records)

	// Sorted ascending, duplicates collapsed, empties excluded.
	assert.Equal(t, []string{"AKLDEL", "SYDBKK"}, facets.Routes)
	assert.Equal(t, []string{"OneWay", "RoundTrip"}, facets.TripTypes)
}

func TestFacets_Empty(t *testing.T) {
	facets := analytics.Facets(nil)
	assert.Empty(t, facets.Routes)
	assert.Empty(t, facets.TripTypes)
}
