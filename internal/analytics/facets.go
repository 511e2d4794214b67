package analytics

import (
	"sort"

	"github.com/fareboard/fareboard/internal/booking"
)

// FacetSet holds the selectable filter values of a dataset.
type FacetSet struct {
	Routes    []string
	TripTypes []string
}

// Facets extracts the distinct routes and trip types from records, each
// sorted ascending. Empty values are excluded: records without a route or
// trip type fall into the Unknown aggregation bucket but are not selectable.
func Facets(records []booking.Record) FacetSet {
	return FacetSet{
		Routes:    distinctSorted(records, func(r booking.Record) string { return r.Route }),
		TripTypes: distinctSorted(records, func(r booking.Record) string { return r.TripType }),
	}
}

func distinctSorted(records []booking.Record, key func(booking.Record) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, rec := range records {
		v := key(rec)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
