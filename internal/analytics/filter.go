// Package analytics computes the dashboard projections: facets, filtered
// record sets, chart aggregates, and stat-card totals.
package analytics

import (
	"github.com/fareboard/fareboard/internal/booking"
)

// Selection is the dashboard filter. An empty field means no constraint on
// that facet. Selections are request-scoped and never persisted.
type Selection struct {
	Route    string
	TripType string
}

// IsZero reports whether the selection constrains nothing.
func (s Selection) IsZero() bool {
	return s.Route == "" && s.TripType == ""
}

// Matches reports whether rec satisfies the selection. Matching is on the raw
// facet values, so records with an empty route or trip type only match an
// unconstrained selection.
func (s Selection) Matches(rec booking.Record) bool {
	if s.Route != "" && rec.Route != s.Route {
		return false
	}
	if s.TripType != "" && rec.TripType != s.TripType {
		return false
	}
	return true
}

// Filter returns the records matching sel, preserving input order. The zero
// selection returns the input slice unchanged.
func Filter(records []booking.Record, sel Selection) []booking.Record {
	if sel.IsZero() {
		return records
	}

	out := make([]booking.Record, 0, len(records))
	for _, rec := range records {
		if sel.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}
