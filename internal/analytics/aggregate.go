package analytics

import (
	"math"
	"sort"
	"strconv"

	"github.com/fareboard/fareboard/internal/booking"
)

const (
	// topRouteLimit caps the volume chart at the ten busiest routes.
	topRouteLimit = 10

	// avgLeadRouteLimit caps the purchase-lead chart at the first twelve
	// distinct routes in dataset order.
	avgLeadRouteLimit = 12

	// topOriginLimit caps the booking-origin chart at the ten most common
	// origin countries.
	topOriginLimit = 10
)

// flightDayOrder is the fixed weekday order of the flight-day chart.
var flightDayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NameValue is a label/value chart point.
type NameValue struct {
	Name  string
	Value int
}

// RouteCount is a per-route booking count, display-name resolved.
type RouteCount struct {
	Route string
	Count int
}

// RouteAverage is a per-route average purchase lead, display-name resolved.
type RouteAverage struct {
	Route   string
	Average float64
}

// Stats are the stat-card totals for a (possibly filtered) record set.
type Stats struct {
	Total           int
	CompletionRate  string
	TotalPassengers int
	AvgPurchaseLead float64
}

// Resolver maps a route code to a display name. Unmapped codes pass through.
type Resolver func(code string) string

func resolveWith(resolve Resolver, code string) string {
	if resolve == nil {
		return code
	}
	return resolve(code)
}

// CompletionBreakdown counts completed vs incomplete bookings. A non-empty
// input always yields both buckets, Complete first; an empty input yields an
// empty slice so the chart renders its own zero-state.
func CompletionBreakdown(records []booking.Record) []NameValue {
	if len(records) == 0 {
		return []NameValue{}
	}

	complete := 0
	for _, rec := range records {
		if rec.IsComplete() {
			complete++
		}
	}

	return []NameValue{
		{Name: "Complete", Value: complete},
		{Name: "Incomplete", Value: len(records) - complete},
	}
}

// distribution counts records per key(record) in first-seen order.
func distribution(records []booking.Record, key func(booking.Record) string) []NameValue {
	counts := make(map[string]int)
	order := []string{}
	for _, rec := range records {
		name := key(rec)
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	out := make([]NameValue, 0, len(order))
	for _, name := range order {
		out = append(out, NameValue{Name: name, Value: counts[name]})
	}
	return out
}

// TripTypeDistribution counts bookings per trip type in first-seen order.
// Records without a trip type count under the Unknown bucket.
func TripTypeDistribution(records []booking.Record) []NameValue {
	return distribution(records, booking.Record.TripTypeOrUnknown)
}

// SalesChannelDistribution counts bookings per sales channel in first-seen
// order. Records without a channel count under the Unknown bucket.
func SalesChannelDistribution(records []booking.Record) []NameValue {
	return distribution(records, booking.Record.SalesChannelOrUnknown)
}

// TopBookingOrigins returns the most common booking-origin countries, count
// descending, at most topOriginLimit entries. Ties keep first-seen order.
func TopBookingOrigins(records []booking.Record) []NameValue {
	out := distribution(records, booking.Record.BookingOriginOrUnknown)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if len(out) > topOriginLimit {
		out = out[:topOriginLimit]
	}
	return out
}

// FlightDayDistribution counts bookings per flight weekday in fixed Mon..Sun
// order, zero-count days included so the chart keeps its shape under narrow
// filters. Records with a value outside the seven weekday labels count under
// a trailing Unknown bucket. An empty input yields an empty slice.
func FlightDayDistribution(records []booking.Record) []NameValue {
	if len(records) == 0 {
		return []NameValue{}
	}

	counts := make(map[string]int, len(flightDayOrder))
	unknown := 0
	for _, rec := range records {
		day := rec.FlightDay
		if _, ok := counts[day]; ok {
			counts[day]++
			continue
		}
		known := false
		for _, d := range flightDayOrder {
			if d == day {
				known = true
				break
			}
		}
		if known {
			counts[day]++
		} else {
			unknown++
		}
	}

	out := make([]NameValue, 0, len(flightDayOrder)+1)
	for _, day := range flightDayOrder {
		out = append(out, NameValue{Name: day, Value: counts[day]})
	}
	if unknown > 0 {
		out = append(out, NameValue{Name: booking.UnknownLabel, Value: unknown})
	}
	return out
}

// PassengerCountDistribution counts bookings per party size, sorted ascending
// by the numeric value. Non-numeric values (the empty string becomes Unknown)
// sort after the numeric buckets in first-seen order.
func PassengerCountDistribution(records []booking.Record) []NameValue {
	out := distribution(records, func(rec booking.Record) string {
		if rec.NumPassengers == "" {
			return booking.UnknownLabel
		}
		return rec.NumPassengers
	})

	sort.SliceStable(out, func(i, j int) bool {
		a, aErr := strconv.ParseFloat(out[i].Name, 64)
		b, bErr := strconv.ParseFloat(out[j].Name, 64)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return false
		}
	})
	return out
}

// ExtrasCountDistribution counts bookings by how many extras (baggage, seat,
// meals) the customer wanted, buckets ascending from zero. Absent buckets are
// omitted.
func ExtrasCountDistribution(records []booking.Record) []NameValue {
	counts := make(map[int]int)
	for _, rec := range records {
		counts[rec.ExtrasCount()]++
	}

	out := make([]NameValue, 0, len(counts))
	for extras := 0; extras <= 3; extras++ {
		if n, ok := counts[extras]; ok {
			out = append(out, NameValue{Name: strconv.Itoa(extras), Value: n})
		}
	}
	return out
}

// TopRoutesByVolume returns the busiest routes, count descending, at most
// topRouteLimit entries. Ties keep first-seen order.
func TopRoutesByVolume(records []booking.Record, resolve Resolver) []RouteCount {
	counts := make(map[string]int)
	order := []string{}
	for _, rec := range records {
		code := rec.RouteOrUnknown()
		if _, ok := counts[code]; !ok {
			order = append(order, code)
		}
		counts[code]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topRouteLimit {
		order = order[:topRouteLimit]
	}

	out := make([]RouteCount, 0, len(order))
	for _, code := range order {
		out = append(out, RouteCount{
			Route: resolveWith(resolve, code),
			Count: counts[code],
		})
	}
	return out
}

// AverageLeadByRoute returns the average purchase lead for the first
// avgLeadRouteLimit distinct routes, in dataset insertion order.
func AverageLeadByRoute(records []booking.Record, resolve Resolver) []RouteAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	order := []string{}
	for _, rec := range records {
		code := rec.RouteOrUnknown()
		if _, ok := counts[code]; !ok {
			if len(order) == avgLeadRouteLimit {
				continue
			}
			order = append(order, code)
		}
		sums[code] += rec.Lead()
		counts[code]++
	}

	out := make([]RouteAverage, 0, len(order))
	for _, code := range order {
		out = append(out, RouteAverage{
			Route:   resolveWith(resolve, code),
			Average: round1(sums[code] / float64(counts[code])),
		})
	}
	return out
}

// ComputeStats builds the stat-card totals. CompletionRate is a formatted
// percentage string: "0" for an empty set, otherwise one decimal ("50.0").
func ComputeStats(records []booking.Record) Stats {
	if len(records) == 0 {
		return Stats{CompletionRate: "0"}
	}

	complete := 0
	passengers := 0.0
	lead := 0.0
	for _, rec := range records {
		if rec.IsComplete() {
			complete++
		}
		passengers += rec.Passengers()
		lead += rec.Lead()
	}

	total := len(records)
	rate := round1(float64(complete) / float64(total) * 100)

	return Stats{
		Total:           total,
		CompletionRate:  strconv.FormatFloat(rate, 'f', 1, 64),
		TotalPassengers: int(math.Round(passengers)),
		AvgPurchaseLead: round1(lead / float64(total)),
	}
}

// round1 rounds to one decimal, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
