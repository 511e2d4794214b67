// Package booking holds the booking record model, the CSV codec, and the
// immutable dataset store the dashboard serves from.
package booking

import (
	"math"
	"strconv"
)

// UnknownLabel is the bucket label for records missing a categorical value.
const UnknownLabel = "Unknown"

// Record is a single customer booking row. All fields are carried as text the
// way they arrive in the source CSV; numeric interpretation happens at
// aggregation time so a bad cell never poisons a whole row.
type Record struct {
	NumPassengers      string `json:"numPassengers"`
	SalesChannel       string `json:"salesChannel"`
	TripType           string `json:"tripType"`
	PurchaseLead       string `json:"purchaseLead"`
	LengthOfStay       string `json:"lengthOfStay"`
	FlightHour         string `json:"flightHour"`
	FlightDay          string `json:"flightDay"`
	Route              string `json:"route"`
	BookingOrigin      string `json:"bookingOrigin"`
	WantsExtraBaggage  string `json:"wantsExtraBaggage"`
	WantsPreferredSeat string `json:"wantsPreferredSeat"`
	WantsInFlightMeals string `json:"wantsInFlightMeals"`
	FlightDuration     string `json:"flightDuration"`
	BookingComplete    string `json:"bookingComplete"`
}

// IsComplete reports whether the booking was completed. Only the literal "1"
// counts as complete; any other value (including empty) is incomplete.
func (r Record) IsComplete() bool {
	return r.BookingComplete == "1"
}

// RouteOrUnknown returns the route code, or UnknownLabel when it is empty.
func (r Record) RouteOrUnknown() string {
	if r.Route == "" {
		return UnknownLabel
	}
	return r.Route
}

// TripTypeOrUnknown returns the trip type, or UnknownLabel when it is empty.
func (r Record) TripTypeOrUnknown() string {
	if r.TripType == "" {
		return UnknownLabel
	}
	return r.TripType
}

// SalesChannelOrUnknown returns the sales channel, or UnknownLabel when it is
// empty.
func (r Record) SalesChannelOrUnknown() string {
	if r.SalesChannel == "" {
		return UnknownLabel
	}
	return r.SalesChannel
}

// BookingOriginOrUnknown returns the booking origin, or UnknownLabel when it
// is empty.
func (r Record) BookingOriginOrUnknown() string {
	if r.BookingOrigin == "" {
		return UnknownLabel
	}
	return r.BookingOrigin
}

// ExtrasCount returns how many of the three extras (baggage, seat, meals) the
// customer wanted. Only the literal "1" counts, mirroring IsComplete.
func (r Record) ExtrasCount() int {
	count := 0
	for _, flag := range []string{r.WantsExtraBaggage, r.WantsPreferredSeat, r.WantsInFlightMeals} {
		if flag == "1" {
			count++
		}
	}
	return count
}

// Passengers returns the passenger count coerced to a number.
func (r Record) Passengers() float64 {
	return coerceNumber(r.NumPassengers)
}

// Lead returns the purchase lead (days between booking and travel) coerced to
// a number.
func (r Record) Lead() float64 {
	return coerceNumber(r.PurchaseLead)
}

// coerceNumber parses s as a float. Unparseable or non-finite values coerce
// to 0 so aggregates stay defined over dirty data.
func coerceNumber(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
