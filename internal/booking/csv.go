package booking

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned when the input has no header row at all.
var ErrNoHeader = errors.New("booking: csv input has no header row")

// columns is the canonical column set, in source order. ParseCSV matches
// columns by header name so reordered or extra columns are tolerated;
// WriteCSV always emits exactly this set.
var columns = []string{
	"num_passengers",
	"sales_channel",
	"trip_type",
	"purchase_lead",
	"length_of_stay",
	"flight_hour",
	"flight_day",
	"route",
	"booking_origin",
	"wants_extra_baggage",
	"wants_preferred_seat",
	"wants_in_flight_meals",
	"flight_duration",
	"booking_complete",
}

// ParseCSV decodes booking records from r. The header row maps columns by
// name (case-insensitive); rows that fail to parse are dropped silently so a
// few malformed lines never sink the whole dataset.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("booking: read csv header: %w", err)
	}

	idx := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	col := make(map[string]int, len(columns))
	for _, name := range columns {
		col[name] = idx(name)
	}

	field := func(row []string, name string) string {
		i := col[name]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: drop and keep going.
			continue
		}

		rec := Record{
			NumPassengers:      field(row, "num_passengers"),
			SalesChannel:       field(row, "sales_channel"),
			TripType:           field(row, "trip_type"),
			PurchaseLead:       field(row, "purchase_lead"),
			LengthOfStay:       field(row, "length_of_stay"),
			FlightHour:         field(row, "flight_hour"),
			FlightDay:          field(row, "flight_day"),
			Route:              field(row, "route"),
			BookingOrigin:      field(row, "booking_origin"),
			WantsExtraBaggage:  field(row, "wants_extra_baggage"),
			WantsPreferredSeat: field(row, "wants_preferred_seat"),
			WantsInFlightMeals: field(row, "wants_in_flight_meals"),
			FlightDuration:     field(row, "flight_duration"),
			BookingComplete:    field(row, "booking_complete"),
		}
		if rec == (Record{}) {
			// Entirely empty row.
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// WriteCSV encodes records to w with the canonical column set. Output from
// WriteCSV round-trips through ParseCSV.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("booking: write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.NumPassengers,
			rec.SalesChannel,
			rec.TripType,
			rec.PurchaseLead,
			rec.LengthOfStay,
			rec.FlightHour,
			rec.FlightDay,
			rec.Route,
			rec.BookingOrigin,
			rec.WantsExtraBaggage,
			rec.WantsPreferredSeat,
			rec.WantsInFlightMeals,
			rec.FlightDuration,
			rec.BookingComplete,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("booking: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
