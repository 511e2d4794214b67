package booking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository reads and writes the bookings table. It serves as a
// dataset Source for the dashboard and as the sink for the ingest worker.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed booking repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var _ Source = (*PostgresRepository)(nil)

const selectBookingsQuery = `
	SELECT num_passengers, sales_channel, trip_type, purchase_lead,
	       length_of_stay, flight_hour, flight_day, route, booking_origin,
	       wants_extra_baggage, wants_preferred_seat, wants_in_flight_meals,
	       flight_duration, booking_complete
	FROM bookings
	ORDER BY id`

// Fetch implements Source by reading the full bookings table in insertion
// order.
func (r *PostgresRepository) Fetch(ctx context.Context) ([]Record, error) {
	rows, err := r.pool.Query(ctx, selectBookingsQuery)
	if err != nil {
		return nil, fmt.Errorf("booking: query bookings: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(
			&rec.NumPassengers,
			&rec.SalesChannel,
			&rec.TripType,
			&rec.PurchaseLead,
			&rec.LengthOfStay,
			&rec.FlightHour,
			&rec.FlightDay,
			&rec.Route,
			&rec.BookingOrigin,
			&rec.WantsExtraBaggage,
			&rec.WantsPreferredSeat,
			&rec.WantsInFlightMeals,
			&rec.FlightDuration,
			&rec.BookingComplete,
		)
		if err != nil {
			return nil, fmt.Errorf("booking: scan booking row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("booking: iterate booking rows: %w", err)
	}

	return records, nil
}

// Name implements Source.
func (r *PostgresRepository) Name() string {
	return "postgres:bookings"
}

// ReplaceAll swaps the table contents for records in one transaction, using
// COPY for the bulk insert.
func (r *PostgresRepository) ReplaceAll(ctx context.Context, records []Record) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("booking: begin replace: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `TRUNCATE bookings RESTART IDENTITY`); err != nil {
		return fmt.Errorf("booking: truncate bookings: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"bookings"},
		[]string{
			"num_passengers", "sales_channel", "trip_type", "purchase_lead",
			"length_of_stay", "flight_hour", "flight_day", "route", "booking_origin",
			"wants_extra_baggage", "wants_preferred_seat", "wants_in_flight_meals",
			"flight_duration", "booking_complete",
		},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				rec.NumPassengers, rec.SalesChannel, rec.TripType, rec.PurchaseLead,
				rec.LengthOfStay, rec.FlightHour, rec.FlightDay, rec.Route, rec.BookingOrigin,
				rec.WantsExtraBaggage, rec.WantsPreferredSeat, rec.WantsInFlightMeals,
				rec.FlightDuration, rec.BookingComplete,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("booking: copy bookings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("booking: commit replace: %w", err)
	}
	return nil
}
