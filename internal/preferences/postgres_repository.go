package preferences

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL preferences repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves a single preference by key.
func (r *PostgresRepository) Get(ctx context.Context, key string) (*Preference, error) {
	query := `
		SELECT key, value, updated_at
		FROM preferences
		WHERE key = $1
	`

	var pref Preference
	err := r.pool.QueryRow(ctx, query, key).Scan(
		&pref.Key,
		&pref.Value,
		&pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}

	return &pref, nil
}

// Set creates or updates a preference.
func (r *PostgresRepository) Set(ctx context.Context, pref *Preference) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query, pref.Key, pref.Value, time.Now())
	return err
}

// Delete removes a preference by key.
func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM preferences WHERE key = $1`
	_, err := r.pool.Exec(ctx, query, key)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
