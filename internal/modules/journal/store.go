// README: Journal store backed by PostgreSQL (append and list by customer).
package journal

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Migrate creates the journal table when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}

// Append stores e and fills in its id. A zero ConfirmedAt becomes now.
func (s *Store) Append(ctx context.Context, e *Entry) error {
	if err := e.validate(); err != nil {
		return err
	}
	if e.ConfirmedAt.IsZero() {
		e.ConfirmedAt = time.Now().UTC()
	}
	return s.db.QueryRow(ctx, `
		INSERT INTO ride_journal (
			customer_id, driver_id, driver_name, origin, destination,
			distance_km, duration, value, confirmed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		e.CustomerID, e.DriverID, e.DriverName, e.Origin, e.Destination,
		e.DistanceKm, e.Duration, e.Value, e.ConfirmedAt,
	).Scan(&e.ID)
}

// ListByCustomer returns the customer's entries, newest first.
func (s *Store) ListByCustomer(ctx context.Context, customerID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, driver_id, driver_name, origin, destination,
		       distance_km, duration, value, confirmed_at
		FROM ride_journal
		WHERE customer_id = $1
		ORDER BY confirmed_at DESC, id DESC
		LIMIT $2`, customerID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var e Entry
		err := row.Scan(
			&e.ID, &e.CustomerID, &e.DriverID, &e.DriverName, &e.Origin, &e.Destination,
			&e.DistanceKm, &e.Duration, &e.Value, &e.ConfirmedAt,
		)
		return e, err
	})
}
