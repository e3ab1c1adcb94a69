//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates the mutable tables between subtests. The slot grid
// seeded by the migration is reference data and is left alone.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE bookings, reminders, date_availability, slot_overrides, services
		RESTART IDENTITY`)
	return err
}
