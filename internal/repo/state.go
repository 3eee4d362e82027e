// Package repo contains all database access logic for the Euro Itinerary planner.
// Persistence is a textual key-value store: each key holds one serialized value
// (the trip blob, the theme preference). No business logic lives here — only SQL.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// Fixed keys under which the planner state is stored.
const (
	KeyTrip  = "euro-trip-data"
	KeyTheme = "theme"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StateRepo defines the persistence operations for the planner state.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type StateRepo interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if nothing is stored under that key.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Clear removes every stored key.
	Clear(ctx context.Context) error

	// Keys returns all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// pgStateRepo is the Postgres implementation of StateRepo.
type pgStateRepo struct {
	db db
}

// NewStateRepo constructs a StateRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStateRepo(db db) StateRepo {
	return &pgStateRepo{db: db}
}

// Get retrieves the value for key.
func (r *pgStateRepo) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM kv_store WHERE key = @key`

	var value string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("repo.StateRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.StateRepo.Get: %w", err)
	}
	return value, nil
}

// Put upserts the value for key.
func (r *pgStateRepo) Put(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_store (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("repo.StateRepo.Put: %w", err)
	}
	return nil
}

// Clear deletes every row.
func (r *pgStateRepo) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("repo.StateRepo.Clear: %w", err)
	}
	return nil
}

// Keys lists the stored keys.
func (r *pgStateRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT key FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("repo.StateRepo.Keys: %w", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("repo.StateRepo.Keys: rows: %w", err)
	}
	return keys, nil
}
