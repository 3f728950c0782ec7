package database

import (
	"context"
	"fmt"
)

// CreateTables idempotently creates every table the service needs. It must
// finish before the HTTP server starts accepting requests.
func (d *DB) CreateTables(ctx context.Context) error {
	if err := d.createUsersTable(ctx); err != nil {
		return err
	}
	if err := d.createFoodCountTable(ctx); err != nil {
		return err
	}
	return nil
}

func (d *DB) createUsersTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		hash VARCHAR(255) NOT NULL
	);
	`

	if _, err := d.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (d *DB) createFoodCountTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS food_count (
		id SERIAL PRIMARY KEY,
		food_name VARCHAR(255) NOT NULL,
		calories DOUBLE PRECISION NOT NULL,
		protein DOUBLE PRECISION NOT NULL,
		carbs DOUBLE PRECISION NOT NULL,
		fat DOUBLE PRECISION NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		year INTEGER NOT NULL,
		hour INTEGER NOT NULL,
		minute INTEGER NOT NULL,
		user_id INTEGER NOT NULL REFERENCES users(id)
	);
	`

	if _, err := d.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create food_count table: %w", err)
	}

	// Matches the reverse-chronological scan in GET /food/logs.
	index := `CREATE INDEX IF NOT EXISTS food_count_user_logged_idx
		ON food_count(user_id, year DESC, month DESC, day DESC, hour DESC, minute DESC)`
	if _, err := d.conn.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("create food_count log index: %w", err)
	}
	return nil
}
