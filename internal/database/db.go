package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Config holds database connection parameters, read from the environment.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxIdleMinutes int
	ConnMaxLifeMinutes int
}

// ConfigFromEnv reads connection parameters from environment variables with
// local-development defaults.
func ConfigFromEnv() Config {
	return Config{
		Host:               getEnvOrDefault("DB_HOST", "localhost"),
		Port:               getEnvOrDefault("DB_PORT", "5432"),
		User:               getEnvOrDefault("DB_USER", "postgres"),
		Password:           getEnvOrDefault("DB_PASSWORD", "password"),
		Name:               getEnvOrDefault("DB_NAME", "nutritracker"),
		SSLMode:            getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:       getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:       getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 25),
		ConnMaxIdleMinutes: getIntEnvOrDefault("DB_CONN_MAX_IDLE_MINUTES", 5),
		ConnMaxLifeMinutes: getIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30),
	}
}

// DB wraps the shared sql handle behind the three operations the rest of the
// service uses: Execute, FetchOne and FetchAll. It is safe for concurrent use.
type DB struct {
	conn *sqlx.DB
}

// New wraps an already-open connection. Used by tests to inject a mock.
func New(conn *sqlx.DB) *DB {
	return &DB{conn: conn}
}

// Connect opens the database, tunes the pool and verifies connectivity.
func Connect(cfg Config) (*DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	conn, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleMinutes) * time.Minute)
	conn.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeMinutes) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	return d.conn.Close()
}

// ExecResult reports the outcome of an Execute call.
type ExecResult struct {
	InsertedID   int64
	AffectedRows int64
}

// Execute runs a statement that does not produce a result set. Postgres has
// no LastInsertId, so inserts that need the new id carry a `RETURNING id`
// clause; Execute scans it into InsertedID.
func (d *DB) Execute(ctx context.Context, query string, args ...any) (ExecResult, error) {
	if strings.Contains(strings.ToUpper(query), "RETURNING") {
		var id int64
		if err := d.conn.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return ExecResult{}, err
		}
		return ExecResult{InsertedID: id, AffectedRows: 1}, nil
	}

	res, err := d.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return ExecResult{}, err
	}
	return ExecResult{AffectedRows: affected}, nil
}

// FetchOne scans a single row into dest. It reports found=false instead of an
// error when the query matches no rows.
func (d *DB) FetchOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := d.conn.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FetchAll scans every matching row into dest, which must be a pointer to a
// slice. Row order follows the statement's ORDER BY.
func (d *DB) FetchAll(ctx context.Context, dest any, query string, args ...any) error {
	return d.conn.SelectContext(ctx, dest, query, args...)
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}
