package primary

import (
	"context"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"rightsteps/internal/store"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// StoreImpl implements store.PrimaryStore on top of sqlx. It runs against
// SQLite for local use and tests, and Postgres (through pgx) in production.
type StoreImpl struct {
	db     *sqlx.DB
	driver string
}

var _ store.PrimaryStore = (*StoreImpl)(nil)

// NewPrimaryStore opens the database, verifies the connection and makes
// sure the schema exists.
func NewPrimaryStore(ctx context.Context, driver, dsn string) (*StoreImpl, error) {
	if dsn == "" {
		return nil, errors.New("database DSN cannot be empty")
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", store.ErrUnsupportedDriver, driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if driver == DriverSQLite {
		// One connection keeps ":memory:" databases alive and serializes writers.
		db.SetMaxOpenConns(1)
	}

	s := &StoreImpl{db: db, driver: driver}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}
	return s, nil
}

// Ping checks the database connection.
func (s *StoreImpl) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection pool.
func (s *StoreImpl) Close() error {
	return s.db.Close()
}

func (s *StoreImpl) initSchema(ctx context.Context) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == DriverPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS search_queries (
			id ` + idColumn + `,
			query TEXT NOT NULL,
			include_progress BOOLEAN NOT NULL DEFAULT FALSE,
			course_count INTEGER NOT NULL DEFAULT 0,
			tutor_count INTEGER NOT NULL DEFAULT 0,
			fallback BOOLEAN NOT NULL DEFAULT FALSE,
			answer_preview TEXT NOT NULL DEFAULT '',
			executed_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_queries_executed_at ON search_queries(executed_at)`,
		`CREATE TABLE IF NOT EXISTS ai_usage_logs (
			id ` + idColumn + `,
			timestamp TIMESTAMP NOT NULL,
			provider_name TEXT NOT NULL,
			service_type TEXT NOT NULL,
			model_name TEXT NOT NULL,
			input_tokens INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			cost DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range tables {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
