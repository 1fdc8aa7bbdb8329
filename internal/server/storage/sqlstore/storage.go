// Package sqlstore implements storage.Store on database/sql for SQLite
// (modernc.org/sqlite) and PostgreSQL (lib/pq). Queries are written once
// with $n placeholders and ON CONFLICT clauses understood by both engines.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/keitarosync/internal/server/storage"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned by New for unknown driver names
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Storage represents the relational storage implementation
type Storage struct {
	db     *sql.DB
	q      querier
	tx     *sql.Tx
	now    func() time.Time
	driver string
}

var _ storage.Store = (*Storage)(nil)

// Option configures a Storage
type Option func(*Storage)

// WithClock overrides the clock used for created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

// New opens the database, applies driver settings and runs migrations.
// For SQLite dsn is a file path; use ":memory:" in tests.
func New(ctx context.Context, driver, dsn string, opts ...Option) (*Storage, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	// Открываем соединение с БД
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == DriverSQLite {
		if err := configureSQLite(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	s := newStorage(db, driver, opts...)

	if err := s.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func newStorage(db *sql.DB, driver string, opts ...Option) *Storage {
	s := &Storage{
		db:     db,
		q:      db,
		now:    time.Now,
		driver: driver,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func configureSQLite(ctx context.Context, db *sql.DB) error {
	// SQLite допускает только одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks database connectivity
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}

// Driver returns the driver name the storage was opened with
func (s *Storage) Driver() string {
	return s.driver
}

// SchemaVersion returns the current goose migration version
func (s *Storage) SchemaVersion(ctx context.Context) (int64, error) {
	if err := goose.SetDialect(s.gooseDialect()); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, s.db)
}

// WithTx runs fn inside a transaction; nested calls reuse the outer one
func (s *Storage) WithTx(ctx context.Context, fn func(tx storage.Store) error) (err error) {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStorage := &Storage{
		db:     s.db,
		q:      tx,
		tx:     tx,
		now:    s.now,
		driver: s.driver,
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txStorage); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) gooseDialect() string {
	if s.driver == DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// runMigrations выполняет миграции из embedded FS
func (s *Storage) runMigrations(ctx context.Context) error {
	if err := goose.SetDialect(s.gooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.UpContext(ctx, s.db, "migrations/"+s.driver); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// placeholders returns "$start, $start+1, ..." for n arguments
func placeholders(start, n int) string {
	var b strings.Builder
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", start+i)
	}
	return b.String()
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

func unixToTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0)
}

func rowsAffected(res sql.Result) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(n), nil
}
