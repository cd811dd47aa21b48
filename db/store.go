// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store owns the connection pool and the schema it was opened with.
type Store struct {
	db     *sql.DB
	schema Schema
}

// Open connects to the database described by dsn, verifies the connection
// and creates the schema. The schema dialect selects the driver.
func Open(ctx context.Context, dsn string, schema Schema) (*Store, error) {
	if schema.Dialect == SQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(string(schema.Dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// A single writer avoids SQLITE_BUSY between concurrent transactions.
	if schema.Dialect == SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	s := &Store{db: conn, schema: schema}
	if err := s.CreateSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off
// for every new connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// DB exposes the pool for read-only queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.schema.Dialect
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Rebind rewrites ? placeholders into the dialect's native form.
func (s *Store) Rebind(query string) string {
	return s.schema.Dialect.Rebind(query)
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on every other path, including panics.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", ClassifyError(err))
	}
	return nil
}
