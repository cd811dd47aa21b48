// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Dialect names a supported SQL backend. The value doubles as the
// database/sql driver name.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect maps a configuration value onto a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case Postgres:
		return Postgres, nil
	case SQLite:
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported database type %q (want sqlite or postgres)", name)
}

// Rebind rewrites ? placeholders into the dialect's native form: $1, $2, ...
// for postgres, unchanged for sqlite. Queries must not contain a literal
// question mark.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Schema is the set of DDL statements for one dialect.
// Statements are executed in order and must be idempotent.
type Schema struct {
	Dialect    Dialect
	Statements []string
}

// SchemaFor returns the quiz schema for the given dialect.
func SchemaFor(d Dialect) (Schema, error) {
	switch d {
	case Postgres:
		return PostgresSchema(), nil
	case SQLite:
		return SQLiteSchema(), nil
	}
	return Schema{}, fmt.Errorf("no schema for dialect %q", d)
}

// PostgresSchema returns the schema for PostgreSQL.
func PostgresSchema() Schema {
	return Schema{
		Dialect: Postgres,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS themes (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(50) NOT NULL UNIQUE
)`,
			`CREATE TABLE IF NOT EXISTS questions (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(50) NOT NULL UNIQUE,
    theme_id BIGINT NOT NULL REFERENCES themes(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_questions_theme_id ON questions(theme_id)`,
			`CREATE TABLE IF NOT EXISTS answers (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(50) NOT NULL,
    is_correct BOOLEAN NOT NULL,
    question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id)`,
			`CREATE TABLE IF NOT EXISTS admins (
    id BIGSERIAL PRIMARY KEY,
    email VARCHAR(300) NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
		},
	}
}

// SQLiteSchema returns the schema for SQLite. AUTOINCREMENT keeps ids from
// being reused after deletes, matching the postgres sequences.
func SQLiteSchema() Schema {
	return Schema{
		Dialect: SQLite,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS themes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(50) NOT NULL UNIQUE
)`,
			`CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(50) NOT NULL UNIQUE,
    theme_id INTEGER NOT NULL REFERENCES themes(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_questions_theme_id ON questions(theme_id)`,
			`CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(50) NOT NULL,
    is_correct BOOLEAN NOT NULL,
    question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id)`,
			`CREATE TABLE IF NOT EXISTS admins (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email VARCHAR(300) NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
		},
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range s.schema.Statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
