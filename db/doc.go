// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the database connection, schema, and transactions.

# Opening a Store

The schema value selects the dialect and therefore the driver
(lib/pq for postgres, modernc.org/sqlite for sqlite):

	schema, _ := db.SchemaFor(db.Postgres)
	store, err := db.Open(ctx, cfg.DatabaseURL, schema)

Open pings the database and runs the schema statements. Safe to call
against an existing database - every statement uses IF NOT EXISTS.
SQLite connections get foreign keys enabled and the pool is limited to one
connection.

# Tables

	themes(id, title UNIQUE)
	questions(id, title UNIQUE, theme_id)
	answers(id, title, is_correct, question_id)
	admins(id, email UNIQUE, password)

# Relationships

	themes 1──* questions
	questions 1──* answers

Both foreign keys use ON DELETE CASCADE.

# Transactions

WithTx commits when the callback returns nil and rolls back otherwise:

	err := store.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, store.Rebind("DELETE FROM themes WHERE id = ?"), id)
		return err
	})

Queries are written with ? placeholders; Rebind converts them to $N for
postgres.

# Constraint Errors

ClassifyError recognises integrity failures from either driver:

	errors.Is(err, db.ErrUniqueViolation)     // 23505 / SQLITE_CONSTRAINT_UNIQUE
	errors.Is(err, db.ErrForeignKeyViolation) // 23503 / SQLITE_CONSTRAINT_FOREIGNKEY
	errors.Is(err, db.ErrNotNullViolation)    // 23502 / SQLITE_CONSTRAINT_NOTNULL

The driver error stays reachable through errors.As.
*/
package db
