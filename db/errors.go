// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrValueTooLong        = errors.New("value too long")
)

// ConstraintError is a driver error that was recognised as an integrity
// constraint failure. errors.Is matches the Kind sentinel and errors.As
// still reaches the driver error.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%v (%s): %v", e.Kind, e.Constraint, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ClassifyError wraps postgres and sqlite integrity errors, and postgres
// string truncation (22001), in a ConstraintError. Other errors are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var classified *ConstraintError
	if errors.As(err, &classified) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		var kind error
		switch pqErr.Code {
		case "23505":
			kind = ErrUniqueViolation
		case "23503":
			kind = ErrForeignKeyViolation
		case "23502":
			kind = ErrNotNullViolation
		case "22001":
			kind = ErrValueTooLong
		default:
			return err
		}
		return &ConstraintError{Kind: kind, Constraint: pqErr.Constraint, Err: err}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		var kind error
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			kind = ErrUniqueViolation
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			kind = ErrForeignKeyViolation
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			kind = ErrNotNullViolation
		default:
			return err
		}
		return &ConstraintError{Kind: kind, Err: err}
	}

	return err
}
