// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store contains the repositories for themes, questions, and admins.

	stores := store.New(dbStore)
	theme, err := stores.Themes.CreateTheme(ctx, "web-development")

Lookups return a nil pointer and a nil error when nothing matches. Writes
run inside db.Store.WithTx and surface integrity failures as
db.ErrUniqueViolation, db.ErrForeignKeyViolation, or db.ErrNotNullViolation.

Each repository scans into an unexported row type and maps it to the
models type with a pure toModel method. Questions are loaded with an
explicit LEFT JOIN on answers and folded back into one models.Question per
id, answers kept in insertion order.
*/
package store
