// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quiz-admin/auth"
	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/models"
)

type adminRow struct {
	id       int64
	email    string
	password string
}

func (r adminRow) toModel() models.Admin {
	return models.Admin{ID: r.id, Email: r.email, PasswordHash: r.password}
}

type AdminRepository struct {
	store *db.Store
}

func NewAdminRepository(s *db.Store) *AdminRepository {
	return &AdminRepository{store: s}
}

// GetAdminByEmail returns nil without an error when no admin matches.
func (r *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var row adminRow
	err := r.store.DB().QueryRowContext(ctx, r.store.Rebind(`
		SELECT id, email, password
		FROM admins
		WHERE email = ?
	`), email).Scan(&row.id, &row.email, &row.password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}
	admin := row.toModel()
	return &admin, nil
}

// CreateAdmin stores the admin with a hashed password; the plaintext is
// never written.
func (r *AdminRepository) CreateAdmin(ctx context.Context, email, password string) (models.Admin, error) {
	var row adminRow
	err := r.store.WithTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, r.store.Rebind(`
			INSERT INTO admins (email, password)
			VALUES (?, ?)
			RETURNING id, email, password
		`), email, auth.HashPassword(password)).Scan(&row.id, &row.email, &row.password)
	})
	if err != nil {
		return models.Admin{}, fmt.Errorf("failed to insert admin: %w", db.ClassifyError(err))
	}
	return row.toModel(), nil
}
