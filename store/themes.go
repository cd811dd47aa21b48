// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/models"
)

type themeRow struct {
	id    int64
	title string
}

func (r themeRow) toModel() models.Theme {
	return models.Theme{ID: r.id, Title: r.title}
}

type ThemeRepository struct {
	store *db.Store
}

func NewThemeRepository(s *db.Store) *ThemeRepository {
	return &ThemeRepository{store: s}
}

// CreateTheme inserts a theme. A taken title fails with db.ErrUniqueViolation.
func (r *ThemeRepository) CreateTheme(ctx context.Context, title string) (models.Theme, error) {
	var row themeRow
	err := r.store.WithTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, r.store.Rebind(`
			INSERT INTO themes (title)
			VALUES (?)
			RETURNING id, title
		`), title).Scan(&row.id, &row.title)
	})
	if err != nil {
		return models.Theme{}, fmt.Errorf("failed to insert theme: %w", db.ClassifyError(err))
	}
	return row.toModel(), nil
}

// GetThemeByTitle returns nil without an error when no theme matches.
func (r *ThemeRepository) GetThemeByTitle(ctx context.Context, title string) (*models.Theme, error) {
	return r.getTheme(ctx, `SELECT id, title FROM themes WHERE title = ?`, title)
}

// GetThemeByID returns nil without an error when no theme matches.
func (r *ThemeRepository) GetThemeByID(ctx context.Context, id int64) (*models.Theme, error) {
	return r.getTheme(ctx, `SELECT id, title FROM themes WHERE id = ?`, id)
}

func (r *ThemeRepository) getTheme(ctx context.Context, query string, arg any) (*models.Theme, error) {
	var row themeRow
	err := r.store.DB().QueryRowContext(ctx, r.store.Rebind(query), arg).Scan(&row.id, &row.title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query theme: %w", err)
	}
	theme := row.toModel()
	return &theme, nil
}

// ListThemes returns every theme in creation order.
func (r *ThemeRepository) ListThemes(ctx context.Context) ([]models.Theme, error) {
	rows, err := r.store.DB().QueryContext(ctx, `SELECT id, title FROM themes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	themes := []models.Theme{}
	for rows.Next() {
		var row themeRow
		if err := rows.Scan(&row.id, &row.title); err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate themes: %w", err)
	}
	return themes, nil
}

// DeleteTheme removes a theme; its questions and answers go with it.
func (r *ThemeRepository) DeleteTheme(ctx context.Context, id int64) error {
	return r.store.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.store.Rebind(`DELETE FROM themes WHERE id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete theme: %w", err)
		}
		return nil
	})
}
