// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"

	"github.com/danielhkuo/quiz-admin/db"
)

// Stores is the collection of repositories backed by one database.
type Stores struct {
	Themes    *ThemeRepository
	Questions *QuestionRepository
	Admins    *AdminRepository
}

func New(s *db.Store) *Stores {
	return &Stores{
		Themes:    NewThemeRepository(s),
		Questions: NewQuestionRepository(s),
		Admins:    NewAdminRepository(s),
	}
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
