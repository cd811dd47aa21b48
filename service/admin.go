// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quiz-admin/auth"
	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/models"
	"github.com/danielhkuo/quiz-admin/store"
)

type AdminService struct {
	admins *store.AdminRepository
}

func NewAdminService(stores *store.Stores) *AdminService {
	return &AdminService{admins: stores.Admins}
}

// Login checks the credentials and returns the identity to store in the
// session. Unknown emails and wrong passwords both fail with ErrForbidden.
func (s *AdminService) Login(ctx context.Context, email, password string) (models.AdminIdentity, error) {
	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return models.AdminIdentity{}, err
	}
	if admin == nil {
		return models.AdminIdentity{}, fmt.Errorf("%w: unknown admin", ErrForbidden)
	}
	if !auth.IsPasswordValid(*admin, password) {
		return models.AdminIdentity{}, fmt.Errorf("%w: wrong password", ErrForbidden)
	}

	slog.Info("admin logged in", "admin_id", admin.ID)
	return admin.Identity(), nil
}

// CurrentAdmin returns the session identity attached to ctx.
func (s *AdminService) CurrentAdmin(ctx context.Context) (models.AdminIdentity, error) {
	identity, ok := auth.AdminFromContext(ctx)
	if !ok {
		return models.AdminIdentity{}, ErrUnauthorized
	}
	return identity, nil
}

// EnsureAdmin creates the admin unless one with the email already exists.
// An existing admin keeps its password.
func (s *AdminService) EnsureAdmin(ctx context.Context, email, password string) (models.Admin, error) {
	existing, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return models.Admin{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	admin, err := s.admins.CreateAdmin(ctx, email, password)
	// Another process seeded it first
	if errors.Is(err, db.ErrUniqueViolation) {
		existing, err := s.admins.GetAdminByEmail(ctx, email)
		if err != nil {
			return models.Admin{}, err
		}
		if existing != nil {
			return *existing, nil
		}
	}
	if err != nil {
		return models.Admin{}, err
	}

	slog.Info("admin created", "admin_id", admin.ID, "email", admin.Email)
	return admin, nil
}
