// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/danielhkuo/quiz-admin/models"
)

// SessionCookie is the cookie that carries the signed session token.
const SessionCookie = "session"

var ErrInvalidSession = errors.New("invalid session")

// HashPassword returns the hex SHA-256 digest of the UTF-8 password.
// Unsalted, to stay compatible with hashes already stored in admins.password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsPasswordValid reports whether password hashes to the admin's stored hash.
func IsPasswordValid(admin models.Admin, password string) bool {
	return subtle.ConstantTimeCompare([]byte(admin.PasswordHash), []byte(HashPassword(password))) == 1
}

type sessionClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// EncodeSession issues an HS256 JWT carrying the identity, valid for ttl.
func EncodeSession(identity models.AdminIdentity, key string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		ID:    identity.ID,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

// DecodeSession verifies the token signature and expiry and returns the
// identity it carries. Every failure wraps ErrInvalidSession.
func DecodeSession(token, key string) (models.AdminIdentity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(key), nil
	})
	if err != nil {
		return models.AdminIdentity{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !parsed.Valid || claims.ExpiresAt == nil {
		return models.AdminIdentity{}, ErrInvalidSession
	}
	if claims.ID == 0 || claims.Email == "" {
		return models.AdminIdentity{}, ErrInvalidSession
	}
	return models.AdminIdentity{ID: claims.ID, Email: claims.Email}, nil
}

type adminKey struct{}

// WithAdmin attaches the session identity to ctx.
func WithAdmin(ctx context.Context, identity models.AdminIdentity) context.Context {
	return context.WithValue(ctx, adminKey{}, identity)
}

// AdminFromContext returns the identity attached by WithAdmin, if any.
func AdminFromContext(ctx context.Context) (models.AdminIdentity, bool) {
	identity, ok := ctx.Value(adminKey{}).(models.AdminIdentity)
	return identity, ok
}
