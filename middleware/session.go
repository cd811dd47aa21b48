// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quiz-admin/auth"
	"github.com/danielhkuo/quiz-admin/models"
)

// Session decodes the session cookie and attaches the admin identity to
// the request context. Missing or invalid cookies leave the request
// anonymous.
func Session(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err == nil {
				identity, err := auth.DecodeSession(cookie.Value, key)
				if err != nil {
					slog.Warn("rejected session cookie", "error", err, "remote", GetClientIP(r))
				} else {
					r = r.WithContext(auth.WithAdmin(r.Context(), identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects requests without a session identity
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.AdminFromContext(r.Context()); !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Login required")
			return
		}
		next(w, r)
	}
}

// SetSessionCookie stores the signed identity in the session cookie. The
// cookie expires together with the token.
func SetSessionCookie(w http.ResponseWriter, identity models.AdminIdentity, key string, ttl time.Duration) error {
	token, err := auth.EncodeSession(identity, key, ttl)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
