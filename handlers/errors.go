// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/middleware"
	"github.com/danielhkuo/quiz-admin/service"
)

// writeError maps service and database failures onto HTTP responses.
// Constraint violations reach here when concurrent requests race past the
// service pre-checks.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *middleware.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponseWithData(w, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, service.ErrBadRequest), errors.Is(err, db.ErrNotNullViolation), errors.Is(err, db.ErrValueTooLong):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
	case errors.Is(err, service.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid email or password")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, db.ErrForeignKeyViolation):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict), errors.Is(err, db.ErrUniqueViolation):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// decodeBody reads and validates a JSON body. It writes the 400 response
// itself and reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := middleware.DecodeAndValidate(r, v)
	if err == nil {
		return true
	}

	var verr *middleware.ValidationError
	if errors.As(err, &verr) {
		writeError(w, r, err)
		return false
	}

	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
	return false
}

// NotImplemented answers requests to known paths with an unsupported method.
func NotImplemented(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
}
