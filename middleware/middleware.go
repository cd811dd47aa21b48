// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quiz-admin/models"
)

// WithLogging wraps a handler with request logging and tags the request
// with an X-Request-ID.
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		// Log request
		slog.Info("request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", GetClientIP(r),
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// OKResponse writes a 200 response wrapped in the "ok" envelope
func OKResponse(w http.ResponseWriter, data interface{}) {
	JSONResponse(w, http.StatusOK, models.Envelope{
		Status: models.StatusOK,
		Data:   data,
	})
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	ErrorResponseWithData(w, statusCode, message, map[string]any{})
}

// ErrorResponseWithData writes a JSON error response with details under data
func ErrorResponseWithData(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSONResponse(w, statusCode, models.Envelope{
		Status:  StatusName(statusCode),
		Message: message,
		Data:    data,
	})
}

// StatusName maps an HTTP status code to the envelope status string
func StatusName(statusCode int) string {
	switch statusCode {
	case http.StatusOK:
		return models.StatusOK
	case http.StatusBadRequest:
		return models.StatusBadRequest
	case http.StatusUnauthorized:
		return models.StatusUnauthorized
	case http.StatusForbidden:
		return models.StatusForbidden
	case http.StatusNotFound:
		return models.StatusNotFound
	case http.StatusMethodNotAllowed:
		return models.StatusNotImplemented
	case http.StatusConflict:
		return models.StatusConflict
	}
	return models.StatusInternalServerError
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// CORS middleware allows cross-origin requests from the frontend
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP returns the address logged for a request: the first
// X-Forwarded-For hop, then X-Real-IP, then the peer address without port.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
