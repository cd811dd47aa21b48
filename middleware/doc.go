// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).
Each request carries an X-Request-ID, generated when the client sends none.

# Sessions

Session decodes the signed session cookie and puts the admin identity on
the request context. RequireAdmin answers 401 when there is none:

	handler := middleware.Session(cfg.SessionKey)(mux)
	mux.HandleFunc("GET /quiz.list_themes", middleware.RequireAdmin(h.ListThemes))

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and
X-Request-ID. Credentials are allowed so the session cookie is sent.

# JSON Helpers

Write enveloped responses:

	middleware.OKResponse(w, theme)
	middleware.ErrorResponse(w, http.StatusNotFound, "theme not found")

Parse and validate JSON request bodies:

	var req models.AddThemeRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		...
	}

Rule failures come back as *ValidationError keyed by JSON field path.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
