// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quiz-admin/cliparse"
	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/handlers"
	"github.com/danielhkuo/quiz-admin/middleware"
	"github.com/danielhkuo/quiz-admin/store"
)

func NewRouter(s *db.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	stores := store.New(s)
	adminHandler := handlers.NewAdminHandler(stores, cfg)
	quizHandler := handlers.NewQuizHandler(stores)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin session
	route(mux, "POST", "/admin.login", adminHandler.Login)
	route(mux, "GET", "/admin.current", adminHandler.Current)

	// Quiz content (requires a logged-in admin)
	route(mux, "POST", "/quiz.add_theme", middleware.RequireAdmin(quizHandler.AddTheme))
	route(mux, "GET", "/quiz.list_themes", middleware.RequireAdmin(quizHandler.ListThemes))
	route(mux, "POST", "/quiz.add_question", middleware.RequireAdmin(quizHandler.AddQuestion))
	route(mux, "GET", "/quiz.list_questions", middleware.RequireAdmin(quizHandler.ListQuestions))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quiz-admin API v1"))
	})

	return middleware.Session(cfg.SessionKey)(mux)
}

// route registers h for method and path, and a JSON 405 for every other
// method on the same path.
func route(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(method+" "+path, middleware.WithLogging(h))
	mux.HandleFunc(path, middleware.WithLogging(handlers.NotImplemented))
}
