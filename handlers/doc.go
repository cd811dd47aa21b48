// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quiz admin API.

# Handler Types

Each handler is a struct wrapping a service from package service:

  - AdminHandler: Login and the current session identity
  - QuizHandler: Themes and questions with their answers

Handlers are created via constructor functions that accept *store.Stores:

	stores := store.New(s)
	quizHandler := handlers.NewQuizHandler(stores)
	adminHandler := handlers.NewAdminHandler(stores, cfg)

# Endpoints

	POST /admin.login          → Login (sets the session cookie)
	GET  /admin.current        → Current
	POST /quiz.add_theme       → AddTheme
	GET  /quiz.list_themes     → ListThemes
	POST /quiz.add_question    → AddQuestion
	GET  /quiz.list_questions  → ListQuestions (optional ?theme_id=)

The quiz endpoints are mounted behind middleware.RequireAdmin.

# Responses

Every response uses the envelope {"status": ..., "data": ...}. Errors add
a message, and validation failures carry per-field messages under data:

	{"status": "bad_request", "message": "Validation failed",
	 "data": {"title": ["Missing data for required field."]}}

Service errors map to 400, 401, 403, 404 and 409. Anything else is logged
and returned as 500.
*/
package handlers
