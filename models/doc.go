// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, validated with go-playground/validator tags:

  - LoginRequest: email, password
  - AddThemeRequest: title
  - AddQuestionRequest: title, theme_id, answers
  - AnswerRequest: title, is_correct

# Response Types

Every body is wrapped in an Envelope:

	{"status": "ok", "data": {...}}
	{"status": "conflict", "message": "...", "data": {}}

List payloads:

  - ThemeListResponse: themes
  - QuestionListResponse: questions

# Domain Types

  - Theme: id, title
  - Question: id, title, theme_id, ordered answers
  - Answer: title, is_correct
  - Admin: id, email and the password hash (never serialized)
  - AdminIdentity: the id and email a session carries

# Constants

Envelope status values:

	StatusOK             = "ok"
	StatusBadRequest     = "bad_request"
	StatusUnauthorized   = "unauthorized"
	StatusForbidden      = "forbidden"
	StatusNotFound       = "not_found"
	StatusNotImplemented = "not_implemented"
	StatusConflict       = "conflict"
*/
package models
