// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quiz admin API.

# Route Registration

NewRouter returns the mux wrapped in the session middleware:

	handler := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Admin session:

	POST /admin.login   - Check credentials, set session cookie
	GET  /admin.current - Identity of the logged-in admin

Quiz content (session required, 401 otherwise):

	POST /quiz.add_theme      - Create theme
	GET  /quiz.list_themes    - List themes
	POST /quiz.add_question   - Create question with answers
	GET  /quiz.list_questions - List questions, optional ?theme_id=

Any other method on these paths answers 405 with status "not_implemented".
*/
package router
