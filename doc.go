// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quiz admin API server.

Administrators log in and manage quiz content: themes, and questions with
their answers. Every question has at least two answers and exactly one
correct answer.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=quiz.db SESSION_KEY=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --session-key ...

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - SESSION_KEY (--session-key): Secret for session cookie signatures

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - QUIZ_CONFIG (-c): YAML file with any of the above
  - ADMIN_EMAIL, ADMIN_PASSWORD: admin created at startup if missing

# Architecture

  - handlers: HTTP request handlers (admin session, quiz content)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Sessions, CORS, logging, JSON and validation helpers
  - service: Quiz and login rules
  - store: Theme, question, and admin repositories
  - models: Request/response and domain types
  - auth: Password hashing and session tokens
  - db: Connections, schema, transactions, constraint errors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
