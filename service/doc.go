// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the quiz and admin rules that sit between the HTTP
handlers and the repositories.

QuizService enforces unique titles and the answer rules before anything is
written. CreateQuestion checks in a fixed order so the reported failure is
deterministic:

 1. duplicate title        -> ErrConflict
 2. unknown theme          -> ErrNotFound
 3. fewer than two answers -> ErrBadRequest
 4. not exactly one correct -> ErrBadRequest

AdminService implements login and the current-admin check. Concurrent
requests can still race past the pre-checks; the database constraints then
fail with the db package sentinels, which callers map to the same kinds.
*/
package service
