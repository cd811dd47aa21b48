// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Passwords

Admin passwords are stored as the hex SHA-256 digest of the plaintext:

	hash := auth.HashPassword("secret")
	ok := auth.IsPasswordValid(admin, "secret")

The digest is unsalted so existing rows in admins.password keep working.

# Session Tokens

After login the admin identity (id and email, never the password) is
issued as an HS256 JWT with iat/exp claims and stored in the session
cookie:

	token, err := auth.EncodeSession(identity, key, cfg.SessionTTL)
	identity, err := auth.DecodeSession(token, key)

DecodeSession wraps ErrInvalidSession for malformed, tampered, expired
or empty tokens.

# Request Context

The session middleware attaches the decoded identity to the request
context; handlers read it back:

	ctx = auth.WithAdmin(ctx, identity)
	identity, ok := auth.AdminFromContext(ctx)
*/
package auth
