// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, access tokens and ID generation.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(candidate, hash) // ErrInvalidPassword on mismatch

bcrypt only looks at the first 72 bytes, so longer passwords are rejected
with ErrPasswordTooLong instead of being silently truncated.

# Access Tokens

Tokens are HS256 JWTs carrying the user's ID, email, name and role:

	tokens := auth.NewTokenService(secret, "coinchanger", auth.DefaultTokenTTL)
	token, err := tokens.Issue(user)
	claims, err := tokens.Parse(token)

Parse returns ErrExpiredToken for expired tokens and ErrInvalidToken for
everything else (bad signature, wrong issuer, malformed). Each token gets a
random UUID as its jti. Tokens are valid for seven days by default.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
