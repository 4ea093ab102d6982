// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                Server port
	-d                Database URL (sqlite path or postgres URL)
	-t                Database type (sqlite or postgres)
	--redis           Redis address for the solve cache
	--origins         Comma-separated CORS origins
	--jwt-secret      JWT signing secret
	--admin-password  Seed admin password

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p              (default 5000)
	DATABASE_URL    → -d              (default coinchanger.db)
	DATABASE_TYPE   → -t              (default sqlite)
	REDIS_ADDR      → --redis         (default: in-memory cache)
	ALLOWED_ORIGINS → --origins       (default: echo request origin)
	JWT_SECRET      → --jwt-secret
	ADMIN_PASSWORD  → --admin-password

Environment only:

	ADMIN_EMAIL  Seed admin email (default admin@coinchanger.com)
	TOKEN_TTL    Access token lifetime (default 168h)
	CACHE_TTL    Solve cache entry lifetime (default 10m)
	MAX_AMOUNT   Largest amount accepted by the API (default 1000000)
	MAX_COINS    Most denominations accepted by the API (default 100)
	MAX_SERIES   Largest range for the series endpoint (default 1000)

CLI flags take precedence over environment variables. main loads a .env
file into the environment before calling ParseFlags.

# Validation

ParseFlags returns an error if:

  - JWT_SECRET is missing
  - DATABASE_TYPE is not sqlite or postgres
  - a numeric or duration setting does not parse or is not positive

The admin account is only seeded when ADMIN_PASSWORD is set; there is no
default password.
*/
package cliparse
