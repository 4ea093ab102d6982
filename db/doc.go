// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and queries.

# Connections

Open supports SQLite (modernc.org/sqlite, pure Go) and PostgreSQL (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "coinchanger.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite connections enable foreign keys and a busy timeout, and are limited
to one open connection so ":memory:" databases survive between queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both drivers.

# Tables

  - users: accounts with bcrypt password hashes and a user/admin role
  - calculations: saved solver runs; coins and result are JSON text

	users 1──* calculations

The foreign key uses ON DELETE CASCADE.

# Queries

Queries are plain functions taking a context and *sql.DB. Placeholders are
$N, which both drivers accept. Lookups return ErrNotFound when no row
matches; CreateUser returns ErrEmailTaken for duplicate emails.
*/
package db
