// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open selects the driver by database type and pings before returning:

	conn, err := db.Open(ctx, db.TypeSQLite, "database.sqlite")
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

SQLite uses the pure-Go modernc.org/sqlite driver; a busy timeout is added to
the DSN unless one is already present, and timestamps are written in
SQLite's sortable text format (_time_format=sqlite). PostgreSQL uses github.com/lib/pq.

# Schema Creation

Migrate applies the embedded goose migrations:

	if err := db.Migrate(ctx, conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - the users table and its index use IF NOT EXISTS.

# Tables

	users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)

Index on users.created_at backs the newest-first listing.
*/
package db
