// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the chat board database and manages its schema.

Two drivers are supported:

	conn, err := db.Open(db.TypeSQLite, "file:board?mode=memory&cache=shared")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite, pure Go) is the default and runs in memory.
Postgres uses github.com/lib/pq. All queries use $N placeholders, which both
drivers accept.

# Tables

  - channel: chat channels and whether they support interactive messages
  - message: posted poll messages, stored as JSON payloads

Poll sessions themselves are never stored; they live in memory only.

# Usage

	if err := db.CreateSchema(conn); err != nil {
		// handle error
	}

CreateSchema uses IF NOT EXISTS clauses, making it safe to call on every
startup.
*/
package db
