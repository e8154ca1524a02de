// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Poll API server.

Quickly Poll is a chat poll bot. "poll start" posts a message with one
button per option, users click to vote (one vote per user, switching
allowed), and "poll end" closes the poll and announces the winner.

# Starting the Server

With no configuration the server runs on an in-memory SQLite board:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Settings are also read from a .env file in the working directory.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (required for postgres)
  - SIGNING_SECRET (--signing-secret): HMAC secret for X-Signature

# Architecture

  - session: a single poll, its tallies and lifecycle
  - registry: routes clicks to the poll that owns the control
  - display: renders poll state into chat messages
  - commands: cobra tree for "poll start" and "poll end"
  - chat: SQL-backed chat board and click event stream
  - handlers, router, middleware: HTTP surface
  - models: shared chat and response types
  - auth: ids and request signatures
  - db: connection and schema
  - cliparse: configuration parsing

Logs are text on a terminal and JSON otherwise.
*/
package main
