// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: chat board database (default: in-memory sqlite)
  - SigningSecret: shared secret for request signatures (optional)

# CLI Flags

	-p                Server port
	-t                Database type
	-d                Database URL
	--signing-secret  Request signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_TYPE  → -t
	DATABASE_URL   → -d
	SIGNING_SECRET → --signing-secret

CLI flags take precedence over environment variables. LoadEnvFiles reads
a .env file (via godotenv) into the environment first, without overriding
variables that are already set.

# Validation

ParseFlags returns an error when:

  - the database type is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - PORT is not a number

# Example

	// In main.go
	if err := cliparse.LoadEnvFiles(); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
*/
package cliparse
