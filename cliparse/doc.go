// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Each field is resolved in order, first match wins:

 1. CLI flag
 2. Environment variable
 3. YAML file named by -c or CONFIG_PATH
 4. Default

# Fields

	Field            Flag               Env               YAML              Default
	Port             -p                 PORT              port              3001
	DatabaseURL      -d                 DATABASE_URL      database_url      database.sqlite
	DatabaseType     -t                 DATABASE_TYPE     database_type     sqlite
	LogLevel         -log-level         LOG_LEVEL         log_level         info
	LogFormat        -log-format        LOG_FORMAT        log_format        text
	ShutdownTimeout  -shutdown-timeout  SHUTDOWN_TIMEOUT  shutdown_timeout  5s

# Validation

DatabaseType must be sqlite or postgres, LogFormat text or json, and LogLevel
one of the slog level names. A port outside 1-65535 or a non-positive
shutdown timeout is rejected.

# Logging

Config.NewLogger builds the process logger:

	slog.SetDefault(cfg.NewLogger(os.Stderr))
*/
package cliparse
