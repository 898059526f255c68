// Package config loads runtime configuration for the gophsocial CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed GOPHSOCIAL_, optionally read from a
//     .env file first (-e or -env-file, else ./.env when present).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-s string   storage backend: sqlite, redis or memory
//	-d string   SQLite database path
//	-r string   Redis address
//	-l string   log format: text, json or zerolog
//	-v string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "5m" or
// integer nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "refresh_interval": "5m",
//	  "idle_timeout": "30m",
//	  "min_password_length": 8,
//	  "max_login_attempts": 5,
//	  "lockout_duration": "15m",
//	  "storage": "sqlite",
//	  "sqlite_path": "session.db"
//	}
package config
