// Package config loads runtime configuration for the CampusHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   SQLite DSN of the local database
//	-a string   base URL of the backend HTTP API
//	-w string   websocket URL of the realtime change feed
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "campushub.db",
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "realtime_endpoint_addr": "ws://127.0.0.1:8080/realtime",
//	  "online_check_interval": "3s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
