// Package config loads runtime configuration for the Back2Me client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string     database DSN: SQLite file path or postgres:// URL
//	-k string     secret used to sign session tokens
//	-t duration   session lifetime, e.g. 720h
//	-l duration   simulated latency before each store operation, e.g. 500ms
//	-log-format   text | json | console
//	-log-level    debug | info | warn | error
//	-media        kv | s3
//
// # File schema
//
// Durations accept Go duration strings or integer nanoseconds:
//
//	database_dsn: back2me.db
//	session_ttl: 720h
//	simulated_latency: 500ms
//	log_format: console
//	media_backend: s3
//	s3_region: us-east-1
//	s3_endpoint: http://127.0.0.1:9000
//	s3_access_key: minioadmin
//	s3_secret_key: minioadmin
//	s3_bucket: back2me
//
// An empty secret_key makes the client generate one and keep it in the
// durable store, so remembered sessions survive restarts.
package config
