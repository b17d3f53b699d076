package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/back2me/internal/flagx"
)

var knownFlags = []string{"-d", "-k", "-t", "-l", "-log-format", "-log-level", "-media"}

// parseFlags overlays cfg with the flags it knows about. Other arguments,
// including -c, are filtered out first with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("back2me", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (SQLite path or postgres:// URL)")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret used to sign session tokens")
	fs.DurationVar(&cfg.SessionTTL, "t", cfg.SessionTTL, "session lifetime")
	fs.DurationVar(&cfg.SimulatedLatency, "l", cfg.SimulatedLatency, "simulated latency before store operations")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json or console")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.MediaBackend, "media", cfg.MediaBackend, "profile picture backend: kv or s3")

	return fs.Parse(args)
}
