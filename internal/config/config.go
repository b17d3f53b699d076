package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	MediaKV = "kv"
	MediaS3 = "s3"
)

// Config holds runtime settings for the Back2Me client.
type Config struct {
	DatabaseDSN      string
	SecretKey        string
	SessionTTL       time.Duration
	SimulatedLatency time.Duration
	LogFormat        string
	LogLevel         string

	MediaBackend string
	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3Bucket     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "back2me.db"
	c.SessionTTL = 30 * 24 * time.Hour
	c.SimulatedLatency = 500 * time.Millisecond
	c.LogFormat = "console"
	c.LogLevel = "info"
	c.MediaBackend = MediaKV
	c.S3Region = "us-east-1"
	c.S3Bucket = "back2me"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL))
	}
	if c.SimulatedLatency < 0 {
		errs = append(errs, fmt.Errorf("simulated latency must not be negative, got %s", c.SimulatedLatency))
	}
	switch c.MediaBackend {
	case MediaKV:
	case MediaS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("s3 bucket is required for the s3 media backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown media backend %q", c.MediaBackend))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, the optional config file named
// in args and the flags in args, in that order. args excludes the program
// name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
