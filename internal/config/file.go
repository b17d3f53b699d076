package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/flagx"
	"github.com/dmitrijs2005/back2me/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Fields left out of the file keep
// their current value.
type FileConfig struct {
	DatabaseDSN      string          `json:"database_dsn" yaml:"database_dsn"`
	SecretKey        string          `json:"secret_key" yaml:"secret_key"`
	SessionTTL       timex.Duration  `json:"session_ttl" yaml:"session_ttl"`
	SimulatedLatency *timex.Duration `json:"simulated_latency" yaml:"simulated_latency"`
	LogFormat        string          `json:"log_format" yaml:"log_format"`
	LogLevel         string          `json:"log_level" yaml:"log_level"`
	MediaBackend     string          `json:"media_backend" yaml:"media_backend"`
	S3Region         string          `json:"s3_region" yaml:"s3_region"`
	S3Endpoint       string          `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3AccessKey      string          `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey      string          `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Bucket         string          `json:"s3_bucket" yaml:"s3_bucket"`
}

// parseFile overlays cfg with the file named by -c/-config in args.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	if fc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = fc.SessionTTL.Duration
	}
	// Zero latency is meaningful, so only an absent key is skipped.
	if fc.SimulatedLatency != nil {
		cfg.SimulatedLatency = fc.SimulatedLatency.Duration
	}
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.MediaBackend, fc.MediaBackend)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3Endpoint, fc.S3Endpoint)
	setString(&cfg.S3AccessKey, fc.S3AccessKey)
	setString(&cfg.S3SecretKey, fc.S3SecretKey)
	setString(&cfg.S3Bucket, fc.S3Bucket)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
