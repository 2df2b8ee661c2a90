// Package config loads the routing pipeline's configuration from YAML with
// environment overrides. Missing files fall back to defaults, so the CLI
// works out of the box.
package config

// #region imports
import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region types

// Config holds the whole pipeline configuration.
type Config struct {
	RankFile       string `yaml:"rank_file"`
	EngagementFile string `yaml:"engagement_file"`
	HistoryDB      string `yaml:"history_db"`

	Verify   VerifyConfig   `yaml:"verify"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Ranking  RankingConfig  `yaml:"ranking"`
	Monitor  MonitorConfig  `yaml:"monitor"`
}

// VerifyConfig configures the pre-distribution verification gate.
type VerifyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Addr      string  `yaml:"addr"`
	Threshold float64 `yaml:"threshold"`
	Timeout   string  `yaml:"timeout"`
}

// DispatchConfig configures the fan-out engine and its platforms.
type DispatchConfig struct {
	Timeout   string         `yaml:"timeout"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

// PlatformSpec describes one platform adapter.
type PlatformSpec struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"` // simulated (default) or webhook
	Endpoint string `yaml:"endpoint"`
	Seed     int64  `yaml:"seed"`
}

// RankingConfig configures the external ranking job.
type RankingConfig struct {
	// Recompute is the argv run when the rank file is missing. Empty means
	// never recompute.
	Recompute []string `yaml:"recompute"`
}

// MonitorConfig configures the live monitor.
type MonitorConfig struct {
	Interval string `yaml:"interval"`
}

// #endregion types

// #region defaults

// Fallback durations used when the configured strings are unset or do not
// parse.
const (
	DefaultVerifyTimeout   = 5 * time.Second
	DefaultDispatchTimeout = 10 * time.Second
	DefaultMonitorInterval = 2 * time.Second
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		RankFile:       ".obinexus-rank",
		EngagementFile: ".obinexus-engagement",
		HistoryDB:      "mmuoko-history.db",

		Verify: VerifyConfig{
			Enabled:   false,
			Addr:      "localhost:50051",
			Threshold: 0.954,
			Timeout:   "5s",
		},

		Dispatch: DispatchConfig{
			Timeout: "10s",
			Platforms: []PlatformSpec{
				{Name: "youtube"},
				{Name: "tiktok"},
				{Name: "instagram"},
				{Name: "twitter"},
			},
		},

		Monitor: MonitorConfig{
			Interval: "2s",
		},
	}
}

// #endregion defaults

// #region load

// Load reads the YAML file at path over the defaults, then applies
// MMUOKO_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MMUOKO_RANK_FILE"); v != "" {
		c.RankFile = v
	}
	if v := os.Getenv("MMUOKO_ENGAGEMENT_FILE"); v != "" {
		c.EngagementFile = v
	}
	if v := os.Getenv("MMUOKO_HISTORY_DB"); v != "" {
		c.HistoryDB = v
	}
	if v := os.Getenv("MMUOKO_VERIFY_ADDR"); v != "" {
		c.Verify.Addr = v
	}
	if v := os.Getenv("MMUOKO_VERIFY_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Verify.Enabled = enabled
		}
	}
	if v := os.Getenv("MMUOKO_VERIFY_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.Verify.Threshold = threshold
		}
	}
	if v := os.Getenv("MMUOKO_DISPATCH_TIMEOUT"); v != "" {
		c.Dispatch.Timeout = v
	}
	if v := os.Getenv("MMUOKO_MONITOR_INTERVAL"); v != "" {
		c.Monitor.Interval = v
	}
}

// #endregion load

// #region durations

// VerifyTimeout returns the parsed verification timeout.
func (c *Config) VerifyTimeout() time.Duration {
	return parseDuration(c.Verify.Timeout, DefaultVerifyTimeout)
}

// DispatchTimeout returns the parsed per-adapter submit timeout.
func (c *Config) DispatchTimeout() time.Duration {
	return parseDuration(c.Dispatch.Timeout, DefaultDispatchTimeout)
}

// MonitorInterval returns the parsed monitor sampling interval.
func (c *Config) MonitorInterval() time.Duration {
	return parseDuration(c.Monitor.Interval, DefaultMonitorInterval)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// #endregion durations
