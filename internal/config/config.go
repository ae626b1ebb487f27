// Package config loads runtime settings for the carbonai commands from the
// environment, an optional .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/gateway"
	"github.com/greengold/carbonai/internal/metrics"
	"github.com/greengold/carbonai/model"
	"github.com/greengold/carbonai/retry"
)

// Environment variables read by Load.
const (
	EnvConfigFile    = "CARBONAI_CONFIG"
	EnvLogLevel      = "CARBONAI_LOG_LEVEL"
	EnvInquiryFile   = "CARBONAI_INQUIRY_FILE"
	EnvPollInterval  = "CARBONAI_POLL_INTERVAL"
	EnvMaxPolls      = "CARBONAI_MAX_POLLS"
	EnvTimeout       = "CARBONAI_TIMEOUT"
	EnvMetricsAddr   = "CARBONAI_METRICS_ADDR"
	EnvRetryAttempts = "CARBONAI_RETRY_ATTEMPTS"
)

// Config holds the command configuration. Environment variables override
// values from the YAML file, which override the defaults.
type Config struct {
	LogLevel      string        `yaml:"log_level"` // debug, info, warn, error
	InquiryFile   string        `yaml:"inquiry_file"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	MaxPolls      int           `yaml:"max_polls"`
	Timeout       time.Duration `yaml:"timeout"`
	MetricsAddr   string        `yaml:"metrics_addr"`
	RetryAttempts int           `yaml:"retry_attempts"`
	Models        model.Set     `yaml:"models"`

	// envErrs holds environment values that could not be parsed.
	envErrs []error
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		InquiryFile:   "inquiries.json",
		PollInterval:  10 * time.Second,
		MaxPolls:      60,
		RetryAttempts: 1,
	}
}

// Load builds the configuration. It loads a .env file if present (silent
// fail if not found), then the YAML file named by CARBONAI_CONFIG, then the
// environment.
func Load() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnvOrDefault(EnvLogLevel, c.LogLevel)
	c.InquiryFile = getEnvOrDefault(EnvInquiryFile, c.InquiryFile)
	c.PollInterval = c.getEnvDurationOrDefault(EnvPollInterval, c.PollInterval)
	c.MaxPolls = c.getEnvIntOrDefault(EnvMaxPolls, c.MaxPolls)
	c.Timeout = c.getEnvDurationOrDefault(EnvTimeout, c.Timeout)
	c.MetricsAddr = getEnvOrDefault(EnvMetricsAddr, c.MetricsAddr)
	c.RetryAttempts = c.getEnvIntOrDefault(EnvRetryAttempts, c.RetryAttempts)
}

// Validate checks that the configuration is usable, including that every
// environment override parsed.
func (c *Config) Validate() error {
	errs := append([]error(nil), c.envErrs...)
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", EnvPollInterval, c.PollInterval))
	}
	if c.MaxPolls < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvMaxPolls, c.MaxPolls))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %s", EnvTimeout, c.Timeout))
	}
	if c.RetryAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvRetryAttempts, c.RetryAttempts))
	}
	if c.InquiryFile == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", EnvInquiryFile))
	}
	return errors.Join(errs...)
}

// ParseLogLevel converts a level name to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (must be debug, info, warn, or error)", s)
	}
}

// Logger returns a text logger writing to stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	level, _ := ParseLogLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Retry returns the retry policy, or nil when retries are off.
func (c *Config) Retry() *retry.Config {
	if c.RetryAttempts <= 1 {
		return nil
	}
	rc := retry.DefaultConfig()
	rc.MaxAttempts = c.RetryAttempts
	return &rc
}

// Gateway builds the gateway configuration.
func (c *Config) Gateway(creds ai.Credentials, logger *slog.Logger, m *metrics.Metrics) gateway.Config {
	return gateway.Config{
		Credentials:  creds,
		Models:       c.Models,
		PollInterval: c.PollInterval,
		MaxPolls:     c.MaxPolls,
		Timeout:      c.Timeout,
		Retry:        c.Retry(),
		Logger:       logger,
		Metrics:      m,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		c.envErrs = append(c.envErrs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return defaultValue
	}
	return i
}

func (c *Config) getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		c.envErrs = append(c.envErrs, fmt.Errorf("%s must be a duration such as 10s, got %q", key, value))
		return defaultValue
	}
	return d
}
