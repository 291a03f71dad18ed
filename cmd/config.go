package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvTickInterval    = "TICK_INTERVAL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvHTTPEnabled     = "HTTP_ENABLED"
	EnvHTTPPort        = "HTTP_PORT"
	EnvSeedFile        = "SEED_FILE"
	EnvLogLevel        = "LOG_LEVEL"
)

type Config struct {
	TickInterval    time.Duration
	ShutdownTimeout time.Duration
	HTTPEnabled     bool
	HTTPPort        string
	// SeedFile replaces the embedded catalog when set.
	SeedFile string
	LogLevel slog.Level
}

func DefaultConfig() Config {
	return Config{
		TickInterval:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		HTTPPort:        "8080",
		LogLevel:        slog.LevelInfo,
	}
}

// LoadConfig loads envFile into the process environment, if it exists, and
// reads the configuration from the environment. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv overlays the variables returned by getenv on DefaultConfig.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	var errList []error

	if v := getenv(EnvTickInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", EnvTickInterval, err))
		}
		cfg.TickInterval = d
	}
	if v := getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", EnvShutdownTimeout, err))
		}
		cfg.ShutdownTimeout = d
	}
	if v := getenv(EnvHTTPEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", EnvHTTPEnabled, err))
		}
		cfg.HTTPEnabled = enabled
	}
	if v := getenv(EnvHTTPPort); v != "" {
		cfg.HTTPPort = v
	}
	cfg.SeedFile = getenv(EnvSeedFile)
	if v := getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", EnvLogLevel, err))
		}
	}

	if err := errors.Join(append(errList, cfg.Validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	if c.TickInterval <= 0 {
		errList = append(errList, fmt.Errorf("tick interval must be positive, got %s", c.TickInterval))
	}
	if c.ShutdownTimeout <= 0 {
		errList = append(errList, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errList = append(errList, fmt.Errorf("http port %q is not a valid port", c.HTTPPort))
	}
	return errors.Join(errList...)
}

// HTTPAddr is the listen address of the status server.
func (c Config) HTTPAddr() string {
	return "0.0.0.0:" + c.HTTPPort
}
