// Package config assembles the run configuration from defaults, an optional
// YAML file, a .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvInputDir     = "AOC_INPUT_DIR"
	EnvInputPattern = "AOC_INPUT_PATTERN"
	EnvLogLevel     = "AOC_LOG_LEVEL"
	EnvWorkers      = "AOC_WORKERS"
)

var (
	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("config: workers must be >= 1")

	// ErrInvalidPattern indicates an input pattern without exactly one verb.
	ErrInvalidPattern = errors.New("config: input pattern must contain exactly one % verb")
)

// Config is the effective configuration of a run.
type Config struct {
	InputDir     string `yaml:"input_dir"`
	InputPattern string `yaml:"input_pattern"`
	LogLevel     string `yaml:"log_level"`
	Workers      int    `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputDir:     ".",
		InputPattern: "input%02d.txt",
		LogLevel:     "info",
		Workers:      4,
	}
}

// Load builds a Config. A missing YAML file at path, or an empty path, is
// not an error; a missing .env file is not an error either, but a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	// .env never overrides variables already present in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvInputDir); ok && v != "" {
		c.InputDir = v
	}
	if v, ok := os.LookupEnv(EnvInputPattern); ok && v != "" {
		c.InputPattern = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidWorkers, EnvWorkers, v)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks the invariants of c.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if strings.Count(c.InputPattern, "%")-2*strings.Count(c.InputPattern, "%%") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, c.InputPattern)
	}

	return nil
}

// InputPath returns the path of the input file for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
