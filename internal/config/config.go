// Package config loads the settings shared by the cache commands from the environment.
// An optional .env file in the working directory is read first; variables already set
// in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// stderr is replaced in tests.
var stderr io.Writer = os.Stderr

// Config holds the tunables for cmd and cmd/benchmark.
type Config struct {
	Capacity int    `env:"LFU_CAPACITY" envDefault:"3"`
	LogLevel string `env:"LFU_LOG_LEVEL" envDefault:"info"`

	Bench Bench `envPrefix:"LFU_BENCH_"`
}

// Bench configures the load benchmark.
type Bench struct {
	Workers  int `env:"WORKERS" envDefault:"8"`
	Ops      int `env:"OPS" envDefault:"200000"`
	KeySpace int `env:"KEYSPACE" envDefault:"10000"`
}

// Load reads .env files (if any) and parses the environment into a Config.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every numeric setting is positive and the log level is known.
func (c Config) Validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: LFU_CAPACITY must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.Bench.Workers <= 0:
		return fmt.Errorf("%w: LFU_BENCH_WORKERS must be positive, got %d", ErrInvalidConfig, c.Bench.Workers)
	case c.Bench.Ops <= 0:
		return fmt.Errorf("%w: LFU_BENCH_OPS must be positive, got %d", ErrInvalidConfig, c.Bench.Ops)
	case c.Bench.KeySpace <= 0:
		return fmt.Errorf("%w: LFU_BENCH_KEYSPACE must be positive, got %d", ErrInvalidConfig, c.Bench.KeySpace)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: LFU_LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Logger builds a text logger writing to stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
}
