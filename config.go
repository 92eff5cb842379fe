package retsu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the container options.
//
//	strategy: per-field
//	growth: "1.5"
//	memory_limit: 67108864
//	initial_capacity: 1024
//	log_level: debug
type Config struct {
	Strategy        Strategy `yaml:"strategy"`
	Growth          string   `yaml:"growth"` // "default", "exact" or a factor > 1
	MemoryLimit     int64    `yaml:"memory_limit"`
	InitialCapacity int      `yaml:"initial_capacity"`
	LogLevel        string   `yaml:"log_level"` // empty disables logging
}

// LoadConfig decodes a YAML Config. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if errors.Is(err, ErrInvalidConfig) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c, nil
}

// Options validates c and converts it to container options.
func (c Config) Options() ([]Option, error) {
	if c.MemoryLimit < 0 {
		return nil, fmt.Errorf("%w: negative memory_limit %d", ErrInvalidConfig, c.MemoryLimit)
	}
	if c.InitialCapacity < 0 {
		return nil, fmt.Errorf("%w: negative initial_capacity %d", ErrInvalidConfig, c.InitialCapacity)
	}
	growth, err := parseGrowth(c.Growth)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithStrategy(c.Strategy), WithGrowth(growth)}
	if c.MemoryLimit > 0 {
		opts = append(opts, WithMemoryLimit(c.MemoryLimit))
	}
	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
		}
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		opts = append(opts, WithLogger(slog.New(h)))
	}
	return opts, nil
}

func parseGrowth(s string) (GrowthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DefaultGrowth, nil
	case "exact":
		return ExactGrowth, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(f > 1) {
		return nil, fmt.Errorf("%w: growth %q is not default, exact or a factor > 1", ErrInvalidConfig, s)
	}
	return FactorGrowth(f), nil
}
