package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the dashboard looks for a config file when none is named.
const DefaultPath = "agenthub.yaml"

// Config holds the dashboard's tunables.
type Config struct {
	TickInterval   time.Duration `yaml:"tick_interval" validate:"gt=0"`
	StatusInterval time.Duration `yaml:"status_interval" validate:"gt=0"`
	ReplyDelay     time.Duration `yaml:"reply_delay" validate:"gte=0"`
	LoadingDelay   time.Duration `yaml:"loading_delay" validate:"gte=0"`
	MaxIncrement   float64       `yaml:"max_increment" validate:"gt=0,lte=15"`
	Retention      int           `yaml:"retention" validate:"gte=0"`
	Seed           int64         `yaml:"seed"`
	Log            LogConfig     `yaml:"log"`
}

// LogConfig controls the file logger. The terminal belongs to the UI, so
// logs are discarded unless File is set.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TickInterval:   time.Second,
		StatusInterval: 5 * time.Second,
		ReplyDelay:     2 * time.Second,
		LoadingDelay:   1500 * time.Millisecond,
		MaxIncrement:   15,
		Retention:      50,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is only an error when
// required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c *Config) SeedOrNow(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
