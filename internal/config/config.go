package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the config file.
const (
	EnvContextMode = "PECHECK_CONTEXT_MODE"
	EnvVerbose     = "PECHECK_VERBOSE"
)

type Config struct {
	ContextMode string `yaml:"context_mode,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pecheck.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
// Unset or empty variables leave the field unchanged.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvContextMode); v != "" {
		c.ContextMode = v
	}
	if v := getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", pecheck.ErrInvalidConfig, EnvVerbose, v)
		}
		c.Verbose = b
	}
	return nil
}

// Mode parses ContextMode, defaulting to pecheck.DefaultContextMode.
func (c *Config) Mode() (pecheck.ContextMode, error) {
	return pecheck.ParseContextMode(c.ContextMode)
}
