// Package config loads rex settings from .env, a YAML config file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when REX_CONFIG is unset.
const DefaultFile = ".rex.yml"

const (
	EnvConfig   = "REX_CONFIG"
	EnvLogLevel = "REX_LOG_LEVEL"
	EnvLogFile  = "REX_LOG_FILE"
	EnvPackage  = "REX_PACKAGE"
)

type Config struct {
	// LogLevel is a zerolog level name. Empty means "warn".
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, receives JSON log lines in addition to the console.
	LogFile string `yaml:"log_file"`
	// Package is the Go package of generated scanners whose grammar does not
	// declare one.
	Package string `yaml:"package"`
}

// Load reads .env (if present), then the YAML config file, then applies
// environment overrides. Missing files are not errors.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	path := os.Getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML from %q: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvPackage); ok {
		c.Package = v
	}
}

// Level returns the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}
