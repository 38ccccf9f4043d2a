// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultPath is the file Load reads when no path is given.
const DefaultPath = "confbridge.yml"

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	return cfg
}

// Load loads the tool configuration from path, or DefaultPath when path is
// empty. A missing file is not an error; Default() is returned instead.
// Keys absent from the file keep their default value.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("caller", "config").Debugf("%s not found: using defaults", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	switch cfg.Input.Format {
	case "", FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported input format %q", cfg.Input.Format)
	}
	return cfg, nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// WriteDefaultConfig writes a default configuration file to the given path.
func WriteDefaultConfig(path string) error {
	cfg := Default()
	cfg.Input.Format = FormatJSON
	return SaveConfig(cfg, path)
}

// SaveConfig saves a Config to a YAML file.
func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return nil
}
