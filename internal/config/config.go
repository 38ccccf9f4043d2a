// Package config defines the confbridge tool configuration structure.
package config

// Config represents the tool configuration loaded from YAML.
type Config struct {
	Log struct {
		Level string `yaml:"level,omitempty"` // panic | fatal | error | warn | info | debug | trace; default info
	} `yaml:"log"`
	Input struct {
		Format string `yaml:"format,omitempty"` // json | yaml; empty = guess from file extension
	} `yaml:"input"`
}

// Formats accepted by Input.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
