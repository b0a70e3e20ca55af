package esprintf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config selects output details that differ between C libraries and
// targets.
type Config struct {
	// ExpDigits is the minimum number of exponent digits: 2 (the default,
	// also selected by 0) or 3, which matches libraries that always print
	// three.
	ExpDigits int `yaml:"exp_digits" toml:"exp_digits"`
	// CRLF sends "\r\n" for each '\n' in stream mode.
	CRLF bool `yaml:"crlf" toml:"crlf"`
}

// Validate reports whether c is usable.
func (c Config) Validate() error {
	switch c.ExpDigits {
	case 0, 2, 3:
		return nil
	default:
		return fmt.Errorf("%w: exp_digits must be 2 or 3, got %d", ErrInvalidConfig, c.ExpDigits)
	}
}

// ParseConfig decodes a YAML config. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig decodes a YAML config from r. An empty document yields the
// default Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseTOMLConfig decodes a TOML config. Unknown keys are rejected.
func ParseTOMLConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads the named config file. A .toml extension selects
// TOML; anything else is read as YAML.
func LoadConfigFile(name string) (Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Config{}, err
	}
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return ParseTOMLConfig(data)
	}
	return ParseConfig(data)
}
