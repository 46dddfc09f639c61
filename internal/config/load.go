package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
)

// ErrConfigValidation wraps launcher.toml validation failures, as opposed to
// filesystem errors. Callers can match it with errors.Is.
var ErrConfigValidation = errors.New("config validation failed")

// Config holds the optional launcher settings read from launcher.toml.
// The file cannot move the install directory or rename the artifacts.
type Config struct {
	// DefaultLogLevel replaces INFO as the fallback server log level.
	// CNCF_ADVISOR_LOG_LEVEL still wins when set.
	DefaultLogLevel string `toml:"default_log_level"`
	// JavaCommand is the interpreter used for the archive; it wins over JAVA_HOME.
	JavaCommand string `toml:"java_command"`
}

// Default returns the compiled-in settings.
func Default() *Config {
	return &Config{DefaultLogLevel: DefaultLogLevel}
}

// Load reads launcher.toml at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes launcher.toml content strictly; unknown keys are rejected.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: "+messages.ConfigInvalidFmt, ErrConfigValidation, source, err)
		}
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and fills defaults for blank optional fields.
func (c *Config) Validate(source string) error {
	c.DefaultLogLevel = strings.TrimSpace(c.DefaultLogLevel)
	if c.DefaultLogLevel == "" {
		c.DefaultLogLevel = DefaultLogLevel
	}
	if c.JavaCommand != "" && strings.TrimSpace(c.JavaCommand) == "" {
		return fmt.Errorf("%w: "+messages.ConfigEmptyJavaCommandFmt, ErrConfigValidation, source)
	}
	c.JavaCommand = strings.TrimSpace(c.JavaCommand)
	return nil
}
