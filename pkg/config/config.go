// Package config loads riocat configuration from file, environment and
// defaults.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/devraider/rio/internal/bytesize"
)

// Config represents the riocat configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (RIOCAT_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Copy controls how bytes move from input to output
	Copy CopyConfig `mapstructure:"copy" yaml:"copy"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level: DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level" yaml:"level"`

	// Format is the log output format: text or json
	Format string `mapstructure:"format" yaml:"format"`

	// Output is the log destination: stdout, stderr, or a file path.
	// Defaults to stderr so log lines never interleave with copied data.
	Output string `mapstructure:"output" yaml:"output"`
}

// CopyConfig controls the copy loop.
type CopyConfig struct {
	// Mode selects byte-count copying ("bytes") or line-delimited
	// copying ("lines").
	Mode string `mapstructure:"mode" yaml:"mode"`

	// BufferSize is the transfer buffer capacity in byte mode and the
	// read-ahead buffer capacity in line mode. Accepts human-readable
	// sizes like "8Ki" or "64KB".
	BufferSize bytesize.ByteSize `mapstructure:"buffer_size" yaml:"buffer_size"`

	// MaxLineSize caps a single line in line mode, sentinel included.
	// Longer lines are split at the cap.
	MaxLineSize bytesize.ByteSize `mapstructure:"max_line_size" yaml:"max_line_size"`
}

// Copy modes.
const (
	ModeBytes = "bytes"
	ModeLines = "lines"
)

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: path to config file (empty string skips the file layer)
//
// Returns the loaded and validated configuration.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("configuration file not found: %s", configPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(byteSizeDecodeHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable support and the config file.
// Environment variables use the RIOCAT_ prefix with underscores,
// e.g. RIOCAT_COPY_BUFFER_SIZE=64Ki or RIOCAT_LOGGING_LEVEL=DEBUG.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("RIOCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{
		"logging.level", "logging.format", "logging.output",
		"copy.mode", "copy.buffer_size", "copy.max_line_size",
	} {
		v.SetDefault(key, "")
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	}
}

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	switch cfg.Copy.Mode {
	case ModeBytes, ModeLines:
	default:
		return fmt.Errorf("invalid copy mode %q (want %q or %q)", cfg.Copy.Mode, ModeBytes, ModeLines)
	}

	if cfg.Copy.BufferSize == 0 {
		return fmt.Errorf("buffer size must be positive")
	}

	// Line mode needs room for at least one data byte plus the sentinel.
	if cfg.Copy.MaxLineSize < 2 {
		return fmt.Errorf("max line size must be at least 2 bytes, got %s", cfg.Copy.MaxLineSize)
	}

	return nil
}

// byteSizeDecodeHook converts strings and integers to bytesize.ByteSize so
// config files can use human-readable sizes like "8Ki" or plain numbers.
func byteSizeDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(bytesize.ByteSize(0)) {
			return data, nil
		}

		if from.Kind() != reflect.String {
			// Plain numbers decode natively.
			return data, nil
		}

		s := data.(string)
		if s == "" {
			return bytesize.ByteSize(0), nil
		}
		return bytesize.Parse(s)
	}
}
